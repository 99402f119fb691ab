package tui

import "github.com/charmbracelet/lipgloss"

// Theme groups the styles of the cart screen.
type Theme struct {
	Heading lipgloss.Style
	Muted   lipgloss.Style
	Panel   lipgloss.Style
	Total   lipgloss.Style
	Notice  lipgloss.Style
}

func DefaultTheme() Theme {
	accent := lipgloss.AdaptiveColor{Light: "25", Dark: "63"}
	return Theme{
		Heading: lipgloss.NewStyle().Bold(true).Foreground(accent),
		Muted:   lipgloss.NewStyle().Faint(true),
		Panel: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accent),
		Total:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "42"}),
		Notice: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
}
