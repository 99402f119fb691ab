package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/shopcart/internal/app/template"
	"github.com/aalvaropc/shopcart/internal/domain"
	"github.com/aalvaropc/shopcart/internal/usecase"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

// renderCart lists the cart lines with the configured template. A template
// error is shown in place of the line rather than failing the view.
func renderCart(r domain.Receipt, cfg domain.Config, width int) string {
	if len(r.Lines) == 0 {
		return "(cart is empty)"
	}

	var b strings.Builder
	for i, l := range r.Lines {
		line, err := template.RenderLine(cfg.Receipt.LineTemplate, l, cfg.Currency, usecase.MoneyPlaces)
		if err != nil {
			line = l.Name + ": " + userMessage(err)
		}
		if width > 0 {
			line = clampString(line, width)
		}
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
	}
	return b.String()
}
