package tui

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/shopcart/internal/ports"
)

func cmdRefreshWorkspace(locator ports.WorkspaceLocator) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{cwd: "", found: false, err: fmt.Errorf("getwd: %w", err)}
		}
		if locator == nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: errors.New("WorkspaceLocator is nil")}
		}

		root, findErr := locator.FindRoot(wd)
		if findErr != nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: findErr}
		}

		return workspaceRefreshedMsg{cwd: wd, found: true, root: root, err: nil}
	}
}

// cmdLoadSessions only reads the filesystem; the cart is never touched
// outside Update.
func cmdLoadSessions(sessions ports.SessionLoader, root string) tea.Cmd {
	return func() tea.Msg {
		if sessions == nil {
			return sessionsLoadedMsg{root: root, err: errors.New("SessionLoader is nil")}
		}
		refs, err := sessions.ListSessions(root)
		return sessionsLoadedMsg{root: root, refs: refs, err: err}
	}
}
