package tui

import "github.com/aalvaropc/shopcart/internal/domain"

type workspaceRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	err   error
}

type sessionsLoadedMsg struct {
	root string
	refs []domain.SessionRef
	err  error
}
