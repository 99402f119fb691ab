package tui

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
)

const crashNotice = "Unexpected error (see logs)"

// safeModel keeps a panic inside the cart screen from tearing down the
// terminal. The cart itself is left alone so the receipt still prints.
type safeModel struct {
	m   model
	log *slog.Logger
}

func wrapSafe(m model, log *slog.Logger) safeModel {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return safeModel{m: m, log: log}
}

func (s safeModel) Init() tea.Cmd {
	return s.m.Init()
}

func (s safeModel) Update(msg tea.Msg) (tm tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			s.report("tui.update", r)
			s.m.resetScreen()
			s.m.toast = crashNotice
			tm, cmd = s, nil
		}
	}()

	inner, c := s.m.Update(msg)
	switch v := inner.(type) {
	case model:
		s.m = v
	case safeModel:
		s = v
	}
	return s, c
}

func (s safeModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.report("tui.view", r)
			out = crashNotice
		}
	}()
	return s.m.View()
}

func (s safeModel) report(where string, r any) {
	s.log.Error("panic.recovered",
		"where", where,
		"panic", fmt.Sprint(r),
		"cart_items", s.m.cartLen(),
		"stack", string(debug.Stack()),
	)
}

var _ tea.Model = (*safeModel)(nil)
