package controller

import (
	"context"

	"colorcycle/internal/tui/model"
	"colorcycle/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the full-screen display program. The program exits when
// ctx is cancelled.
func NewProgram(ctx context.Context, cfg model.TUIConfig, logChannel <-chan logging.LogEntry) (*tea.Program, error) {
	m := model.InitialModel(cfg, logChannel)
	app := NewAppModel(m)

	p := tea.NewProgram(app,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	return p, nil
}
