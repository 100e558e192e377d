package view

import (
	"fmt"

	"colorcycle/internal/tui/components"
	"colorcycle/internal/tui/model"
	"colorcycle/pkg/logging"
)

func renderStatusBar(m *model.Model, width int) string {
	return components.NewStatusBar(width).
		WithMessage(m.StatusBarMessage, m.StatusBarMessageType).
		WithLeftText(stateText(m)).
		WithRightText(m.Help.ShortHelpView(m.Keys.ShortHelp())).
		Render()
}

// stateText summarizes the rotation for the status bar.
func stateText(m *model.Model) string {
	var text string
	switch {
	case m.Engine.Paused():
		text = fmt.Sprintf("⏸ paused · %d colors", m.Selection.Len())
	case m.Engine.Running():
		text = fmt.Sprintf("● %d colors every %s", m.Selection.Len(), m.PeriodText())
	default:
		text = "○ stopped"
	}
	if m.DebugMode {
		text += fmt.Sprintf(" · gen %d idx %d · dropped %d", m.Engine.Generation(), m.Engine.Index(), logging.Dropped())
	}
	return text
}
