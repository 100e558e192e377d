package view

import (
	"colorcycle/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

// Render draws the whole screen for the current mode.
func Render(m *model.Model) string {
	switch m.CurrentAppMode {
	case model.ModeHelpOverlay:
		return renderHelpOverlay(m)
	case model.ModeLogOverlay:
		return renderLogOverlay(m)
	case model.ModeQuitting:
		return ""
	default:
		return renderMain(m)
	}
}

func renderMain(m *model.Model) string {
	l := computeLayout(m)
	block := renderColorBlock(m, l.width, l.blockHeight)
	if m.Zen {
		return block
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		block,
		"",
		renderControls(m, l),
		renderStatusBar(m, l.width),
	)
}
