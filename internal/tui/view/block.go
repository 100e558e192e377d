package view

import (
	"colorcycle/internal/color"
	"colorcycle/internal/tui/design"
	"colorcycle/internal/tui/model"
	"colorcycle/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// renderColorBlock fills width x height with the current color and centers
// its label. Without a current color the block is blank.
func renderColorBlock(m *model.Model, width, height int) string {
	bg, label := design.Blank, ""
	if current, ok := m.CurrentColor(); ok {
		bg, label = current.Value, current.Label
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(color.Contrast(bg))).
		Bold(true).
		Render(utils.TruncateString(label, width-2))
}
