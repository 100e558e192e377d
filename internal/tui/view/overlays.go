package view

import (
	"strings"

	"colorcycle/internal/tui/design"
	"colorcycle/internal/tui/model"
	"colorcycle/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

const logOverlayTitle = "Activity Log  (↑/↓ scroll  •  Esc close)"

func renderHelpOverlay(m *model.Model) string {
	title := design.HelpTitleStyle.Render("KEYBOARD SHORTCUTS")
	body := m.Help.FullHelpView(m.Keys.FullHelp())

	content := lipgloss.JoinVertical(lipgloss.Center, title, "", body, "",
		design.TextTertiaryStyle.Render("Press h, ? or Esc to close"))
	overlay := design.CenteredOverlayContainerStyle.Render(content)

	width, height := overlaySize(m)
	canvas := lipgloss.Place(width, height-statusHeight, lipgloss.Center, lipgloss.Center, overlay)
	return lipgloss.JoinVertical(lipgloss.Left, canvas, renderStatusBar(m, width))
}

func renderLogOverlay(m *model.Model) string {
	width, height := overlaySize(m)
	titleView := design.LogPanelTitleStyle.Render(logOverlayTitle)

	totalWidth := int(float64(width) * 0.8)
	totalHeight := int(float64(height) * 0.7)

	vpWidth := max(totalWidth-design.LogOverlayStyle.GetHorizontalFrameSize(), 0)
	vpHeight := max(totalHeight-design.LogOverlayStyle.GetVerticalFrameSize()-lipgloss.Height(titleView), 0)

	resized := m.LogViewport.Width != vpWidth || m.LogViewport.Height != vpHeight
	m.LogViewport.Width = vpWidth
	m.LogViewport.Height = vpHeight
	if m.ActivityLogDirty || resized {
		m.LogViewport.SetContent(PrepareLogContent(m.ActivityLog, vpWidth))
		m.LogViewport.GotoBottom()
		m.ActivityLogDirty = false
	}

	overlay := design.LogOverlayStyle.
		Width(totalWidth - design.LogOverlayStyle.GetHorizontalFrameSize()).
		Height(totalHeight - design.LogOverlayStyle.GetVerticalFrameSize()).
		Render(lipgloss.JoinVertical(lipgloss.Left, titleView, m.LogViewport.View()))

	canvas := lipgloss.Place(width, height-statusHeight, lipgloss.Center, lipgloss.Center, overlay)
	return lipgloss.JoinVertical(lipgloss.Left, canvas, renderStatusBar(m, width))
}

func overlaySize(m *model.Model) (int, int) {
	return max(m.Width, minWidth), max(m.Height, design.MinBlockHeight+statusHeight)
}

// PrepareLogContent truncates each line to width and colors it by level.
func PrepareLogContent(lines []string, width int) string {
	if len(lines) == 0 {
		return design.TextTertiaryStyle.Render("No log entries yet.")
	}
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, logLineStyle(line).Render(utils.TruncateString(line, width)))
	}
	return strings.Join(out, "\n")
}

func logLineStyle(line string) lipgloss.Style {
	switch {
	case strings.Contains(line, "[ERROR]"):
		return design.LogErrorStyle
	case strings.Contains(line, "[WARN]"):
		return design.LogWarnStyle
	case strings.Contains(line, "[DEBUG]"):
		return design.LogDebugStyle
	default:
		return design.LogInfoStyle
	}
}
