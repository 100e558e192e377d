package view

import (
	"fmt"
	"strings"

	"colorcycle/internal/color"
	"colorcycle/internal/palette"
	"colorcycle/internal/selection"
	"colorcycle/internal/speed"
	"colorcycle/internal/tui/design"
	"colorcycle/internal/tui/model"
	"colorcycle/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

const (
	slowLabel = "slow (7s)"
	fastLabel = "fast (1s)"

	activeMarker = "✓ active"

	// Fade amounts toward the surface color.
	inactiveFade = 0.35
	disabledFade = 0.6
)

func renderControls(m *model.Model, l layout) string {
	lines := []string{
		design.TitleStyle.Render("Speed"),
		renderSlider(m, l.inner),
		renderEndpoints(m, l.inner),
		"",
		renderPauseButton(m),
		"",
		design.TitleStyle.Render(fmt.Sprintf("Colors  %d/%d selected", m.Selection.Len(), selection.MaxActive)),
	}
	lines = append(lines, renderSwatchGrid(m, l)...)
	if m.ShowFloorWarning() {
		lines = append(lines, design.TextWarningStyle.Render(fmt.Sprintf(
			"Warning: select at least %d colors (currently %d)", selection.MinActive, m.Selection.Len())))
	}

	pad := strings.Repeat(" ", controlsPadX)
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}

// sliderFill picks the fill for the current background.
func sliderFill() string {
	if lipgloss.HasDarkBackground() {
		return design.ColorPrimary.Dark
	}
	return design.ColorPrimary.Light
}

func renderSlider(m *model.Model, width int) string {
	m.SpeedBar.Width = width
	m.SpeedBar.FullColor = sliderFill()
	return m.SpeedBar.ViewAs(speed.Fraction(m.Speed))
}

// renderEndpoints lays out the slow label, the live period and the fast label
// across width.
func renderEndpoints(m *model.Model, width int) string {
	center := design.TitleStyle.Render(m.PeriodText())
	left := design.TextSecondaryStyle.Render(slowLabel)
	right := design.TextSecondaryStyle.Render(fastLabel)

	gap := width - lipgloss.Width(left) - lipgloss.Width(center) - lipgloss.Width(right)
	if gap < 2 {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, center)
	}
	return left + strings.Repeat(" ", gap/2) + center + strings.Repeat(" ", gap-gap/2) + right
}

func renderPauseButton(m *model.Model) string {
	label := "⏸ pause"
	if m.Engine.Paused() {
		label = "▶ resume"
	}
	style := design.ButtonStyle
	if !m.PauseEnabled() {
		style = design.ButtonDisabledStyle
	}
	return style.Render(label)
}

// renderSwatchGrid returns the grid as individual lines, rows separated by a
// blank line.
func renderSwatchGrid(m *model.Model, l layout) []string {
	options := m.Table.Options()
	gap := strings.Repeat(" ", design.SwatchGap)

	var lines []string
	for row := 0; row < l.rows; row++ {
		if row > 0 {
			lines = append(lines, "")
		}
		var cells [design.SwatchHeight][]string
		for col := 0; col < l.cols; col++ {
			i := row*l.cols + col
			if i >= len(options) {
				break
			}
			swatch := renderSwatch(m, options[i], i == m.Cursor, l.swatchWidth)
			for k := range cells {
				cells[k] = append(cells[k], swatch[k])
			}
		}
		for k := range cells {
			lines = append(lines, strings.Join(cells[k], gap))
		}
	}
	return lines
}

// renderSwatch draws one swatch as a color bar, a label line and a selection
// marker line, each exactly width cells wide.
func renderSwatch(m *model.Model, option palette.ColorOption, focused bool, width int) [design.SwatchHeight]string {
	selected := m.Selection.Contains(option.ID)
	enabled := m.Selection.CanToggle(option.ID)

	fill := option.Value
	switch {
	case !enabled:
		fill = color.Fade(fill, design.SurfaceHex(), disabledFade)
	case !selected:
		fill = color.Fade(fill, design.SurfaceHex(), inactiveFade)
	}
	bar := lipgloss.NewStyle().Background(lipgloss.Color(fill)).Render(strings.Repeat(" ", width))

	marker := " "
	if focused {
		marker = "›"
	}
	labelText := utils.PadRight(fmt.Sprintf("%s %d %s", marker, option.ID, option.Label), width)
	labelStyle := design.SwatchLabelStyle
	switch {
	case focused:
		labelStyle = design.SwatchLabelFocusedStyle
	case !enabled:
		labelStyle = design.SwatchLabelDisabledStyle
	}

	status := utils.PadRight("", width)
	if selected {
		status = design.TextSuccessStyle.Render(utils.PadRight(activeMarker, width))
	}

	return [design.SwatchHeight]string{bar, labelStyle.Render(labelText), status}
}
