// Package color carries the terminal theme switch and the color arithmetic
// the display needs on top of lipgloss.
//
// Preset colors are plain hex strings. Contrast picks a readable label color
// for text drawn on top of a preset, Fade dims a preset toward the surface
// color for swatches that cannot currently be toggled.
//
//	label := lipgloss.NewStyle().
//	    Background(lipgloss.Color(value)).
//	    Foreground(lipgloss.Color(color.Contrast(value)))
package color
