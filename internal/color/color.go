package color

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	black = "#000000"
	white = "#ffffff"

	// luminanceThreshold splits backgrounds needing dark text from those
	// needing light text (WCAG relative luminance midpoint).
	luminanceThreshold = 0.179
)

// Initialize tells lipgloss which background the terminal has, so adaptive
// colors resolve to the right variant.
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}

// Contrast returns black or white, whichever reads better on hex. Unparseable
// input yields white.
func Contrast(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return white
	}
	r, g, b := c.LinearRgb()
	if 0.2126*r+0.7152*g+0.0722*b > luminanceThreshold {
		return black
	}
	return white
}

// Fade blends hex toward bg by amount in [0, 1], interpolating in Lab space.
// Unparseable input is returned unchanged.
func Fade(hex, bg string, amount float64) string {
	switch {
	case amount <= 0:
		return hex
	case amount >= 1:
		return bg
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	target, err := colorful.Hex(bg)
	if err != nil {
		return hex
	}
	return c.BlendLab(target, amount).Clamped().Hex()
}
