package utils

import "github.com/mattn/go-runewidth"

// TruncateString truncates a string to the specified display width, marking
// the cut with an ellipsis.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// PadRight pads s with spaces up to the given display width.
func PadRight(s string, width int) string {
	return runewidth.FillRight(TruncateString(s, width), width)
}
