package color

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		isDarkMode bool
		expected   bool
	}{
		{"set dark mode", true, true},
		{"set light mode", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Initialize(tt.isDarkMode)
			if lipgloss.HasDarkBackground() != tt.expected {
				t.Errorf("lipgloss.HasDarkBackground() got %v, want %v after Initialize(%v)", lipgloss.HasDarkBackground(), tt.expected, tt.isDarkMode)
			}
		})
	}
}

func TestContrast(t *testing.T) {
	tests := []struct {
		hex  string
		want string
	}{
		{"#ffffff", black},
		{"#000000", white},
		{"#eab308", black},
		{"#1e3a8a", white},
		{"not-a-color", white},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			assert.Equal(t, tt.want, Contrast(tt.hex))
		})
	}
}

func TestFade(t *testing.T) {
	assert.Equal(t, "#ef4444", Fade("#ef4444", "#1a1a1a", 0))
	assert.Equal(t, "#1a1a1a", Fade("#ef4444", "#1a1a1a", 1))
	assert.Equal(t, "bogus", Fade("bogus", "#1a1a1a", 0.5))

	mid := Fade("#ffffff", "#000000", 0.5)
	c, err := colorful.Hex(mid)
	require.NoError(t, err)
	l, _, _ := c.Lab()
	assert.InDelta(t, 0.5, l, 0.02)
}
