package controller

import (
	"testing"

	"colorcycle/internal/speed"
	"colorcycle/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

// Coordinates below follow the 80x40 layout: block rows 0-23, slider on
// row 26, pause button on row 29, swatch grid from row 32.
func TestMouse_ClickSwatch(t *testing.T) {
	m := newTestModel(t)

	press(m, click(2+16*2, 33))
	assert.Equal(t, []int{1, 2, 3}, m.Selection.IDs())
	assert.Equal(t, 2, m.Cursor)

	press(m, click(2, 32))
	assert.Equal(t, []int{2, 3}, m.Selection.IDs())
}

func TestMouse_ClickPause(t *testing.T) {
	m := newTestModel(t)

	press(m, click(3, 29))
	assert.True(t, m.Engine.Paused())
}

func TestMouse_Slider(t *testing.T) {
	m := newTestModel(t)

	press(m, click(77, 26))
	assert.Equal(t, speed.Max, m.Speed)

	press(m, tea.MouseMsg{X: 2, Y: 26, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	assert.Equal(t, speed.Min, m.Speed)
}

func TestMouse_Wheel(t *testing.T) {
	m := newTestModel(t)

	press(m, tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	assert.Equal(t, speed.Default+speedStep, m.Speed)
	press(m, tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	assert.Equal(t, speed.Default, m.Speed)
}

func TestMouse_IgnoredInOverlay(t *testing.T) {
	m := newTestModel(t)
	m.CurrentAppMode = model.ModeHelpOverlay

	press(m, click(3, 29))
	assert.False(t, m.Engine.Paused())
}
