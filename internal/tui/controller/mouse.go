package controller

import (
	"colorcycle/internal/tui/model"
	"colorcycle/internal/tui/view"

	tea "github.com/charmbracelet/bubbletea"
)

// handleMouseMsg maps clicks and wheel motion onto the controls. Mouse input
// is ignored while an overlay is open.
func handleMouseMsg(m *model.Model, msg tea.MouseMsg) (*model.Model, tea.Cmd) {
	if m.CurrentAppMode != model.ModeMainDashboard {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return m, m.AdjustSpeed(speedStep)
	case tea.MouseButtonWheelDown:
		return m, m.AdjustSpeed(-speedStep)
	case tea.MouseButtonLeft:
	default:
		return m, nil
	}

	target := view.HitTest(m, msg.X, msg.Y)

	// Dragging only moves the slider.
	if msg.Action == tea.MouseActionMotion {
		if target.Kind == view.TargetSlider {
			return m, m.SetSpeed(target.Value)
		}
		return m, nil
	}
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	switch target.Kind {
	case view.TargetSlider:
		return m, m.SetSpeed(target.Value)
	case view.TargetPause:
		return handlePause(m)
	case view.TargetSwatch:
		for i, option := range m.Table.Options() {
			if option.ID == target.ID {
				m.Cursor = i
			}
		}
		return toggleColor(m, target.ID)
	}
	return m, nil
}
