package controller

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"colorcycle/internal/color"
	"colorcycle/internal/selection"
	"colorcycle/internal/tui/model"
	"colorcycle/internal/tui/view"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	statusDuration = 3 * time.Second

	speedStep      = 1
	speedStepLarge = 10
)

// For mocking in tests
var copyLogs = clipboard.WriteAll

// handleKeyMsg processes key presses for the current mode.
func handleKeyMsg(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if key.Matches(keyMsg, m.Keys.Quit) {
		return quit(m)
	}

	switch m.CurrentAppMode {
	case model.ModeLogOverlay:
		return handleLogOverlayKey(m, keyMsg)
	case model.ModeHelpOverlay:
		if key.Matches(keyMsg, m.Keys.Esc, m.Keys.Help) {
			m.CurrentAppMode = m.LastAppMode
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Help):
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeHelpOverlay
		return m, nil

	case key.Matches(keyMsg, m.Keys.ToggleLog):
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeLogOverlay
		m.ActivityLogDirty = true
		return m, nil

	case key.Matches(keyMsg, m.Keys.Esc):
		if m.Zen {
			m.Zen = false
		}
		return m, nil

	case key.Matches(keyMsg, m.Keys.Zen):
		m.Zen = !m.Zen
		return m, nil

	case key.Matches(keyMsg, m.Keys.Pause):
		return handlePause(m)

	case key.Matches(keyMsg, m.Keys.Copy):
		return m, m.CopyCurrentColor()

	case key.Matches(keyMsg, m.Keys.ToggleDark):
		dark := !lipgloss.HasDarkBackground()
		color.Initialize(dark)
		m.ColorMode = colorModeName(dark)
		return m, m.SetStatusMessage("Switched to "+m.ColorMode+" mode", model.StatusBarInfo, statusDuration)

	case key.Matches(keyMsg, m.Keys.ToggleDebug):
		m.DebugMode = !m.DebugMode
		return m, nil

	case key.Matches(keyMsg, m.Keys.Faster):
		return m, m.AdjustSpeed(speedStep)
	case key.Matches(keyMsg, m.Keys.Slower):
		return m, m.AdjustSpeed(-speedStep)
	case key.Matches(keyMsg, m.Keys.FasterStep):
		return m, m.AdjustSpeed(speedStepLarge)
	case key.Matches(keyMsg, m.Keys.SlowerStep):
		return m, m.AdjustSpeed(-speedStepLarge)
	}

	// Swatch navigation and toggling is hidden in zen mode.
	if m.Zen {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Left):
		m.MoveCursor(-1)
	case key.Matches(keyMsg, m.Keys.Right):
		m.MoveCursor(1)
	case key.Matches(keyMsg, m.Keys.Up):
		m.MoveCursor(-view.Columns(m))
	case key.Matches(keyMsg, m.Keys.Down):
		m.MoveCursor(view.Columns(m))
	case key.Matches(keyMsg, m.Keys.Toggle):
		options := m.Table.Options()
		if m.Cursor >= 0 && m.Cursor < len(options) {
			return toggleColor(m, options[m.Cursor].ID)
		}
	case key.Matches(keyMsg, m.Keys.Pick):
		id, err := strconv.Atoi(keyMsg.String())
		if err == nil {
			m.Cursor = id - 1
			return toggleColor(m, id)
		}
	}
	return m, nil
}

func handleLogOverlayKey(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.Keys.Esc, m.Keys.ToggleLog):
		m.CurrentAppMode = m.LastAppMode
		return m, nil
	case key.Matches(keyMsg, m.Keys.Copy):
		if err := copyLogs(strings.Join(m.ActivityLog, "\n")); err != nil {
			return m, m.SetStatusMessage("Copy logs failed", model.StatusBarError, statusDuration)
		}
		return m, m.SetStatusMessage("Logs copied to clipboard", model.StatusBarSuccess, statusDuration)
	}
	var cmd tea.Cmd
	m.LogViewport, cmd = m.LogViewport.Update(keyMsg)
	return m, cmd
}

// toggleColor toggles id, explaining a rejected toggle in the status bar.
func toggleColor(m *model.Model, id int) (*model.Model, tea.Cmd) {
	if !m.Selection.CanToggle(id) {
		var hint string
		if m.Selection.Contains(id) {
			hint = fmt.Sprintf("At least %d colors must stay selected", selection.MinActive)
		} else {
			hint = fmt.Sprintf("All %d colors are already selected", selection.MaxActive)
		}
		return m, m.SetStatusMessage(hint, model.StatusBarWarning, statusDuration)
	}
	return m, m.ToggleColor(id)
}

func handlePause(m *model.Model) (*model.Model, tea.Cmd) {
	if !m.PauseEnabled() {
		return m, m.SetStatusMessage(
			fmt.Sprintf("Select at least %d colors to start", selection.MinActive),
			model.StatusBarWarning, statusDuration)
	}
	return m, m.TogglePause()
}

func colorModeName(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}
