package controller

import (
	"colorcycle/internal/tui/model"
	"colorcycle/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

const controllerSubsystem = "Controller"

// Update routes a message to its handler and returns the commands to run.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return handleWindowSizeMsg(m, msg)

	case model.TickMsg:
		return m, m.HandleTick(msg)

	case tea.KeyMsg:
		return handleKeyMsg(m, msg)

	case tea.MouseMsg:
		return handleMouseMsg(m, msg)

	case model.NewLogEntryMsg:
		if m.ShowsLogLevel(msg.Entry.Level) {
			model.AddRawLineToActivityLog(m, msg.Entry.String())
		}
		return m, model.ListenForLogEntriesCmd(m.LogChannel)

	case model.ClipboardResultMsg:
		return handleClipboardResultMsg(m, msg)

	case model.ClearStatusBarMsg:
		m.ClearStatusMessage()
		return m, nil
	}
	return m, nil
}

// handleWindowSizeMsg updates the model with the new terminal dimensions when
// the window is resized.
func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) (*model.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	if m.DebugMode {
		logging.Debug(controllerSubsystem, "Window resized to %dx%d", msg.Width, msg.Height)
	}
	return m, nil
}

func handleClipboardResultMsg(m *model.Model, msg model.ClipboardResultMsg) (*model.Model, tea.Cmd) {
	if msg.Err != nil {
		logging.Error(controllerSubsystem, msg.Err, "Failed to copy color")
		return m, m.SetStatusMessage("Copy failed", model.StatusBarError, statusDuration)
	}
	logging.Info(controllerSubsystem, "Copied %s to clipboard", msg.Value)
	return m, m.SetStatusMessage("Copied "+msg.Value, model.StatusBarSuccess, statusDuration)
}

func quit(m *model.Model) (*model.Model, tea.Cmd) {
	m.Shutdown()
	m.QuitApp = true
	m.CurrentAppMode = model.ModeQuitting
	return m, tea.Quit
}
