package model

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// SetStatusMessage updates the status bar message and schedules its clearing.
// A newer message cancels the pending clear of an older one.
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}

	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}

// ClearStatusMessage drops the status bar message.
func (m *Model) ClearStatusMessage() {
	m.StatusBarMessage = ""
	m.StatusBarMessageType = StatusBarInfo
	m.StatusBarClearCancel = nil
}
