package model

import (
	"colorcycle/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// AddRawLineToActivityLog adds a pre-formatted log entry to the model's activity log,
// ensuring it doesn't exceed MaxActivityLogLines and sets the dirty flag.
func AddRawLineToActivityLog(m *Model, entry string) {
	m.ActivityLog = append(m.ActivityLog, entry)
	if len(m.ActivityLog) > MaxActivityLogLines {
		m.ActivityLog = m.ActivityLog[len(m.ActivityLog)-MaxActivityLogLines:]
	}
	m.ActivityLogDirty = true
}

// ShowsLogLevel reports whether entries at level belong in the overlay.
// Debug mode shows everything; otherwise the threshold is the configured
// level, never below info.
func (m *Model) ShowsLogLevel(level logging.LogLevel) bool {
	if m.DebugMode {
		return true
	}
	return level >= max(m.LogLevel, logging.LevelInfo)
}

// ListenForLogEntriesCmd waits for the next entry on ch. The controller
// re-issues it after each NewLogEntryMsg. A nil or closed channel ends the
// loop.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}
