package model

import "colorcycle/pkg/logging"

// TickMsg is a rotation timer firing for the lease with Generation.
type TickMsg struct {
	Generation uint64
}

// NewLogEntryMsg carries one entry from the logging channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// ClipboardResultMsg reports the outcome of copying a color value.
type ClipboardResultMsg struct {
	Value string
	Err   error
}

type ClearStatusBarMsg struct{}
