package model

import (
	"colorcycle/internal/palette"
	"colorcycle/internal/rotation"
	"colorcycle/internal/selection"
	"colorcycle/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeMainDashboard AppMode = iota
	ModeHelpOverlay
	ModeLogOverlay
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeMainDashboard:
		return "MainDashboard"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// Constants for UI
const (
	MaxActivityLogLines = 1000
)

// TUIConfig carries the startup state of the display.
type TUIConfig struct {
	Table     *palette.Table
	Selection *selection.Selection
	Speed     int
	Paused    bool
	Zen       bool
	DebugMode bool
	LogLevel  logging.LogLevel // overlay threshold; debug entries also need DebugMode
	ColorMode string
}

// Model represents the state of the TUI application
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	// Global application state
	QuitApp        bool
	CurrentAppMode AppMode
	LastAppMode    AppMode
	DebugMode      bool
	LogLevel       logging.LogLevel
	ColorMode      string
	Zen            bool

	// Rotation state
	Table     *palette.Table
	Selection *selection.Selection
	Engine    *rotation.Engine
	Speed     int
	Cursor    int // index into Table.Options()

	// UI State & Output
	ActivityLog          []string
	ActivityLogDirty     bool
	LogViewport          viewport.Model
	SpeedBar             progress.Model
	Keys                 KeyMap
	Help                 help.Model
	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}

	// Logging
	LogChannel <-chan logging.LogEntry

	initCmd tea.Cmd
}
