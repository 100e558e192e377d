package model

import (
	"fmt"
	"time"

	"colorcycle/internal/palette"
	"colorcycle/internal/rotation"
	"colorcycle/internal/selection"
	"colorcycle/internal/speed"
	"colorcycle/internal/tui/design"
	"colorcycle/pkg/logging"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const subsystem = "Display"

// For mocking in tests
var writeClipboard = clipboard.WriteAll

// InitialModel builds the display state from cfg. Missing pieces fall back to
// the defaults: the preset table, the default selection and speed.
func InitialModel(cfg TUIConfig, logChannel <-chan logging.LogEntry) *Model {
	table := cfg.Table
	if table == nil {
		table = palette.Default()
	}
	sel := cfg.Selection
	if sel == nil {
		sel = selection.Default()
	}
	v := cfg.Speed
	if v == 0 {
		v = speed.Default
	}
	v = speed.Clamp(v)

	engine, lease, armed := rotation.New(sel.IDs(), speed.Period(v), cfg.Paused)

	bar := progress.New(
		progress.WithSolidFill(design.ColorPrimary.Dark), // recolored per render
		progress.WithoutPercentage(),
	)

	m := &Model{
		CurrentAppMode: ModeMainDashboard,
		LastAppMode:    ModeMainDashboard,
		DebugMode:      cfg.DebugMode,
		LogLevel:       cfg.LogLevel,
		ColorMode:      cfg.ColorMode,
		Zen:            cfg.Zen,
		Table:          table,
		Selection:      sel,
		Engine:         engine,
		Speed:          v,
		LogViewport:    viewport.New(0, 0),
		SpeedBar:       bar,
		Keys:           DefaultKeyMap(),
		Help:           help.New(),
		LogChannel:     logChannel,
	}
	m.initCmd = ScheduleTick(lease, armed)
	return m
}

// Init starts the first rotation timer and the log listener.
func (m *Model) Init() tea.Cmd {
	logging.Info(subsystem, "Rotating %d colors every %s", m.Selection.Len(), m.PeriodText())
	return tea.Batch(m.initCmd, ListenForLogEntriesCmd(m.LogChannel))
}

// ScheduleTick turns an armed lease into a timer command. It returns nil when
// nothing was armed.
func ScheduleTick(lease rotation.Lease, armed bool) tea.Cmd {
	if !armed {
		return nil
	}
	generation := lease.Generation
	return tea.Tick(lease.Period, func(time.Time) tea.Msg {
		return TickMsg{Generation: generation}
	})
}

// HandleTick advances the rotation on a current timer firing and schedules
// the next interval. Stale firings are dropped.
func (m *Model) HandleTick(msg TickMsg) tea.Cmd {
	return ScheduleTick(m.Engine.Fire(msg.Generation))
}

// syncEngine pushes the selection and period into the engine, restarting the
// timer when either changed.
func (m *Model) syncEngine() tea.Cmd {
	return ScheduleTick(m.Engine.Sync(m.Selection.IDs(), speed.Period(m.Speed)))
}

// ToggleColor toggles id in the selection. A toggle that would leave the
// selection outside its bounds does nothing.
func (m *Model) ToggleColor(id int) tea.Cmd {
	if !m.Selection.Toggle(id) {
		logging.Debug(subsystem, "Toggle of color %d rejected at %d active", id, m.Selection.Len())
		return nil
	}
	logging.Debug(subsystem, "Selection is now %v", m.Selection.IDs())
	return m.syncEngine()
}

// ToggleFocused toggles the swatch under the cursor.
func (m *Model) ToggleFocused() tea.Cmd {
	options := m.Table.Options()
	if m.Cursor < 0 || m.Cursor >= len(options) {
		return nil
	}
	return m.ToggleColor(options[m.Cursor].ID)
}

// PauseEnabled reports whether the pause control accepts input.
func (m *Model) PauseEnabled() bool {
	return m.Selection.Len() >= selection.MinActive
}

// TogglePause flips between paused and running.
func (m *Model) TogglePause() tea.Cmd {
	if !m.PauseEnabled() {
		return nil
	}
	cmd := ScheduleTick(m.Engine.TogglePause())
	if m.Engine.Paused() {
		logging.Info(subsystem, "Paused")
	} else {
		logging.Info(subsystem, "Resumed")
	}
	return cmd
}

// SetSpeed moves the speed control to v, clamped to its range.
func (m *Model) SetSpeed(v int) tea.Cmd {
	v = speed.Clamp(v)
	if v == m.Speed {
		return nil
	}
	m.Speed = v
	return m.syncEngine()
}

// AdjustSpeed moves the speed control by delta.
func (m *Model) AdjustSpeed(delta int) tea.Cmd {
	return m.SetSpeed(speed.Step(m.Speed, delta))
}

// PeriodMs is the rotation period derived from the speed control.
func (m *Model) PeriodMs() float64 {
	return speed.PeriodMs(m.Speed)
}

// PeriodText is the readable rotation period.
func (m *Model) PeriodText() string {
	return speed.Format(m.PeriodMs())
}

// CurrentColor returns the color being displayed. ok is false when no color
// is active.
func (m *Model) CurrentColor() (palette.ColorOption, bool) {
	id, ok := m.Engine.Current()
	if !ok {
		return palette.ColorOption{}, false
	}
	return m.Table.Lookup(id)
}

// ShowFloorWarning reports whether fewer colors than the enforced floor are
// active.
func (m *Model) ShowFloorWarning() bool {
	return m.Selection.Len() < selection.MinActive
}

// MoveCursor moves the swatch cursor by delta, wrapping around the table.
func (m *Model) MoveCursor(delta int) {
	n := len(m.Table.Options())
	if n == 0 {
		return
	}
	m.Cursor = ((m.Cursor+delta)%n + n) % n
}

// CopyCurrentColor copies the displayed color value to the clipboard.
func (m *Model) CopyCurrentColor() tea.Cmd {
	current, ok := m.CurrentColor()
	if !ok {
		return nil
	}
	value := current.Value
	return func() tea.Msg {
		if err := writeClipboard(value); err != nil {
			return ClipboardResultMsg{Value: value, Err: fmt.Errorf("copy %s to clipboard: %w", value, err)}
		}
		return ClipboardResultMsg{Value: value}
	}
}

// Shutdown cancels the rotation timer.
func (m *Model) Shutdown() {
	m.Engine.Stop()
}
