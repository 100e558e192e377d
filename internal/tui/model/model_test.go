package model

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"colorcycle/internal/palette"
	"colorcycle/internal/selection"
	"colorcycle/internal/speed"
	"colorcycle/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logging.InitForCLI(logging.LevelError, &bytes.Buffer{})
}

func newTestModel(t *testing.T, ids ...int) *Model {
	t.Helper()
	cfg := TUIConfig{}
	if len(ids) > 0 {
		sel, err := selection.New(ids)
		require.NoError(t, err)
		cfg.Selection = sel
	}
	return InitialModel(cfg, nil)
}

func TestInitialModel_Defaults(t *testing.T) {
	m := newTestModel(t)

	assert.Equal(t, ModeMainDashboard, m.CurrentAppMode)
	assert.Equal(t, []int{1, 2}, m.Selection.IDs())
	assert.Equal(t, speed.Default, m.Speed)
	assert.True(t, m.Engine.Running())
	assert.False(t, m.Engine.Paused())
	assert.Equal(t, 0, m.Engine.Index())
	assert.Equal(t, "4.0s", m.PeriodText())
	assert.NotNil(t, m.Init())
}

func TestInitialModel_StartsPaused(t *testing.T) {
	m := InitialModel(TUIConfig{Paused: true, Speed: 250}, nil)

	assert.True(t, m.Engine.Paused())
	assert.False(t, m.Engine.Running())
	assert.Equal(t, speed.Max, m.Speed, "speed is clamped")
}

func TestToggleColor_ResetsIndexAndRestarts(t *testing.T) {
	m := newTestModel(t, 1, 2, 3)
	lease := currentLease(t, m)
	m.HandleTick(TickMsg{Generation: lease})
	m.HandleTick(TickMsg{Generation: lease})
	require.Equal(t, 2, m.Engine.Index())

	cmd := m.ToggleColor(5)
	assert.NotNil(t, cmd, "a successful toggle re-arms the timer")
	assert.Equal(t, []int{1, 2, 3, 5}, m.Selection.IDs())
	assert.Equal(t, 0, m.Engine.Index())

	// The timer armed before the toggle no longer advances the rotation.
	assert.Nil(t, m.HandleTick(TickMsg{Generation: lease}))
	assert.Equal(t, 0, m.Engine.Index())
}

func TestToggleColor_RejectedAtFloor(t *testing.T) {
	m := newTestModel(t)
	lease := currentLease(t, m)

	assert.Nil(t, m.ToggleColor(1))
	assert.Equal(t, []int{1, 2}, m.Selection.IDs())

	assert.NotNil(t, m.HandleTick(TickMsg{Generation: lease}), "rejected toggle keeps the running timer")
	assert.Equal(t, 1, m.Engine.Index())
}

func TestToggleFocused(t *testing.T) {
	m := newTestModel(t)
	m.MoveCursor(3)

	assert.NotNil(t, m.ToggleFocused())
	assert.True(t, m.Selection.Contains(4))
}

func TestTogglePause(t *testing.T) {
	m := newTestModel(t, 1, 2, 3)
	lease := currentLease(t, m)
	m.HandleTick(TickMsg{Generation: lease})
	require.Equal(t, 1, m.Engine.Index())

	assert.Nil(t, m.TogglePause(), "pausing arms nothing")
	assert.True(t, m.Engine.Paused())
	assert.Nil(t, m.HandleTick(TickMsg{Generation: lease}))
	assert.Equal(t, 1, m.Engine.Index())

	assert.NotNil(t, m.TogglePause())
	assert.False(t, m.Engine.Paused())
	assert.Equal(t, 1, m.Engine.Index())
}

func TestSetSpeed(t *testing.T) {
	m := newTestModel(t)
	lease := currentLease(t, m)

	assert.Nil(t, m.SetSpeed(speed.Default), "unchanged speed does not restart")
	assert.NotNil(t, m.SetSpeed(100))
	assert.Equal(t, time.Second, m.Engine.Period())
	assert.Equal(t, "1.0s", m.PeriodText())
	assert.Nil(t, m.HandleTick(TickMsg{Generation: lease}), "old timer was cancelled")

	m.AdjustSpeed(-99)
	assert.Equal(t, speed.Min, m.Speed)
	assert.Equal(t, 7*time.Second, m.Engine.Period())

	assert.Nil(t, m.AdjustSpeed(-1), "already at the slow end")
}

func TestSetSpeedWhilePaused(t *testing.T) {
	m := newTestModel(t)
	m.TogglePause()

	assert.Nil(t, m.SetSpeed(80), "a paused engine arms no timer")
	assert.Equal(t, speed.Period(80), m.Engine.Period())
}

func TestCurrentColor(t *testing.T) {
	m := newTestModel(t, 3, 1)
	current, ok := m.CurrentColor()
	require.True(t, ok)
	assert.Equal(t, 3, current.ID)

	m.HandleTick(TickMsg{Generation: currentLease(t, m)})
	current, ok = m.CurrentColor()
	require.True(t, ok)
	assert.Equal(t, 1, current.ID)
}

func TestCurrentColor_LabelsFromTable(t *testing.T) {
	m := InitialModel(TUIConfig{Table: palette.NewTable(map[int]string{1: "red"})}, nil)
	current, ok := m.CurrentColor()
	require.True(t, ok)
	assert.Equal(t, "red", current.Label)
}

func TestMoveCursorWraps(t *testing.T) {
	m := newTestModel(t)

	m.MoveCursor(-1)
	assert.Equal(t, palette.Size-1, m.Cursor)
	m.MoveCursor(2)
	assert.Equal(t, 1, m.Cursor)
	m.MoveCursor(4 * palette.Size)
	assert.Equal(t, 1, m.Cursor)
}

func TestCopyCurrentColor(t *testing.T) {
	original := writeClipboard
	defer func() { writeClipboard = original }()

	var copied string
	writeClipboard = func(s string) error { copied = s; return nil }

	m := newTestModel(t, 2, 3)
	msg := m.CopyCurrentColor()()
	assert.Equal(t, ClipboardResultMsg{Value: "#3b82f6"}, msg)
	assert.Equal(t, "#3b82f6", copied)

	writeClipboard = func(string) error { return errors.New("no clipboard") }
	result, ok := m.CopyCurrentColor()().(ClipboardResultMsg)
	require.True(t, ok)
	assert.ErrorContains(t, result.Err, "no clipboard")
}

func TestFloorWarningAndPauseEnabled(t *testing.T) {
	m := newTestModel(t)
	assert.False(t, m.ShowFloorWarning())
	assert.True(t, m.PauseEnabled())
}

func TestSetStatusMessage(t *testing.T) {
	m := newTestModel(t)

	first := m.SetStatusMessage("copied", StatusBarSuccess, time.Millisecond)
	cancel := m.StatusBarClearCancel
	second := m.SetStatusMessage("again", StatusBarInfo, time.Millisecond)

	assert.Equal(t, "again", m.StatusBarMessage)
	assert.Nil(t, first(), "superseded clear is cancelled")
	assert.Equal(t, ClearStatusBarMsg{}, second())

	select {
	case <-cancel:
	default:
		t.Fatal("previous clear channel should be closed")
	}

	m.ClearStatusMessage()
	assert.Empty(t, m.StatusBarMessage)
}

func TestShutdown(t *testing.T) {
	m := newTestModel(t)
	lease := currentLease(t, m)

	m.Shutdown()
	m.Shutdown()
	assert.False(t, m.Engine.Running())
	assert.Nil(t, m.HandleTick(TickMsg{Generation: lease}))
}

func TestListenForLogEntriesCmd(t *testing.T) {
	assert.Nil(t, ListenForLogEntriesCmd(nil))

	ch := make(chan logging.LogEntry, 1)
	ch <- logging.LogEntry{Message: "hello"}
	msg := ListenForLogEntriesCmd(ch)()
	assert.Equal(t, NewLogEntryMsg{Entry: logging.LogEntry{Message: "hello"}}, msg)

	close(ch)
	assert.Nil(t, ListenForLogEntriesCmd(ch)())
}

func TestAddRawLineToActivityLog(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < MaxActivityLogLines+5; i++ {
		AddRawLineToActivityLog(m, "line")
	}
	assert.Len(t, m.ActivityLog, MaxActivityLogLines)
	assert.True(t, m.ActivityLogDirty)
}

// currentLease returns the generation of the armed rotation timer.
func currentLease(t *testing.T, m *Model) uint64 {
	t.Helper()
	require.True(t, m.Engine.Running())
	return m.Engine.Generation()
}
