package logging

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{" error ", LevelError, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInitForCLI_WritesSlogText(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelInfo, &buf)

	Debug("Test", "hidden %d", 1)
	Info("Test", "color %s", "#ef4444")
	Error("Test", errors.New("boom"), "failed")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `msg="color #ef4444"`)
	assert.Contains(t, out, "subsystem=Test")
	assert.Contains(t, out, "error=boom")
}

func TestInitForTUI_DeliversEntries(t *testing.T) {
	ch := InitForTUI(LevelInfo)
	defer InitForCLI(LevelInfo, &bytes.Buffer{})

	Debug("Rotation", "filtered")
	Warn("Rotation", "rejected toggle of %d", 1)

	select {
	case entry := <-ch:
		assert.Equal(t, LevelWarn, entry.Level)
		assert.Equal(t, "Rotation", entry.Subsystem)
		assert.Equal(t, "rejected toggle of 1", entry.Message)
	case <-time.After(time.Second):
		t.Fatal("no entry delivered")
	}
	assert.Len(t, ch, 0)
}

func TestInitForTUI_FullChannelDrops(t *testing.T) {
	ch := InitForTUI(LevelDebug)
	defer InitForCLI(LevelInfo, &bytes.Buffer{})

	before := Dropped()
	for i := 0; i < tuiChannelBufferSize+3; i++ {
		Debug("Flood", "entry %d", i)
	}

	assert.Len(t, ch, tuiChannelBufferSize)
	assert.Equal(t, before+3, Dropped())
}

func TestCloseTUIChannel(t *testing.T) {
	ch := InitForTUI(LevelInfo)
	CloseTUIChannel()
	CloseTUIChannel()

	_, open := <-ch
	assert.False(t, open)
	defer InitForCLI(LevelInfo, &bytes.Buffer{})
}

func TestLogEntryString(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 6_000_000, time.UTC)
	entry := LogEntry{Timestamp: ts, Level: LevelError, Subsystem: "TUI", Message: "copy failed", Err: errors.New("no clipboard")}

	assert.Equal(t, "03:04:05.006 [ERROR] [TUI] copy failed -- Error: no clipboard", entry.String())
}
