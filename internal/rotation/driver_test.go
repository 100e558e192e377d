package rotation

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	timers chan *fakeTimer
}

type fakeTimer struct {
	d       time.Duration
	c       chan time.Time
	stopped atomic.Bool
}

func newFakeClock() *fakeClock {
	return &fakeClock{timers: make(chan *fakeTimer)}
}

func (f *fakeClock) NewTimer(d time.Duration) Timer {
	t := &fakeTimer{d: d, c: make(chan time.Time, 1)}
	f.timers <- t
	return t
}

func (t *fakeTimer) C() <-chan time.Time { return t.c }
func (t *fakeTimer) Stop() bool          { return !t.stopped.Swap(true) }
func (t *fakeTimer) fire()               { t.c <- time.Time{} }

func nextTimer(t *testing.T, clock *fakeClock) *fakeTimer {
	t.Helper()
	select {
	case tm := <-clock.timers:
		return tm
	case <-time.After(2 * time.Second):
		t.Fatal("driver did not arm a timer")
		return nil
	}
}

func TestDriver_RotatesAndCleansUp(t *testing.T) {
	const p = 1500 * time.Millisecond
	engine, lease, ok := New([]int{3, 1, 2}, p, false)
	require.True(t, ok)

	clock := newFakeClock()
	advanced := make(chan int, 4)
	d := &Driver{
		Engine:    engine,
		Clock:     clock,
		OnAdvance: func(e *Engine) { advanced <- e.Index() },
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx, lease, ok) }()

	for _, want := range []int{1, 2, 0} {
		tm := nextTimer(t, clock)
		assert.Equal(t, p, tm.d)
		tm.fire()
		assert.Equal(t, want, <-advanced)
	}

	pending := nextTimer(t, clock)
	cancel()
	require.NoError(t, <-done)

	assert.True(t, pending.stopped.Load(), "pending timer must be stopped on exit")
	assert.False(t, engine.Running())
}

func TestDriver_StoppedEngineWaitsForCancel(t *testing.T) {
	engine, lease, ok := New([]int{1, 2}, time.Second, true)
	require.False(t, ok)

	d := &Driver{Engine: engine, Clock: newFakeClock()}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx, lease, ok) }()

	cancel()
	assert.NoError(t, <-done)
}
