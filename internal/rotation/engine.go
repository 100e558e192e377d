// Package rotation implements the round-robin color rotation state machine.
//
// The engine owns the rotation index and the pause flag and decides when a
// periodic timer must be running. It never sleeps itself: callers schedule
// the Lease it hands out (a tea.Tick inside the TUI, a time.Timer in the
// headless Driver) and report each firing back through Fire. Every re-arm or
// cancellation bumps the lease generation, so a firing from a superseded
// timer is recognised as stale and dropped.
package rotation

import (
	"slices"
	"time"
)

// MinRunning is the smallest active count that keeps the engine running.
const MinRunning = 2

// Lease identifies one armed periodic timer.
type Lease struct {
	Generation uint64
	Period     time.Duration
}

// Engine is the rotation state machine. The zero value is a stopped engine
// with no colors.
type Engine struct {
	ids    []int
	index  int
	paused bool
	period time.Duration

	generation uint64
	armed      bool
}

// New returns an engine for ids rotating every period, together with the
// lease of its first timer when it starts out running.
func New(ids []int, period time.Duration, paused bool) (*Engine, Lease, bool) {
	e := &Engine{
		ids:    slices.Clone(ids),
		period: period,
		paused: paused,
	}
	lease, ok := e.rearm()
	return e, lease, ok
}

// Sync applies the latest active ids and period. A change in the id
// sequence resets the index to zero. Any change re-arms the timer from a
// fresh full interval; the returned lease must then be scheduled when ok is
// true. Without a change the outstanding lease stays valid and ok is false.
func (e *Engine) Sync(ids []int, period time.Duration) (Lease, bool) {
	changed := false
	if !slices.Equal(e.ids, ids) {
		e.ids = slices.Clone(ids)
		e.index = 0
		changed = true
	}
	if period != e.period {
		e.period = period
		changed = true
	}
	if !changed {
		return Lease{}, false
	}
	return e.rearm()
}

// TogglePause flips the pause flag. The index is kept, so resuming continues
// from the color shown when paused.
func (e *Engine) TogglePause() (Lease, bool) {
	return e.SetPaused(!e.paused)
}

// SetPaused sets the pause flag, re-arming when it changes.
func (e *Engine) SetPaused(paused bool) (Lease, bool) {
	if paused == e.paused {
		return Lease{}, false
	}
	e.paused = paused
	return e.rearm()
}

// Fire handles a timer firing for the lease with the given generation. A
// stale or cancelled lease is ignored. Otherwise the index advances and the
// same lease is returned for the next interval.
func (e *Engine) Fire(generation uint64) (Lease, bool) {
	if !e.armed || generation != e.generation {
		return Lease{}, false
	}
	e.index = (e.index + 1) % len(e.ids)
	return e.lease(), true
}

// Stop cancels the outstanding timer. Stopping twice is a no-op.
func (e *Engine) Stop() {
	if !e.armed {
		return
	}
	e.generation++
	e.armed = false
}

// Running reports whether a timer is armed.
func (e *Engine) Running() bool { return e.armed }

// Paused reports the pause flag.
func (e *Engine) Paused() bool { return e.paused }

// Index returns the rotation index.
func (e *Engine) Index() int { return e.index }

// Count returns the number of colors being rotated.
func (e *Engine) Count() int { return len(e.ids) }

// Generation returns the generation of the most recent lease.
func (e *Engine) Generation() uint64 { return e.generation }

// Period returns the current rotation period.
func (e *Engine) Period() time.Duration { return e.period }

// Current returns the id at the rotation index. ok is false when there are
// no colors.
func (e *Engine) Current() (id int, ok bool) {
	if len(e.ids) == 0 {
		return 0, false
	}
	return e.ids[e.index], true
}

func (e *Engine) runnable() bool {
	return !e.paused && len(e.ids) >= MinRunning && e.period > 0
}

// rearm invalidates any outstanding lease and arms a new one when the engine
// can run.
func (e *Engine) rearm() (Lease, bool) {
	e.generation++
	e.armed = e.runnable()
	if !e.armed {
		return Lease{}, false
	}
	return e.lease(), true
}

func (e *Engine) lease() Lease {
	return Lease{Generation: e.generation, Period: e.period}
}
