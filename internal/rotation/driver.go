package rotation

import (
	"context"
	"time"
)

// Timer is the subset of *time.Timer the Driver needs.
type Timer interface {
	C() <-chan time.Time
	Stop() bool
}

// Clock creates timers. RealClock is backed by the time package.
type Clock interface {
	NewTimer(d time.Duration) Timer
}

type realClock struct{}

type realTimer struct{ t *time.Timer }

func (realClock) NewTimer(d time.Duration) Timer { return realTimer{t: time.NewTimer(d)} }

func (r realTimer) C() <-chan time.Time { return r.t.C }
func (r realTimer) Stop() bool          { return r.t.Stop() }

// RealClock returns a Clock using wall-clock timers.
func RealClock() Clock { return realClock{} }

// Driver runs an Engine on a single goroutine against a Clock, outside of
// any UI event loop.
type Driver struct {
	Engine *Engine
	Clock  Clock
	// OnAdvance is called after each advance of the rotation index.
	OnAdvance func(e *Engine)
}

// Run drives the engine until ctx is done, starting from the given lease. The
// pending timer is stopped and the engine cancelled on return.
func (d *Driver) Run(ctx context.Context, lease Lease, armed bool) error {
	clock := d.Clock
	if clock == nil {
		clock = RealClock()
	}

	var timer Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
		d.Engine.Stop()
	}()

	for {
		var fired <-chan time.Time
		if armed {
			if timer == nil {
				timer = clock.NewTimer(lease.Period)
			}
			fired = timer.C()
		}

		select {
		case <-ctx.Done():
			return nil
		case <-fired:
			timer = nil
			lease, armed = d.Engine.Fire(lease.Generation)
			if armed && d.OnAdvance != nil {
				d.OnAdvance(d.Engine)
			}
		}
	}
}
