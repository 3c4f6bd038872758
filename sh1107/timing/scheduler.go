package timing

import "time"

// RenderDelay is the delay between the first redraw request and the
// frame transform, roughly one frame at 60 Hz. Requests arriving while
// a render is armed are coalesced into it.
const RenderDelay = 16667 * time.Microsecond

// Scheduler arms a one-shot callback after a delay. The host guarantees
// exactly one invocation per request; the device never cancels a
// request once made.
type Scheduler interface {
	Schedule(delay time.Duration, fn func())
}

// WallClock schedules on the process clock via time.AfterFunc.
// Callbacks fire on their own goroutine, so a host using it must
// serialize them against bus traffic itself.
type WallClock struct{}

func (WallClock) Schedule(delay time.Duration, fn func()) {
	time.AfterFunc(delay, fn)
}

// Manual queues callbacks for explicit firing. The emulator loop and
// the tests use it to keep all device callbacks on a single goroutine
// and to make render timing deterministic.
type Manual struct {
	pending []func()
}

func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) Schedule(delay time.Duration, fn func()) {
	m.pending = append(m.pending, fn)
}

// Fire invokes every queued callback once, in scheduling order, and
// returns how many fired. Callbacks scheduled while firing are queued
// for the next Fire.
func (m *Manual) Fire() int {
	queued := m.pending
	m.pending = nil
	for _, fn := range queued {
		fn()
	}
	return len(queued)
}

// Pending reports how many callbacks are queued.
func (m *Manual) Pending() int {
	return len(m.pending)
}
