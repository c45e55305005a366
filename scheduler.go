package snapfloat

import (
	"sort"
	"time"
)

// Scheduler runs deferred callbacks. Every callback must run on the
// goroutine that drives the controller.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a pending callback created by a Scheduler.
type Timer interface {
	// Stop prevents the callback from running. It reports whether the
	// call stopped the timer, false meaning it already fired or was stopped.
	Stop() bool
}

// FrameClock is a Scheduler driven by the UI loop. Instead of spawning
// goroutines it keeps a list of deadlines which fire when Advance is
// called with a time past them, typically once per frame with the
// frame's animation time.
type FrameClock struct {
	now    time.Time
	seq    uint64
	timers []*frameTimer
}

type frameTimer struct {
	clock *FrameClock
	at    time.Time
	seq   uint64
	f     func()
	done  bool
}

var _ Scheduler = (*FrameClock)(nil)

// NewFrameClock returns a clock whose current time is now.
func NewFrameClock(now time.Time) *FrameClock {
	return &FrameClock{now: now}
}

// Now returns the time of the last Advance.
func (c *FrameClock) Now() time.Time {
	return c.now
}

// AfterFunc schedules f to run d after the current clock time.
func (c *FrameClock) AfterFunc(d time.Duration, f func()) Timer {
	c.seq++
	t := &frameTimer{clock: c, at: c.now.Add(d), seq: c.seq, f: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock to now and runs every timer due at or before it,
// in deadline order. Timers sharing a deadline run in scheduling order.
// Callbacks may schedule or stop other timers; new timers already due run
// in the same call. Advance never moves the clock backwards.
func (c *FrameClock) Advance(now time.Time) {
	if now.After(c.now) {
		c.now = now
	}
	for {
		t := c.earliest()
		if t == nil || t.at.After(c.now) {
			return
		}
		t.done = true
		c.remove(t)
		t.f()
	}
}

// Next returns the earliest pending deadline.
func (c *FrameClock) Next() (time.Time, bool) {
	t := c.earliest()
	if t == nil {
		return time.Time{}, false
	}
	return t.at, true
}

// Pending returns the number of timers waiting to fire.
func (c *FrameClock) Pending() int {
	return len(c.timers)
}

func (c *FrameClock) earliest() *frameTimer {
	if len(c.timers) == 0 {
		return nil
	}
	sort.SliceStable(c.timers, func(i, j int) bool {
		a, b := c.timers[i], c.timers[j]
		if a.at.Equal(b.at) {
			return a.seq < b.seq
		}
		return a.at.Before(b.at)
	})
	return c.timers[0]
}

func (c *FrameClock) remove(t *frameTimer) {
	for i, pending := range c.timers {
		if pending == t {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return
		}
	}
}

func (t *frameTimer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	t.clock.remove(t)
	return true
}
