// Package clock provides the two time sources the timers need.
//
// Mono is used for every duration computation and is immune to wall clock
// adjustments (NTP corrections, DST, manual changes). Wall is only ever
// recorded for display. The two are never combined in one computation.
package clock

import (
	"sync"
	"time"
)

// Clock provides a monotonic reading and a wall clock reading.
type Clock interface {
	// Mono returns the monotonic time elapsed since an arbitrary,
	// process-local origin.
	Mono() time.Duration

	// Wall returns the local wall clock time, stripped of its
	// monotonic reading.
	Wall() time.Time
}

type realClock struct {
	origin time.Time
}

var (
	realOnce sync.Once
	realInst *realClock
)

// Real returns the system clock.
func Real() Clock {
	realOnce.Do(func() {
		realInst = &realClock{origin: time.Now()}
	})
	return realInst
}

func (c *realClock) Mono() time.Duration {
	// time.Since uses the monotonic reading carried by origin.
	return time.Since(c.origin)
}

func (c *realClock) Wall() time.Time {
	return time.Now().Round(0).Local()
}

// Fake is a manually driven Clock for tests.
type Fake struct {
	mu   sync.Mutex
	mono time.Duration
	wall time.Time
}

// NewFake returns a Fake whose wall clock starts at start.
func NewFake(start time.Time) *Fake {
	return &Fake{wall: start.Round(0)}
}

func (f *Fake) Mono() time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mono
}

func (f *Fake) Wall() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.wall
}

// Advance moves both clocks forward by d.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mono += d
	f.wall = f.wall.Add(d)
}

// AdvanceWall moves only the wall clock, as a system clock adjustment
// would. d may be negative.
func (f *Fake) AdvanceWall(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.wall = f.wall.Add(d)
}
