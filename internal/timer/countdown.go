package timer

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/strrl/termclock/internal/clock"
	"github.com/strrl/termclock/pkg/models"
)

// ErrInvalidArgument is returned for a countdown length that is negative or
// too large to represent as a time.Duration.
var ErrInvalidArgument = errors.New("invalid argument")

// MaxCountdownSeconds is the longest countdown NewCountdown accepts.
const MaxCountdownSeconds = math.MaxInt64 / int64(time.Second)

// CountdownOption configures a Countdown.
type CountdownOption func(*Countdown)

// WithCountdownClock sets the clock source. Defaults to clock.Real().
func WithCountdownClock(c clock.Clock) CountdownOption {
	return func(cd *Countdown) { cd.clock = c }
}

// Countdown decrements its remaining time by the real time elapsed between
// ticks.
type Countdown struct {
	clock clock.Clock

	initial  time.Duration
	timeLeft time.Duration
	running  bool

	// lastTick is only meaningful while hasLastTick is true.
	lastTick    time.Duration
	hasLastTick bool

	onFinish []func()
	notified bool
}

// NewCountdown returns a running countdown of the given number of seconds.
func NewCountdown(seconds int, opts ...CountdownOption) (*Countdown, error) {
	if seconds < 0 {
		return nil, fmt.Errorf("countdown seconds must be non-negative, got %d: %w", seconds, ErrInvalidArgument)
	}
	if int64(seconds) > MaxCountdownSeconds {
		return nil, fmt.Errorf("countdown seconds must be at most %d, got %d: %w", MaxCountdownSeconds, seconds, ErrInvalidArgument)
	}
	cd := &Countdown{
		clock:   clock.Real(),
		initial: time.Duration(seconds) * time.Second,
		running: true,
	}
	for _, opt := range opts {
		opt(cd)
	}
	cd.timeLeft = cd.initial
	cd.lastTick = cd.clock.Mono()
	cd.hasLastTick = true
	return cd, nil
}

// OnFinish registers fn to be called once, from the Tick that finishes the
// countdown.
func (cd *Countdown) OnFinish(fn func()) {
	cd.onFinish = append(cd.onFinish, fn)
}

// Tick applies the time elapsed since the previous tick. While paused or
// finished it only moves the baseline forward.
func (cd *Countdown) Tick() {
	now := cd.clock.Mono()
	if cd.running && cd.timeLeft > 0 {
		if cd.hasLastTick {
			cd.timeLeft -= now - cd.lastTick
		}
		if cd.timeLeft < 0 {
			cd.timeLeft = 0
		}
	}
	cd.lastTick = now
	cd.hasLastTick = true

	if cd.timeLeft == 0 && !cd.notified {
		cd.notified = true
		for _, fn := range cd.onFinish {
			fn()
		}
	}
}

// Pause stops the countdown and drops the tick baseline.
func (cd *Countdown) Pause() {
	cd.running = false
	cd.hasLastTick = false
	cd.lastTick = 0
}

// Resume restarts a paused countdown from a fresh baseline. It is a no-op
// if already running.
func (cd *Countdown) Resume() {
	if cd.running {
		return
	}
	cd.running = true
	cd.lastTick = cd.clock.Mono()
	cd.hasLastTick = true
}

// Toggle pauses a running countdown or resumes a paused one.
func (cd *Countdown) Toggle() {
	if cd.running {
		cd.Pause()
	} else {
		cd.Resume()
	}
}

// TimeLeft returns the remaining time, never negative.
func (cd *Countdown) TimeLeft() time.Duration {
	if cd.timeLeft < 0 {
		return 0
	}
	return cd.timeLeft
}

// Initial returns the length the countdown was created with.
func (cd *Countdown) Initial() time.Duration {
	return cd.initial
}

func (cd *Countdown) IsRunning() bool {
	return cd.running
}

func (cd *Countdown) IsFinished() bool {
	return cd.timeLeft <= 0
}

// Progress returns the fraction of time remaining, in [0, 1].
func (cd *Countdown) Progress() float64 {
	if cd.initial <= 0 {
		return 0
	}
	return float64(cd.TimeLeft()) / float64(cd.initial)
}

// Snapshot returns the current state as a value.
func (cd *Countdown) Snapshot() models.CountdownSnapshot {
	return models.CountdownSnapshot{
		Initial:  cd.initial,
		TimeLeft: cd.TimeLeft(),
		Running:  cd.running,
		Finished: cd.IsFinished(),
	}
}
