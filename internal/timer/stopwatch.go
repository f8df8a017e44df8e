package timer

import (
	"time"

	"github.com/strrl/termclock/internal/clock"
	"github.com/strrl/termclock/pkg/models"
)

// ResetPolicy controls what Reset does with an interval that is still open.
type ResetPolicy int

const (
	// ResetFinalize records the open interval as a final run before resetting.
	ResetFinalize ResetPolicy = iota

	// ResetDiscard drops the open interval without recording it.
	ResetDiscard
)

// String returns the config name of the policy.
func (p ResetPolicy) String() string {
	switch p {
	case ResetFinalize:
		return "finalize"
	case ResetDiscard:
		return "discard"
	default:
		return "unknown"
	}
}

// Event identifies a stopwatch state transition.
type Event int

const (
	EventStarted Event = iota + 1
	EventStopped
	EventReset
)

// String returns a human-readable event name.
func (e Event) String() string {
	switch e {
	case EventStarted:
		return "started"
	case EventStopped:
		return "stopped"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// StopwatchOption configures a Stopwatch.
type StopwatchOption func(*Stopwatch)

// WithStopwatchClock sets the clock source. Defaults to clock.Real().
func WithStopwatchClock(c clock.Clock) StopwatchOption {
	return func(s *Stopwatch) { s.clock = c }
}

// WithResetPolicy sets the reset policy. Defaults to ResetFinalize.
func WithResetPolicy(p ResetPolicy) StopwatchOption {
	return func(s *Stopwatch) { s.resetPolicy = p }
}

// Stopwatch accumulates running time over start/stop cycles.
type Stopwatch struct {
	clock       clock.Clock
	resetPolicy ResetPolicy

	accumulated time.Duration

	// runningSince is only meaningful while running is true.
	runningSince    time.Duration
	running         bool
	currentRunStart time.Time

	runs     []models.Run
	onChange []func(Event, *Stopwatch)
}

// NewStopwatch returns a stopped Stopwatch with no runs.
func NewStopwatch(opts ...StopwatchOption) *Stopwatch {
	s := &Stopwatch{
		clock:       clock.Real(),
		resetPolicy: ResetFinalize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnChange registers fn to be called after every state transition.
// Calls that turn out to be no-ops do not notify.
func (s *Stopwatch) OnChange(fn func(Event, *Stopwatch)) {
	s.onChange = append(s.onChange, fn)
}

func (s *Stopwatch) notify(e Event) {
	for _, fn := range s.onChange {
		fn(e, s)
	}
}

// Start begins a new interval. It is a no-op if already running.
func (s *Stopwatch) Start() {
	if s.running {
		return
	}
	s.runningSince = s.clock.Mono()
	s.currentRunStart = s.clock.Wall()
	s.running = true
	s.notify(EventStarted)
}

// Stop closes the current interval and records it as a run. It is a no-op
// if not running.
func (s *Stopwatch) Stop() {
	if !s.stop() {
		return
	}
	s.notify(EventStopped)
}

func (s *Stopwatch) stop() bool {
	if !s.running {
		return false
	}
	delta := s.clock.Mono() - s.runningSince
	s.accumulated += delta
	s.runs = append(s.runs, models.Run{
		Start:    s.currentRunStart,
		End:      s.clock.Wall(),
		Duration: delta,
	})
	s.clearOpen()
	return true
}

func (s *Stopwatch) clearOpen() {
	s.running = false
	s.runningSince = 0
	s.currentRunStart = time.Time{}
}

// Reset zeroes the elapsed time and stops the stopwatch. An open interval
// is handled according to the reset policy. The run history is kept.
func (s *Stopwatch) Reset() {
	if s.running && s.resetPolicy == ResetFinalize {
		s.stop()
	}
	s.clearOpen()
	s.accumulated = 0
	s.notify(EventReset)
}

// Toggle stops a running stopwatch or starts a stopped one.
func (s *Stopwatch) Toggle() {
	if s.running {
		s.Stop()
	} else {
		s.Start()
	}
}

// Elapsed returns the running time since the last reset, including the
// open interval.
func (s *Stopwatch) Elapsed() time.Duration {
	if s.running {
		return s.accumulated + (s.clock.Mono() - s.runningSince)
	}
	return s.accumulated
}

// Total returns the duration of every recorded run plus the open interval.
// Unlike Elapsed it is not affected by Reset.
func (s *Stopwatch) Total() time.Duration {
	var total time.Duration
	for _, r := range s.runs {
		total += r.Duration
	}
	if s.running {
		total += s.clock.Mono() - s.runningSince
	}
	return total
}

func (s *Stopwatch) IsRunning() bool {
	return s.running
}

// Runs returns a copy of the completed runs in chronological order.
func (s *Stopwatch) Runs() []models.Run {
	out := make([]models.Run, len(s.runs))
	copy(out, s.runs)
	return out
}

// Snapshot returns the current state as a value.
func (s *Stopwatch) Snapshot() models.StopwatchSnapshot {
	return models.StopwatchSnapshot{
		Elapsed: s.Elapsed(),
		Running: s.running,
		Runs:    s.Runs(),
	}
}
