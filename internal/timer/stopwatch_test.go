package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strrl/termclock/internal/clock"
)

var epoch = time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

func newTestStopwatch(opts ...StopwatchOption) (*Stopwatch, *clock.Fake) {
	fc := clock.NewFake(epoch)
	opts = append([]StopwatchOption{WithStopwatchClock(fc)}, opts...)
	return NewStopwatch(opts...), fc
}

func TestStopwatchInitialState(t *testing.T) {
	s, _ := newTestStopwatch()

	assert.False(t, s.IsRunning())
	assert.Zero(t, s.Elapsed())
	assert.Empty(t, s.Runs())
}

func TestStopwatchTwoRuns(t *testing.T) {
	s, fc := newTestStopwatch()

	s.Start()
	fc.Advance(10 * time.Second)
	s.Stop()

	assert.Equal(t, 10*time.Second, s.Elapsed())
	runs := s.Runs()
	require.Len(t, runs, 1)
	assert.Equal(t, 10*time.Second, runs[0].Duration)
	assert.Equal(t, epoch, runs[0].Start)
	assert.Equal(t, epoch.Add(10*time.Second), runs[0].End)

	fc.Advance(5 * time.Second)
	s.Start()
	fc.Advance(3 * time.Second)
	s.Stop()

	assert.Equal(t, 13*time.Second, s.Elapsed())
	runs = s.Runs()
	require.Len(t, runs, 2)
	assert.Equal(t, 10*time.Second, runs[0].Duration)
	assert.Equal(t, 3*time.Second, runs[1].Duration)
	assert.Equal(t, epoch.Add(15*time.Second), runs[1].Start)
}

func TestStopwatchElapsedWhileRunning(t *testing.T) {
	s, fc := newTestStopwatch()

	s.Start()
	fc.Advance(2 * time.Second)
	s.Stop()
	s.Start()
	fc.Advance(1500 * time.Millisecond)

	assert.True(t, s.IsRunning())
	assert.Equal(t, 3500*time.Millisecond, s.Elapsed())
	assert.Len(t, s.Runs(), 1, "open interval must not be recorded")
}

func TestStopwatchStartIsIdempotent(t *testing.T) {
	s, fc := newTestStopwatch()

	s.Start()
	fc.Advance(4 * time.Second)
	s.Start()
	fc.Advance(1 * time.Second)
	s.Stop()

	runs := s.Runs()
	require.Len(t, runs, 1)
	assert.Equal(t, 5*time.Second, runs[0].Duration)
	assert.Equal(t, epoch, runs[0].Start)
}

func TestStopwatchStopIsIdempotent(t *testing.T) {
	s, fc := newTestStopwatch()

	s.Stop()
	assert.Empty(t, s.Runs())

	s.Start()
	fc.Advance(time.Second)
	s.Stop()
	fc.Advance(time.Second)
	s.Stop()

	assert.Len(t, s.Runs(), 1)
	assert.Equal(t, time.Second, s.Elapsed())
}

func TestStopwatchRunsCountMatchesPairs(t *testing.T) {
	s, fc := newTestStopwatch()

	var want time.Duration
	for i := 1; i <= 7; i++ {
		s.Start()
		d := time.Duration(i) * 250 * time.Millisecond
		fc.Advance(d)
		want += d
		s.Stop()
		fc.Advance(time.Second)
	}
	s.Start()

	assert.Len(t, s.Runs(), 7)
	assert.Equal(t, want, s.Elapsed())
}

func TestStopwatchToggle(t *testing.T) {
	s, fc := newTestStopwatch()

	s.Toggle()
	assert.True(t, s.IsRunning())
	fc.Advance(2 * time.Second)
	s.Toggle()
	assert.False(t, s.IsRunning())
	assert.Len(t, s.Runs(), 1)
	assert.Equal(t, 2*time.Second, s.Elapsed())
}

func TestStopwatchResetWhileStopped(t *testing.T) {
	s, fc := newTestStopwatch()

	s.Start()
	fc.Advance(6 * time.Second)
	s.Stop()
	s.Reset()

	assert.Zero(t, s.Elapsed())
	assert.False(t, s.IsRunning())
	assert.Len(t, s.Runs(), 1, "history survives reset")
}

func TestStopwatchResetWhileRunningFinalizes(t *testing.T) {
	s, fc := newTestStopwatch()

	s.Start()
	fc.Advance(6 * time.Second)
	s.Stop()
	s.Start()
	fc.Advance(4 * time.Second)
	s.Reset()

	assert.Zero(t, s.Elapsed())
	assert.False(t, s.IsRunning())
	runs := s.Runs()
	require.Len(t, runs, 2)
	assert.Equal(t, 4*time.Second, runs[1].Duration)
	assert.Equal(t, 10*time.Second, s.Total())
}

func TestStopwatchResetWhileRunningDiscards(t *testing.T) {
	s, fc := newTestStopwatch(WithResetPolicy(ResetDiscard))

	s.Start()
	fc.Advance(4 * time.Second)
	s.Reset()

	assert.Zero(t, s.Elapsed())
	assert.False(t, s.IsRunning())
	assert.Empty(t, s.Runs())
}

func TestStopwatchAccumulatesAfterReset(t *testing.T) {
	s, fc := newTestStopwatch()

	s.Start()
	fc.Advance(30 * time.Second)
	s.Reset()
	s.Start()
	fc.Advance(5 * time.Second)
	s.Stop()

	assert.Equal(t, 5*time.Second, s.Elapsed())
	assert.Equal(t, 35*time.Second, s.Total())
}

func TestStopwatchIgnoresWallClockJumps(t *testing.T) {
	s, fc := newTestStopwatch()

	s.Start()
	fc.Advance(3 * time.Second)
	fc.AdvanceWall(-time.Hour)
	fc.Advance(2 * time.Second)
	s.Stop()

	runs := s.Runs()
	require.Len(t, runs, 1)
	assert.Equal(t, 5*time.Second, runs[0].Duration)
	assert.Equal(t, 5*time.Second, s.Elapsed())
	assert.True(t, runs[0].End.Before(runs[0].Start), "wall timestamps follow the adjusted clock")
}

func TestStopwatchRunsReturnsCopy(t *testing.T) {
	s, fc := newTestStopwatch()

	s.Start()
	fc.Advance(time.Second)
	s.Stop()

	runs := s.Runs()
	runs[0].Duration = time.Hour
	assert.Equal(t, time.Second, s.Runs()[0].Duration)
}

func TestStopwatchOnChange(t *testing.T) {
	s, fc := newTestStopwatch()

	var events []Event
	s.OnChange(func(e Event, _ *Stopwatch) { events = append(events, e) })

	s.Start()
	s.Start()
	fc.Advance(time.Second)
	s.Stop()
	s.Stop()
	s.Reset()

	assert.Equal(t, []Event{EventStarted, EventStopped, EventReset}, events)
}

func TestStopwatchSnapshot(t *testing.T) {
	s, fc := newTestStopwatch()

	s.Start()
	fc.Advance(1200 * time.Millisecond)
	snap := s.Snapshot()

	assert.True(t, snap.Running)
	assert.Equal(t, 1200*time.Millisecond, snap.Elapsed)
	assert.Empty(t, snap.Runs)
}

func TestResetPolicyString(t *testing.T) {
	assert.Equal(t, "finalize", ResetFinalize.String())
	assert.Equal(t, "discard", ResetDiscard.String())
	assert.Equal(t, "unknown", ResetPolicy(9).String())
}
