// Package plain drives the timers without taking over the terminal. It
// redraws a single status line with a carriage return and stops when the
// context is cancelled or the quit key arrives.
package plain

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/strrl/termclock/internal/format"
	"github.com/strrl/termclock/internal/timer"
)

// Keys understood on the keys channel. ctrl+c arrives as a byte when the
// terminal is in raw mode.
const (
	KeyToggle = ' '
	KeyReset  = 'r'
	KeyQuit   = 'q'
	KeyCtrlC  = '\x03'
)

// Ticker abstracts time.Ticker so tests can drive the loop.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type realTicker struct{ t *time.Ticker }

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop() { r.t.Stop() }

// NewTicker returns a Ticker backed by time.NewTicker.
func NewTicker(d time.Duration) Ticker {
	return realTicker{t: time.NewTicker(d)}
}

// Stopwatch shows the elapsed time until ctx is done or the quit key is
// read, then stops sw. A nil keys channel disables key handling.
func Stopwatch(ctx context.Context, w io.Writer, sw *timer.Stopwatch, t Ticker, keys <-chan rune) error {
	defer t.Stop()
	sw.Start()

	for {
		status := "running"
		if !sw.IsRunning() {
			status = "stopped"
		}
		fmt.Fprintf(w, "\r%s %-7s ", format.ClockHMS(sw.Elapsed()), status)

		select {
		case <-ctx.Done():
			sw.Stop()
			fmt.Fprint(w, "\r\n")
			return nil
		case <-t.C():
		case k, ok := <-keys:
			if !ok {
				keys = nil
				continue
			}
			switch k {
			case KeyToggle:
				sw.Toggle()
			case KeyReset:
				sw.Reset()
			case KeyQuit, KeyCtrlC:
				sw.Stop()
				fmt.Fprint(w, "\r\n")
				return nil
			}
		}
	}
}

// Countdown ticks cd until it finishes, ctx is done or the quit key is
// read. It reports whether the countdown finished. On finish a bell is
// written to bell unless it is nil.
func Countdown(ctx context.Context, w io.Writer, cd *timer.Countdown, t Ticker, keys <-chan rune, bell io.Writer) (bool, error) {
	defer t.Stop()

	for {
		cd.Tick()
		if cd.IsFinished() {
			fmt.Fprintf(w, "\r%s Time's up!      \r\n", format.Clock(0, false))
			if bell != nil {
				if _, err := io.WriteString(bell, "\a"); err != nil {
					return true, fmt.Errorf("failed to ring bell: %w", err)
				}
			}
			return true, nil
		}

		status := "running"
		if !cd.IsRunning() {
			status = "paused"
		}
		fmt.Fprintf(w, "\r%s %-7s ", format.Clock(cd.TimeLeft(), false), status)

		select {
		case <-ctx.Done():
			fmt.Fprint(w, "\r\n")
			return false, nil
		case <-t.C():
		case k, ok := <-keys:
			if !ok {
				keys = nil
				continue
			}
			switch k {
			case KeyToggle:
				cd.Toggle()
			case KeyQuit, KeyCtrlC:
				fmt.Fprint(w, "\r\n")
				return false, nil
			}
		}
	}
}
