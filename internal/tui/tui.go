package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/strrl/termclock/internal/timer"
)

// RunStopwatch displays the stopwatch until the user quits. The stopwatch
// is left in whatever state the user put it in.
func RunStopwatch(sw *timer.Stopwatch, project string, interval time.Duration) error {
	p := tea.NewProgram(
		newStopwatchModel(sw, project, interval),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

// RunCountdown displays the countdown until it finishes or the user quits.
// It reports whether the countdown finished.
func RunCountdown(cd *timer.Countdown, opts CountdownOptions) (bool, error) {
	p := tea.NewProgram(
		newCountdownModel(cd, opts),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m := finalModel.(countdownModel)
	return m.announced, nil
}
