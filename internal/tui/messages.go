package tui

import (
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Message types driving the timer views
type (
	// TickMsg is sent at the redraw cadence
	TickMsg time.Time

	// lingerDoneMsg ends the "Time's up!" frame
	lingerDoneMsg struct{}
)

// tickCmd schedules the next redraw
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// lingerCmd keeps the final frame on screen for d before quitting
func lingerCmd(d time.Duration) tea.Cmd {
	if d <= 0 {
		return func() tea.Msg { return lingerDoneMsg{} }
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return lingerDoneMsg{}
	})
}

// bellCmd rings the terminal bell on w
func bellCmd(w io.Writer) tea.Cmd {
	return func() tea.Msg {
		fmt.Fprint(w, "\a")
		return nil
	}
}
