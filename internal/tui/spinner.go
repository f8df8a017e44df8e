package tui

import (
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Spinner marks a running stopwatch
type Spinner struct {
	frames []string
	frame  int
}

// NewSpinner creates a new spinner
func NewSpinner() *Spinner {
	return &Spinner{
		frames: []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"},
		frame:  0,
	}
}

// Next advances the spinner to the next frame
func (s *Spinner) Next() {
	s.frame = (s.frame + 1) % len(s.frames)
}

// View returns the current spinner frame
func (s *Spinner) View() string {
	return s.frames[s.frame]
}

// renderProgressBar draws the fraction of a countdown still remaining.
// fraction is clamped to [0, 1].
func renderProgressBar(fraction float64, width int, color lipgloss.Color) string {
	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithoutPercentage(),
		progress.WithWidth(max(width, 0)),
	)
	bar.EmptyColor = string(colorMuted)
	return bar.ViewAs(math.Max(0, math.Min(1, fraction)))
}

// place centers content in a width x height area. Before the first
// WindowSizeMsg the content is returned as is.
func place(width, height int, content string) string {
	if width <= 0 || height <= 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
