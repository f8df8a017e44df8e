package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorPrimary   = lipgloss.Color("#081e32")
	colorSecondary = lipgloss.Color("#d5b77c")
	colorDanger    = lipgloss.Color("#8b3a3a")
	colorMuted     = lipgloss.Color("238")
	colorPaused    = lipgloss.Color("250")

	colorCalm     = lipgloss.Color("39")
	colorWarn     = lipgloss.Color("220")
	colorCritical = lipgloss.Color("196")
	colorRunning  = lipgloss.Color("42")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSecondary).
			Background(colorPrimary).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	statusStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(colorSecondary)

	doneStyle = lipgloss.NewStyle().
			Bold(true).
			Blink(true).
			Foreground(colorCritical)
)

// cardStyle is the bordered box around the time readout
func cardStyle(border lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1, 4).
		Align(lipgloss.Center)
}

// readoutStyle renders the digits, dimmed when paused
func readoutStyle(color lipgloss.Color, running bool) lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(color)
	if running {
		return s.Bold(true)
	}
	return s.Faint(true)
}
