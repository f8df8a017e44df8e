package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/strrl/termclock/internal/format"
	"github.com/strrl/termclock/internal/timer"
)

type stopwatchModel struct {
	sw       *timer.Stopwatch
	project  string
	interval time.Duration
	keys     keyMap
	help     help.Model
	spinner  *Spinner
	width    int
	height   int
	quitting bool
}

func newStopwatchModel(sw *timer.Stopwatch, project string, interval time.Duration) stopwatchModel {
	return stopwatchModel{
		sw:       sw,
		project:  project,
		interval: interval,
		keys:     stopwatchKeys(),
		help:     help.New(),
		spinner:  NewSpinner(),
	}
}

func (m stopwatchModel) Init() tea.Cmd {
	return tickCmd(m.interval)
}

func (m stopwatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			m.sw.Toggle()
		case key.Matches(msg, m.keys.Reset):
			m.sw.Reset()
		}

	case TickMsg:
		if m.sw.IsRunning() {
			m.spinner.Next()
		}
		return m, tickCmd(m.interval)
	}

	return m, nil
}

func (m stopwatchModel) View() string {
	if m.quitting {
		return ""
	}

	snap := m.sw.Snapshot()

	border := colorPaused
	status := "Stopped"
	if snap.Running {
		border = colorRunning
		status = m.spinner.View() + " Running"
	}

	readout := readoutStyle(colorRunning, snap.Running).Render(format.ClockHMS(snap.Elapsed))
	card := cardStyle(border).Render(lipgloss.JoinVertical(lipgloss.Center,
		readout,
		labelStyle.Render("HH:MM:SS"),
		"",
		statusStyle.Render(status),
		labelStyle.Render(fmt.Sprintf("%d runs recorded", len(snap.Runs))),
	))

	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("Stopwatch · "+m.project),
		card,
		m.help.View(m.keys),
	)
	return place(m.width, m.height, body)
}
