package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/strrl/termclock/internal/format"
	"github.com/strrl/termclock/internal/timer"
)

// CountdownOptions tune the countdown view.
type CountdownOptions struct {
	Interval time.Duration
	Warn     time.Duration
	Critical time.Duration
	Linger   time.Duration

	// Bell, when non-nil, receives a terminal bell on finish.
	Bell io.Writer
}

type countdownModel struct {
	cd        *timer.Countdown
	opts      CountdownOptions
	keys      keyMap
	help      help.Model
	width     int
	height    int
	announced bool
	quitting  bool
}

func newCountdownModel(cd *timer.Countdown, opts CountdownOptions) countdownModel {
	return countdownModel{
		cd:   cd,
		opts: opts,
		keys: countdownKeys(),
		help: help.New(),
	}
}

func (m countdownModel) Init() tea.Cmd {
	return tickCmd(m.opts.Interval)
}

func (m countdownModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			m.cd.Toggle()
		}

	case TickMsg:
		m.cd.Tick()
		if !m.cd.IsFinished() {
			return m, tickCmd(m.opts.Interval)
		}
		if m.announced {
			return m, nil
		}
		m.announced = true
		cmds := []tea.Cmd{lingerCmd(m.opts.Linger)}
		if m.opts.Bell != nil {
			cmds = append(cmds, bellCmd(m.opts.Bell))
		}
		return m, tea.Batch(cmds...)

	case lingerDoneMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// urgency picks the readout color from the time remaining
func (m countdownModel) urgency(left time.Duration) lipgloss.Color {
	switch {
	case left < m.opts.Critical:
		return colorCritical
	case left < m.opts.Warn:
		return colorWarn
	default:
		return colorCalm
	}
}

func (m countdownModel) View() string {
	if m.quitting {
		return ""
	}

	snap := m.cd.Snapshot()

	var card string
	if m.announced {
		card = cardStyle(colorDanger).Render(lipgloss.JoinVertical(lipgloss.Center,
			doneStyle.Render(format.Clock(0, false)),
			"",
			doneStyle.Render("Time's up!"),
		))
	} else {
		color := m.urgency(snap.TimeLeft)
		border := color
		status := "Running"
		if !snap.Running {
			border = colorPaused
			status = "Paused"
		}
		card = cardStyle(border).Render(lipgloss.JoinVertical(lipgloss.Center,
			readoutStyle(color, snap.Running).Render(format.Clock(snap.TimeLeft, false)),
			"",
			renderProgressBar(m.cd.Progress(), 24, color),
			"",
			statusStyle.Render(status),
		))
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("Countdown · "+format.Words(snap.Initial)),
		card,
		m.help.View(m.keys),
	)
	return place(m.width, m.height, body)
}
