package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/strrl/termclock/internal/format"
)

// Render writes s to w in the given format: "text", "json" or "yaml".
func Render(w io.Writer, s Summary, outFormat string) error {
	switch outFormat {
	case "", "text":
		_, err := io.WriteString(w, Text(s))
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(toDocument(s)); err != nil {
			return fmt.Errorf("failed to encode summary: %w", err)
		}
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toDocument(s)); err != nil {
			return fmt.Errorf("failed to encode summary: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown summary format %q", outFormat)
	}
}

const timelineBar = "▬▬▬▬▬▬▬▬▬▬▬▬▬▬▬"

// Text renders the summary as a bordered panel with one timeline line per
// run.
func Text(s Summary) string {
	if len(s.Runs) == 0 {
		dim := lipgloss.NewStyle().Faint(true)
		return "\n" + dim.Render("No runs recorded.") + "\n"
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("42"))
	barStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("42"))
	dimStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("243"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s: %s", s.Project, format.Words(s.Stats.Total))))
	b.WriteString("\n\n")

	zone := format.ZoneName(s.Runs[0].Start)
	for i, r := range s.Runs {
		fmt.Fprintf(&b, "Session #%-3d %s %s %s %s  %s",
			i+1,
			format.HourMinute(r.Start),
			barStyle.Render(timelineBar),
			format.HourMinute(r.End),
			zone,
			dimStyle.Render("("+format.Words(r.Duration)+")"),
		)
		b.WriteString("\n")
		if i < len(s.Runs)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf(
		"%d runs • longest %s • shortest %s • average %s • breaks %s",
		s.Stats.Count,
		format.Words(s.Stats.Longest),
		format.Words(s.Stats.Shortest),
		format.Words(s.Stats.Average),
		format.Words(s.Stats.Breaks),
	)))

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("42")).
		Padding(0, 1)

	return "\n" + panel.Render(b.String()) + "\n"
}

type runDocument struct {
	Start           time.Time `json:"start" yaml:"start"`
	End             time.Time `json:"end" yaml:"end"`
	DurationSeconds float64   `json:"duration_seconds" yaml:"duration_seconds"`
}

type document struct {
	SessionID       string        `json:"session_id" yaml:"session_id"`
	Project         string        `json:"project" yaml:"project"`
	TotalSeconds    float64       `json:"total_seconds" yaml:"total_seconds"`
	Count           int           `json:"count" yaml:"count"`
	LongestSeconds  float64       `json:"longest_seconds" yaml:"longest_seconds"`
	ShortestSeconds float64       `json:"shortest_seconds" yaml:"shortest_seconds"`
	AverageSeconds  float64       `json:"average_seconds" yaml:"average_seconds"`
	BreakSeconds    float64       `json:"break_seconds" yaml:"break_seconds"`
	Runs            []runDocument `json:"runs" yaml:"runs"`
}

func toDocument(s Summary) document {
	doc := document{
		SessionID:       s.SessionID,
		Project:         s.Project,
		TotalSeconds:    s.Stats.Total.Seconds(),
		Count:           s.Stats.Count,
		LongestSeconds:  s.Stats.Longest.Seconds(),
		ShortestSeconds: s.Stats.Shortest.Seconds(),
		AverageSeconds:  s.Stats.Average.Seconds(),
		BreakSeconds:    s.Stats.Breaks.Seconds(),
		Runs:            make([]runDocument, 0, len(s.Runs)),
	}
	for _, r := range s.Runs {
		doc.Runs = append(doc.Runs, runDocument{
			Start:           r.Start,
			End:             r.End,
			DurationSeconds: r.Duration.Seconds(),
		})
	}
	return doc
}
