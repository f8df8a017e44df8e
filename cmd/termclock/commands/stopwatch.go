package commands

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/strrl/termclock/internal/config"
	"github.com/strrl/termclock/internal/plain"
	"github.com/strrl/termclock/internal/report"
	"github.com/strrl/termclock/internal/timer"
	"github.com/strrl/termclock/internal/tui"
)

// NewStopwatchCommand creates the stopwatch command
func NewStopwatchCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "stopwatch [project]",
		Aliases: []string{"sw"},
		Short:   "Run a stopwatch and print a session summary on exit",
		Long: `Run a stopwatch that starts immediately.
space starts/stops, r resets, q quits. Every start/stop cycle is recorded as a run,
and a summary of all runs is printed when the stopwatch exits.
The same keys work with --plain when stdin is a terminal.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStopwatch(cmd, opts, args)
		},
	}
}

func runStopwatch(cmd *cobra.Command, opts *options, args []string) error {
	project := strings.TrimSpace(strings.Join(args, " "))
	if project == "" {
		project = opts.cfg.Stopwatch.Project
	}
	if project == "" {
		project = "Untitled"
	}

	policy, err := opts.cfg.Stopwatch.Policy()
	if err != nil {
		return err
	}

	logger := opts.logger.With("project", project)
	sw := timer.NewStopwatch(timer.WithResetPolicy(policy))
	sw.OnChange(func(e timer.Event, s *timer.Stopwatch) {
		logger.Debug("stopwatch "+e.String(), "elapsed", s.Elapsed(), "runs", len(s.Runs()))
	})

	interval := config.Interval(opts.cfg.Stopwatch.FPS)
	if opts.plainMode {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		keys, restore, err := readKeys(cmd.InOrStdin())
		if err != nil {
			return err
		}
		err = plain.Stopwatch(ctx, cmd.OutOrStdout(), sw, plain.NewTicker(interval), keys)
		restore()
		if err != nil {
			return err
		}
	} else {
		sw.Start()
		if err := tui.RunStopwatch(sw, project, interval); err != nil {
			return fmt.Errorf("TUI error: %w", err)
		}
	}

	// An interval still open on quit counts as a final run
	sw.Stop()

	summary := report.Build(cmd.Context(), logger, project, sw.Runs())
	logger.Info("session finished", "session_id", summary.SessionID, "runs", summary.Stats.Count, "total", summary.Stats.Total)
	return report.Render(cmd.OutOrStdout(), summary, opts.cfg.Summary.Format)
}
