package commands

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/strrl/termclock/internal/config"
	"github.com/strrl/termclock/internal/format"
	"github.com/strrl/termclock/internal/plain"
	"github.com/strrl/termclock/internal/timer"
	"github.com/strrl/termclock/internal/tui"
)

// NewCountdownCommand creates the countdown command
func NewCountdownCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "countdown <duration>",
		Aliases: []string{"cd"},
		Short:   "Count down and ring the bell at zero",
		Long: `Count down from a duration given as whole seconds (90) or a Go duration (1m30s, 25m).
space pauses/resumes, q quits. The same keys work with --plain when stdin is a terminal.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCountdown(cmd, opts, args[0])
		},
	}
}

// parseSeconds accepts an integer number of seconds or a time.ParseDuration
// string. Durations must be a whole number of seconds.
func parseSeconds(arg string) (int, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		return n, nil
	}
	d, err := time.ParseDuration(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: expected seconds or a duration like 1m30s", arg)
	}
	if d%time.Second != 0 {
		return 0, fmt.Errorf("invalid duration %q: must be a whole number of seconds", arg)
	}
	return int(d / time.Second), nil
}

func runCountdown(cmd *cobra.Command, opts *options, arg string) error {
	seconds, err := parseSeconds(arg)
	if err != nil {
		return err
	}

	cd, err := timer.NewCountdown(seconds)
	if err != nil {
		return fmt.Errorf("failed to create countdown: %w", err)
	}

	logger := opts.logger.With("initial", cd.Initial())
	cd.OnFinish(func() {
		logger.Info("countdown finished")
	})

	cfg := opts.cfg.Countdown
	interval := config.Interval(cfg.FPS)

	var bell io.Writer
	if cfg.Bell {
		bell = cmd.ErrOrStderr()
	}

	var finished bool
	if opts.plainMode {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		keys, restore, err := readKeys(cmd.InOrStdin())
		if err != nil {
			return err
		}
		finished, err = plain.Countdown(ctx, cmd.OutOrStdout(), cd, plain.NewTicker(interval), keys, bell)
		restore()
		if err != nil {
			return err
		}
	} else {
		finished, err = tui.RunCountdown(cd, tui.CountdownOptions{
			Interval: interval,
			Warn:     time.Duration(cfg.WarnSeconds) * time.Second,
			Critical: time.Duration(cfg.CriticalSeconds) * time.Second,
			Linger:   cfg.Linger,
			Bell:     bell,
		})
		if err != nil {
			return fmt.Errorf("TUI error: %w", err)
		}
	}

	if !finished {
		logger.Info("countdown abandoned", "time_left", cd.TimeLeft())
		fmt.Fprintf(cmd.OutOrStdout(), "Stopped with %s left\n", format.Clock(cd.TimeLeft(), false))
	}
	return nil
}
