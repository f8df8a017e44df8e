package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/strrl/termclock/internal/config"
	"github.com/strrl/termclock/internal/logging"
)

// options holds the global flags and everything derived from them
type options struct {
	configPath    string
	debugMode     bool
	logFile       string
	plainMode     bool
	summaryFormat string

	cfg      config.Config
	logger   *slog.Logger
	closeLog func() error
}

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	return newRootCommand(&options{})
}

func newRootCommand(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "termclock",
		Short: "Terminal stopwatch and countdown timer",
		Long: `termclock is a terminal time tracker.
The stopwatch records each start/stop cycle as a run and prints a session summary on exit.
The countdown rings the terminal bell when it reaches zero.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to a TOML config file")
	flags.BoolVar(&opts.debugMode, "debug", false, "Log at debug level")
	flags.StringVar(&opts.logFile, "log-file", "", "Write logs to this file")
	flags.BoolVar(&opts.plainMode, "plain", false, "Print a single updating line instead of the full-screen TUI")
	flags.StringVar(&opts.summaryFormat, "summary-format", "", "Session summary format: text, json or yaml")

	rootCmd.AddCommand(NewStopwatchCommand(opts))
	rootCmd.AddCommand(NewCountdownCommand(opts))

	return rootCmd
}

// Execute runs the root command
func Execute() {
	opts := &options{}
	if err := run(context.Background(), newRootCommand(opts), opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run executes rootCmd and then closes the log file. Cobra skips post-run
// hooks when RunE fails, so the close happens here instead.
func run(ctx context.Context, rootCmd *cobra.Command, opts *options) error {
	err := rootCmd.ExecuteContext(ctx)
	if cerr := opts.teardown(); err == nil {
		err = cerr
	}
	return err
}

// setup loads config and opens the logger. Flags win over the config file.
func (o *options) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("log-file") {
		cfg.Logging.File = o.logFile
	}
	if o.debugMode {
		cfg.Logging.Level = "debug"
	}
	if cmd.Flags().Changed("summary-format") {
		cfg.Summary.Format = o.summaryFormat
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return err
	}
	logger, closeLog, err := logging.Open(cfg.Logging.File, level)
	if err != nil {
		return err
	}

	o.cfg = cfg
	o.logger = logger
	o.closeLog = closeLog
	logger.Debug("config loaded", "command", cmd.Name(), "plain", o.plainMode)
	return nil
}

// teardown closes the log file opened by setup. It is safe to call more
// than once.
func (o *options) teardown() error {
	if o.closeLog == nil {
		return nil
	}
	closeLog := o.closeLog
	o.closeLog = nil
	return closeLog()
}
