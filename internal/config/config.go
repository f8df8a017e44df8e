package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/strrl/termclock/internal/timer"
)

// Config holds application configuration.
type Config struct {
	Stopwatch StopwatchConfig
	Countdown CountdownConfig
	Summary   SummaryConfig
	Logging   LoggingConfig
}

// StopwatchConfig holds stopwatch settings.
type StopwatchConfig struct {
	Project     string
	ResetPolicy string `mapstructure:"reset_policy"`
	FPS         int
}

// CountdownConfig holds countdown settings.
type CountdownConfig struct {
	FPS             int
	WarnSeconds     int `mapstructure:"warn_seconds"`
	CriticalSeconds int `mapstructure:"critical_seconds"`
	Linger          time.Duration
	Bell            bool
}

// SummaryConfig holds session summary settings.
type SummaryConfig struct {
	Format string
}

// LoggingConfig holds log sink settings. An empty File discards logs.
type LoggingConfig struct {
	File  string
	Level string
}

// Load reads configuration from file and env. path overrides the default
// location; TERMCLOCK_CONFIG is consulted when path is empty. Env var
// overrides use prefix TERMCLOCK_.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("stopwatch.project", "Untitled")
	v.SetDefault("stopwatch.reset_policy", "finalize")
	v.SetDefault("stopwatch.fps", 60)
	v.SetDefault("countdown.fps", 10)
	v.SetDefault("countdown.warn_seconds", 30)
	v.SetDefault("countdown.critical_seconds", 10)
	v.SetDefault("countdown.linger", "2s")
	v.SetDefault("countdown.bell", true)
	v.SetDefault("summary.format", "text")
	v.SetDefault("logging.file", "")
	v.SetDefault("logging.level", "info")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("TERMCLOCK_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "termclock"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TERMCLOCK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// A missing default config is fine; a missing explicit one is not.
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	if _, err := c.Stopwatch.Policy(); err != nil {
		return err
	}
	if c.Stopwatch.FPS <= 0 || c.Countdown.FPS <= 0 {
		return fmt.Errorf("invalid config: fps must be positive")
	}
	if c.Countdown.CriticalSeconds < 0 || c.Countdown.WarnSeconds < c.Countdown.CriticalSeconds {
		return fmt.Errorf("invalid config: need 0 <= critical_seconds <= warn_seconds")
	}
	if c.Countdown.Linger < 0 {
		return fmt.Errorf("invalid config: countdown.linger must not be negative")
	}
	switch c.Summary.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("invalid config: unknown summary format %q", c.Summary.Format)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid config: unknown log level %q", c.Logging.Level)
	}
	return nil
}

// Policy maps the configured reset policy name to a timer.ResetPolicy.
func (s StopwatchConfig) Policy() (timer.ResetPolicy, error) {
	switch strings.ToLower(s.ResetPolicy) {
	case "", "finalize":
		return timer.ResetFinalize, nil
	case "discard":
		return timer.ResetDiscard, nil
	default:
		return 0, fmt.Errorf("invalid config: unknown reset policy %q", s.ResetPolicy)
	}
}

// Interval returns the redraw interval for the given frames per second.
func Interval(fps int) time.Duration {
	if fps <= 0 {
		return time.Second
	}
	return time.Second / time.Duration(fps)
}
