package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strrl/termclock/internal/timer"
)

func runRoot(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("TERMCLOCK_CONFIG", "")

	out, _, err := runRootWithOptions(ctx, args...)
	return out, err
}

func runRootWithOptions(ctx context.Context, args ...string) (string, *options, error) {
	var out bytes.Buffer
	opts := &options{}
	cmd := newRootCommand(opts)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := run(ctx, cmd, opts)
	return out.String(), opts, err
}

func TestParseSeconds(t *testing.T) {
	tests := []struct {
		arg     string
		want    int
		wantErr bool
	}{
		{"90", 90, false},
		{"0", 0, false},
		{"-5", -5, false},
		{"1m30s", 90, false},
		{"25m", 1500, false},
		{"1h", 3600, false},
		{"1.5s", 0, true},
		{"soon", 0, true},
	}
	for _, tt := range tests {
		got, err := parseSeconds(tt.arg)
		if tt.wantErr {
			assert.Error(t, err, tt.arg)
			continue
		}
		require.NoError(t, err, tt.arg)
		assert.Equal(t, tt.want, got, tt.arg)
	}
}

func TestCountdownPlainZeroFinishes(t *testing.T) {
	out, err := runRoot(t, context.Background(), "countdown", "--plain", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Time's up!")
}

func TestCountdownPlainRingsBell(t *testing.T) {
	out, err := runRoot(t, context.Background(), "countdown", "--plain", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "\a")
}

func TestCountdownPlainBellDisabled(t *testing.T) {
	t.Setenv("TERMCLOCK_COUNTDOWN_BELL", "false")
	out, err := runRoot(t, context.Background(), "countdown", "--plain", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Time's up!")
	assert.NotContains(t, out, "\a")
}

func TestReadKeysWithoutTerminal(t *testing.T) {
	keys, restore, err := readKeys(bytes.NewBufferString("q"))
	require.NoError(t, err)
	assert.Nil(t, keys)
	restore()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	keys, restore, err = readKeys(r)
	require.NoError(t, err)
	assert.Nil(t, keys)
	restore()
}

func TestCountdownNegativeIsInvalidArgument(t *testing.T) {
	_, err := runRoot(t, context.Background(), "countdown", "--plain", "--", "-5")
	require.Error(t, err)
	assert.True(t, errors.Is(err, timer.ErrInvalidArgument))
}

func TestCountdownTooLongIsInvalidArgument(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("argument does not parse as int on this platform")
	}
	_, err := runRoot(t, context.Background(), "countdown", "--plain", "10000000000")
	require.Error(t, err)
	assert.True(t, errors.Is(err, timer.ErrInvalidArgument))
}

func TestLogFileClosedWhenCommandFails(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("TERMCLOCK_CONFIG", "")
	logPath := filepath.Join(t.TempDir(), "termclock.log")

	_, opts, err := runRootWithOptions(context.Background(),
		"countdown", "--plain", "--log-file", logPath, "--", "-5")
	require.Error(t, err)
	assert.FileExists(t, logPath)
	assert.Nil(t, opts.closeLog, "log file should be closed after a failed command")
	assert.NoError(t, opts.teardown())
}

func TestLogFileClosedOnSuccess(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("TERMCLOCK_CONFIG", "")
	logPath := filepath.Join(t.TempDir(), "termclock.log")

	_, opts, err := runRootWithOptions(context.Background(),
		"countdown", "--plain", "--debug", "--log-file", logPath, "0")
	require.NoError(t, err)
	assert.Nil(t, opts.closeLog)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "countdown finished")
}

func TestCountdownRequiresOneArg(t *testing.T) {
	_, err := runRoot(t, context.Background(), "countdown")
	assert.Error(t, err)
}

func TestStopwatchPlainPrintsSummary(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := runRoot(t, ctx, "stopwatch", "--plain", "--summary-format", "json", "deep", "work")
	require.NoError(t, err)

	start := bytes.IndexByte([]byte(out), '{')
	require.GreaterOrEqual(t, start, 0, "no JSON in output: %q", out)

	var doc struct {
		Project string `json:"project"`
		Count   int    `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(out[start:]), &doc))
	assert.Equal(t, "deep work", doc.Project)
	assert.Equal(t, 1, doc.Count)
}

func TestRejectsUnknownSummaryFormat(t *testing.T) {
	_, err := runRoot(t, context.Background(), "stopwatch", "--plain", "--summary-format", "xml")
	assert.Error(t, err)
}
