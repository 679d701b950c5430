package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rileyhilliard/tally/internal/config"
	"github.com/rileyhilliard/tally/internal/errors"
	"github.com/rileyhilliard/tally/internal/lock"
	"github.com/rileyhilliard/tally/internal/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exported reads the current state back through 'tally export'.
func exported(t *testing.T) tracker.State {
	t.Helper()
	out := mustRun(t, "export")

	var s tracker.State
	require.NoError(t, json.Unmarshal([]byte(out), &s), out)
	return s
}

func TestToggle_FlipsAndPersists(t *testing.T) {
	setupWorkspace(t)

	out := mustRun(t, "toggle", "1", "1")
	assert.Contains(t, out, "habit 1 checked on day 1")

	s := exported(t)
	require.Len(t, s.Grid, 3)
	assert.True(t, s.Grid[0][0])

	out = mustRun(t, "toggle", "1", "1")
	assert.Contains(t, out, "habit 1 unchecked on day 1")
	assert.False(t, exported(t).Grid[0][0])
}

func TestToggle_ByNameAndDate(t *testing.T) {
	setupWorkspace(t)

	mustRun(t, "rename", "2", "Read")
	out := mustRun(t, "toggle", "read", "2026-01-05")
	assert.Contains(t, out, "Read checked on day 5")

	assert.True(t, exported(t).Grid[1][4])
}

func TestToggle_CelebratesCompletedDay(t *testing.T) {
	setupWorkspace(t)

	out := mustRun(t, "toggle", "1", "2")
	assert.NotContains(t, out, "complete!")
	mustRun(t, "toggle", "2", "2")

	out = mustRun(t, "toggle", "3", "2")
	assert.Contains(t, out, "Day 2 complete!")

	// Unchecking never celebrates.
	out = mustRun(t, "toggle", "3", "2")
	assert.NotContains(t, out, "complete!")
}

func TestToggle_OutOfRange(t *testing.T) {
	setupWorkspace(t)

	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"habit too high", []string{"toggle", "4", "1"}, "habit 4 is out of range"},
		{"habit zero", []string{"toggle", "0", "1"}, "habit 0 is out of range"},
		{"day too high", []string{"toggle", "1", "29"}, "day 29 is out of range"},
		{"date before window", []string{"toggle", "1", "2025-12-31"}, "outside the tracked window"},
		{"date after window", []string{"toggle", "1", "2026-01-29"}, "outside the tracked window"},
		{"unknown name", []string{"toggle", "Swim", "1"}, "No habit named 'Swim'"},
		{"not a day", []string{"toggle", "1", "monday"}, "isn't a day number or a date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrInput))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}

	s := exported(t)
	for _, row := range s.Grid {
		assert.NotContains(t, row, true, "rejected toggles must not change the grid")
	}
}

func TestRename_TrimsName(t *testing.T) {
	setupWorkspace(t)

	out := mustRun(t, "rename", "1", "  Run  ")
	assert.Contains(t, out, `habit 1 is now "Run"`)

	out = mustRun(t, "rename", "1", "Morning", "run")
	assert.Contains(t, out, `Run is now "Morning run"`)

	assert.Equal(t, []string{"Morning run", "", ""}, exported(t).Habits)
}

func TestRename_BlankIsRejected(t *testing.T) {
	setupWorkspace(t)
	mustRun(t, "rename", "1", "Run")

	_, err := runCLI(t, "rename", "1", "   ")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrInput))
	assert.Contains(t, err.Error(), "can't be blank")

	assert.Equal(t, "Run", exported(t).Habits[0])
}

func TestStart_SetsDate(t *testing.T) {
	setupWorkspace(t)

	out := mustRun(t, "start", "2026-02-01")
	assert.Contains(t, out, "Tracking 2026-02-01 → 2026-02-28")
	assert.Equal(t, "2026-02-01", exported(t).Start)

	// Days by date follow the new start.
	mustRun(t, "toggle", "1", "2026-02-03")
	assert.True(t, exported(t).Grid[0][2])
}

func TestStart_KeepsUnparsableText(t *testing.T) {
	setupWorkspace(t)

	out := mustRun(t, "start", "someday")
	assert.Contains(t, out, "isn't a YYYY-MM-DD date")
	assert.Equal(t, "someday", exported(t).Start)

	_, err := runCLI(t, "toggle", "1", "2026-01-02")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "days can't be picked by date")

	mustRun(t, "toggle", "1", "2")
	assert.True(t, exported(t).Grid[0][1])
}

func TestStart_EmptyFallsBackToConfigured(t *testing.T) {
	setupWorkspace(t)
	mustRun(t, "start", "2026-05-01")

	out := mustRun(t, "start", "")
	assert.Contains(t, out, "Start date cleared; the next run goes back to 2026-01-01")
	assert.NotContains(t, out, "day labels")
	assert.Equal(t, "2026-01-01", exported(t).Start)
}

func TestReset_WithYes(t *testing.T) {
	setupWorkspace(t)
	mustRun(t, "rename", "1", "Run")
	mustRun(t, "toggle", "1", "1")
	mustRun(t, "start", "2026-05-01")

	out := mustRun(t, "reset", "--yes")
	assert.Contains(t, out, "Reset to 3 empty habits starting 2026-01-01")

	s := exported(t)
	assert.Equal(t, []string{"", "", ""}, s.Habits)
	assert.False(t, s.Grid[0][0])
	assert.Equal(t, "2026-01-01", s.Start)
}

func TestReset_Confirmation(t *testing.T) {
	setupWorkspace(t)
	mustRun(t, "toggle", "1", "1")

	orig := confirmReset
	t.Cleanup(func() { confirmReset = orig })

	confirmReset = func() (bool, error) { return false, nil }
	out := mustRun(t, "reset")
	assert.Contains(t, out, "Cancelled.")
	assert.True(t, exported(t).Grid[0][0])

	confirmReset = func() (bool, error) { return true, nil }
	mustRun(t, "reset")
	assert.False(t, exported(t).Grid[0][0])
}

func TestReset_NoTerminalNeedsYes(t *testing.T) {
	setupWorkspace(t)

	orig := confirmReset
	t.Cleanup(func() { confirmReset = orig })
	confirmReset = func() (bool, error) {
		return false, errors.New(errors.ErrInput, "Reset needs confirmation", "")
	}

	_, err := runCLI(t, "reset")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrInput))
}

func TestShow_Grid(t *testing.T) {
	setupWorkspace(t)
	mustRun(t, "rename", "1", "Run")
	mustRun(t, "toggle", "1", "1")

	out := mustRun(t, "show")
	assert.Contains(t, out, "tally")
	assert.Contains(t, out, "2026-01-01 → 2026-01-28")
	assert.Contains(t, out, "Week 1")
	assert.Contains(t, out, "Run")
	assert.Contains(t, out, "Perfect days:")
}

func TestShow_Table(t *testing.T) {
	setupWorkspace(t)
	mustRun(t, "rename", "1", "Run")

	out := mustRun(t, "show", "--table")
	assert.Contains(t, out, "Habit")
	assert.Contains(t, out, "Run")
	assert.Contains(t, out, "0/28")
	assert.NotContains(t, out, "Week 1")
}

func TestEphemeral_DoesNotPersist(t *testing.T) {
	dir := setupWorkspace(t)

	out := mustRun(t, "--ephemeral", "toggle", "1", "1")
	assert.Contains(t, out, "checked on day 1")

	assert.False(t, exported(t).Grid[0][0])
	_, err := os.Stat(filepath.Join(dir, "data"))
	assert.True(t, os.IsNotExist(err), "memory backend writes nothing")
}

func TestLogFile_ReceivesLogs(t *testing.T) {
	dir := setupWorkspace(t)
	t.Setenv("TALLY_DEBUG", "1")
	logPath := filepath.Join(dir, "tally.log")

	mustRun(t, "--log-file", logPath, "toggle", "1", "1")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "toggle")
}

func TestToggle_WaitsForLockHolder(t *testing.T) {
	dir := setupWorkspace(t)

	orig := lockOptions
	t.Cleanup(func() { lockOptions = orig })
	lockOptions = lock.Options{Timeout: 20 * time.Millisecond, Poll: 5 * time.Millisecond}

	held, err := lock.TryAcquire(filepath.Join(dir, "data", config.DefaultStorageKey+".lock"), "tally board", 0)
	require.NoError(t, err)

	_, err = runCLI(t, "toggle", "1", "1")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrStore))
	assert.Contains(t, err.Error(), "tally board")

	require.NoError(t, held.Release())
	mustRun(t, "toggle", "1", "1")
	assert.True(t, exported(t).Grid[0][0])
}
