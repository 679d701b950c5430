package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rileyhilliard/tally/internal/errors"
	"github.com/rileyhilliard/tally/internal/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats_JSONEmptyGrid(t *testing.T) {
	setupWorkspace(t)

	out := mustRun(t, "stats", "--json")

	var env struct {
		Success bool        `json:"success"`
		Data    StatsReport `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &env), out)

	assert.True(t, env.Success)
	r := env.Data
	assert.Equal(t, "2026-01-01", r.Start)
	assert.Len(t, r.Habits, 3)
	assert.Len(t, r.Days, tracker.Days)
	assert.Equal(t, tracker.Placeholder, r.Best.Name)
	assert.Equal(t, 0, r.Best.Habit)
	assert.Equal(t, tracker.Placeholder, r.Worst.Name, "unnamed worst habit shows the placeholder")
	assert.Equal(t, 0, r.PerfectDays)
	assert.Equal(t, 0, r.HalfDays)
	assert.Equal(t, tracker.Days, r.ZeroDays)
	assert.Equal(t, 0.0, r.Overall)
	assert.Equal(t, "Thu 1", r.Days[0].Label)
	assert.Equal(t, "Wed 28", r.Days[27].Label)
}

func TestStats_JSONAfterCompletedDay(t *testing.T) {
	setupWorkspace(t)
	mustRun(t, "rename", "1", "Run")
	for _, h := range []string{"1", "2", "3"} {
		mustRun(t, "toggle", h, "1")
	}
	mustRun(t, "toggle", "1", "2")

	var env struct {
		Data StatsReport `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(mustRun(t, "stats", "--json")), &env))
	r := env.Data

	assert.Equal(t, 1, r.PerfectDays)
	assert.Equal(t, 0, r.HalfDays, "day 2 is one of three, below half")
	assert.Equal(t, tracker.Days-1, r.ZeroDays)
	assert.True(t, r.Days[0].Complete)
	assert.Equal(t, 100.0, r.Days[0].Percent)
	assert.False(t, r.Days[1].Complete)

	assert.Equal(t, PickReport{Habit: 1, Name: "Run", Count: 2}, r.Best)
	assert.Equal(t, 2, r.Worst.Habit)
	assert.Equal(t, 1, r.Worst.Count)
	assert.Equal(t, 1, r.Habits[0].Habit)
	assert.Equal(t, "Run", r.Habits[0].Name)
	assert.Equal(t, 2, r.Habits[0].Completed)
	assert.InDelta(t, 7.142857, r.Habits[0].Percent, 0.0001)
}

func TestStats_Text(t *testing.T) {
	setupWorkspace(t)
	mustRun(t, "toggle", "1", "1")

	out := mustRun(t, "stats")
	assert.Contains(t, out, "Perfect days:")
	assert.Contains(t, out, "Zero days:")
	assert.Contains(t, out, "Daily:")
	assert.Contains(t, out, "1/28")
	assert.NotContains(t, out, "Thu 1")
}

func TestStats_DayTable(t *testing.T) {
	setupWorkspace(t)
	mustRun(t, "toggle", "1", "1")

	out := mustRun(t, "stats", "--days")
	assert.Contains(t, out, "Thu 1")
	assert.Contains(t, out, "1/3")
	assert.Contains(t, out, "Wed 28")
}

func TestBuildStatsReport_NoHabits(t *testing.T) {
	r := buildStatsReport(tracker.NewState(0, "2026-01-01"))

	assert.Empty(t, r.Habits)
	assert.Equal(t, PickReport{Name: tracker.Placeholder}, r.Best)
	assert.Equal(t, PickReport{Name: tracker.Placeholder}, r.Worst)
	assert.Equal(t, tracker.Days, r.ZeroDays)
	for _, d := range r.Days {
		assert.False(t, d.Complete)
	}
}

func TestBuildStatsReport_InvalidStart(t *testing.T) {
	r := buildStatsReport(tracker.NewState(1, "nope"))
	assert.Equal(t, "- -", r.Days[0].Label)
}

func TestChart_WritesPNG(t *testing.T) {
	dir := setupWorkspace(t)
	mustRun(t, "toggle", "1", "1")

	path := filepath.Join(dir, "charts", "out.png")
	out := mustRun(t, "chart", "-o", path)
	assert.Contains(t, out, "Wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")), "output should be a PNG")
}

func TestExport_YAML(t *testing.T) {
	setupWorkspace(t)
	mustRun(t, "rename", "1", "Run")

	out := mustRun(t, "export", "--format", "yaml")
	assert.Contains(t, out, "habits:")
	assert.Contains(t, out, "- Run")
	assert.Contains(t, out, "grid:")
	assert.Contains(t, out, "2026-01-01")
}

func TestExport_JSONShape(t *testing.T) {
	setupWorkspace(t)

	out := mustRun(t, "export")
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(out), &raw))
	assert.Contains(t, raw, "habits")
	assert.Contains(t, raw, "grid")
	assert.Contains(t, raw, "start")
}

func TestExport_UnknownFormat(t *testing.T) {
	setupWorkspace(t)

	_, err := runCLI(t, "export", "--format", "xml")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrInput))
}

func TestWriteState_NilSlices(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeState(&buf, FormatJSON, tracker.State{Start: "2026-01-01"}))
	assert.JSONEq(t, `{"habits":[],"grid":[],"start":"2026-01-01"}`, buf.String())
}
