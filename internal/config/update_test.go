package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetValue_KeepsComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	content := `# my habits
version: 1
tracker:
  # first of the month
  start: "2026-01-01"
  habits: 10
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	require.NoError(t, SetValue(path, "tracker.start", "2026-02-01"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "# my habits")
	assert.Contains(t, out, "# first of the month")
	assert.Contains(t, out, "2026-02-01")
	assert.NotContains(t, out, "2026-01-01")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-01", cfg.Tracker.Start)
	assert.Equal(t, 10, cfg.Tracker.Habits)
}

func TestSetValue_CreatesSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("version: 1\n"), 0644))

	require.NoError(t, SetValue(path, "storage.backend", "sqlite"))
	require.NoError(t, SetValue(path, "ui.chart_height", "6"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, 6, cfg.UI.ChartHeight)
}

func TestSetValue_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, nil, 0644))

	require.NoError(t, SetValue(path, "ui.color", "never"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "never", cfg.UI.Color)
}

func TestSetValue_Errors(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("version: 1\nui:\n  color: auto\n"), 0644))

	assert.Error(t, SetValue(path, "ui..color", "x"))
	assert.Error(t, SetValue(path, "ui", "x"), "ui is a section")
	assert.Error(t, SetValue(path, "version.major", "2"), "version is a value")
	assert.Error(t, SetValue(filepath.Join(t.TempDir(), "missing.yaml"), "ui.color", "x"))
}
