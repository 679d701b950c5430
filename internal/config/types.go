package config

import "github.com/rileyhilliard/tally/internal/tracker"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// DefaultStorageKey is the namespace key of the persisted record.
const DefaultStorageKey = "habitTrackerData_v2"

// Config represents the complete .tally.yaml configuration file.
type Config struct {
	Version int           `yaml:"version" mapstructure:"version"`
	Storage StorageConfig `yaml:"storage" mapstructure:"storage"`
	Tracker TrackerConfig `yaml:"tracker" mapstructure:"tracker"`
	UI      UIConfig      `yaml:"ui" mapstructure:"ui"`
}

// StorageConfig selects and locates the key-value sink.
type StorageConfig struct {
	// Backend is "file", "sqlite" or "memory".
	Backend string `yaml:"backend" mapstructure:"backend"`

	// Path is the data directory (file) or database file (sqlite).
	// Empty means the default under $XDG_DATA_HOME/tally.
	Path string `yaml:"path" mapstructure:"path"`

	// Key is the record key inside the sink.
	Key string `yaml:"key" mapstructure:"key"`
}

// TrackerConfig sets the defaults for a fresh grid.
type TrackerConfig struct {
	// Habits is the number of empty habit rows in a fresh grid.
	Habits int `yaml:"habits" mapstructure:"habits"`

	// Start is the default start date (YYYY-MM-DD).
	Start string `yaml:"start" mapstructure:"start"`
}

// UIConfig controls terminal output.
type UIConfig struct {
	// Celebrate enables the confetti animation on fully completed days.
	Celebrate bool `yaml:"celebrate" mapstructure:"celebrate"`

	// Color mode: "auto", "always", or "never".
	Color string `yaml:"color" mapstructure:"color"`

	// ChartHeight is the number of terminal rows used by the board chart.
	ChartHeight int `yaml:"chart_height" mapstructure:"chart_height"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Storage: StorageConfig{
			Backend: BackendFile,
			Key:     DefaultStorageKey,
		},
		Tracker: TrackerConfig{
			Habits: tracker.DefaultHabitCount,
			Start:  tracker.DefaultStart,
		},
		UI: UIConfig{
			Celebrate:   true,
			Color:       "auto",
			ChartHeight: 4,
		},
	}
}
