package config

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/tally/internal/errors"
	"github.com/rileyhilliard/tally/internal/tracker"
	"github.com/rileyhilliard/tally/internal/util"
)

// ValidBackends lists the supported storage backends.
var ValidBackends = []string{BackendFile, BackendSQLite, BackendMemory}

// ValidColorModes lists the supported ui.color values.
var ValidColorModes = []string{"auto", "always", "never"}

// maxHabits keeps a fresh grid renderable in a terminal.
const maxHabits = 50

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but tally only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade tally or lower the version in .tally.yaml.")
	}

	if err := validateStorage(cfg.Storage); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'storage' section in your .tally.yaml.")
	}

	if err := validateTracker(cfg.Tracker); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'tracker' section in your .tally.yaml.")
	}

	if err := validateUI(cfg.UI); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'ui' section in your .tally.yaml.")
	}

	return nil
}

func validateStorage(s StorageConfig) error {
	if !contains(ValidBackends, s.Backend) {
		return fmt.Errorf("storage.backend %q isn't supported (use one of: %s)", s.Backend, util.JoinOrNone(ValidBackends))
	}
	if strings.TrimSpace(s.Key) == "" {
		return fmt.Errorf("storage.key can't be empty")
	}
	if strings.ContainsAny(s.Key, `/\`) {
		return fmt.Errorf("storage.key %q can't contain path separators", s.Key)
	}
	return nil
}

func validateTracker(t TrackerConfig) error {
	if t.Habits < 0 || t.Habits > maxHabits {
		return fmt.Errorf("tracker.habits must be between 0 and %d, got %d", maxHabits, t.Habits)
	}
	if _, ok := tracker.ParseStart(t.Start); !ok {
		return fmt.Errorf("tracker.start %q isn't a date (use YYYY-MM-DD)", t.Start)
	}
	return nil
}

func validateUI(u UIConfig) error {
	if !contains(ValidColorModes, u.Color) {
		return fmt.Errorf("ui.color %q isn't supported (use one of: %s)", u.Color, util.JoinOrNone(ValidColorModes))
	}
	if u.ChartHeight < 1 || u.ChartHeight > 20 {
		return fmt.Errorf("ui.chart_height must be between 1 and 20, got %d", u.ChartHeight)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
