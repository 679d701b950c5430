package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/tally/internal/config"
	"github.com/rileyhilliard/tally/internal/errors"
	"github.com/rileyhilliard/tally/internal/ui"
	"github.com/rileyhilliard/tally/internal/util"
	"golang.org/x/term"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Force   bool   // Overwrite an existing config without asking
	Global  bool   // Write ~/.config/tally/config.yaml instead of ./.tally.yaml
	Backend string // Storage backend, empty keeps the default
	Habits  int    // Habit count, negative keeps the default
	Start   string // Start date, empty keeps the default
}

// confirmOverwrite asks before replacing an existing config. It is a variable
// so tests can stub it.
var confirmOverwrite = func(path string) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, errors.New(errors.ErrConfig,
			"Config file already exists: "+path,
			"Use --force to overwrite")
	}

	var overwrite bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", path)).
				Value(&overwrite),
		),
	)
	if err := form.Run(); err != nil {
		return false, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Try running with --force to overwrite")
	}
	return overwrite, nil
}

// initConfigPath returns where init writes.
func initConfigPath(global bool) (string, error) {
	if !global {
		return filepath.Join(".", config.ConfigFileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Can't find your home directory",
			"Set $HOME or write a local config without --global")
	}
	return filepath.Join(home, config.GlobalConfigDir, config.GlobalConfigFile), nil
}

// initCommand writes a new config file with defaults plus any overrides.
func initCommand(w io.Writer, opts InitOptions) error {
	path, err := initConfigPath(opts.Global)
	if err != nil {
		return err
	}

	cfg := config.DefaultConfig()
	if opts.Backend != "" {
		cfg.Storage.Backend = opts.Backend
	}
	if opts.Habits >= 0 {
		cfg.Tracker.Habits = opts.Habits
	}
	if opts.Start != "" {
		cfg.Tracker.Start = opts.Start
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	force := opts.Force
	if _, err := os.Stat(path); err == nil && !force {
		ok, err := confirmOverwrite(path)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(w, "Cancelled.")
			return nil
		}
		force = true
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Can't create the config directory",
			"Check you can write to "+filepath.Dir(path))
	}
	if err := config.Write(path, cfg, force); err != nil {
		return err
	}

	fmt.Fprintf(w, "%s Created %s\n", ui.SymbolSuccess, path)
	fmt.Fprintf(w, "  storage: %s, %s starting %s\n", cfg.Storage.Backend, util.Count(cfg.Tracker.Habits, "habit", "habits"), cfg.Tracker.Start)
	fmt.Fprintln(w, "  Run 'tally' to open the board.")
	return nil
}

// configPathCommand prints the config file in use.
func configPathCommand(w io.Writer) error {
	path, err := config.Find(configFlag)
	if err != nil {
		return err
	}
	if path == "" {
		fmt.Fprintln(w, "(none, using defaults)")
		return nil
	}
	fmt.Fprintln(w, path)
	return nil
}

// configShowCommand prints the effective config, after env overrides.
func configShowCommand(w io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to encode config",
			"This is unexpected - please report it")
	}
	_, err = w.Write(data)
	return err
}

// configSetCommand edits one key in the config file in use. The file is
// restored when the edit makes it invalid.
func configSetCommand(w io.Writer, key, value string) error {
	path, err := config.Find(configFlag)
	if err != nil {
		return err
	}
	if path == "" {
		return errors.New(errors.ErrConfig,
			"No config file to edit",
			"Run 'tally init' first").WithReason(errors.ReasonNotFound)
	}

	original, err := os.ReadFile(path)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Can't read "+path,
			"Check file permissions")
	}

	if err := config.SetValue(path, key, value); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Can't set %s", key),
			"Keys look like storage.backend, tracker.start or ui.color")
	}

	cfg, err := config.Load(path)
	if err == nil {
		err = config.Validate(cfg)
	}
	if err != nil {
		if rerr := os.WriteFile(path, original, 0644); rerr != nil {
			return errors.WrapWithCode(rerr, errors.ErrConfig,
				"Config is invalid and couldn't be restored: "+path,
				"Fix the file by hand or run 'tally init --force'")
		}
		return err
	}

	fmt.Fprintf(w, "%s %s = %s\n", ui.SymbolSuccess, key, value)
	return nil
}
