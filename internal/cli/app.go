package cli

import (
	"context"
	"os"

	"github.com/rileyhilliard/tally/internal/config"
	"github.com/rileyhilliard/tally/internal/errors"
	"github.com/rileyhilliard/tally/internal/lock"
	"github.com/rileyhilliard/tally/internal/logger"
	"github.com/rileyhilliard/tally/internal/store"
	"github.com/rileyhilliard/tally/internal/tracker"
	"github.com/rileyhilliard/tally/internal/ui"
)

// app is everything a command needs: the loaded config, an open store and
// the tracker that owns the state read from it.
type app struct {
	cfg     *config.Config
	store   *store.Store
	tracker *tracker.Tracker
	log     logger.Logger

	logFile *os.File
	held    *lock.Lock
}

// lockOptions applies to every record lock taken by commands.
var lockOptions = lock.DefaultOptions()

// appOptions controls how openApp wires logging and locking.
type appOptions struct {
	// quiet drops log output unless --log-file is set. The board uses it so
	// log lines never land on the alt screen.
	quiet bool

	// command names the holder in lock info, e.g. "tally toggle".
	command string

	// hold keeps the record lock from load until Close, so a one-shot
	// read-modify-write can't interleave with another process. Without it
	// the lock is only taken around each save.
	hold bool
}

// loadConfig resolves, loads and validates the config, then applies the
// global flags on top of it.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return nil, err
	}
	if ephemeralFlag {
		cfg.Storage.Backend = config.BackendMemory
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	if noColorFlag {
		ui.DisableColors()
	} else {
		ui.SetColorMode(cfg.UI.Color)
	}
	return cfg, nil
}

// openApp loads config, opens the store and builds the tracker.
// Callers must Close the returned app.
func openApp(ctx context.Context, opts appOptions) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg}
	if err := a.openLog(opts); err != nil {
		return nil, err
	}

	lockDir, err := store.LockDir(cfg.Storage)
	if err != nil {
		a.closeLog()
		return nil, err
	}
	if opts.hold && lockDir != "" {
		a.held, err = lock.Acquire(ctx, lockDir, opts.command, lockOptions)
		if err != nil {
			a.closeLog()
			return nil, err
		}
	}

	st, err := store.Open(cfg, a.log)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.store = st

	var saver tracker.Saver = st
	if !opts.hold {
		saver = store.NewLockedSaver(st, lockDir, opts.command, lockOptions)
	}

	a.tracker = tracker.New(st.Load(ctx), saver, a.log)
	a.tracker.Subscribe(func(n tracker.Notification) {
		a.log.Debug("%s: %s", n.Event.Kind, n.Signals)
	})

	a.log.Debug("opened %s store (key %s) with %d habits", cfg.Storage.Backend, st.Key(), a.tracker.HabitCount())
	return a, nil
}

func (a *app) openLog(opts appOptions) error {
	switch {
	case logFileFlag != "":
		f, err := os.OpenFile(logFileFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Can't open log file: "+logFileFlag,
				"Check the directory exists and is writable")
		}
		a.logFile = f
		a.log = logger.NewWriterLogger(f, "[tally]")
	case opts.quiet:
		a.log = logger.Noop()
	default:
		a.log = logger.NewEnvLogger("[tally]")
	}
	logger.SetDefault(a.log)
	return nil
}

func (a *app) closeLog() {
	if a.logFile != nil {
		logger.SetDefault(logger.Noop())
		_ = a.logFile.Close()
		a.logFile = nil
	}
}

// Close releases the store and log file.
func (a *app) Close() error {
	var err error
	if a.store != nil {
		err = a.store.Close()
	}
	if a.held != nil {
		_ = a.held.Release()
		a.held = nil
	}
	a.closeLog()
	return err
}
