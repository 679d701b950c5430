package store

import (
	"context"
	"path/filepath"

	"github.com/rileyhilliard/tally/internal/config"
	"github.com/rileyhilliard/tally/internal/lock"
	"github.com/rileyhilliard/tally/internal/tracker"
)

// LockDir returns the lock directory guarding the record, or "" when the
// backend lives in one process only.
func LockDir(s config.StorageConfig) (string, error) {
	if s.Backend == config.BackendMemory {
		return "", nil
	}
	path, err := config.ResolveStoragePath(s)
	if err != nil {
		return "", err
	}
	key := s.Key
	if key == "" {
		key = config.DefaultStorageKey
	}
	if s.Backend == config.BackendSQLite {
		return path + "." + key + ".lock", nil
	}
	return filepath.Join(path, key+".lock"), nil
}

// LockedSaver holds the record lock for the duration of every write.
type LockedSaver struct {
	saver   tracker.Saver
	dir     string
	command string
	opts    lock.Options
}

// NewLockedSaver wraps saver. An empty dir disables locking.
func NewLockedSaver(saver tracker.Saver, dir, command string, opts lock.Options) *LockedSaver {
	return &LockedSaver{saver: saver, dir: dir, command: command, opts: opts}
}

// Save implements tracker.Saver.
func (s *LockedSaver) Save(ctx context.Context, st tracker.State) error {
	release, err := s.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()
	return s.saver.Save(ctx, st)
}

// Reset implements tracker.Saver.
func (s *LockedSaver) Reset(ctx context.Context) (tracker.State, error) {
	release, err := s.acquire(ctx)
	if err != nil {
		return tracker.State{}, err
	}
	defer release()
	return s.saver.Reset(ctx)
}

func (s *LockedSaver) acquire(ctx context.Context) (func(), error) {
	if s.dir == "" {
		return func() {}, nil
	}
	l, err := lock.Acquire(ctx, s.dir, s.command, s.opts)
	if err != nil {
		return nil, err
	}
	return func() { _ = l.Release() }, nil
}
