package store

import (
	"context"
	"encoding/json"

	"github.com/rileyhilliard/tally/internal/config"
	"github.com/rileyhilliard/tally/internal/errors"
	"github.com/rileyhilliard/tally/internal/logger"
	"github.com/rileyhilliard/tally/internal/tracker"
	"github.com/rileyhilliard/tally/internal/util"
)

// record is the persisted shape.
type record struct {
	Habits []string `json:"habits"`
	Grid   [][]bool `json:"grid"`
	Start  string   `json:"start"`
}

// Store loads and saves tracker state under one key of a KV sink.
// It implements tracker.Saver.
type Store struct {
	kv     KV
	key    string
	habits int
	start  string
	log    logger.Logger
}

// New returns a Store writing to key in kv. habits and start are the defaults
// used for a fresh or unreadable record. A nil log means logger.Default().
func New(kv KV, key string, habits int, start string, log logger.Logger) *Store {
	log = logger.Named(log, "store")
	if key == "" {
		key = config.DefaultStorageKey
	}
	if start == "" {
		start = tracker.DefaultStart
	}
	if habits < 0 {
		habits = 0
	}
	return &Store{kv: kv, key: key, habits: habits, start: start, log: log}
}

// Open builds a Store from config, opening the configured backend.
func Open(cfg *config.Config, log logger.Logger) (*Store, error) {
	kv, err := OpenKV(cfg.Storage)
	if err != nil {
		return nil, err
	}
	return New(kv, cfg.Storage.Key, cfg.Tracker.Habits, cfg.Tracker.Start, log), nil
}

// OpenKV opens the sink selected by s.Backend.
func OpenKV(s config.StorageConfig) (KV, error) {
	switch s.Backend {
	case config.BackendMemory:
		return NewMemoryKV(), nil
	case config.BackendFile, config.BackendSQLite:
	default:
		return nil, errors.New(errors.ErrConfig,
			"Unknown storage backend: "+s.Backend,
			"Use one of: "+util.JoinOrNone(config.ValidBackends))
	}

	path, err := config.ResolveStoragePath(s)
	if err != nil {
		return nil, err
	}

	if s.Backend == config.BackendFile {
		return NewFileKV(path), nil
	}

	kv, err := OpenSQLite(path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrStore,
			"Could not open habit database",
			"Check "+path+" is a writable SQLite file")
	}
	return kv, nil
}

// Key returns the record key.
func (s *Store) Key() string { return s.key }

// Defaults returns the fresh state for this store.
func (s *Store) Defaults() tracker.State {
	return tracker.NewState(s.habits, s.start)
}

// Load reads the record. It never fails: an absent, unreadable or unparsable
// record gives defaults. Fields are decoded one at a time, so a field that is
// missing, null or of the wrong type falls back to its default without taking
// the others with it. The grid is then reconciled to the habit count.
func (s *Store) Load(ctx context.Context) tracker.State {
	def := s.Defaults()

	data, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		s.log.Warn("read %s failed, using defaults: %v", s.key, err)
		return def
	}
	if !ok {
		s.log.Debug("no saved record under %s, using defaults", s.key)
		return def
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		s.log.Warn("saved record under %s is corrupt, using defaults: %v", s.key, err)
		return def
	}

	state := tracker.State{Habits: def.Habits, Grid: [][]bool{}, Start: def.Start}
	if habits, ok := decodeField[[]string](s, fields, "habits"); ok {
		state.Habits = habits
	}
	if grid, ok := decodeField[[][]bool](s, fields, "grid"); ok {
		state.Grid = grid
	}
	if start, ok := decodeField[string](s, fields, "start"); ok && start != "" {
		state.Start = start
	}

	if state.Reconcile() {
		s.log.Debug("reconciled grid under %s to %d habits", s.key, len(state.Habits))
	}
	return state
}

// decodeField decodes fields[name] and reports whether it did. An absent or
// null field is not decoded; one of the wrong type is logged and skipped.
func decodeField[T any](s *Store, fields map[string]json.RawMessage, name string) (T, bool) {
	var v T
	raw, ok := fields[name]
	if !ok || string(raw) == "null" {
		return v, false
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		s.log.Warn("saved %s under %s is unreadable, using default: %v", name, s.key, err)
		var zero T
		return zero, false
	}
	return v, true
}

// Save overwrites the record with state.
func (s *Store) Save(ctx context.Context, state tracker.State) error {
	rec := record{Habits: state.Habits, Grid: state.Grid, Start: state.Start}
	if rec.Habits == nil {
		rec.Habits = []string{}
	}
	if rec.Grid == nil {
		rec.Grid = [][]bool{}
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if err := s.kv.Put(ctx, s.key, data); err != nil {
		return err
	}
	s.log.Debug("saved %d bytes under %s", len(data), s.key)
	return nil
}

// Reset deletes the record and returns fresh defaults.
func (s *Store) Reset(ctx context.Context) (tracker.State, error) {
	if err := s.kv.Delete(ctx, s.key); err != nil {
		return tracker.State{}, err
	}
	s.log.Info("cleared saved record %s", s.key)
	return s.Defaults(), nil
}

// Close closes the underlying sink.
func (s *Store) Close() error {
	return s.kv.Close()
}
