// Package lock serializes writers to one habit record across processes.
//
// A lock is a directory created with mkdir, which fails atomically when the
// directory already exists. The holder writes info.json inside it so waiting
// processes can say who they are waiting for, and locks older than the stale
// threshold are removed.
package lock

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rileyhilliard/tally/internal/errors"
)

// Options controls waiting and stale detection.
type Options struct {
	Timeout time.Duration // how long Acquire waits; 0 tries once
	Stale   time.Duration // locks older than this are removed; 0 never
	Poll    time.Duration // delay between attempts
}

// DefaultOptions suits short CLI commands.
func DefaultOptions() Options {
	return Options{
		Timeout: 5 * time.Second,
		Stale:   2 * time.Minute,
		Poll:    100 * time.Millisecond,
	}
}

// Lock is a held lock directory.
type Lock struct {
	Dir   string
	Owner Owner
}

// Acquire takes the lock at dir, waiting up to opts.Timeout.
// Stale locks (older than opts.Stale) are removed.
func Acquire(ctx context.Context, dir, command string, opts Options) (*Lock, error) {
	if opts.Poll <= 0 {
		opts.Poll = DefaultOptions().Poll
	}
	deadline := time.Now().Add(opts.Timeout)

	for {
		l, err := TryAcquire(dir, command, opts.Stale)
		if err == nil {
			return l, nil
		}
		if !stderrors.Is(err, ErrLocked) {
			return nil, err
		}

		if time.Now().After(deadline) {
			return nil, errors.New(errors.ErrStore,
				fmt.Sprintf("Timed out waiting for the habit data lock after %s", opts.Timeout),
				fmt.Sprintf("Lock held by: %s. Close the other tally or remove %s if it crashed.", Holder(dir), dir)).WithReason(errors.ReasonLocked)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(opts.Poll):
		}
	}
}

// TryAcquire makes one attempt. It returns ErrLocked when another holder is
// active.
func TryAcquire(dir, command string, stale time.Duration) (*Lock, error) {
	if err := os.MkdirAll(filepath.Dir(dir), 0755); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrStore,
			"Can't create the lock directory",
			"Check you can write to "+filepath.Dir(dir))
	}

	if isStale(dir, stale) {
		_ = os.RemoveAll(dir)
	}

	if err := os.Mkdir(dir, 0755); err != nil {
		if os.IsExist(err) {
			return nil, ErrLocked
		}
		return nil, errors.WrapWithCode(err, errors.ErrStore,
			"Failed to create lock "+dir,
			"Check directory permissions")
	}

	owner := currentOwner(command)
	if err := writeOwner(dir, owner); err != nil {
		_ = os.RemoveAll(dir)
		return nil, errors.WrapWithCode(err, errors.ErrStore,
			"Failed to write lock info file",
			"Check disk space and permissions")
	}

	return &Lock{Dir: dir, Owner: owner}, nil
}

// Release removes the lock, allowing others to acquire it.
func (l *Lock) Release() error {
	if l == nil {
		return nil
	}
	return ForceRelease(l.Dir)
}

// ForceRelease removes a lock directory regardless of who holds it.
func ForceRelease(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return errors.WrapWithCode(err, errors.ErrStore,
			fmt.Sprintf("Failed to remove lock directory: %s", dir),
			"Remove it by hand")
	}
	return nil
}

// Holder describes who holds the lock at dir, or "unknown".
func Holder(dir string) string {
	o, err := readOwner(dir)
	if err != nil {
		return "unknown"
	}
	return o.String()
}

// isStale reports whether the lock's info file is older than threshold. A
// lock directory without readable info is judged by its own mtime so a crash
// between mkdir and the info write doesn't wedge it forever.
func isStale(dir string, threshold time.Duration) bool {
	if threshold <= 0 {
		return false
	}

	if o, err := readOwner(dir); err == nil {
		return time.Since(o.Since) > threshold
	}

	st, err := os.Stat(dir)
	if err != nil {
		return false
	}
	return time.Since(st.ModTime()) > threshold
}
