package lock

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rileyhilliard/tally/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentOwner(t *testing.T) {
	o := currentOwner("tally toggle")

	assert.NotEmpty(t, o.User)
	assert.NotEmpty(t, o.Host)
	assert.Equal(t, os.Getpid(), o.PID)
	assert.Equal(t, "tally toggle", o.Command)
	assert.Less(t, time.Since(o.Since), time.Second)
}

func TestOwner_String(t *testing.T) {
	o := Owner{User: "sam", Host: "laptop", PID: 4242}
	assert.Equal(t, "sam@laptop (pid 4242)", o.String())

	o.Command = "tally board"
	assert.Equal(t, "sam@laptop (pid 4242, tally board)", o.String())
}

func TestOwner_ReadWrite(t *testing.T) {
	dir := t.TempDir()
	o := Owner{User: "sam", Host: "laptop", PID: 7, Since: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
	require.NoError(t, writeOwner(dir, o))

	got, err := readOwner(dir)
	require.NoError(t, err)
	assert.Equal(t, o, got)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ownerFile), []byte("not json"), 0644))
	_, err = readOwner(dir)
	assert.Error(t, err)
	assert.Equal(t, "unknown", Holder(dir))
}

func TestTryAcquire_Exclusive(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data", "habits.lock")

	l, err := TryAcquire(dir, "first", 0)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, ownerFile))

	_, err = TryAcquire(dir, "second", 0)
	assert.ErrorIs(t, err, ErrLocked)
	assert.Contains(t, Holder(dir), "first")

	require.NoError(t, l.Release())
	assert.NoDirExists(t, dir)

	l2, err := TryAcquire(dir, "second", 0)
	require.NoError(t, err)
	require.NoError(t, l2.Release())
}

func TestTryAcquire_RemovesStaleLock(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "habits.lock")
	require.NoError(t, os.Mkdir(dir, 0755))

	old := Owner{User: "ghost", Host: "gone", PID: 1, Since: time.Now().Add(-time.Hour)}
	require.NoError(t, writeOwner(dir, old))

	_, err := TryAcquire(dir, "fresh", 0)
	assert.ErrorIs(t, err, ErrLocked, "no stale threshold keeps the lock")

	l, err := TryAcquire(dir, "fresh", time.Minute)
	require.NoError(t, err)
	assert.Contains(t, Holder(dir), "fresh")
	require.NoError(t, l.Release())
}

func TestTryAcquire_StaleWithoutInfo(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "habits.lock")
	require.NoError(t, os.Mkdir(dir, 0755))
	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(dir, past, past))

	l, err := TryAcquire(dir, "fresh", time.Minute)
	require.NoError(t, err)
	require.NoError(t, l.Release())
}

func TestAcquire_TimesOut(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "habits.lock")
	held, err := TryAcquire(dir, "holder", 0)
	require.NoError(t, err)
	defer held.Release()

	start := time.Now()
	_, err = Acquire(context.Background(), dir, "waiter", Options{Timeout: 50 * time.Millisecond, Poll: 10 * time.Millisecond})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrStore))
	assert.Contains(t, err.Error(), "holder")
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestAcquire_WaitsForRelease(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "habits.lock")
	held, err := TryAcquire(dir, "holder", 0)
	require.NoError(t, err)

	go func() {
		time.Sleep(30 * time.Millisecond)
		_ = held.Release()
	}()

	l, err := Acquire(context.Background(), dir, "waiter", Options{Timeout: 2 * time.Second, Poll: 5 * time.Millisecond})
	require.NoError(t, err)
	assert.Equal(t, "waiter", l.Owner.Command)
	require.NoError(t, l.Release())
}

func TestAcquire_Cancelled(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "habits.lock")
	held, err := TryAcquire(dir, "holder", 0)
	require.NoError(t, err)
	defer held.Release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = Acquire(ctx, dir, "waiter", Options{Timeout: time.Second, Poll: 5 * time.Millisecond})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRelease_Nil(t *testing.T) {
	var l *Lock
	assert.NoError(t, l.Release())
}

func TestHolder_Unknown(t *testing.T) {
	assert.Equal(t, "unknown", Holder(filepath.Join(t.TempDir(), "missing.lock")))
}
