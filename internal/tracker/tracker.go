package tracker

import (
	"context"
	"strings"

	"github.com/rileyhilliard/tally/internal/errors"
	"github.com/rileyhilliard/tally/internal/logger"
)

// Saver persists state after every accepted mutation.
type Saver interface {
	Save(ctx context.Context, s State) error
	Reset(ctx context.Context) (State, error)
}

// Tracker is the single owner of a State. Every mutation goes through
// Dispatch: mutate, save, then notify listeners. A failed save keeps the
// in-memory change and is returned to the caller.
//
// Tracker is not safe for concurrent use.
type Tracker struct {
	state     State
	saver     Saver
	log       logger.Logger
	listeners []Listener
}

// New takes ownership of state. A nil saver keeps everything in memory; a nil
// logger means logger.Default().
func New(state State, saver Saver, log logger.Logger) *Tracker {
	log = logger.Named(log, "tracker")
	state.Reconcile()
	return &Tracker{state: state, saver: saver, log: log}
}

// Subscribe registers l for every accepted event.
func (t *Tracker) Subscribe(l Listener) {
	t.listeners = append(t.listeners, l)
}

// State returns a copy of the current state.
func (t *Tracker) State() State {
	return t.state.Clone()
}

// Stats recomputes statistics from scratch.
func (t *Tracker) Stats() Stats {
	return Compute(t.state)
}

// HabitCount returns the number of habit rows.
func (t *Tracker) HabitCount() int {
	return len(t.state.Habits)
}

// Habit returns the name at index, or "" when out of range.
func (t *Tracker) Habit(index int) string {
	if index < 0 || index >= len(t.state.Habits) {
		return ""
	}
	return t.state.Habits[index]
}

// Cell returns grid[habit][day], false when out of range.
func (t *Tracker) Cell(habit, day int) bool {
	return cell(t.state, habit, day)
}

// Start returns the raw start date text.
func (t *Tracker) Start() string {
	return t.state.Start
}

// DayComplete reports whether every habit is checked on day.
func (t *Tracker) DayComplete(day int) bool {
	return DayComplete(t.state, day)
}

// SetHabitName trims raw and stores it at index. An empty result is rejected:
// it returns false, nothing is saved and the caller should restore the prior
// name in its display.
func (t *Tracker) SetHabitName(ctx context.Context, index int, raw string) (bool, error) {
	out, err := t.Dispatch(ctx, Rename(index, raw))
	return out.Accepted, err
}

// ToggleCell flips grid[habit][day] and returns the new value.
func (t *Tracker) ToggleCell(ctx context.Context, habit, day int) (bool, error) {
	out, err := t.Dispatch(ctx, Toggle(habit, day))
	return out.Value, err
}

// SetStartDate stores text verbatim; it does not need to parse.
func (t *Tracker) SetStartDate(ctx context.Context, text string) error {
	_, err := t.Dispatch(ctx, SetStart(text))
	return err
}

// Reset clears persisted state and reinitializes to defaults.
func (t *Tracker) Reset(ctx context.Context) error {
	_, err := t.Dispatch(ctx, ResetAll())
	return err
}

// Dispatch applies ev and notifies listeners when it was accepted.
func (t *Tracker) Dispatch(ctx context.Context, ev Event) (Outcome, error) {
	var (
		out Outcome
		err error
	)

	switch ev.Kind {
	case EventRename:
		out, err = t.rename(ctx, ev.Habit, ev.Text)
	case EventToggle:
		out, err = t.toggle(ctx, ev.Habit, ev.Day)
	case EventSetStart:
		out, err = t.setStart(ctx, ev.Text)
	case EventReset:
		out, err = t.reset(ctx)
	default:
		return Outcome{}, errors.New(errors.ErrInput,
			"Unknown tracker event: "+ev.Kind.String(),
			"")
	}

	if out.Accepted {
		t.log.Debug("%s accepted: signals=%s", ev.Kind, out.Signals)
		t.notify(Notification{Signals: out.Signals, Event: ev})
	}
	return out, err
}

func (t *Tracker) rename(ctx context.Context, index int, raw string) (Outcome, error) {
	if err := t.checkHabit(index); err != nil {
		return Outcome{}, err
	}

	name := strings.TrimSpace(raw)
	if name == "" {
		t.log.Debug("rename of habit %d rejected: empty name", index)
		return Outcome{}, nil
	}

	t.state.Habits[index] = name
	out := Outcome{Accepted: true, Signals: SignalStatsChanged | SignalNameChanged}
	return out, t.save(ctx)
}

func (t *Tracker) toggle(ctx context.Context, habit, day int) (Outcome, error) {
	if err := t.checkHabit(habit); err != nil {
		return Outcome{}, err
	}
	if day < 0 || day >= Days {
		return Outcome{}, errors.NewOutOfRange("day", day+1, Days)
	}

	value := !t.state.Grid[habit][day]
	t.state.Grid[habit][day] = value

	out := Outcome{Accepted: true, Value: value, Signals: SignalStatsChanged}
	err := t.save(ctx)
	if DayComplete(t.state, day) {
		out.Signals |= SignalDayCompleted
	}
	return out, err
}

func (t *Tracker) setStart(ctx context.Context, text string) (Outcome, error) {
	t.state.Start = text
	out := Outcome{Accepted: true, Signals: SignalHeaderChanged}
	return out, t.save(ctx)
}

func (t *Tracker) reset(ctx context.Context) (Outcome, error) {
	all := SignalStatsChanged | SignalNameChanged | SignalHeaderChanged | SignalReset

	if t.saver == nil {
		t.state = NewState(DefaultHabitCount, DefaultStart)
		return Outcome{Accepted: true, Signals: all}, nil
	}

	fresh, err := t.saver.Reset(ctx)
	if err != nil {
		return Outcome{}, errors.WrapWithCode(err, errors.ErrStore,
			"Could not reset habit data",
			"Check the data location is writable and try again")
	}
	fresh.Reconcile()
	t.state = fresh
	return Outcome{Accepted: true, Signals: all}, nil
}

func (t *Tracker) save(ctx context.Context) error {
	if t.saver == nil {
		return nil
	}
	if err := t.saver.Save(ctx, t.state); err != nil {
		t.log.Warn("save failed: %v", err)
		return errors.WrapWithCode(err, errors.ErrStore,
			"Could not save habit grid",
			"Check the data location is writable and try again")
	}
	return nil
}

func (t *Tracker) checkHabit(index int) error {
	if index < 0 || index >= len(t.state.Habits) {
		return errors.NewOutOfRange("habit", index+1, len(t.state.Habits))
	}
	return nil
}

func (t *Tracker) notify(n Notification) {
	for _, l := range t.listeners {
		l(n)
	}
}
