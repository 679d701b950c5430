package tracker

import "strings"

// Signal is a set of change notifications raised by one event.
type Signal uint8

const (
	SignalStatsChanged Signal = 1 << iota
	SignalNameChanged
	SignalHeaderChanged
	SignalDayCompleted
	SignalReset
)

var signalNames = []struct {
	s    Signal
	name string
}{
	{SignalStatsChanged, "stats"},
	{SignalNameChanged, "name"},
	{SignalHeaderChanged, "header"},
	{SignalDayCompleted, "day-complete"},
	{SignalReset, "reset"},
}

// Has reports whether every bit in o is set.
func (s Signal) Has(o Signal) bool {
	return o != 0 && s&o == o
}

// String lists the set signals, e.g. "stats|day-complete".
func (s Signal) String() string {
	if s == 0 {
		return "none"
	}
	var parts []string
	for _, n := range signalNames {
		if s.Has(n.s) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// EventKind identifies a user action.
type EventKind int

const (
	EventRename EventKind = iota
	EventToggle
	EventSetStart
	EventReset
)

// String returns a human-readable label for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventRename:
		return "rename"
	case EventToggle:
		return "toggle"
	case EventSetStart:
		return "set-start"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event is a user action against the tracker. Habit and Day are 0-based and
// only meaningful for the kinds that use them; Text carries the new name or
// start date.
type Event struct {
	Kind  EventKind
	Habit int
	Day   int
	Text  string
}

// Rename builds a rename event.
func Rename(habit int, text string) Event {
	return Event{Kind: EventRename, Habit: habit, Text: text}
}

// Toggle builds a toggle event.
func Toggle(habit, day int) Event {
	return Event{Kind: EventToggle, Habit: habit, Day: day}
}

// SetStart builds a start date event.
func SetStart(text string) Event {
	return Event{Kind: EventSetStart, Text: text}
}

// ResetAll builds a reset event.
func ResetAll() Event {
	return Event{Kind: EventReset}
}

// Outcome is the result of dispatching one event.
type Outcome struct {
	Signals  Signal
	Accepted bool // false when the event was rejected (e.g. empty name)
	Value    bool // new cell value for toggles
}

// Notification is delivered to listeners after an accepted event.
type Notification struct {
	Signals Signal
	Event   Event
}

// Listener receives notifications synchronously on the dispatching goroutine.
type Listener func(Notification)
