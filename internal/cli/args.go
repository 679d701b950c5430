package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rileyhilliard/tally/internal/errors"
	"github.com/rileyhilliard/tally/internal/tracker"
)

// parseHabitArg resolves a 1-based habit number or a habit name (case
// insensitive) to a 0-based index.
func parseHabitArg(tr *tracker.Tracker, arg string) (int, error) {
	arg = strings.TrimSpace(arg)
	n := tr.HabitCount()
	if n == 0 {
		return 0, errors.New(errors.ErrInput,
			"There are no habits to pick from",
			"Set tracker.habits in .tally.yaml and run 'tally reset'").WithReason(errors.ReasonNotFound)
	}

	if i, err := strconv.Atoi(arg); err == nil {
		if i < 1 || i > n {
			return 0, errors.NewOutOfRange("habit", i, n)
		}
		return i - 1, nil
	}

	for i := 0; i < n; i++ {
		if strings.EqualFold(tr.Habit(i), arg) && arg != "" {
			return i, nil
		}
	}
	return 0, errors.New(errors.ErrInput,
		fmt.Sprintf("No habit named '%s'", arg),
		"Use the habit number from 'tally show', or its exact name").WithReason(errors.ReasonNotFound)
}

// parseDayArg resolves a 1-based day number, or a YYYY-MM-DD date inside the
// window that begins at start, to a 0-based day index.
func parseDayArg(start, arg string) (int, error) {
	arg = strings.TrimSpace(arg)

	if d, err := strconv.Atoi(arg); err == nil {
		if d < 1 || d > tracker.Days {
			return 0, errors.NewOutOfRange("day", d, tracker.Days)
		}
		return d - 1, nil
	}

	date, ok := tracker.ParseStart(arg)
	if !ok {
		return 0, errors.New(errors.ErrInput,
			fmt.Sprintf("'%s' isn't a day number or a date", arg),
			fmt.Sprintf("Use 1-%d or a date like 2026-01-05", tracker.Days))
	}
	first, ok := tracker.ParseStart(start)
	if !ok {
		return 0, errors.New(errors.ErrInput,
			fmt.Sprintf("The start date '%s' isn't a date, so days can't be picked by date", start),
			"Fix it with 'tally start YYYY-MM-DD' or use a day number")
	}

	offset, ok := tracker.DayOf(start, date)
	if !ok {
		last := first.AddDate(0, 0, tracker.Days-1)
		return 0, errors.New(errors.ErrInput,
			fmt.Sprintf("%s is outside the tracked window", arg),
			fmt.Sprintf("Pick a date from %s to %s", first.Format(tracker.DateLayout), last.Format(tracker.DateLayout)))
	}
	return offset, nil
}

// habitLabel is the name shown in command output.
func habitLabel(tr *tracker.Tracker, index int) string {
	if name := tr.Habit(index); name != "" {
		return name
	}
	return fmt.Sprintf("habit %d", index+1)
}
