package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/tally/internal/errors"
	"github.com/rileyhilliard/tally/internal/tracker"
	"github.com/rileyhilliard/tally/internal/ui"
	"github.com/rileyhilliard/tally/internal/util"
	"golang.org/x/term"
)

// showCommand prints the grid (or a per-habit table) and the summary line.
func showCommand(ctx context.Context, w io.Writer, asTable bool) error {
	a, err := openApp(ctx, appOptions{})
	if err != nil {
		return err
	}
	defer a.Close()

	state := a.tracker.State()
	stats := tracker.Compute(state)

	ui.PrintHeader(w, ui.HeaderInfo{
		Title:   "tally",
		Version: displayVersion(),
		Range:   dateRange(state.Start),
		Today:   todayNote(state.Start, time.Now()),
	})

	if asTable {
		fmt.Fprintln(w, ui.RenderHabitTable(state, stats))
	} else {
		fmt.Fprintln(w, ui.RenderGrid(state, stats, ui.GridOptions{}))
	}
	fmt.Fprintln(w, ui.RenderStatsSummary(stats))
	return nil
}

// toggleCommand flips one cell and reports the new value.
func toggleCommand(ctx context.Context, w io.Writer, habitArg, dayArg string) error {
	a, err := openApp(ctx, appOptions{hold: true, command: "tally toggle"})
	if err != nil {
		return err
	}
	defer a.Close()

	habit, err := parseHabitArg(a.tracker, habitArg)
	if err != nil {
		return err
	}
	day, err := parseDayArg(a.tracker.Start(), dayArg)
	if err != nil {
		return err
	}

	out, err := a.tracker.Dispatch(ctx, tracker.Toggle(habit, day))
	if err != nil {
		return err
	}

	mark, verb := ui.SymbolUnchecked, "unchecked"
	if out.Value {
		mark, verb = ui.SymbolChecked, "checked"
	}
	fmt.Fprintf(w, "%s %s %s on day %d\n", mark, habitLabel(a.tracker, habit), verb, day+1)

	if out.Signals.Has(tracker.SignalDayCompleted) && a.cfg.UI.Celebrate {
		fmt.Fprintln(w, ui.SuccessStyle().Render(fmt.Sprintf("%s Day %d complete! Every habit checked.", ui.SymbolParty, day+1)))
	}
	return nil
}

// renameCommand sets a habit's name. A blank name is an error here because a
// script has no other way to learn it was ignored.
func renameCommand(ctx context.Context, w io.Writer, habitArg string, nameParts []string) error {
	a, err := openApp(ctx, appOptions{hold: true, command: "tally rename"})
	if err != nil {
		return err
	}
	defer a.Close()

	habit, err := parseHabitArg(a.tracker, habitArg)
	if err != nil {
		return err
	}

	name := strings.Join(nameParts, " ")
	before := habitLabel(a.tracker, habit)
	out, err := a.tracker.Dispatch(ctx, tracker.Rename(habit, name))
	if err != nil {
		return err
	}
	if !out.Accepted {
		return errors.New(errors.ErrInput,
			"Habit names can't be blank",
			fmt.Sprintf("Habit %d keeps its current name", habit+1)).WithReason(errors.ReasonBlank)
	}

	fmt.Fprintf(w, "%s %s is now %q\n", ui.SymbolSuccess, before, a.tracker.Habit(habit))
	return nil
}

// startCommand stores the start date. Text that isn't a date is kept as typed
// and only produces a warning, matching the board. An empty date isn't kept:
// the next load fills in the configured start.
func startCommand(ctx context.Context, w io.Writer, text string) error {
	a, err := openApp(ctx, appOptions{hold: true, command: "tally start"})
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.tracker.SetStartDate(ctx, text); err != nil {
		return err
	}

	if text == "" {
		ui.PrintWarning(w, fmt.Sprintf("Start date cleared; the next run goes back to %s", a.store.Defaults().Start))
		return nil
	}
	if _, ok := tracker.ParseStart(text); !ok {
		ui.PrintWarning(w, fmt.Sprintf("Start date saved, but %q isn't a YYYY-MM-DD date; day labels will show %s", text, tracker.Placeholder))
		return nil
	}
	fmt.Fprintf(w, "%s Tracking %s\n", ui.SymbolSuccess, dateRange(text))
	return nil
}

// confirmReset asks before wiping data. It is a variable so tests can stub it.
var confirmReset = func() (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, errors.New(errors.ErrInput,
			"Reset needs confirmation",
			"Run 'tally reset --yes' when not attached to a terminal")
	}

	var confirm bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Reset all habits and checks?").
				Description("Names, checked days and the start date go back to defaults. This can't be undone.").
				Affirmative("Reset").
				Negative("Cancel").
				Value(&confirm),
		),
	)
	if err := form.Run(); err != nil {
		return false, errors.WrapWithCode(err, errors.ErrInput,
			"Failed to get confirmation",
			"Run 'tally reset --yes' to skip the prompt")
	}
	return confirm, nil
}

// resetCommand clears all data after confirmation.
func resetCommand(ctx context.Context, w io.Writer, yes bool) error {
	if !yes {
		ok, err := confirmReset()
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(w, "Cancelled.")
			return nil
		}
	}

	a, err := openApp(ctx, appOptions{hold: true, command: "tally reset"})
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.tracker.Reset(ctx); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s Reset to %s starting %s\n", ui.SymbolSuccess, util.Count(a.tracker.HabitCount(), "empty habit", "empty habits"), a.tracker.Start())
	return nil
}

// todayNote says which window day now falls on, or "" outside the window.
func todayNote(start string, now time.Time) string {
	day, ok := tracker.DayOf(start, now)
	if !ok {
		return ""
	}
	return fmt.Sprintf("today is day %d", day+1)
}

// dateRange renders "first → last" for the tracked window, or "" when start
// isn't a date.
func dateRange(start string) string {
	first, ok := tracker.ParseStart(start)
	if !ok {
		return ""
	}
	last := first.AddDate(0, 0, tracker.Days-1)
	return first.Format(tracker.DateLayout) + " → " + last.Format(tracker.DateLayout)
}
