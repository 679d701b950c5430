package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rileyhilliard/tally/internal/errors"
	"github.com/rileyhilliard/tally/internal/tracker"
	"github.com/rileyhilliard/tally/internal/ui"
)

// PickReport is a best or worst habit in machine output.
type PickReport struct {
	Habit int    `json:"habit"` // 1-based, 0 when there is none
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// HabitReport is one habit row in machine output.
type HabitReport struct {
	Habit     int     `json:"habit"`
	Name      string  `json:"name"`
	Completed int     `json:"completed"`
	Percent   float64 `json:"percent"`
}

// DayReport is one day column in machine output.
type DayReport struct {
	Day      int     `json:"day"`
	Label    string  `json:"label"`
	Done     int     `json:"done"`
	Percent  float64 `json:"percent"`
	Complete bool    `json:"complete"`
}

// StatsReport is the --json payload of 'tally stats'.
type StatsReport struct {
	Start       string        `json:"start"`
	Habits      []HabitReport `json:"habits"`
	Days        []DayReport   `json:"days"`
	Best        PickReport    `json:"best"`
	Worst       PickReport    `json:"worst"`
	PerfectDays int           `json:"perfect_days"`
	HalfDays    int           `json:"half_days"`
	ZeroDays    int           `json:"zero_days"`
	Overall     float64       `json:"overall"`
}

// buildStatsReport flattens state and stats into the machine-readable shape.
func buildStatsReport(s tracker.State) StatsReport {
	st := tracker.Compute(s)
	labels := tracker.DateLabels(s.Start, tracker.Days)

	r := StatsReport{
		Start:       s.Start,
		Habits:      make([]HabitReport, len(s.Habits)),
		Days:        make([]DayReport, tracker.Days),
		Best:        pickReport(st.Best),
		Worst:       pickReport(st.Worst),
		PerfectDays: st.PerfectDays,
		HalfDays:    st.HalfDays,
		ZeroDays:    st.ZeroDays,
		Overall:     st.Overall,
	}
	for i, name := range s.Habits {
		r.Habits[i] = HabitReport{
			Habit:     i + 1,
			Name:      name,
			Completed: st.Completed[i],
			Percent:   st.HabitPercent[i],
		}
	}
	for d := range r.Days {
		r.Days[d] = DayReport{
			Day:      d + 1,
			Label:    labels[d].String(),
			Done:     st.DoneOnDay[d],
			Percent:  st.DayPercent[d],
			Complete: tracker.DayComplete(s, d),
		}
	}
	return r
}

func pickReport(p tracker.Pick) PickReport {
	if !p.OK {
		return PickReport{Name: p.Label()}
	}
	return PickReport{Habit: p.Index + 1, Name: p.Label(), Count: p.Count}
}

// statsCommand prints the per-habit table, optionally the per-day table, the
// summary and the daily sparkline, or the JSON envelope in machine mode.
func statsCommand(ctx context.Context, w io.Writer, byDay bool) error {
	a, err := openApp(ctx, appOptions{})
	if err != nil {
		return err
	}
	defer a.Close()

	state := a.tracker.State()
	if MachineMode() {
		return WriteJSONSuccess(w, buildStatsReport(state))
	}

	stats := tracker.Compute(state)
	fmt.Fprintln(w, ui.RenderHabitTable(state, stats))
	if byDay {
		fmt.Fprintln(w, ui.RenderDayTable(state, stats))
	}
	fmt.Fprintln(w, ui.RenderStatsSummary(stats))
	fmt.Fprintf(w, "Daily: %s\n", ui.RenderSparkline(stats.DayPercent))
	return nil
}

// chartCommand writes the daily completion chart as a PNG.
func chartCommand(ctx context.Context, w io.Writer, out string) error {
	a, err := openApp(ctx, appOptions{})
	if err != nil {
		return err
	}
	defer a.Close()

	state := a.tracker.State()
	stats := tracker.Compute(state)

	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.WrapWithCode(err, errors.ErrExec,
				"Can't create the chart directory",
				"Check you can write to "+dir)
		}
	}

	f, err := os.Create(out)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrExec,
			"Can't create "+out,
			"Check the path is writable")
	}

	title := "Daily completion"
	if r := dateRange(state.Start); r != "" {
		title += " " + r
	}
	if err := ui.RenderChartPNG(f, title, stats.DayPercent); err != nil {
		f.Close()
		return errors.WrapWithCode(err, errors.ErrExec,
			"Failed to render chart",
			"This is unexpected - please report it")
	}
	if err := f.Close(); err != nil {
		return errors.WrapWithCode(err, errors.ErrExec,
			"Failed to write "+out,
			"Check there is free disk space")
	}

	fmt.Fprintf(w, "%s Wrote %s\n", ui.SymbolSuccess, out)
	return nil
}
