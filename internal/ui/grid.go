package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/tally/internal/tracker"
)

const (
	cellWidth        = 3
	defaultNameWidth = 16
	gridBarWidth     = 10
	indexWidth       = 4
)

// GridCursor marks the focused cell.
type GridCursor struct {
	Habit int
	Day   int
}

// GridEdit replaces one habit name with an in-progress editor view.
type GridEdit struct {
	Habit int
	View  string
}

// GridOptions tunes RenderGrid. The zero value renders a plain grid.
type GridOptions struct {
	Cursor    *GridCursor
	Edit      *GridEdit
	NameWidth int
}

// RenderGrid draws the habit × day grid with week and date headers, one row
// per habit ending in its completion bar, and a per-day sparkline footer.
// s must already be reconciled.
func RenderGrid(s tracker.State, st tracker.Stats, opts GridOptions) string {
	nameWidth := opts.NameWidth
	if nameWidth <= 0 {
		nameWidth = defaultNameWidth
	}
	lead := strings.Repeat(" ", indexWidth+nameWidth)

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(ColorSecondary)
	mutedStyle := MutedStyle()
	completeStyle := lipgloss.NewStyle().Bold(true).Foreground(ColorSuccess)

	var sb strings.Builder

	// Week N headers, each spanning DaysPerWeek cells.
	sb.WriteString(lead)
	for _, w := range tracker.WeekLabels(tracker.Days) {
		sb.WriteString(headerStyle.Render(padRight(w, tracker.DaysPerWeek*cellWidth)))
	}
	sb.WriteString("\n")

	// Weekday and day-of-month rows.
	labels := tracker.DateLabels(s.Start, tracker.Days)
	var wd, dn strings.Builder
	wd.WriteString(lead)
	dn.WriteString(lead)
	for d, l := range labels {
		weekday, day := tracker.Placeholder, tracker.Placeholder
		if l.Valid {
			weekday = l.Weekday[:2]
			day = fmt.Sprintf("%d", l.Day)
		}
		style := mutedStyle
		if tracker.DayComplete(s, d) {
			style = completeStyle
		}
		wd.WriteString(style.Render(padLeft(weekday, cellWidth-1)) + " ")
		dn.WriteString(style.Render(padLeft(day, cellWidth-1)) + " ")
	}
	sb.WriteString(wd.String() + "\n")
	sb.WriteString(dn.String() + "\n")

	for h := range s.Habits {
		sb.WriteString(mutedStyle.Render(padLeft(fmt.Sprintf("%d", h+1), indexWidth-2)) + "  ")
		sb.WriteString(renderName(s.Habits[h], h, nameWidth, opts.Edit))

		for d := 0; d < tracker.Days; d++ {
			sb.WriteString(renderCell(s.Grid[h][d], opts.Cursor != nil && opts.Cursor.Habit == h && opts.Cursor.Day == d))
		}

		sb.WriteString(mutedStyle.Render(fmt.Sprintf(" %2d/%d ", st.Completed[h], tracker.Days)))
		sb.WriteString(RenderProgressBar(st.HabitPercent[h], gridBarWidth))
		sb.WriteString("\n")
	}

	if len(s.Habits) == 0 {
		sb.WriteString(mutedStyle.Render("  no habits") + "\n")
	}

	sb.WriteString(padRight(mutedStyle.Render("  Day %"), indexWidth+nameWidth))
	for _, p := range st.DayPercent {
		sb.WriteString(" " + RenderSparkline([]float64{p}) + " ")
	}
	sb.WriteString("\n")

	return sb.String()
}

// RenderStatsSummary renders best/worst habits and the day buckets.
func RenderStatsSummary(st tracker.Stats) string {
	label := lipgloss.NewStyle().Foreground(ColorSecondary)
	value := lipgloss.NewStyle().Bold(true)

	pick := func(p tracker.Pick) string {
		if p.Label() == tracker.Placeholder {
			return value.Render(tracker.Placeholder)
		}
		return value.Render(p.Label()) + MutedStyle().Render(fmt.Sprintf(" (%d/%d)", p.Count, tracker.Days))
	}

	var sb strings.Builder
	sb.WriteString(label.Render("Best: ") + pick(st.Best))
	sb.WriteString("   ")
	sb.WriteString(label.Render("Worst: ") + pick(st.Worst))
	sb.WriteString("\n")

	sb.WriteString(label.Render("Perfect days: ") + SuccessStyle().Render(fmt.Sprintf("%d", st.PerfectDays)))
	sb.WriteString("   ")
	sb.WriteString(label.Render("Half days: ") + WarningStyle().Render(fmt.Sprintf("%d", st.HalfDays)))
	sb.WriteString("   ")
	sb.WriteString(label.Render("Zero days: ") + MutedStyle().Render(fmt.Sprintf("%d", st.ZeroDays)))
	sb.WriteString("   ")
	sb.WriteString(label.Render("Overall:") + FormatPercent(st.Overall))
	sb.WriteString("\n")

	return sb.String()
}

func renderName(name string, index, width int, edit *GridEdit) string {
	if edit != nil && edit.Habit == index {
		return padRight(truncate(edit.View, width), width)
	}
	if name == "" {
		return MutedStyle().Render(padRight("(unnamed)", width))
	}
	return padRight(truncate(name, width-1), width)
}

func renderCell(checked, focused bool) string {
	glyph := SymbolUnchecked
	style := MutedStyle()
	if checked {
		glyph = SymbolChecked
		style = lipgloss.NewStyle().Foreground(ColorChecked)
	}
	if focused {
		style = style.Reverse(true)
	}
	return " " + style.Render(glyph) + " "
}

// truncate shortens s to width cells, ending in an ellipsis when cut.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > width {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}

// padLeft right-aligns s within width cells.
func padLeft(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", width-w) + s
}
