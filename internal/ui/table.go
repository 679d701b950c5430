package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/tally/internal/tracker"
)

// TableColumn is a titled column of fixed width.
type TableColumn struct {
	Title string
	Width int
}

// NewTable builds an unfocused bubbles table sized to its rows.
func NewTable(columns []TableColumn, rows []table.Row) table.Model {
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.Column{
			Title: c.Title,
			Width: c.Width,
		}
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1), // +1 for header
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(string(ColorMuted))).
		BorderBottom(true).
		Bold(true).
		Foreground(lipgloss.Color(string(ColorPrimary)))
	s.Cell = s.Cell.
		Foreground(lipgloss.Color(string(ColorPrimary)))
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(string(ColorPrimary))).
		Background(lipgloss.Color(string(ColorMuted))).
		Bold(false)

	t.SetStyles(s)
	return t
}

// RenderSimpleTable renders rows as a static table for command output. No
// rows renders nothing.
func RenderSimpleTable(columns []TableColumn, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row(row)
	}

	t := NewTable(columns, tableRows)
	return t.View()
}

// RenderHabitTable renders per-habit completion as a table: index, name,
// checked days and percent bar.
func RenderHabitTable(s tracker.State, st tracker.Stats) string {
	if len(s.Habits) == 0 {
		return "No habits to show"
	}

	columns := []TableColumn{
		{Title: "#", Width: 3},
		{Title: "Habit", Width: 20},
		{Title: "Done", Width: 6},
		{Title: "Progress", Width: 18},
	}

	rows := make([][]string, len(s.Habits))
	for i, name := range s.Habits {
		if name == "" {
			name = tracker.Placeholder
		}
		rows[i] = []string{
			fmt.Sprintf("%d", i+1),
			truncate(name, 20),
			fmt.Sprintf("%d/%d", st.Completed[i], tracker.Days),
			progressCell(st.HabitPercent[i]),
		}
	}

	return RenderSimpleTable(columns, rows)
}

// RenderDayTable renders one row per window day: number, date label, habits
// checked and percent bar. Complete days are marked in the last column.
func RenderDayTable(s tracker.State, st tracker.Stats) string {
	columns := []TableColumn{
		{Title: "Day", Width: 4},
		{Title: "Date", Width: 7},
		{Title: "Done", Width: 6},
		{Title: "Progress", Width: 16},
		{Title: "", Width: 2},
	}

	labels := tracker.DateLabels(s.Start, tracker.Days)
	rows := make([][]string, tracker.Days)
	for d := range rows {
		mark := ""
		if tracker.DayComplete(s, d) {
			mark = SymbolChecked
		}
		rows[d] = []string{
			fmt.Sprintf("%d", d+1),
			labels[d].String(),
			fmt.Sprintf("%d/%d", st.DoneOnDay[d], len(s.Habits)),
			progressCell(st.DayPercent[d]),
			mark,
		}
	}
	return RenderSimpleTable(columns, rows)
}

// progressCell is a plain bar; bubbles/table truncates styled cells.
func progressCell(percent float64) string {
	const width = 10
	filled := int(clampPercent(percent) / 100 * width)
	return strings.Repeat(string(progressFilled), filled) +
		strings.Repeat(string(progressEmpty), width-filled) +
		FormatPercent(percent)
}

// padRight pads a string to the specified width.
func padRight(s string, width int) string {
	// Account for ANSI codes when calculating visible length
	visibleLen := lipgloss.Width(s)
	if visibleLen >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visibleLen)
}
