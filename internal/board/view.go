package board

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/tally/internal/tracker"
	"github.com/rileyhilliard/tally/internal/ui"
)

// footerHints lists the grid-mode shortcuts shown under the board.
var footerHints = []HelpBinding{
	{Key: "←↑↓→", Desc: "move"},
	{Key: "space", Desc: "toggle"},
	{Key: "e", Desc: "rename"},
	{Key: "d", Desc: "start date"},
	{Key: "R", Desc: "reset"},
	{Key: "?", Desc: "help"},
	{Key: "q", Desc: "quit"},
}

// renderBoard assembles header, grid, stats, chart and footer.
func (m Model) renderBoard() string {
	state := m.tracker.State()
	stats := tracker.Compute(state)

	var sections []string

	if strip := m.confetti.render(m.stripWidth()); strip != "" {
		sections = append(sections, strip)
	}

	sections = append(sections, m.renderHeader(state))

	opts := ui.GridOptions{}
	if len(state.Habits) > 0 {
		opts.Cursor = &ui.GridCursor{Habit: m.habit, Day: m.day}
	}
	if m.mode == ModeRename {
		opts.Edit = &ui.GridEdit{Habit: m.habit, View: m.input.View()}
	}
	sections = append(sections, ui.RenderGrid(state, stats, opts))

	sections = append(sections, ui.RenderStatsSummary(stats))

	if m.opts.ChartHeight > 0 {
		chart := RenderBrailleChart(stats.DayPercent, tracker.Days, m.opts.ChartHeight)
		sections = append(sections, PanelStyle.Render(LabelStyle.Render("Daily completion")+"\n"+chart))
	}

	if line := m.renderPrompt(); line != "" {
		sections = append(sections, line)
	}
	if m.status != "" {
		style := StatusStyle
		if m.statusErr {
			style = StatusErrorStyle
		} else if m.confetti.active {
			style = CelebrateStyle
		}
		sections = append(sections, style.Render(m.status))
	}

	sections = append(sections, m.renderFooter())

	return strings.Join(sections, "\n")
}

func (m Model) renderHeader(state tracker.State) string {
	title := TitleStyle.Render(m.opts.Title)
	if m.opts.Version != "" {
		title += " " + StatusStyle.Render(m.opts.Version)
	}

	start := LabelStyle.Render("Start: ") + ValueStyle.Render(displayStart(state.Start))
	labels := tracker.DateLabels(state.Start, tracker.Days)
	if len(labels) > 0 && labels[0].Valid {
		start += StatusStyle.Render(fmt.Sprintf("  (%s → %s)", labels[0], labels[len(labels)-1]))
	}

	return title + "   " + start + "\n"
}

func (m Model) renderPrompt() string {
	switch m.mode {
	case ModeStartDate:
		return PromptStyle.Render("Start date ") + m.input.View() +
			StatusStyle.Render("  enter to save, esc to cancel")
	case ModeRename:
		return StatusStyle.Render(fmt.Sprintf("Renaming habit %d: enter to save, esc to cancel", m.habit+1))
	case ModeConfirmReset:
		return PromptStyle.Render("Reset all habits and checks? ") + StatusStyle.Render("(y/n)")
	}
	return ""
}

func (m Model) renderFooter() string {
	parts := make([]string, len(footerHints))
	for i, h := range footerHints {
		parts[i] = FooterKeyStyle.Render(h.Key) + " " + h.Desc
	}
	return FooterStyle.Render(strings.Join(parts, "  "))
}

func displayStart(start string) string {
	if strings.TrimSpace(start) == "" {
		return tracker.Placeholder
	}
	return start
}
