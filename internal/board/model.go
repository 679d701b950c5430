package board

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/tally/internal/tracker"
)

// Options configures the board.
type Options struct {
	// Title is shown in the header.
	Title string
	// Version is shown next to the title when set.
	Version string
	// Celebrate enables the confetti animation on fully completed days.
	Celebrate bool
	// ChartHeight is the number of rows of the completion chart. 0 hides it.
	ChartHeight int
	// Seed drives confetti placement.
	Seed int64
}

// nameLimit caps habit names typed into the board.
const nameLimit = 64

// Model is the Bubble Tea model for the habit board.
type Model struct {
	ctx     context.Context
	tracker *tracker.Tracker
	opts    Options

	habit int // cursor row
	day   int // cursor column

	mode     Mode
	input    textinput.Model
	showHelp bool
	quitting bool

	status    string
	statusErr bool

	confetti confetti

	width  int
	height int
}

// NewModel creates a board over tr. ctx is passed to every tracker call.
func NewModel(ctx context.Context, tr *tracker.Tracker, opts Options) Model {
	if opts.Title == "" {
		opts.Title = "tally"
	}

	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = nameLimit

	return Model{
		ctx:      ctx,
		tracker:  tr,
		opts:     opts,
		input:    input,
		confetti: newConfetti(opts.Seed),
	}
}

// Init has nothing to start; the board waits for keys.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case ModeRename, ModeStartDate:
			return m, m.handleInputKey(msg)
		case ModeConfirmReset:
			return m, m.handleConfirmKey(msg)
		}
		if handled, cmd := m.HandleKeyMsg(msg); handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case confettiTickMsg:
		return m, m.confetti.advance(msg, m.stripWidth())
	}

	return m, nil
}

// View renders the board.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}
	return m.renderBoard()
}

// Cursor returns the focused habit and day.
func (m Model) Cursor() (habit, day int) {
	return m.habit, m.day
}

// Mode returns the current input mode.
func (m Model) Mode() Mode {
	return m.mode
}

// Celebrating reports whether the confetti animation is running.
func (m Model) Celebrating() bool {
	return m.confetti.active
}

// dispatch sends ev to the tracker and reacts to the signals it returns.
func (m *Model) dispatch(ev tracker.Event) tea.Cmd {
	out, err := m.tracker.Dispatch(m.ctx, ev)
	m.status, m.statusErr = "", false
	if err != nil {
		m.status, m.statusErr = err.Error(), true
	}
	if !out.Accepted {
		return nil
	}

	var cmd tea.Cmd
	switch {
	case out.Signals.Has(tracker.SignalReset):
		m.habit, m.day = 0, 0
		if err == nil {
			m.status = "All habits and checks cleared"
		}

	case out.Signals.Has(tracker.SignalDayCompleted):
		if err == nil {
			m.status = fmt.Sprintf("Day %d complete!", ev.Day+1)
		}
		if m.opts.Celebrate {
			cmd = m.confetti.start(ev.Day, m.stripWidth())
		}

	case out.Signals.Has(tracker.SignalHeaderChanged):
		if _, ok := tracker.ParseStart(ev.Text); !ok && err == nil {
			m.status = fmt.Sprintf("%q isn't a date (use %s); dates are hidden", ev.Text, tracker.DateLayout)
		}
	}

	m.clampCursor()
	return cmd
}

func (m *Model) beginInput(mode Mode, value, placeholder string) {
	m.mode = mode
	m.status = ""
	m.input.SetValue(value)
	m.input.Placeholder = placeholder
	m.input.CursorEnd()
	m.input.Focus()
}

func (m *Model) endInput() {
	m.mode = ModeGrid
	m.input.Blur()
	m.input.SetValue("")
}

func (m *Model) clampCursor() {
	if n := m.tracker.HabitCount(); m.habit >= n {
		m.habit = n - 1
	}
	if m.habit < 0 {
		m.habit = 0
	}
}

// stripWidth is the width of the confetti strip.
func (m Model) stripWidth() int {
	if m.width > 0 {
		return m.width
	}
	return 80
}
