package board

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/tally/internal/tracker"
)

// Mode is what the keyboard is currently driving.
type Mode int

const (
	ModeGrid Mode = iota
	ModeRename
	ModeStartDate
	ModeConfirmReset
)

// String returns a short label for the mode.
func (m Mode) String() string {
	switch m {
	case ModeGrid:
		return "grid"
	case ModeRename:
		return "rename"
	case ModeStartDate:
		return "start date"
	case ModeConfirmReset:
		return "confirm reset"
	default:
		return "grid"
	}
}

// Key bindings as constants for consistency.
const (
	KeyQuit       = "q"
	KeyQuitAlt    = "ctrl+c"
	KeyUp         = "up"
	KeyUpK        = "k"
	KeyDown       = "down"
	KeyDownJ      = "j"
	KeyLeft       = "left"
	KeyLeftH      = "h"
	KeyRight      = "right"
	KeyRightL     = "l"
	KeyFirstDay   = "home"
	KeyLastDay    = "end"
	KeyToggle     = " "
	KeyToggleX    = "x"
	KeyRename     = "e"
	KeyRenameAlt  = "enter"
	KeyStartDate  = "d"
	KeyReset      = "R"
	KeyConfirm    = "y"
	KeySubmit     = "enter"
	KeyCancel     = "esc"
	KeyToggleHelp = "?"
)

// HandleKeyMsg processes keyboard input in grid mode.
// Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()

	// Help toggle takes priority
	if key == KeyToggleHelp {
		m.showHelp = !m.showHelp
		return true, nil
	}

	// If help is showing, Esc closes it
	if m.showHelp && key == KeyCancel {
		m.showHelp = false
		return true, nil
	}

	switch key {
	case KeyQuit, KeyQuitAlt:
		m.quitting = true
		return true, tea.Quit

	case KeyUp, KeyUpK:
		if m.habit > 0 {
			m.habit--
		}
		return true, nil

	case KeyDown, KeyDownJ:
		if m.habit < m.tracker.HabitCount()-1 {
			m.habit++
		}
		return true, nil

	case KeyLeft, KeyLeftH:
		if m.day > 0 {
			m.day--
		}
		return true, nil

	case KeyRight, KeyRightL:
		if m.day < tracker.Days-1 {
			m.day++
		}
		return true, nil

	case KeyFirstDay:
		m.day = 0
		return true, nil

	case KeyLastDay:
		m.day = tracker.Days - 1
		return true, nil

	case KeyToggle, KeyToggleX:
		if m.tracker.HabitCount() == 0 {
			return true, nil
		}
		return true, m.dispatch(tracker.Toggle(m.habit, m.day))

	case KeyRename, KeyRenameAlt:
		if m.tracker.HabitCount() == 0 {
			return true, nil
		}
		m.beginInput(ModeRename, m.tracker.Habit(m.habit), "habit name")
		return true, nil

	case KeyStartDate:
		m.beginInput(ModeStartDate, m.tracker.Start(), tracker.DateLayout)
		return true, nil

	case KeyReset:
		m.mode = ModeConfirmReset
		m.status = ""
		return true, nil
	}

	return false, nil
}

// handleInputKey drives the rename and start date editors.
func (m *Model) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case KeyQuitAlt:
		m.quitting = true
		return tea.Quit

	case KeyCancel:
		m.endInput()
		return nil

	case KeySubmit:
		value := m.input.Value()
		mode := m.mode
		m.endInput()
		if mode == ModeRename {
			return m.dispatch(tracker.Rename(m.habit, value))
		}
		return m.dispatch(tracker.SetStart(value))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// handleConfirmKey answers the reset prompt. Anything but y cancels.
func (m *Model) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	m.mode = ModeGrid
	switch msg.String() {
	case KeyQuitAlt:
		m.quitting = true
		return tea.Quit
	case KeyConfirm:
		return m.dispatch(tracker.ResetAll())
	}
	m.status = "Reset cancelled"
	return nil
}
