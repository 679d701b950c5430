package tracker

// Days is the number of day columns in every grid row.
const Days = 28

// DaysPerWeek groups day columns under the "Week N" header.
const DaysPerWeek = 7

// DefaultHabitCount is the number of empty habit rows in a fresh grid.
const DefaultHabitCount = 10

// DefaultStart is the start date used when none is configured or persisted.
const DefaultStart = "2026-01-01"

// State is the whole tracker: habit names, the habit × day completion grid,
// and the raw start date text for column 0.
//
// Habits are identified by index only. Start is kept verbatim and may not
// parse as a date.
type State struct {
	Habits []string `json:"habits" yaml:"habits"`
	Grid   [][]bool `json:"grid" yaml:"grid"`
	Start  string   `json:"start" yaml:"start"`
}

// NewState returns a fresh state with n empty habit names, an all-false grid
// and the given start date.
func NewState(n int, start string) State {
	if n < 0 {
		n = 0
	}
	s := State{
		Habits: make([]string, n),
		Grid:   make([][]bool, n),
		Start:  start,
	}
	for i := range s.Grid {
		s.Grid[i] = make([]bool, Days)
	}
	return s
}

// Clone returns a deep copy.
func (s State) Clone() State {
	c := State{
		Habits: make([]string, len(s.Habits)),
		Grid:   make([][]bool, len(s.Grid)),
		Start:  s.Start,
	}
	copy(c.Habits, s.Habits)
	for i, row := range s.Grid {
		c.Grid[i] = make([]bool, len(row))
		copy(c.Grid[i], row)
	}
	return c
}

// Reconcile forces the grid to len(Habits) rows of exactly Days columns.
// Missing rows and columns are filled with false; extra ones are dropped.
// Returns true if anything changed.
func (s *State) Reconcile() bool {
	changed := false

	if s.Habits == nil {
		s.Habits = []string{}
	}

	h := len(s.Habits)
	switch {
	case len(s.Grid) > h:
		s.Grid = s.Grid[:h]
		changed = true
	case len(s.Grid) < h:
		for len(s.Grid) < h {
			s.Grid = append(s.Grid, make([]bool, Days))
		}
		changed = true
	}
	if s.Grid == nil {
		s.Grid = [][]bool{}
	}

	for i, row := range s.Grid {
		switch {
		case len(row) > Days:
			s.Grid[i] = row[:Days]
			changed = true
		case len(row) < Days:
			padded := make([]bool, Days)
			copy(padded, row)
			s.Grid[i] = padded
			changed = true
		}
	}

	return changed
}

// Equal reports whether two states hold the same habits, grid and start.
func (s State) Equal(o State) bool {
	if s.Start != o.Start || len(s.Habits) != len(o.Habits) || len(s.Grid) != len(o.Grid) {
		return false
	}
	for i := range s.Habits {
		if s.Habits[i] != o.Habits[i] {
			return false
		}
	}
	for i := range s.Grid {
		if len(s.Grid[i]) != len(o.Grid[i]) {
			return false
		}
		for d := range s.Grid[i] {
			if s.Grid[i][d] != o.Grid[i][d] {
				return false
			}
		}
	}
	return true
}
