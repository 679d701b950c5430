package tracker

// Placeholder is shown in place of a best/worst habit that cannot be named.
const Placeholder = "-"

// Bucket thresholds on a day's completion percent.
const (
	PerfectPercent = 100.0
	HalfPercent    = 50.0
)

// Pick is the habit chosen as best or worst.
type Pick struct {
	Index int
	Name  string
	Count int
	OK    bool // false when there is nothing to show
}

// Label is the display text: the habit name, or Placeholder when the pick is
// empty or the habit has no name yet.
func (p Pick) Label() string {
	if !p.OK || p.Name == "" {
		return Placeholder
	}
	return p.Name
}

// Stats is everything derived from a State. It is recomputed in full on every
// change.
type Stats struct {
	Completed    []int     // checked days per habit
	HabitPercent []float64 // Completed[h] / Days * 100
	Best         Pick
	Worst        Pick
	DoneOnDay    []int     // checked habits per day
	DayPercent   []float64 // DoneOnDay[d] / len(habits) * 100, 0 with no habits
	PerfectDays  int
	HalfDays     int
	ZeroDays     int
	Overall      float64 // mean of DayPercent
}

// Compute derives Stats from s. Rows shorter than Days count missing cells as
// unchecked.
func Compute(s State) Stats {
	h := len(s.Habits)
	st := Stats{
		Completed:    make([]int, h),
		HabitPercent: make([]float64, h),
		DoneOnDay:    make([]int, Days),
		DayPercent:   make([]float64, Days),
	}

	for i := 0; i < h; i++ {
		st.Completed[i] = countRow(s, i)
		st.HabitPercent[i] = float64(st.Completed[i]) / Days * 100
	}

	st.Best, st.Worst = bestWorst(s.Habits, st.Completed)

	var total float64
	for d := 0; d < Days; d++ {
		for i := 0; i < h; i++ {
			if cell(s, i, d) {
				st.DoneOnDay[d]++
			}
		}
		if h > 0 {
			st.DayPercent[d] = float64(st.DoneOnDay[d]) / float64(h) * 100
		}
		total += st.DayPercent[d]

		switch pct := st.DayPercent[d]; {
		case pct == PerfectPercent:
			st.PerfectDays++
		case pct >= HalfPercent:
			st.HalfDays++
		default:
			st.ZeroDays++
		}
	}
	st.Overall = total / Days

	return st
}

// bestWorst scans in habit order. Best needs a strictly greater count to
// replace the current pick and is only shown when above zero; worst needs a
// strictly smaller count and is shown whenever a habit exists.
func bestWorst(habits []string, counts []int) (best, worst Pick) {
	maxCount, minCount := -1, 0
	for i, c := range counts {
		if c > maxCount {
			maxCount = c
			best = Pick{Index: i, Name: habits[i], Count: c}
		}
		if i == 0 || c < minCount {
			minCount = c
			worst = Pick{Index: i, Name: habits[i], Count: c}
		}
	}
	best.OK = maxCount > 0
	worst.OK = len(counts) > 0
	return best, worst
}

// DayComplete reports whether every habit is checked on day. With no habits
// it returns false so nothing is celebrated for an empty grid.
func DayComplete(s State, day int) bool {
	if len(s.Habits) == 0 || day < 0 || day >= Days {
		return false
	}
	for i := range s.Habits {
		if !cell(s, i, day) {
			return false
		}
	}
	return true
}

func countRow(s State, h int) int {
	n := 0
	for d := 0; d < Days; d++ {
		if cell(s, h, d) {
			n++
		}
	}
	return n
}

func cell(s State, h, d int) bool {
	if h >= len(s.Grid) || d >= len(s.Grid[h]) {
		return false
	}
	return s.Grid[h][d]
}
