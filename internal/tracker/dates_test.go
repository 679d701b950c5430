package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateLabels_Valid(t *testing.T) {
	// 2026-01-01 is a Thursday.
	labels := DateLabels("2026-01-01", Days)
	require.Len(t, labels, Days)

	assert.Equal(t, DateLabel{Weekday: "Thu", Day: 1, Valid: true}, labels[0])
	assert.Equal(t, DateLabel{Weekday: "Fri", Day: 2, Valid: true}, labels[1])
	assert.Equal(t, DateLabel{Weekday: "Sun", Day: 4, Valid: true}, labels[3])
	assert.Equal(t, DateLabel{Weekday: "Wed", Day: 28, Valid: true}, labels[27])
}

func TestDateLabels_CrossesMonth(t *testing.T) {
	labels := DateLabels("2024-02-20", 12)

	assert.Equal(t, 20, labels[0].Day)
	assert.Equal(t, 29, labels[9].Day, "2024 is a leap year")
	assert.Equal(t, 1, labels[10].Day)
	assert.Equal(t, "Fri", labels[10].Weekday)
}

func TestDateLabels_Invalid(t *testing.T) {
	tests := []string{"not-a-date", "", "2026-13-01", "01/02/2026", "2026-02-30"}

	for _, start := range tests {
		t.Run(start, func(t *testing.T) {
			var labels []DateLabel
			assert.NotPanics(t, func() {
				labels = DateLabels(start, Days)
			})
			require.Len(t, labels, Days)
			for _, l := range labels {
				assert.False(t, l.Valid)
				assert.Equal(t, "- -", l.String())
			}
		})
	}
}

func TestDateLabels_TrimsWhitespace(t *testing.T) {
	labels := DateLabels("  2026-01-01 ", 1)
	assert.True(t, labels[0].Valid)
}

func TestDateLabels_ZeroAndNegativeCount(t *testing.T) {
	assert.Empty(t, DateLabels(DefaultStart, 0))
	assert.Empty(t, DateLabels(DefaultStart, -1))
}

func TestDateLabel_String(t *testing.T) {
	assert.Equal(t, "Mon 5", DateLabel{Weekday: "Mon", Day: 5, Valid: true}.String())
}

func TestWeekLabels(t *testing.T) {
	assert.Equal(t, []string{"Week 1", "Week 2", "Week 3", "Week 4"}, WeekLabels(Days))
	assert.Equal(t, []string{"Week 1", "Week 2"}, WeekLabels(8))
	assert.Nil(t, WeekLabels(0))
}

func TestInvalidStartLeavesStatsAlone(t *testing.T) {
	s := NewState(3, "not-a-date")
	fillDay(s, 0, 3)

	st := Compute(s)
	assert.Equal(t, 100.0, st.DayPercent[0])
	assert.Equal(t, 1, st.PerfectDays)
}

func TestDayOf(t *testing.T) {
	local := time.FixedZone("UTC-8", -8*3600)

	tests := []struct {
		name   string
		start  string
		date   time.Time
		want   int
		wantOK bool
	}{
		{"first day", "2026-01-01", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), 0, true},
		{"last day", "2026-01-01", time.Date(2026, 1, 28, 23, 59, 0, 0, time.UTC), 27, true},
		{"calendar day in its own zone", "2026-01-01", time.Date(2026, 1, 5, 22, 0, 0, 0, local), 4, true},
		{"day before", "2026-01-01", time.Date(2025, 12, 31, 12, 0, 0, 0, time.UTC), 0, false},
		{"day after", "2026-01-01", time.Date(2026, 1, 29, 0, 0, 0, 0, time.UTC), 28, false},
		{"across a month", "2026-02-20", time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC), 9, true},
		{"unparsable start", "someday", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DayOf(tt.start, tt.date)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
