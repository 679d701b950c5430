package tracker

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the accepted start date format.
const DateLayout = "2006-01-02"

// weekdays is indexed by time.Weekday (0 = Sunday).
var weekdays = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// DateLabel is one column header. Weekday and Day are zero values when Valid
// is false.
type DateLabel struct {
	Weekday string
	Day     int
	Valid   bool
}

// String renders the label as "Mon 5", or "- -" when invalid.
func (l DateLabel) String() string {
	if !l.Valid {
		return Placeholder + " " + Placeholder
	}
	return fmt.Sprintf("%s %d", l.Weekday, l.Day)
}

// ParseStart parses start as a calendar date.
func ParseStart(start string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(start))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DateLabels returns count consecutive labels starting at start. If start does
// not parse, every label is invalid.
func DateLabels(start string, count int) []DateLabel {
	if count < 0 {
		count = 0
	}
	labels := make([]DateLabel, count)

	t, ok := ParseStart(start)
	if !ok {
		return labels
	}

	for i := range labels {
		day := t.AddDate(0, 0, i)
		labels[i] = DateLabel{
			Weekday: weekdays[day.Weekday()],
			Day:     day.Day(),
			Valid:   true,
		}
	}
	return labels
}

// WeekLabels returns "Week 1".."Week N" headers, one per DaysPerWeek columns.
// A trailing partial week still gets a label.
func WeekLabels(days int) []string {
	if days <= 0 {
		return nil
	}
	n := (days + DaysPerWeek - 1) / DaysPerWeek
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("Week %d", i+1)
	}
	return labels
}

// DayOf returns the index of date's calendar day in the window beginning at
// start. ok is false when start isn't a date or the day falls outside the
// window.
func DayOf(start string, date time.Time) (int, bool) {
	first, ok := ParseStart(start)
	if !ok {
		return 0, false
	}
	y, m, d := date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if day.Before(first) {
		return 0, false
	}
	n := int(day.Sub(first).Hours() / 24)
	return n, n < Days
}
