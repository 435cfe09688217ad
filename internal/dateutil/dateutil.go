// Package dateutil holds the calendar arithmetic used by queries, the
// calendar grid, and the chart: date formatting, month grids, and labels.
// All dates are naive local dates.
package dateutil

import (
	"time"
)

// Layout is the zero-padded YYYY-MM-DD format.
const Layout = "2006-01-02"

// GridSize is the number of cells in a month grid: six full weeks.
const GridSize = 42

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var weekdayShort = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// FormatDate formats t as YYYY-MM-DD in t's own location.
func FormatDate(t time.Time) string {
	return t.Format(Layout)
}

// ParseDate parses a YYYY-MM-DD string as local midnight.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(Layout, s, time.Local)
}

// Normalize returns local midnight of t's calendar day.
func Normalize(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// EndOfDay returns the last nanosecond of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), time.Local)
}

// MonthGrid returns 42 consecutive days starting at the Sunday on or before
// the first of the month. month is 0-indexed (0 = January). Out-of-range
// months roll over into adjacent years the same way time.Date does.
func MonthGrid(year, month int) []time.Time {
	first := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.Local)
	start := first.AddDate(0, 0, -int(first.Weekday()))

	dates := make([]time.Time, GridSize)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i)
	}
	return dates
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// SameMonth reports whether a and b fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// MonthName returns the English month name for a 0-indexed month, or "" if
// index is out of range.
func MonthName(index int) string {
	if index < 0 || index >= len(monthNames) {
		return ""
	}
	return monthNames[index]
}

// WeekdayShortNames returns the seven weekday labels starting on Sunday.
func WeekdayShortNames() []string {
	out := make([]string, len(weekdayShort))
	copy(out, weekdayShort[:])
	return out
}

// StartOfWeek returns local midnight of the Sunday on or before t.
func StartOfWeek(t time.Time) time.Time {
	d := Normalize(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// StartOfMonth returns local midnight of the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.Local)
}

// EndOfMonth returns the last nanosecond of t's month.
func EndOfMonth(t time.Time) time.Time {
	return EndOfDay(StartOfMonth(t).AddDate(0, 1, -1))
}
