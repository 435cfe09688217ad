// Package query derives read-only views over the full entry collection.
// Every call recomputes from the source; nothing is cached.
package query

import (
	"fmt"
	"time"

	"github.com/chris-regnier/moodmemo/internal/dateutil"
	"github.com/chris-regnier/moodmemo/internal/entry"
)

// Source supplies the full collection in stored order.
type Source interface {
	GetAll() []entry.Entry
}

// Layer runs queries against a Source.
type Layer struct {
	src Source
}

// New returns a query layer over src.
func New(src Source) *Layer {
	return &Layer{src: src}
}

// ByDate returns entries whose date string equals date exactly.
func (l *Layer) ByDate(date string) []entry.Entry {
	return FilterByDate(l.src.GetAll(), date)
}

// ByMonth returns entries dated within the given month (0-indexed).
func (l *Layer) ByMonth(year, month int) []entry.Entry {
	return FilterByMonth(l.src.GetAll(), year, month)
}

// ByRange returns entries whose date, taken as local midnight, lies within
// [start, end]. To include the end day's entries, end must be at or after
// that day's midnight; see dateutil.EndOfDay.
func (l *Layer) ByRange(start, end time.Time) []entry.Entry {
	return FilterByRange(l.src.GetAll(), start, end)
}

// FilterByDate is ByDate over an explicit slice.
func FilterByDate(entries []entry.Entry, date string) []entry.Entry {
	out := []entry.Entry{}
	for _, e := range entries {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out
}

// FilterByMonth is ByMonth over an explicit slice. Unparseable dates are
// skipped.
func FilterByMonth(entries []entry.Entry, year, month int) []entry.Entry {
	out := []entry.Entry{}
	for _, e := range entries {
		d, err := dateutil.ParseDate(e.Date)
		if err != nil {
			continue
		}
		if d.Year() == year && int(d.Month())-1 == month {
			out = append(out, e)
		}
	}
	return out
}

// FilterByRange is ByRange over an explicit slice. Unparseable dates are
// skipped.
func FilterByRange(entries []entry.Entry, start, end time.Time) []entry.Entry {
	out := []entry.Entry{}
	for _, e := range entries {
		d, err := dateutil.ParseDate(e.Date)
		if err != nil {
			continue
		}
		if !d.Before(start) && !d.After(end) {
			out = append(out, e)
		}
	}
	return out
}

// RangeKind selects an analytics window.
type RangeKind string

const (
	Week  RangeKind = "week"
	Month RangeKind = "month"
)

// ParseRangeKind accepts "week" or "month".
func ParseRangeKind(s string) (RangeKind, error) {
	switch RangeKind(s) {
	case Week, Month:
		return RangeKind(s), nil
	}
	return "", fmt.Errorf("invalid range %q (use week or month)", s)
}

// Window returns the inclusive [start, end] of the week (Sunday through
// Saturday) or month containing t. end is the last nanosecond of the final day.
func Window(kind RangeKind, t time.Time) (start, end time.Time) {
	if kind == Week {
		start = dateutil.StartOfWeek(t)
		return start, dateutil.EndOfDay(start.AddDate(0, 0, 6))
	}
	return dateutil.StartOfMonth(t), dateutil.EndOfMonth(t)
}

// Shift moves t by n weeks or months, for previous/next navigation.
func Shift(kind RangeKind, t time.Time, n int) time.Time {
	if kind == Week {
		return t.AddDate(0, 0, 7*n)
	}
	// Clamp to the first so Jan 31 + 1 month lands in February.
	first := dateutil.StartOfMonth(t)
	return first.AddDate(0, n, 0)
}
