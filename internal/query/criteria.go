package query

import (
	"fmt"
	"time"

	"github.com/chris-regnier/moodmemo/internal/dateutil"
	"github.com/chris-regnier/moodmemo/internal/entry"
)

// MonthLayout is the YYYY-MM form used by --month flags and query params.
const MonthLayout = "2006-01"

// Criteria selects entries for list surfaces. The first populated selector
// wins: Date, then Month, then Start/End. An empty Criteria selects all.
type Criteria struct {
	Date  string // YYYY-MM-DD
	Month string // YYYY-MM
	Start string // YYYY-MM-DD, inclusive
	End   string // YYYY-MM-DD, inclusive
}

// ParseMonth splits a YYYY-MM string into a year and a 0-indexed month.
func ParseMonth(s string) (year, month int, err error) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q (want YYYY-MM)", s)
	}
	return t.Year(), int(t.Month()) - 1, nil
}

// Select applies c to entries.
func (c Criteria) Select(entries []entry.Entry) ([]entry.Entry, error) {
	switch {
	case c.Date != "":
		if err := entry.ValidateDate(c.Date); err != nil {
			return nil, err
		}
		return FilterByDate(entries, c.Date), nil
	case c.Month != "":
		year, month, err := ParseMonth(c.Month)
		if err != nil {
			return nil, err
		}
		return FilterByMonth(entries, year, month), nil
	case c.Start != "" || c.End != "":
		start, end, err := DateSpan(c.Start, c.End)
		if err != nil {
			return nil, err
		}
		return FilterByRange(entries, start, end), nil
	}
	out := make([]entry.Entry, len(entries))
	copy(out, entries)
	return out, nil
}

// DateSpan parses an inclusive pair of YYYY-MM-DD dates into the instants
// FilterByRange expects. Both are required and start must not follow end.
func DateSpan(startDate, endDate string) (start, end time.Time, err error) {
	if startDate == "" || endDate == "" {
		return start, end, fmt.Errorf("both start and end dates are required")
	}
	if start, err = dateutil.ParseDate(startDate); err != nil {
		return start, end, fmt.Errorf("invalid start date %q", startDate)
	}
	last, err := dateutil.ParseDate(endDate)
	if err != nil {
		return start, end, fmt.Errorf("invalid end date %q", endDate)
	}
	if last.Before(start) {
		return start, end, fmt.Errorf("start %s is after end %s", startDate, endDate)
	}
	return start, dateutil.EndOfDay(last), nil
}

// ResolveWindow picks the chart window: an explicit start/end span when
// either is set, otherwise the week or month (kind, default week) around
// date, or around now when date is empty.
func ResolveWindow(kind, date, startDate, endDate string, now time.Time) (start, end time.Time, err error) {
	if startDate != "" || endDate != "" {
		return DateSpan(startDate, endDate)
	}
	rk := Week
	if kind != "" {
		if rk, err = ParseRangeKind(kind); err != nil {
			return start, end, err
		}
	}
	anchor := now
	if date != "" {
		if anchor, err = dateutil.ParseDate(date); err != nil {
			return start, end, fmt.Errorf("invalid date %q", date)
		}
	}
	start, end = Window(rk, anchor)
	return start, end, nil
}
