// Package calendar builds the 42-cell month grid shown by the calendar view.
package calendar

import (
	"time"

	"github.com/chris-regnier/moodmemo/internal/dateutil"
	"github.com/chris-regnier/moodmemo/internal/entry"
	"github.com/chris-regnier/moodmemo/internal/query"
)

// Overflow thresholds for cell display: a cell with more than MaxVisible
// entries shows only the first Truncated plus a count of the rest.
const (
	MaxVisible = 3
	Truncated  = 2
)

// Cell is one day in the month grid.
type Cell struct {
	Date           time.Time     `json:"-"`
	Key            string        `json:"date"`
	IsCurrentMonth bool          `json:"isCurrentMonth"`
	IsToday        bool          `json:"isToday"`
	Entries        []entry.Entry `json:"entries"`
}

// Build returns the 42 cells for the 0-indexed month. Each cell carries every
// entry whose date matches it exactly, in stored order; IsCurrentMonth is
// relative to the navigated month, and IsToday to today.
func Build(year, month int, entries []entry.Entry, today time.Time) []Cell {
	dates := dateutil.MonthGrid(year, month)
	target := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.Local)

	cells := make([]Cell, len(dates))
	for i, d := range dates {
		key := dateutil.FormatDate(d)
		cells[i] = Cell{
			Date:           d,
			Key:            key,
			IsCurrentMonth: dateutil.SameMonth(d, target),
			IsToday:        dateutil.SameDay(d, today),
			Entries:        query.FilterByDate(entries, key),
		}
	}
	return cells
}

// Visible returns the entries to draw in a cell and how many were hidden.
func (c Cell) Visible() (shown []entry.Entry, hidden int) {
	if len(c.Entries) > MaxVisible {
		return c.Entries[:Truncated], len(c.Entries) - Truncated
	}
	return c.Entries, 0
}

// Weeks splits the grid into rows of seven.
func Weeks(cells []Cell) [][]Cell {
	var rows [][]Cell
	for i := 0; i < len(cells); i += 7 {
		end := i + 7
		if end > len(cells) {
			end = len(cells)
		}
		rows = append(rows, cells[i:end])
	}
	return rows
}
