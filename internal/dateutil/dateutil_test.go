package dateutil

import (
	"testing"
	"time"
)

func TestFormatDateZeroPadded(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local), "2024-03-01"},
		{time.Date(987, 1, 9, 23, 59, 0, 0, time.Local), "0987-01-09"},
		{time.Date(2024, 12, 31, 12, 0, 0, 0, time.Local), "2024-12-31"},
	}
	for _, tt := range tests {
		if got := FormatDate(tt.in); got != tt.want {
			t.Errorf("FormatDate(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseDateRoundTrip(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if FormatDate(d) != "2024-02-29" {
		t.Errorf("round trip = %s", FormatDate(d))
	}
	if d.Hour() != 0 || d.Location() != time.Local {
		t.Errorf("ParseDate should yield local midnight, got %v", d)
	}
}

// TestMonthGrid checks every month over several years: always 42 days,
// consecutive, starting on Sunday, and containing the 1st.
func TestMonthGrid(t *testing.T) {
	for year := 2023; year <= 2026; year++ {
		for month := 0; month < 12; month++ {
			grid := MonthGrid(year, month)
			if len(grid) != GridSize {
				t.Fatalf("%d-%02d: len = %d, want 42", year, month+1, len(grid))
			}
			if grid[0].Weekday() != time.Sunday {
				t.Errorf("%d-%02d: grid starts on %v", year, month+1, grid[0].Weekday())
			}
			for i := 1; i < len(grid); i++ {
				if !SameDay(grid[i-1].AddDate(0, 0, 1), grid[i]) {
					t.Fatalf("%d-%02d: cell %d (%s) does not follow %s", year, month+1, i,
						FormatDate(grid[i]), FormatDate(grid[i-1]))
				}
			}
			first := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.Local)
			found := false
			for _, d := range grid {
				if SameDay(d, first) {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("%d-%02d: first of month missing from grid", year, month+1)
			}
		}
	}
}

func TestMonthGridStartsOnFirstWhenSunday(t *testing.T) {
	// September 2024 begins on a Sunday.
	grid := MonthGrid(2024, 8)
	if FormatDate(grid[0]) != "2024-09-01" {
		t.Errorf("grid[0] = %s, want 2024-09-01", FormatDate(grid[0]))
	}
	if FormatDate(grid[41]) != "2024-10-12" {
		t.Errorf("grid[41] = %s, want 2024-10-12", FormatDate(grid[41]))
	}
}

func TestMonthGridLeadingDays(t *testing.T) {
	// March 2024 begins on a Friday, so five February days lead.
	grid := MonthGrid(2024, 2)
	if FormatDate(grid[0]) != "2024-02-25" {
		t.Errorf("grid[0] = %s, want 2024-02-25", FormatDate(grid[0]))
	}
	if FormatDate(grid[5]) != "2024-03-01" {
		t.Errorf("grid[5] = %s, want 2024-03-01", FormatDate(grid[5]))
	}
}

func TestSameDayIgnoresTime(t *testing.T) {
	a := time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local)
	b := time.Date(2024, 1, 15, 23, 59, 59, 0, time.Local)
	c := time.Date(2024, 1, 16, 0, 0, 0, 0, time.Local)
	if !SameDay(a, b) {
		t.Error("SameDay(a, b) = false")
	}
	if SameDay(a, c) {
		t.Error("SameDay(a, c) = true")
	}
	if !SameMonth(a, c) {
		t.Error("SameMonth(a, c) = false")
	}
	if SameMonth(a, time.Date(2025, 1, 15, 0, 0, 0, 0, time.Local)) {
		t.Error("SameMonth across years = true")
	}
}

func TestNames(t *testing.T) {
	if MonthName(0) != "January" || MonthName(11) != "December" {
		t.Errorf("MonthName bounds wrong: %q %q", MonthName(0), MonthName(11))
	}
	if MonthName(12) != "" || MonthName(-1) != "" {
		t.Error("MonthName out of range should be empty")
	}
	days := WeekdayShortNames()
	if len(days) != 7 || days[0] != "Sun" || days[6] != "Sat" {
		t.Errorf("WeekdayShortNames = %v", days)
	}
	days[0] = "changed"
	if WeekdayShortNames()[0] != "Sun" {
		t.Error("WeekdayShortNames exposes internal state")
	}
}

func TestWeekAndMonthBounds(t *testing.T) {
	wed := time.Date(2024, 3, 6, 15, 0, 0, 0, time.Local)
	if got := FormatDate(StartOfWeek(wed)); got != "2024-03-03" {
		t.Errorf("StartOfWeek = %s", got)
	}
	end := EndOfMonth(wed)
	if FormatDate(end) != "2024-03-31" || end.Hour() != 23 || end.Minute() != 59 {
		t.Errorf("EndOfMonth = %v", end)
	}
	if got := FormatDate(EndOfMonth(time.Date(2024, 2, 10, 0, 0, 0, 0, time.Local))); got != "2024-02-29" {
		t.Errorf("EndOfMonth(Feb 2024) = %s", got)
	}
}
