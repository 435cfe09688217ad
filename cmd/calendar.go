package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/moodmemo/internal/calendar"
	"github.com/chris-regnier/moodmemo/internal/dateutil"
	"github.com/chris-regnier/moodmemo/internal/query"
	"github.com/chris-regnier/moodmemo/internal/ui"
)

var calendarMonth string

var calendarCmd = &cobra.Command{
	Use:     "calendar",
	Aliases: []string{"cal"},
	Short:   "Print a month calendar of moods",
	Long: `Print a six-week month grid with one colored marker per entry.
Days with more than three entries show two markers and a +N count.`,
	Example: `  moodmemo calendar
  moodmemo calendar --month 2024-02
  moodmemo calendar --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return calendarRun(cmd.OutOrStdout(), calendarMonth)
	},
}

// calendarJSON is the JSON form of a month grid. Month is 1-12.
type calendarJSON struct {
	Year  int             `json:"year"`
	Month int             `json:"month"`
	Title string          `json:"title"`
	Cells []calendar.Cell `json:"cells"`
}

func calendarRun(w io.Writer, month string) error {
	today := now()
	year, m := today.Year(), int(today.Month())-1
	if month != "" {
		var err error
		if year, m, err = query.ParseMonth(month); err != nil {
			return withCode(1, err)
		}
	}

	// Only the 42 visible days matter to the grid.
	grid := dateutil.MonthGrid(year, m)
	entries := query.New(store).ByRange(grid[0], dateutil.EndOfDay(grid[len(grid)-1]))
	cells := calendar.Build(year, m, entries, today)

	if jsonOutput {
		return ui.FormatJSON(w, calendarJSON{
			Year:  year,
			Month: m + 1,
			Title: fmt.Sprintf("%s %d", dateutil.MonthName(m), year),
			Cells: cells,
		})
	}
	ui.FormatCalendar(w, year, m, cells, theme())
	return nil
}

func init() {
	calendarCmd.Flags().StringVar(&calendarMonth, "month", "", "month to show (YYYY-MM, default this month)")
	rootCmd.AddCommand(calendarCmd)
}
