package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chris-regnier/moodmemo/internal/calendar"
	"github.com/chris-regnier/moodmemo/internal/chart"
	"github.com/chris-regnier/moodmemo/internal/dateutil"
	"github.com/chris-regnier/moodmemo/internal/entry"
	"github.com/chris-regnier/moodmemo/internal/mood"
)

const (
	marker       = "●"
	previewWidth = 60
	cellWidth    = 10
	chartColumn  = 8
)

// FormatEntryCreated formats a creation confirmation message.
func FormatEntryCreated(w io.Writer, e entry.Entry) {
	fmt.Fprintf(w, "Saved entry %s (%s %s, %s)\n", e.ID, e.Date, e.Time, e.Mood.Label())
}

// FormatEntryUpdated formats an update confirmation message.
func FormatEntryUpdated(w io.Writer, e entry.Entry) {
	fmt.Fprintf(w, "Updated entry %s (%s %s, %s)\n", e.ID, e.Date, e.Time, e.Mood.Label())
}

// FormatEntryDeleted formats a deletion confirmation message.
func FormatEntryDeleted(w io.Writer, id string) {
	fmt.Fprintf(w, "Deleted entry %s.\n", id)
}

// FormatNoChanges formats a "no changes" message.
func FormatNoChanges(w io.Writer, id string) {
	fmt.Fprintf(w, "No changes detected for entry %s.\n", id)
}

// EntryLine renders one entry as a single list row.
func EntryLine(e entry.Entry, theme Theme) string {
	return fmt.Sprintf("%s %s  %s %-10s  %s  %s",
		e.Date,
		e.Time,
		theme.MoodStyle(e.Mood).Render(marker),
		e.Mood.Label(),
		theme.AccentStyle().Render(e.ID),
		e.Preview(previewWidth),
	)
}

// FormatEntryList formats entries one per line in the order given.
func FormatEntryList(w io.Writer, entries []entry.Entry, theme Theme) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No mood entries found.")
		return
	}
	for _, e := range entries {
		fmt.Fprintln(w, EntryLine(e, theme))
	}
}

// FormatEntryFull formats an entry with its metadata header and the text
// rendered as Markdown.
func FormatEntryFull(w io.Writer, e entry.Entry, theme Theme) {
	info, _ := mood.Lookup(e.Mood)
	fmt.Fprintf(w, "Entry: %s\n", e.ID)
	fmt.Fprintf(w, "When: %s %s\n", e.Date, e.Time)
	fmt.Fprintf(w, "Mood: %s %s (%d/%d)\n", info.Icon, e.Mood.Label(), e.Mood.Level(), mood.MaxLevel)
	if e.UpdatedAt != "" {
		fmt.Fprintf(w, "Modified: %s\n", e.UpdatedAt)
	}
	if e.Text != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, RenderMarkdown(e.Text, 80, theme.MarkdownStyle))
	}
}

// FormatDay formats the entries of one day under a date heading.
func FormatDay(w io.Writer, date string, entries []entry.Entry, theme Theme) {
	label := "entries"
	if len(entries) == 1 {
		label = "entry"
	}
	fmt.Fprintln(w, theme.HeaderStyle().Render(fmt.Sprintf("── %s (%d %s) ──────────", date, len(entries), label)))
	for _, e := range entries {
		fmt.Fprintf(w, "  %s  %s %-10s  %s  %s\n",
			e.Time,
			theme.MoodStyle(e.Mood).Render(marker),
			e.Mood.Label(),
			e.ID,
			e.Preview(previewWidth+20),
		)
	}
}

// FormatMoods lists the mood scale.
func FormatMoods(w io.Writer, theme Theme) {
	for _, info := range mood.All() {
		fmt.Fprintf(w, "%d  %s %s  %-10s %s\n",
			info.Level,
			theme.MoodStyle(info.Mood).Render(marker),
			info.Icon,
			info.Mood,
			info.Label,
		)
	}
}

// CalendarCell renders one cell as the day number followed by a marker per
// visible entry and a +N overflow count.
func CalendarCell(c calendar.Cell, theme Theme, selected bool) string {
	var b strings.Builder
	b.WriteString(theme.DayStyle(c.IsCurrentMonth, c.IsToday, selected).Render(fmt.Sprintf("%2d", c.Date.Day())))
	b.WriteString(" ")
	shown, hidden := c.Visible()
	for _, e := range shown {
		b.WriteString(theme.MoodStyle(e.Mood).Render(marker))
	}
	if hidden > 0 {
		b.WriteString(theme.HelpStyle().Render(fmt.Sprintf("+%d", hidden)))
	}
	return lipgloss.NewStyle().Width(cellWidth).Render(b.String())
}

// RenderCalendar draws the month title, weekday header, and six week rows.
// selected is the date key to highlight, or "".
func RenderCalendar(year, month int, cells []calendar.Cell, theme Theme, selected string) string {
	var b strings.Builder
	title := fmt.Sprintf("%s %d", dateutil.MonthName(month), year)
	b.WriteString(theme.HeaderStyle().Render(title))
	b.WriteString("\n")
	for _, name := range dateutil.WeekdayShortNames() {
		b.WriteString(theme.HelpStyle().Render(fmt.Sprintf("%-*s", cellWidth, name)))
	}
	for _, week := range calendar.Weeks(cells) {
		b.WriteString("\n")
		for _, c := range week {
			b.WriteString(CalendarCell(c, theme, c.Key == selected))
		}
	}
	return b.String()
}

// FormatCalendar writes the month grid followed by a mood legend.
func FormatCalendar(w io.Writer, year, month int, cells []calendar.Cell, theme Theme) {
	fmt.Fprintln(w, RenderCalendar(year, month, cells, theme, ""))
	fmt.Fprintln(w)
	fmt.Fprintln(w, Legend(theme))
}

// Legend is a one-line key of mood colors.
func Legend(theme Theme) string {
	parts := make([]string, 0, mood.MaxLevel)
	for _, info := range mood.All() {
		parts = append(parts, theme.MoodStyle(info.Mood).Render(marker)+" "+info.Label)
	}
	return strings.Join(parts, "  ")
}

// RenderChart plots points on a five-row grid, one row per mood level, with
// chartColumn columns per day index. Points later in the slice win when two
// land on the same column.
func RenderChart(points []chart.Point, theme Theme) string {
	if len(points) == 0 {
		return "No entries in this range."
	}
	days := points[len(points)-1].DayIndex + 1
	width := days * chartColumn

	grid := make([][]string, mood.MaxLevel)
	for i := range grid {
		grid[i] = make([]string, width)
		for j := range grid[i] {
			grid[i][j] = " "
		}
	}
	labels := make([]string, days)
	for _, p := range points {
		if p.Value < mood.MinLevel || p.Value > mood.MaxLevel {
			continue
		}
		col := p.DayIndex*chartColumn + int(math.Round(p.Position*float64(chartColumn-2)))
		row := mood.MaxLevel - p.Value
		grid[row][col] = theme.MoodStyle(mood.Mood(p.Mood)).Render(marker)
		labels[p.DayIndex] = p.Label
	}

	var b strings.Builder
	for i, row := range grid {
		m, _ := mood.FromLevel(mood.MaxLevel - i)
		fmt.Fprintf(&b, "%10s │%s\n", m.Label(), strings.Join(row, ""))
	}
	fmt.Fprintf(&b, "%10s └%s\n", "", strings.Repeat("─", width))
	fmt.Fprintf(&b, "%10s  ", "")
	for _, l := range labels {
		fmt.Fprintf(&b, "%-*s", chartColumn, l)
	}
	return strings.TrimRight(b.String(), " ")
}

// FormatChart writes the plot followed by a one-line summary.
func FormatChart(w io.Writer, points []chart.Point, theme Theme) {
	fmt.Fprintln(w, RenderChart(points, theme))
	if len(points) == 0 {
		return
	}
	s := chart.Summarize(points)
	avg := "n/a"
	if s.Average > 0 {
		nearest, _ := mood.FromLevel(int(math.Round(s.Average)))
		avg = fmt.Sprintf("%.2f (%s)", s.Average, nearest.Label())
	}
	fmt.Fprintf(w, "\n%d entries over %d days, average %s\n", s.Count, s.Days, avg)
}

// FormatJSON writes any value as JSON to the writer.
func FormatJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// DeleteResult is the JSON representation for delete output.
type DeleteResult struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// ImportResult is the JSON representation for import output.
type ImportResult struct {
	Read     int  `json:"read"`
	Saved    int  `json:"saved"`
	Replaced bool `json:"replaced"`
}

// ChartResult is the JSON representation for chart output.
type ChartResult struct {
	Start   string        `json:"start"`
	End     string        `json:"end"`
	Points  []chart.Point `json:"points"`
	Summary chart.Summary `json:"summary"`
}
