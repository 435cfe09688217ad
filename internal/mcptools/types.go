package mcptools

import (
	"github.com/chris-regnier/moodmemo/internal/calendar"
	"github.com/chris-regnier/moodmemo/internal/chart"
	"github.com/chris-regnier/moodmemo/internal/entry"
)

// ListEntriesInput is the input schema for the list_entries MCP tool. The
// first selector set wins: date, then month, then start/end.
type ListEntriesInput struct {
	Date      string `json:"date,omitempty" jsonschema-description:"Exact day, YYYY-MM-DD"`
	Month     string `json:"month,omitempty" jsonschema-description:"Calendar month, YYYY-MM"`
	StartDate string `json:"start_date,omitempty" jsonschema-description:"Inclusive lower bound, YYYY-MM-DD"`
	EndDate   string `json:"end_date,omitempty" jsonschema-description:"Inclusive upper bound, YYYY-MM-DD"`
	Limit     int    `json:"limit,omitempty" jsonschema-description:"Maximum number of entries to return (default 50)"`
}

// ListEntriesOutput is the output schema for the list_entries MCP tool.
type ListEntriesOutput struct {
	Entries []entry.Entry `json:"entries"`
	Total   int           `json:"total"`
}

// SaveEntryInput is the input schema for the save_entry MCP tool.
type SaveEntryInput struct {
	ID   string `json:"id,omitempty" jsonschema-description:"Existing entry id to replace; omit to create"`
	Date string `json:"date,omitempty" jsonschema-description:"Day of the entry, YYYY-MM-DD (default today)"`
	Time string `json:"time" jsonschema-description:"Time of day, HH:MM (24-hour)"`
	Mood string `json:"mood" jsonschema-description:"verysad, sad, neutral, happy, veryhappy, or a level 1-5"`
	Text string `json:"text,omitempty" jsonschema-description:"Free-form note"`
}

// SaveEntryOutput is the output schema for the save_entry MCP tool.
type SaveEntryOutput struct {
	Entry   entry.Entry `json:"entry"`
	Created bool        `json:"created"`
}

// DeleteEntryInput is the input schema for the delete_entry MCP tool.
type DeleteEntryInput struct {
	ID string `json:"id" jsonschema-description:"Entry id to delete"`
}

// DeleteEntryOutput reports whether an entry with that id existed.
type DeleteEntryOutput struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// MoodChartInput is the input schema for the mood_chart MCP tool.
type MoodChartInput struct {
	Range     string `json:"range,omitempty" jsonschema-description:"week or month (default week)"`
	Date      string `json:"date,omitempty" jsonschema-description:"Any day inside the range, YYYY-MM-DD (default today)"`
	StartDate string `json:"start_date,omitempty" jsonschema-description:"Explicit inclusive start, YYYY-MM-DD; overrides range"`
	EndDate   string `json:"end_date,omitempty" jsonschema-description:"Explicit inclusive end, YYYY-MM-DD; overrides range"`
}

// MoodChartOutput is the output schema for the mood_chart MCP tool.
type MoodChartOutput struct {
	Start   string        `json:"start"`
	End     string        `json:"end"`
	Points  []chart.Point `json:"points"`
	Summary chart.Summary `json:"summary"`
}

// MonthCalendarInput is the input schema for the month_calendar MCP tool.
type MonthCalendarInput struct {
	Year  int `json:"year" jsonschema-description:"Four-digit year"`
	Month int `json:"month" jsonschema-description:"Month number 1-12"`
}

// MonthCalendarOutput is the output schema for the month_calendar MCP tool.
type MonthCalendarOutput struct {
	Title string          `json:"title"`
	Cells []calendar.Cell `json:"cells"`
}
