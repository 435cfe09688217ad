package mcptools

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/chris-regnier/moodmemo/internal/calendar"
	"github.com/chris-regnier/moodmemo/internal/chart"
	"github.com/chris-regnier/moodmemo/internal/dateutil"
	"github.com/chris-regnier/moodmemo/internal/query"
	"github.com/chris-regnier/moodmemo/internal/storage"
)

// MoodChartHandler returns the handler function for the mood_chart MCP tool.
func MoodChartHandler(store *storage.Store, now func() time.Time) func(ctx context.Context, req *mcp.CallToolRequest, input MoodChartInput) (*mcp.CallToolResult, MoodChartOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input MoodChartInput) (*mcp.CallToolResult, MoodChartOutput, error) {
		start, end, err := query.ResolveWindow(input.Range, input.Date, input.StartDate, input.EndDate, now())
		if err != nil {
			return nil, MoodChartOutput{}, err
		}
		points := chart.Build(query.FilterByRange(store.GetAll(), start, end))
		return nil, MoodChartOutput{
			Start:   dateutil.FormatDate(start),
			End:     dateutil.FormatDate(end),
			Points:  points,
			Summary: chart.Summarize(points),
		}, nil
	}
}

// MonthCalendarHandler returns the handler function for the month_calendar MCP tool.
func MonthCalendarHandler(store *storage.Store, now func() time.Time) func(ctx context.Context, req *mcp.CallToolRequest, input MonthCalendarInput) (*mcp.CallToolResult, MonthCalendarOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input MonthCalendarInput) (*mcp.CallToolResult, MonthCalendarOutput, error) {
		if input.Month < 1 || input.Month > 12 {
			return nil, MonthCalendarOutput{}, fmt.Errorf("month must be 1-12, got %d", input.Month)
		}
		return nil, MonthCalendarOutput{
			Title: fmt.Sprintf("%s %d", dateutil.MonthName(input.Month-1), input.Year),
			Cells: calendar.Build(input.Year, input.Month-1, store.GetAll(), now()),
		}, nil
	}
}
