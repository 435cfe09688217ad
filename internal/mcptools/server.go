package mcptools

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/chris-regnier/moodmemo/internal/storage"
	"github.com/chris-regnier/moodmemo/internal/version"
)

// NewMoodMCPServer creates an in-memory MCP server exposing the mood tools.
// Returns the server and a client transport for connecting to it.
func NewMoodMCPServer(store *storage.Store, now func() time.Time) (*mcp.Server, mcp.Transport) {
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	server := CreateMCPServer(store, now)

	go func() {
		_, _ = server.Connect(context.Background(), serverTransport, nil)
	}()

	return server, clientTransport
}

// CreateMCPServer creates an MCP server with the mood journal tools
// registered. now anchors default chart windows and the calendar's today.
func CreateMCPServer(store *storage.Store, now func() time.Time) *mcp.Server {
	if now == nil {
		now = time.Now
	}
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "moodmemo",
		Version: version.Version,
	}, nil)

	// Read tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_entries",
		Description: "List mood entries for a day, a month, or an inclusive date range",
	}, ListEntriesHandler(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "mood_chart",
		Description: "Chart points and summary for a week, a month, or a date range",
	}, MoodChartHandler(store, now))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "month_calendar",
		Description: "The 42-day calendar grid for a month with each day's entries",
	}, MonthCalendarHandler(store, now))

	// Write tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "save_entry",
		Description: "Create a mood entry, or replace one when id is given",
	}, SaveEntryHandler(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_entry",
		Description: "Delete a mood entry by id; deleting an unknown id is not an error",
	}, DeleteEntryHandler(store))

	return server
}
