package mcptools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/chris-regnier/moodmemo/internal/entry"
	"github.com/chris-regnier/moodmemo/internal/mood"
	"github.com/chris-regnier/moodmemo/internal/query"
	"github.com/chris-regnier/moodmemo/internal/storage"
)

// ListEntriesHandler returns the handler function for the list_entries MCP tool.
func ListEntriesHandler(store *storage.Store) func(ctx context.Context, req *mcp.CallToolRequest, input ListEntriesInput) (*mcp.CallToolResult, ListEntriesOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListEntriesInput) (*mcp.CallToolResult, ListEntriesOutput, error) {
		c := query.Criteria{Date: input.Date, Month: input.Month, Start: input.StartDate, End: input.EndDate}
		entries, err := c.Select(store.GetAll())
		if err != nil {
			return nil, ListEntriesOutput{}, err
		}
		return nil, ListEntriesOutput{
			Entries: applyLimit(entries, input.Limit),
			Total:   len(entries),
		}, nil
	}
}

// SaveEntryHandler returns the handler function for the save_entry MCP tool.
func SaveEntryHandler(store *storage.Store) func(ctx context.Context, req *mcp.CallToolRequest, input SaveEntryInput) (*mcp.CallToolResult, SaveEntryOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SaveEntryInput) (*mcp.CallToolResult, SaveEntryOutput, error) {
		var m mood.Mood
		if input.Mood != "" {
			parsed, err := mood.Parse(input.Mood)
			if err != nil {
				return nil, SaveEntryOutput{}, err
			}
			m = parsed
		}
		created := true
		if input.ID != "" {
			_, exists := store.GetByID(input.ID)
			created = !exists
		}
		saved, err := store.Save(entry.Entry{
			ID:   input.ID,
			Date: input.Date,
			Time: input.Time,
			Mood: m,
			Text: input.Text,
		})
		if err != nil {
			return nil, SaveEntryOutput{}, err
		}
		return nil, SaveEntryOutput{Entry: saved, Created: created}, nil
	}
}

// DeleteEntryHandler returns the handler function for the delete_entry MCP tool.
func DeleteEntryHandler(store *storage.Store) func(ctx context.Context, req *mcp.CallToolRequest, input DeleteEntryInput) (*mcp.CallToolResult, DeleteEntryOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input DeleteEntryInput) (*mcp.CallToolResult, DeleteEntryOutput, error) {
		if input.ID == "" {
			return nil, DeleteEntryOutput{}, fmt.Errorf("id is required")
		}
		_, existed := store.GetByID(input.ID)
		if err := store.Delete(input.ID); err != nil {
			return nil, DeleteEntryOutput{}, err
		}
		return nil, DeleteEntryOutput{ID: input.ID, Deleted: existed}, nil
	}
}
