package cmd

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/chris-regnier/moodmemo/internal/logger"
	"github.com/chris-regnier/moodmemo/internal/mcptools"
)

var mcpServeCmd = &cobra.Command{
	Use:   "mcp-serve",
	Short: "Run MCP server on stdio",
	Long: `Starts a Model Context Protocol (MCP) server that exposes the mood
journal over stdio transport.

Available tools:
  - list_entries: Entries for a day, a month, or a date span
  - save_entry: Create an entry, or replace one by id
  - delete_entry: Delete an entry by id
  - mood_chart: Chart points and a summary for a week, month, or span
  - month_calendar: The 42-day grid for a month

Example usage in an MCP client config:
  {
    "mcpServers": {
      "moodmemo": {
        "command": "/path/to/moodmemo",
        "args": ["mcp-serve"]
      }
    }
  }`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return mcpServeRun(cmd.Context())
	},
}

func mcpServeRun(ctx context.Context) error {
	server := mcptools.CreateMCPServer(store, now)

	// The logger writes to stderr; stdout is reserved for the protocol.
	appLog.Info("starting MCP server (stdio transport)",
		logger.String("storage", appConfig.Storage),
		logger.String("data_dir", appConfig.DataDir))

	// Blocks until the client closes the transport
	return server.Run(ctx, &mcp.StdioTransport{})
}

func init() {
	rootCmd.AddCommand(mcpServeCmd)
}
