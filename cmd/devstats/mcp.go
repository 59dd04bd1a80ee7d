// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/devstats/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to query the indicator dataset
through a standardized protocol. The server communicates via
stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "devstats": {
        "command": "devstats",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  get_trend                One fact table (or the growth join) by year
  moving_averages          Centered 5-year moving averages
  year_over_year_changes   Deltas per year, optionally significant only
  above_average_years      Years whose GDP growth beat the mean
  education_pivot          Education indicators via pivot round trip
  dataset_status           Row counts and year coverage

AVAILABLE RESOURCES:

  indicators://summary           Dataset coverage and the latest year
  indicators://overview          The economic_overview view
  indicators://education-health  The education_health_summary view`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(db)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
