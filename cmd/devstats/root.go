// ABOUTME: Root Cobra command for devstats CLI.
// ABOUTME: Handles storage lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/devstats/internal/config"
	"github.com/harperreed/devstats/internal/storage"
	"github.com/spf13/cobra"
)

var (
	cfg *config.Config
	db  *storage.DB
)

var rootCmd = &cobra.Command{
	Use:   "devstats",
	Short: "Rwanda development indicators explorer",
	Long: `Devstats is a CLI for exploring Rwanda's development indicators (2000-2023).

WHAT IT TRACKS:

  Economic      gdp_growth, gdp_per_capita, inflation_rate
  Demographic   total_population, urban_population_percent, life_expectancy
  Education     primary/secondary enrollment, literacy_rate
  Health        infant_mortality_rate, health expenditure, hospital beds

Each fact table holds one row per year. The analytic catalog joins them
by year: trends, centered 5-year moving averages, year-over-year deltas,
above-average filtering, and an education pivot.

QUICK START:

  $ devstats seed                       # Load the bundled reference dataset
  $ devstats trend economic             # GDP growth, per-capita, inflation by year
  $ devstats analyze ma                 # 5-year moving averages
  $ devstats analyze changes -s         # Years with significant deltas
  $ devstats view population_trends     # Query a reporting view

LOADING YOUR OWN DATA:

  $ devstats load economic data/economic.csv
  $ devstats export json -o backup.json
  $ devstats import backup.json

SYNC:

  Push the dataset to Charm Cloud and pull it on another device.

  $ devstats sync push
  $ devstats sync pull

MCP INTEGRATION:

  Run 'devstats mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "devstats": { "command": "devstats", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Facts are stored in SQLite at ~/.local/share/devstats/devstats.db.
  Override with DEVSTATS_DATA_DIR or the config file.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		db, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if db != nil {
			return db.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
