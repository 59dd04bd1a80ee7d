// ABOUTME: CLI commands for loading data: CSV files and the bundled dataset.
// ABOUTME: Loads are upserts keyed by year.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/devstats/internal/dataset"
	"github.com/harperreed/devstats/internal/models"
	"github.com/spf13/cobra"
)

var loadCmd = &cobra.Command{
	Use:   "load <table> <file.csv>",
	Short: "Load a fact table from a CSV file",
	Long: `Load rows into one fact table from a CSV file. The header must name
the table's columns (order is free, extra columns are ignored) and
must include year. Existing years are replaced.

EXAMPLES:

  devstats load economic data/economic.csv
  devstats load health data/health.csv`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		table := args[0]
		if !models.IsValidTable(table) {
			return fmt.Errorf("unknown table: %s\nValid tables: economic, demographic, education, health", table)
		}

		f, err := os.Open(args[1])
		if err != nil {
			return fmt.Errorf("failed to open file: %w", err)
		}
		defer f.Close()

		n, err := db.LoadCSV(models.Table(table), f)
		if err != nil {
			return fmt.Errorf("failed to load CSV: %w", err)
		}

		green := color.New(color.FgGreen)
		green.Printf("Loaded %d rows into %s\n", n, table)
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the bundled Rwanda reference dataset",
	Long: `Load the bundled Rwanda 2000-2023 reference dataset into all four
fact tables. Existing years are replaced; other years are kept.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := dataset.Seed(db)
		if err != nil {
			return fmt.Errorf("failed to seed dataset: %w", err)
		}

		green := color.New(color.FgGreen)
		for _, tbl := range models.AllTables {
			green.Printf("Loaded %d rows into %s\n", loaded[tbl], tbl)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(seedCmd)
}
