// ABOUTME: CLI command for dataset status.
// ABOUTME: Shows row counts per table and the covered year range.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/devstats/internal/models"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show dataset coverage",
	RunE: func(cmd *cobra.Command, args []string) error {
		counts, err := db.RowCounts()
		if err != nil {
			return fmt.Errorf("failed to count rows: %w", err)
		}

		years, err := db.Years()
		if err != nil {
			return fmt.Errorf("failed to list years: %w", err)
		}

		faint := color.New(color.Faint)
		total := 0
		for _, tbl := range models.AllTables {
			fmt.Printf("%s %d rows\n", faint.Sprintf("%-12s", tbl), counts[tbl])
			total += counts[tbl]
		}

		if total == 0 {
			fmt.Println("\nDataset is empty. Run 'devstats seed' to load the reference dataset.")
			return nil
		}

		fmt.Printf("\nYears covered: %d-%d (%d distinct)\n", years[0], years[len(years)-1], len(years))
		fmt.Printf("Database: %s\n", cfg.GetDBPath())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
