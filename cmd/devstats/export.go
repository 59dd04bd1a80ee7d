// ABOUTME: CLI commands for exporting and importing the dataset.
// ABOUTME: Supports JSON, YAML, and per-table CSV export formats.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/devstats/internal/storage"
	"github.com/spf13/cobra"
)

var (
	exportOutput string
	exportTable  string
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export the dataset",
	Long: `Export the dataset in various formats.

FORMATS:

  json   Full snapshot (suitable for backup/restore via 'devstats import')
  yaml   Full snapshot, human-readable
  csv    One fact table (requires --table)

OPTIONS:

  --output, -o   Write to file instead of stdout
  --table, -t    Fact table for CSV export (economic, demographic, education, health)

EXAMPLES:

  devstats export json                   # Snapshot to stdout
  devstats export json -o backup.json    # Snapshot to file
  devstats export csv -t economic        # One table as CSV`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "csv"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		var data []byte
		var err error

		switch format {
		case "json":
			data, err = db.ExportJSON()
		case "yaml":
			data, err = db.ExportYAML()
		case "csv":
			if exportTable == "" {
				return fmt.Errorf("csv export requires --table")
			}
			data, err = db.ExportCSV(exportTable)
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
		if err != nil {
			return fmt.Errorf("failed to export: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.New(color.FgGreen).Printf("Exported to %s\n", exportOutput)
			return nil
		}

		fmt.Print(string(data))
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Import a JSON snapshot",
	Long: `Replace the fact tables with the dataset of a JSON snapshot produced
by 'devstats export json'.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		data, err := storage.ParseExport(raw)
		if err != nil {
			return fmt.Errorf("failed to parse snapshot: %w", err)
		}

		if err := db.ImportData(data); err != nil {
			return fmt.Errorf("failed to import: %w", err)
		}

		ds := data.Dataset
		color.New(color.FgGreen).Printf("Imported snapshot %s: %d economic, %d demographic, %d education, %d health rows\n",
			data.SnapshotID.String()[:8], len(ds.Economic), len(ds.Demographic), len(ds.Education), len(ds.Health))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	exportCmd.Flags().StringVarP(&exportTable, "table", "t", "", "fact table for CSV export")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
