// ABOUTME: CLI commands for Charm Cloud dataset sync.
// ABOUTME: Push and pull the fact tables as year-keyed KV payloads.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/devstats/internal/charm"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync the dataset via Charm Cloud",
	Long: `Sync the dataset across devices using Charm Cloud. Data is E2E
encrypted with your SSH key.

  push    Upload the local fact tables
  pull    Download and replace the local fact tables
  status  Show the Charm account in use`,
}

var syncPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Upload the local dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := charm.InitClient()
		if err != nil {
			return fmt.Errorf("failed to initialize charm client: %w", err)
		}
		defer client.Close()

		data, err := db.GetAllData()
		if err != nil {
			return fmt.Errorf("failed to read local dataset: %w", err)
		}

		if err := client.Push(&data.Dataset); err != nil {
			return fmt.Errorf("failed to push dataset: %w", err)
		}

		ds := data.Dataset
		color.New(color.FgGreen).Printf("Pushed %d economic, %d demographic, %d education, %d health rows\n",
			len(ds.Economic), len(ds.Demographic), len(ds.Education), len(ds.Health))
		return nil
	},
}

var syncPullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Download the dataset, replacing local tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := charm.InitClient()
		if err != nil {
			return fmt.Errorf("failed to initialize charm client: %w", err)
		}
		defer client.Close()

		ds, err := client.Pull()
		if err != nil {
			return fmt.Errorf("failed to pull dataset: %w", err)
		}

		if len(ds.Economic) == 0 && len(ds.Demographic) == 0 && len(ds.Education) == 0 && len(ds.Health) == 0 {
			fmt.Println("Nothing to pull. Push a dataset from another device first.")
			return nil
		}

		if err := db.ReplaceAll(ds); err != nil {
			return fmt.Errorf("failed to replace local dataset: %w", err)
		}

		color.New(color.FgGreen).Printf("Pulled %d economic, %d demographic, %d education, %d health rows\n",
			len(ds.Economic), len(ds.Demographic), len(ds.Education), len(ds.Health))
		return nil
	},
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the Charm account in use",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := charm.InitClient()
		if err != nil {
			return fmt.Errorf("failed to initialize charm client: %w", err)
		}
		defer client.Close()

		id, err := client.ID()
		if err != nil {
			return fmt.Errorf("failed to get charm ID: %w", err)
		}

		fmt.Printf("Charm account: %s\n", id)
		if client.IsReadOnly() {
			fmt.Println("KV store is read-only (locked by another process)")
		}
		return nil
	},
}

func init() {
	syncCmd.AddCommand(syncPushCmd)
	syncCmd.AddCommand(syncPullCmd)
	syncCmd.AddCommand(syncStatusCmd)
	rootCmd.AddCommand(syncCmd)
}
