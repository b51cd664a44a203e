// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/finkeep/finkeep/internal/store"
	"github.com/finkeep/finkeep/models"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show account, migration and storage status",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		fmt.Printf("Data directory: %s\n", cfg.Storage.DataDir)

		record, err := storages.Credentials.Load(ctx)
		switch {
		case errors.Is(err, store.ErrNoCredential):
			color.Yellow("No account registered. Run `finkeep register` first.")
			return nil
		case err != nil:
			return fmt.Errorf("load account: %w", err)
		}
		fmt.Printf("Account:        %s (created %s)\n", record.Username, record.CreatedAt.Format("2006-01-02"))

		state, err := services.Migration.State(ctx)
		if err != nil {
			return fmt.Errorf("read migration state: %w", err)
		}
		if state == store.MigrationCompleted {
			color.Green("Migration:      completed")
		} else {
			color.Yellow("Migration:      pending (runs on next login)")
		}

		legacy, err := storages.Legacy.Collections(ctx)
		if err != nil {
			return fmt.Errorf("list legacy collections: %w", err)
		}
		fmt.Printf("Legacy blobs:   %d\n", len(legacy))

		fmt.Println("Records:")
		for _, name := range models.KnownCollections() {
			count, err := storages.Records.Count(ctx, name)
			if err != nil {
				return fmt.Errorf("count %s: %w", name, err)
			}
			fmt.Printf("  %-24s %d\n", name, count)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
