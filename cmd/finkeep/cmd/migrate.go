// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/finkeep/finkeep/internal/store"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Inspect or reset the legacy data migration",
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the migration state",
	RunE: func(cmd *cobra.Command, _ []string) error {
		state, err := services.Migration.State(cmd.Context())
		if err != nil {
			return fmt.Errorf("read migration state: %w", err)
		}
		if state == store.MigrationCompleted {
			color.Green("Migration completed.")
		} else {
			color.Yellow("Migration pending; it runs on the next login.")
		}
		return nil
	},
}

var migrateResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Mark the migration as pending again",
	Long: `Clears the migration marker so the next login re-runs the legacy
migration. Use this after repairing legacy data files that were skipped;
migrated collections are cleared and reloaded from the legacy blobs.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ok, err := confirm("Re-run the legacy migration on next login?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Aborted.")
			return nil
		}

		if err := services.Migration.Reset(cmd.Context()); err != nil {
			return fmt.Errorf("reset migration: %w", err)
		}

		color.Green("Migration marked pending.")
		return nil
	},
}

func init() {
	migrateCmd.AddCommand(migrateStatusCmd, migrateResetCmd)
	rootCmd.AddCommand(migrateCmd)
}
