// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/finkeep/finkeep/models"
)

var importInput string

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Restore data from a JSON backup file",
	Long: `Replaces the account record and every exported collection with the
contents of a backup file produced by export. Existing records in those
collections are removed first.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := os.ReadFile(importInput)
		if err != nil {
			return fmt.Errorf("read backup file: %w", err)
		}

		var backup models.Backup
		if err := json.Unmarshal(data, &backup); err != nil {
			return fmt.Errorf("decode backup file: %w", err)
		}

		ok, err := confirm(fmt.Sprintf("Replace local data with backup for %q from %s?",
			backup.User.Username, backup.ExportedAt.Format("2006-01-02")))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Aborted.")
			return nil
		}

		counts, err := services.Backup.Restore(cmd.Context(), backup)
		if err != nil {
			return fmt.Errorf("import: %w", err)
		}

		color.Green("Backup restored.")
		for name, count := range counts {
			fmt.Printf("  %-24s %d\n", name, count)
		}
		return nil
	},
}

func init() {
	importCmd.Flags().StringVarP(&importInput, "input", "i", "", "backup file path (required)")
	_ = importCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(importCmd)
}
