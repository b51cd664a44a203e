// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all data to a JSON backup file",
	Long: `Writes the account record and every collection to a single JSON
file. The file is written in the clear; password verification gates the
export, so keep the file somewhere safe.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		username, err := promptLine("Username")
		if err != nil {
			return err
		}
		password, err := promptPassword("Password")
		if err != nil {
			return err
		}

		if err := services.Session.SignIn(cmd.Context(), username, password); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		defer services.Session.SignOut()

		backup, err := services.Backup.Export(cmd.Context())
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}

		data, err := json.MarshalIndent(backup, "", "  ")
		if err != nil {
			return fmt.Errorf("encode backup: %w", err)
		}

		if err := os.WriteFile(exportOutput, data, 0o600); err != nil {
			return fmt.Errorf("write backup file: %w", err)
		}

		color.Green("Backup written to %s.", exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "finkeep-backup.json", "backup file path")
	rootCmd.AddCommand(exportCmd)
}
