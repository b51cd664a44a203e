// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/finkeep/finkeep/models"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Verify the password and migrate pending legacy data",
	Long: `Checks the password against the local account. When first-generation
encrypted data files are still pending, signing in decrypts and migrates them
into the structured store.`,
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
			return fmt.Errorf("login: %w", err)
		}
		defer services.Session.SignOut()

		color.Green("Signed in as %q.", username)

		for _, name := range models.KnownCollections() {
			count, err := storages.Records.Count(cmd.Context(), name)
			if err != nil {
				return fmt.Errorf("count %s: %w", name, err)
			}
			fmt.Printf("  %-24s %d\n", name, count)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
}
