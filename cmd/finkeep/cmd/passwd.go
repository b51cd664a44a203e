// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var passwdCmd = &cobra.Command{
	Use:   "passwd",
	Short: "Change the account password",
	Long: `Verifies the current password, derives a fresh key from the new one
and re-encrypts every remaining first-generation data file under it in the
same operation.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		username, err := promptLine("Username")
		if err != nil {
			return err
		}
		oldPassword, err := promptPassword("Current password")
		if err != nil {
			return err
		}

		if err := services.Session.SignIn(cmd.Context(), username, oldPassword); err != nil {
			return fmt.Errorf("passwd: %w", err)
		}
		defer services.Session.SignOut()

		newPassword, err := promptPassword("New password")
		if err != nil {
			return err
		}
		if newPassword == "" {
			return errors.New("password must not be empty")
		}
		newConfirm, err := promptPassword("Confirm new password")
		if err != nil {
			return err
		}
		if newPassword != newConfirm {
			return errors.New("passwords do not match")
		}

		if err := services.Session.ChangePassword(cmd.Context(), oldPassword, newPassword); err != nil {
			return fmt.Errorf("passwd: %w", err)
		}

		color.Green("Password changed.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(passwdCmd)
}
