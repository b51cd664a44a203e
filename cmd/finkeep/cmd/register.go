// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create the account on this device",
	Long: `Creates the single local account. The password is stretched into an
encryption key and never written to disk; losing it means losing access to
the data.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		username, err := promptLine("Username")
		if err != nil {
			return err
		}
		if username == "" {
			return errors.New("username must not be empty")
		}

		password, err := promptPassword("Password")
		if err != nil {
			return err
		}
		if password == "" {
			return errors.New("password must not be empty")
		}

		passwordConfirm, err := promptPassword("Confirm password")
		if err != nil {
			return err
		}
		if password != passwordConfirm {
			return errors.New("passwords do not match")
		}

		if err := services.Session.SignUp(cmd.Context(), username, password); err != nil {
			return fmt.Errorf("register: %w", err)
		}
		defer services.Session.SignOut()

		color.Green("Account %q created.", username)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
}
