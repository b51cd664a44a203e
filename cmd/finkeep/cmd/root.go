// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/finkeep/finkeep/internal/config"
	"github.com/finkeep/finkeep/internal/crypto"
	"github.com/finkeep/finkeep/internal/logger"
	"github.com/finkeep/finkeep/internal/service"
	"github.com/finkeep/finkeep/internal/store"
)

var (
	cfgFile  string
	cfg      *config.Config
	log      *logger.Logger
	storages *store.Storages
	services *service.Services
)

var rootCmd = &cobra.Command{
	Use:   "finkeep",
	Short: "finkeep is a local encrypted personal finance vault",
	Long: `finkeep keeps your transactions, goals, bills and budgets on this
device, protected by a password that is never stored. First-generation
encrypted data files are migrated into the structured store automatically on
the first sign-in.`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

// setup wires configuration, logging, storage and the service layer before
// any subcommand runs.
func setup(c *cobra.Command, _ []string) error {
	var err error

	cfg, err = config.GetConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log = logger.NewLogger("finkeep", cfg.App.LogLevel)
	c.SetContext(log.WithContext(c.Context()))

	storages, err = store.NewStorages(cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}

	keychain := crypto.NewKeyChainServiceWithIterations(cfg.App.KDFIterations)
	services = service.NewServices(storages, keychain, log)

	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a JSON config file")
}
