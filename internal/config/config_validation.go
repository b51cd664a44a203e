// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
)

// defaultKDFIterations mirrors the crypto package default. Kept as a literal
// here so config does not depend on the crypto package.
const defaultKDFIterations = 100_000

// applyDefaults fills every empty field with its default value. DataDir
// defaults to $HOME/.finkeep and the per-file paths default to well-known
// names inside DataDir.
func (c *Config) applyDefaults() error {
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.App.KDFIterations == 0 {
		c.App.KDFIterations = defaultKDFIterations
	}

	if c.Storage.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ErrNoDataDir
		}
		c.Storage.DataDir = filepath.Join(home, ".finkeep")
	}
	if c.Storage.DB.DSN == "" {
		c.Storage.DB.DSN = filepath.Join(c.Storage.DataDir, "finkeep.db")
	}
	if c.Storage.LegacyPath == "" {
		c.Storage.LegacyPath = filepath.Join(c.Storage.DataDir, "legacy.json")
	}
	if c.Storage.CredentialsPath == "" {
		c.Storage.CredentialsPath = filepath.Join(c.Storage.DataDir, "user.json")
	}

	return nil
}

// validate checks the merged config for values that cannot work at all.
func (c *Config) validate() error {
	switch c.App.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return ErrBadLogLevel
	}

	if c.App.KDFIterations < 0 {
		return ErrBadKDFIterations
	}

	return nil
}
