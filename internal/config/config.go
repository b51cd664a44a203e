// SPDX-License-Identifier: Apache-2.0

package config

// Config is the top-level configuration container for finkeep. It is
// populated by merging values from environment variables and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type Config struct {
	// App holds application-level settings.
	App App `envPrefix:"FINKEEP_"`

	// Storage holds configuration for all persistence backends: the
	// structured SQLite store, the legacy blob store file and the
	// credential record file.
	Storage Storage `envPrefix:"FINKEEP_STORAGE_"`
}

// App holds application-level configuration values.
type App struct {
	// LogLevel is the minimum zerolog level emitted ("debug", "info",
	// "warn", "error"). Empty means "info".
	// Env: FINKEEP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" json:"log_level"`

	// KDFIterations is the PBKDF2 work factor for key derivation. Zero
	// means the built-in default (100000). Lowered in tests only; changing
	// it on a live profile does not rotate existing keys.
	// Env: FINKEEP_KDF_ITERATIONS
	KDFIterations int `env:"KDF_ITERATIONS" json:"kdf_iterations"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DataDir is the directory holding every persisted file. Empty means
	// "$HOME/.finkeep". The per-file paths below default to locations
	// inside DataDir when left empty.
	// Env: FINKEEP_STORAGE_DATA_DIR
	DataDir string `env:"DATA_DIR" json:"data_dir"`

	// DB holds the structured record store connection settings.
	DB DB `envPrefix:"DB_" json:"db"`

	// LegacyPath is the path of the first-generation blob store file.
	// Env: FINKEEP_STORAGE_LEGACY_PATH
	LegacyPath string `env:"LEGACY_PATH" json:"legacy_path"`

	// CredentialsPath is the path of the credential record file.
	// Env: FINKEEP_STORAGE_CREDENTIALS_PATH
	CredentialsPath string `env:"CREDENTIALS_PATH" json:"credentials_path"`
}

// DB holds connection settings for the SQLite record store.
type DB struct {
	// DSN is the SQLite data source name, normally a file path inside the
	// data directory.
	// Env: FINKEEP_STORAGE_DB_DSN
	DSN string `env:"DSN" json:"dsn"`
}

// GetConfig loads, merges, and validates the application configuration.
// Sources in priority order (first source wins for non-zero fields):
//  1. Environment variables
//  2. JSON file at jsonPath (optional; empty path skips it)
//
// Returns a fully populated *Config with defaults applied, or an error if a
// source fails to load or the final config fails validation.
func GetConfig(jsonPath string) (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withJSON(jsonPath).
		build()
}
