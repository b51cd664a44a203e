// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"
	"os"

	"github.com/finkeep/finkeep/internal/config"
	"github.com/finkeep/finkeep/internal/logger"
)

// Storages groups all storage backends into a single value that can be
// passed around the service layer.
type Storages struct {
	// Records is the structured record store, the system of record once
	// migration has run.
	Records RecordStore

	// Legacy is the first-generation encrypted blob store, read by the
	// migration and rewritten on password change.
	Legacy LegacyBlobStore

	// Credentials holds the account record used for authentication.
	Credentials CredentialStore
}

// NewStorages initialises the storage layer using the supplied configuration
// and logger. It performs the following steps:
//  1. Creates the data directory when missing.
//  2. Opens the SQLite connection (creating the database file if needed) and
//     runs pending schema migrations via [DB.Migrate].
//  3. Opens the legacy blob store file and the credential file store.
//
// Returns an error if any backend cannot be prepared.
func NewStorages(cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating storages...")

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create data dir: %v", ErrStorageUnavailable, err)
	}

	db, err := NewConnectSQLite(context.Background(), cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	legacy, err := NewLegacyBlobStore(cfg.LegacyPath, log)
	if err != nil {
		return nil, fmt.Errorf("open legacy store: %w", err)
	}

	return &Storages{
		Records:     NewRecordStore(db, log),
		Legacy:      legacy,
		Credentials: NewCredentialStore(cfg.CredentialsPath, log),
	}, nil
}
