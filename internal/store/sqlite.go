// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/finkeep/finkeep/internal/config"
	"github.com/finkeep/finkeep/internal/logger"
	"github.com/finkeep/finkeep/migrations"
)

// DB wraps the SQLite connection used by the structured record store.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewConnectSQLite opens (creating the file when missing) and pings the
// SQLite database configured in cfg. Errors wrap ErrStorageUnavailable since
// nothing can proceed without the database.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("%w: create database file: %v", ErrStorageUnavailable, err)
	}

	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("%w: open connection: %v", ErrStorageUnavailable, err)
	}

	// A single connection avoids SQLITE_BUSY with concurrent writers and
	// keeps :memory: databases on one connection.
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, fmt.Errorf("%w: ping: %v", ErrStorageUnavailable, err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return &DB{
		DB:     conn,
		logger: log,
	}, nil
}

// Migrate applies the embedded goose schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if dbFile == ":memory:" {
		return nil
	}

	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}
