package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/finkeep/finkeep/internal/config"
	"github.com/finkeep/finkeep/internal/logger"
)

func testDBConfig() config.DB {
	return config.DB{DSN: ":memory:"}
}

func TestNewConnectSQLite_CreatesFile(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "finkeep.db")

	db, err := NewConnectSQLite(context.Background(), config.DB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	defer db.Close()

	require.FileExists(t, dsn)
	require.NoError(t, db.Migrate())
}

func TestNewConnectSQLite_BadPath(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "missing-dir", "finkeep.db")

	_, err := NewConnectSQLite(context.Background(), config.DB{DSN: dsn}, logger.Nop())
	require.ErrorIs(t, err, ErrStorageUnavailable)
}
