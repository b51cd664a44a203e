package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finkeep/finkeep/internal/logger"
	"github.com/finkeep/finkeep/models"
)

func TestLegacyBlobStore_MissingFileIsEmptyStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.json")

	s, err := NewLegacyBlobStore(path, logger.Nop())
	require.NoError(t, err)

	_, ok, err := s.ReadCollection(context.Background(), models.CollectionTransactions)
	require.NoError(t, err)
	assert.False(t, ok, "absent collection is not an error")

	names, err := s.Collections(context.Background())
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestLegacyBlobStore_WriteReadClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.json")
	ctx := context.Background()

	s, err := NewLegacyBlobStore(path, logger.Nop())
	require.NoError(t, err)

	blob := models.EncryptedBlob{IV: []byte("iv-iv-iv-iv!"), Ciphertext: []byte("ciphertext")}
	require.NoError(t, s.WriteCollection(ctx, models.CollectionGoals, blob))

	got, ok, err := s.ReadCollection(ctx, models.CollectionGoals)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, blob, got)

	require.NoError(t, s.ClearCollection(ctx, models.CollectionGoals))
	_, ok, err = s.ReadCollection(ctx, models.CollectionGoals)
	require.NoError(t, err)
	assert.False(t, ok)

	// clearing an absent collection is a no-op
	require.NoError(t, s.ClearCollection(ctx, models.CollectionGoals))
}

func TestLegacyBlobStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.json")
	ctx := context.Background()

	s, err := NewLegacyBlobStore(path, logger.Nop())
	require.NoError(t, err)

	blob := models.EncryptedBlob{IV: []byte("123456789012"), Ciphertext: []byte("sealed")}
	require.NoError(t, s.WriteCollection(ctx, models.CollectionBills, blob))

	reopened, err := NewLegacyBlobStore(path, logger.Nop())
	require.NoError(t, err)

	got, ok, err := reopened.ReadCollection(ctx, models.CollectionBills)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, blob, got)

	names, err := reopened.Collections(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{models.CollectionBills}, names)
}

func TestLegacyBlobStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewLegacyBlobStore(path, logger.Nop())
	require.ErrorIs(t, err, ErrStorageUnavailable)
}
