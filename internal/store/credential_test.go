package store

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finkeep/finkeep/internal/logger"
	"github.com/finkeep/finkeep/models"
)

func TestCredentialStore_LoadAbsent(t *testing.T) {
	s := NewCredentialStore(filepath.Join(t.TempDir(), "user.json"), logger.Nop())

	_, err := s.Load(context.Background())
	require.ErrorIs(t, err, ErrNoCredential)
}

func TestCredentialStore_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user.json")
	s := NewCredentialStore(path, logger.Nop())
	ctx := context.Background()

	record := models.CredentialRecord{
		Username: "alice",
		Salt:     []byte("0123456789abcdef"),
		PasswordCheck: models.EncryptedBlob{
			IV:         []byte("123456789012"),
			Ciphertext: []byte("marker-ciphertext"),
		},
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		UpdatedAt: time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, s.Save(ctx, record))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, record, got)
}

func TestCredentialStore_FileMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}

	path := filepath.Join(t.TempDir(), "user.json")
	s := NewCredentialStore(path, logger.Nop())

	require.NoError(t, s.Save(context.Background(), models.CredentialRecord{Username: "bob"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestCredentialStore_Delete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user.json")
	s := NewCredentialStore(path, logger.Nop())
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, models.CredentialRecord{Username: "carol"}))
	require.NoError(t, s.Delete(ctx))

	_, err := s.Load(ctx)
	require.ErrorIs(t, err, ErrNoCredential)

	// deleting twice is a no-op
	require.NoError(t, s.Delete(ctx))
}
