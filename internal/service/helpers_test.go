package service_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/finkeep/finkeep/internal/config"
	"github.com/finkeep/finkeep/internal/crypto"
	"github.com/finkeep/finkeep/internal/logger"
	"github.com/finkeep/finkeep/internal/service"
	"github.com/finkeep/finkeep/internal/store"
	"github.com/finkeep/finkeep/models"
)

// testIterations keeps key derivation cheap; none of the service behaviour
// depends on the iteration count.
const testIterations = 64

// fixture wires the real storage layer (in-memory SQLite, temp-dir files) and
// the real keychain under the service layer. Mocks are reserved for failure
// paths the real components cannot produce.
type fixture struct {
	storages *store.Storages
	keychain crypto.KeyChainService
	services *service.Services
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()

	db, err := store.NewConnectSQLite(context.Background(), config.DB{DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate())

	legacy, err := store.NewLegacyBlobStore(filepath.Join(dir, "legacy.json"), logger.Nop())
	require.NoError(t, err)

	storages := &store.Storages{
		Records:     store.NewRecordStore(db, logger.Nop()),
		Legacy:      legacy,
		Credentials: store.NewCredentialStore(filepath.Join(dir, "user.json"), logger.Nop()),
	}

	keychain := crypto.NewKeyChainServiceWithIterations(testIterations)

	return &fixture{
		storages: storages,
		keychain: keychain,
		services: service.NewServices(storages, keychain, logger.Nop()),
	}
}

// seal encrypts a JSON payload the way the legacy layer stored it.
func (f *fixture) seal(t *testing.T, key []byte, payload string) models.EncryptedBlob {
	t.Helper()
	blob, err := f.keychain.Encrypt([]byte(payload), key)
	require.NoError(t, err)
	return blob
}

// seedLegacy writes an encrypted collection blob into the legacy store.
func (f *fixture) seedLegacy(t *testing.T, key []byte, name, payload string) {
	t.Helper()
	require.NoError(t, f.storages.Legacy.WriteCollection(context.Background(), name, f.seal(t, key, payload)))
}
