package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finkeep/finkeep/internal/service"
)

func TestCredentialService_CreateAccountAndVerify(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	record, key, err := f.services.Credential.CreateAccount(ctx, "dana", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "dana", record.Username)
	assert.Len(t, record.Salt, 16)
	assert.False(t, record.PasswordCheck.IsZero())
	assert.Len(t, key, 32)

	// Round trip through the store: what sign-in will actually read.
	loaded, err := f.storages.Credentials.Load(ctx)
	require.NoError(t, err)

	verified, err := f.services.Credential.VerifyPassword(ctx, loaded, "hunter2")
	require.NoError(t, err)
	assert.Equal(t, key, verified)
}

func TestCredentialService_CreateAccountTwice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, _, err := f.services.Credential.CreateAccount(ctx, "dana", "hunter2")
	require.NoError(t, err)

	_, _, err = f.services.Credential.CreateAccount(ctx, "other", "secret")
	assert.ErrorIs(t, err, service.ErrAccountExists)
}

func TestCredentialService_VerifyWrongPassword(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	record, _, err := f.services.Credential.CreateAccount(ctx, "dana", "hunter2")
	require.NoError(t, err)

	key, err := f.services.Credential.VerifyPassword(ctx, record, "hunter3")
	assert.ErrorIs(t, err, service.ErrAuthenticationFailed)
	assert.Nil(t, key)
}

func TestCredentialService_VerifyTamperedRecord(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	record, _, err := f.services.Credential.CreateAccount(ctx, "dana", "hunter2")
	require.NoError(t, err)

	record.PasswordCheck.Ciphertext[0] ^= 0xff

	// A corrupted record and a wrong password are indistinguishable.
	_, err = f.services.Credential.VerifyPassword(ctx, record, "hunter2")
	assert.ErrorIs(t, err, service.ErrAuthenticationFailed)
}

func TestCredentialService_ChangePassword(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	record, oldKey, err := f.services.Credential.CreateAccount(ctx, "dana", "hunter2")
	require.NoError(t, err)

	f.seedLegacy(t, oldKey, "transactions", `[{"id":"t1"}]`)

	newRecord, newKey, err := f.services.Credential.ChangePassword(ctx, record, "hunter2", "correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, record.Salt, newRecord.Salt)
	assert.NotEqual(t, oldKey, newKey)

	loaded, err := f.storages.Credentials.Load(ctx)
	require.NoError(t, err)

	_, err = f.services.Credential.VerifyPassword(ctx, loaded, "hunter2")
	assert.ErrorIs(t, err, service.ErrAuthenticationFailed)

	_, err = f.services.Credential.VerifyPassword(ctx, loaded, "correct horse")
	require.NoError(t, err)

	// The legacy blob must have moved to the new key in the same operation.
	blob, ok, err := f.storages.Legacy.ReadCollection(ctx, "transactions")
	require.NoError(t, err)
	require.True(t, ok)

	plaintext, err := f.keychain.Decrypt(blob, newKey)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"t1"}]`, string(plaintext))

	_, err = f.keychain.Decrypt(blob, oldKey)
	assert.Error(t, err)
}

func TestCredentialService_ChangePasswordWrongOld(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	record, _, err := f.services.Credential.CreateAccount(ctx, "dana", "hunter2")
	require.NoError(t, err)

	_, _, err = f.services.Credential.ChangePassword(ctx, record, "wrong", "whatever")
	assert.ErrorIs(t, err, service.ErrAuthenticationFailed)

	// Nothing was re-keyed.
	loaded, err := f.storages.Credentials.Load(ctx)
	require.NoError(t, err)
	_, err = f.services.Credential.VerifyPassword(ctx, loaded, "hunter2")
	assert.NoError(t, err)
}

func TestCredentialService_ChangePasswordCorruptBlobAborts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	record, oldKey, err := f.services.Credential.CreateAccount(ctx, "dana", "hunter2")
	require.NoError(t, err)

	blob := f.seal(t, oldKey, `[{"id":"g1"}]`)
	blob.Ciphertext[0] ^= 0xff
	require.NoError(t, f.storages.Legacy.WriteCollection(ctx, "goals", blob))

	// A blob the verified old key cannot open means corruption; re-keying
	// must abort instead of stranding it under a retired key.
	_, _, err = f.services.Credential.ChangePassword(ctx, record, "hunter2", "correct horse")
	require.Error(t, err)

	loaded, err := f.storages.Credentials.Load(ctx)
	require.NoError(t, err)
	_, err = f.services.Credential.VerifyPassword(ctx, loaded, "hunter2")
	assert.NoError(t, err)
}
