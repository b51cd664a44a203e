package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finkeep/finkeep/internal/service"
	"github.com/finkeep/finkeep/internal/store"
	"github.com/finkeep/finkeep/models"
)

func TestSessionService_SignUpOpensSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assert.Equal(t, service.SignedOut, f.services.Session.State())

	require.NoError(t, f.services.Session.SignUp(ctx, "dana", "hunter2"))
	assert.Equal(t, service.SignedIn, f.services.Session.State())

	key, err := f.services.Session.Key()
	require.NoError(t, err)
	assert.Len(t, key, 32)

	username, err := f.services.Session.Username()
	require.NoError(t, err)
	assert.Equal(t, "dana", username)

	// Sign-up sequences the migration too, so the session is ready on an
	// empty device without a separate step.
	state, err := f.services.Migration.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, store.MigrationCompleted, state)
}

func TestSessionService_SignUpExistingAccount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.services.Session.SignUp(ctx, "dana", "hunter2"))
	f.services.Session.SignOut()

	err := f.services.Session.SignUp(ctx, "other", "secret")
	assert.ErrorIs(t, err, service.ErrAccountExists)
	assert.Equal(t, service.SignedOut, f.services.Session.State())
}

func TestSessionService_SignInWrongPassword(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.services.Session.SignUp(ctx, "dana", "hunter2"))
	f.services.Session.SignOut()

	err := f.services.Session.SignIn(ctx, "dana", "hunter3")
	assert.ErrorIs(t, err, service.ErrAuthenticationFailed)
	assert.Equal(t, service.SignedOut, f.services.Session.State())

	_, err = f.services.Session.Key()
	assert.ErrorIs(t, err, service.ErrNotSignedIn)
}

func TestSessionService_SignInWrongUsername(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.services.Session.SignUp(ctx, "dana", "hunter2"))
	f.services.Session.SignOut()

	// Indistinguishable from a wrong password.
	err := f.services.Session.SignIn(ctx, "mallory", "hunter2")
	assert.ErrorIs(t, err, service.ErrAuthenticationFailed)
}

func TestSessionService_SignInNoAccount(t *testing.T) {
	f := newFixture(t)

	err := f.services.Session.SignIn(context.Background(), "dana", "hunter2")
	assert.ErrorIs(t, err, service.ErrNoAccount)
	assert.Equal(t, service.SignedOut, f.services.Session.State())
}

func TestSessionService_SignInWhileSignedIn(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.services.Session.SignUp(ctx, "dana", "hunter2"))

	err := f.services.Session.SignIn(ctx, "dana", "hunter2")
	assert.ErrorIs(t, err, service.ErrAlreadySignedIn)

	// The rejected attempt must not disturb the active session.
	assert.Equal(t, service.SignedIn, f.services.Session.State())
}

func TestSessionService_SignInRunsPendingMigration(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.services.Session.SignUp(ctx, "dana", "hunter2"))

	key, err := f.services.Session.Key()
	require.NoError(t, err)
	f.seedLegacy(t, key, models.CollectionTransactions, `[{"id":"t1"},{"id":"t2"},{"id":"t3"}]`)

	require.NoError(t, f.services.Migration.Reset(ctx))
	f.services.Session.SignOut()

	require.NoError(t, f.services.Session.SignIn(ctx, "dana", "hunter2"))

	count, err := f.storages.Records.Count(ctx, models.CollectionTransactions)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	state, err := f.services.Migration.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, store.MigrationCompleted, state)
}

func TestSessionService_SignInSkipsCompletedMigration(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.services.Session.SignUp(ctx, "dana", "hunter2"))

	// Put a record in directly; a re-run of the migration would clear it.
	require.NoError(t, f.storages.Records.Put(ctx, models.CollectionGoals, models.Record{
		ID:            "g-new",
		SchemaVersion: models.RecordSchemaVersion,
		Payload:       []byte(`{"id":"g-new","name":"laptop"}`),
	}))

	f.services.Session.SignOut()
	require.NoError(t, f.services.Session.SignIn(ctx, "dana", "hunter2"))

	_, err := f.storages.Records.Get(ctx, models.CollectionGoals, "g-new")
	assert.NoError(t, err)
}

func TestSessionService_SignOutDropsKey(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.services.Session.SignUp(ctx, "dana", "hunter2"))
	f.services.Session.SignOut()

	assert.Equal(t, service.SignedOut, f.services.Session.State())

	_, err := f.services.Session.Key()
	assert.ErrorIs(t, err, service.ErrNotSignedIn)
	_, err = f.services.Session.Username()
	assert.ErrorIs(t, err, service.ErrNotSignedIn)
}

func TestSessionService_ChangePasswordRequiresSession(t *testing.T) {
	f := newFixture(t)

	err := f.services.Session.ChangePassword(context.Background(), "hunter2", "correct horse")
	assert.ErrorIs(t, err, service.ErrNotSignedIn)
}

func TestSessionService_ChangePasswordSwapsKey(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.services.Session.SignUp(ctx, "dana", "hunter2"))

	oldKey, err := f.services.Session.Key()
	require.NoError(t, err)
	oldKeyCopy := append([]byte(nil), oldKey...)

	require.NoError(t, f.services.Session.ChangePassword(ctx, "hunter2", "correct horse"))

	newKey, err := f.services.Session.Key()
	require.NoError(t, err)
	assert.NotEqual(t, oldKeyCopy, newKey)
	assert.Equal(t, service.SignedIn, f.services.Session.State())

	f.services.Session.SignOut()

	err = f.services.Session.SignIn(ctx, "dana", "hunter2")
	assert.ErrorIs(t, err, service.ErrAuthenticationFailed)

	require.NoError(t, f.services.Session.SignIn(ctx, "dana", "correct horse"))
}
