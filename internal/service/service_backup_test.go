package service_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finkeep/finkeep/internal/service"
	"github.com/finkeep/finkeep/models"
)

func TestBackupService_ExportRestoreRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	salt, err := f.keychain.GenerateSalt()
	require.NoError(t, err)
	key := f.keychain.DeriveKey("hunter2", salt)

	f.seedLegacy(t, key, models.CollectionTransactions,
		`[{"id":"t1","type":"expense","amount":"42.10","category":"food","date":"2026-08-01"}]`)
	f.seedLegacy(t, key, models.CollectionGoals,
		`[{"id":"g1","name":"vacation","target_amount":"1500","saved_amount":"200"}]`)
	f.seedLegacy(t, key, models.CollectionBills,
		`[{"id":"b1","name":"rent","amount":"900","due_day":1}]`)
	f.seedLegacy(t, key, models.CollectionBudgets,
		`[{"id":"bu1","category":"food","limit":"300","month":"2026-08"}]`)

	_, _, err = f.services.Credential.CreateAccount(ctx, "dana", "hunter2")
	require.NoError(t, err)
	_, err = f.services.Migration.Migrate(ctx, key)
	require.NoError(t, err)

	backup, err := f.services.Backup.Export(ctx)
	require.NoError(t, err)

	assert.Equal(t, models.BackupVersion, backup.Version)
	assert.Equal(t, "dana", backup.User.Username)
	assert.False(t, backup.ExportedAt.IsZero())
	require.Len(t, backup.Transactions, 1)
	assert.Equal(t, "t1", backup.Transactions[0].ID)
	assert.True(t, backup.Transactions[0].Amount.Equal(decimal.RequireFromString("42.10")))
	require.Len(t, backup.Goals, 1)
	require.Len(t, backup.Bills, 1)
	require.Len(t, backup.Budgets, 1)

	// Restore into a fresh device.
	other := newFixture(t)

	counts, err := other.services.Backup.Restore(ctx, backup)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		models.CollectionTransactions: 1,
		models.CollectionGoals:        1,
		models.CollectionBills:        1,
		models.CollectionBudgets:      1,
	}, counts)

	restored, err := other.storages.Credentials.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "dana", restored.Username)

	rec, err := other.storages.Records.Get(ctx, models.CollectionTransactions, "t1")
	require.NoError(t, err)
	assert.Equal(t, "t1", rec.ID)

	// The restored account still opens with the original password.
	_, err = other.services.Credential.VerifyPassword(ctx, restored, "hunter2")
	assert.NoError(t, err)
}

func TestBackupService_RestoreReplacesExistingData(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	record, _, err := f.services.Credential.CreateAccount(ctx, "dana", "hunter2")
	require.NoError(t, err)

	require.NoError(t, f.storages.Records.Put(ctx, models.CollectionTransactions, models.Record{
		ID:            "stale",
		SchemaVersion: models.RecordSchemaVersion,
		Payload:       []byte(`{"id":"stale"}`),
	}))

	backup := models.Backup{
		User:    record,
		Version: models.BackupVersion,
		Transactions: []models.Transaction{
			{ID: "fresh", Type: models.TransactionExpense, Category: "food", Date: "2026-08-02"},
		},
	}

	counts, err := f.services.Backup.Restore(ctx, backup)
	require.NoError(t, err)
	assert.Equal(t, 1, counts[models.CollectionTransactions])

	_, err = f.storages.Records.Get(ctx, models.CollectionTransactions, "stale")
	assert.Error(t, err)
	_, err = f.storages.Records.Get(ctx, models.CollectionTransactions, "fresh")
	assert.NoError(t, err)
}

func TestBackupService_RestoreRejectsInvalidEntities(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	record, _, err := f.services.Credential.CreateAccount(ctx, "dana", "hunter2")
	require.NoError(t, err)

	backup := models.Backup{
		User:    record,
		Version: models.BackupVersion,
		Transactions: []models.Transaction{
			{ID: "t1", Type: "transfer", Category: "food", Date: "2026-08-02"},
		},
	}

	_, err = f.services.Backup.Restore(ctx, backup)
	require.Error(t, err)

	// Nothing was written.
	count, err := f.storages.Records.Count(ctx, models.CollectionTransactions)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestBackupService_RestoreUnsupportedVersion(t *testing.T) {
	f := newFixture(t)

	_, err := f.services.Backup.Restore(context.Background(), models.Backup{Version: "99"})
	assert.ErrorIs(t, err, service.ErrUnsupportedBackupVersion)
}
