package validators

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/finkeep/finkeep/models"
)

func validBackup() models.Backup {
	return models.Backup{
		Version: models.BackupVersion,
		User: models.CredentialRecord{
			Username: "dana",
			Salt:     []byte("0123456789abcdef"),
			PasswordCheck: models.EncryptedBlob{
				IV:         []byte("iv"),
				Ciphertext: []byte("ct"),
			},
		},
		Transactions: []models.Transaction{
			{ID: "t1", Type: models.TransactionExpense, Amount: decimal.NewFromInt(10), Category: "food", Date: "2026-08-01"},
		},
		Goals: []models.Goal{
			{ID: "g1", Name: "vacation", TargetAmount: decimal.NewFromInt(1500)},
		},
		Bills: []models.Bill{
			{ID: "b1", Name: "rent", Amount: decimal.NewFromInt(900), DueDay: 1},
		},
		Budgets: []models.Budget{
			{ID: "bu1", Category: "food", Limit: decimal.NewFromInt(300), Month: "2026-08"},
		},
	}
}

func TestBackupValidator_ValidBackup(t *testing.T) {
	v := NewBackupValidator()
	assert.NoError(t, v.Validate(context.Background(), validBackup()))
}

func TestBackupValidator_Backup(t *testing.T) {
	v := NewBackupValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.Backup)
		wantErr error
	}{
		{"wrong version", func(b *models.Backup) { b.Version = "99" }, ErrInvalidVersion},
		{"empty username", func(b *models.Backup) { b.User.Username = "" }, ErrEmptyUsername},
		{"missing salt", func(b *models.Backup) { b.User.Salt = nil }, ErrMissingPasswordCheck},
		{"missing password check", func(b *models.Backup) { b.User.PasswordCheck = models.EncryptedBlob{} }, ErrMissingPasswordCheck},
		{"bad transaction type", func(b *models.Backup) { b.Transactions[0].Type = "transfer" }, ErrInvalidType},
		{"negative transaction amount", func(b *models.Backup) { b.Transactions[0].Amount = decimal.NewFromInt(-1) }, ErrInvalidAmount},
		{"empty transaction category", func(b *models.Backup) { b.Transactions[0].Category = "" }, ErrEmptyCategory},
		{"bad transaction date", func(b *models.Backup) { b.Transactions[0].Date = "08/01/2026" }, ErrInvalidDate},
		{"empty goal name", func(b *models.Backup) { b.Goals[0].Name = "" }, ErrEmptyName},
		{"negative goal target", func(b *models.Backup) { b.Goals[0].TargetAmount = decimal.NewFromInt(-5) }, ErrInvalidAmount},
		{"bill due day out of range", func(b *models.Backup) { b.Bills[0].DueDay = 32 }, ErrInvalidDueDay},
		{"bad budget month", func(b *models.Backup) { b.Budgets[0].Month = "August" }, ErrInvalidMonth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backup := validBackup()
			tt.mutate(&backup)
			assert.ErrorIs(t, v.Validate(ctx, backup), tt.wantErr)
		})
	}
}

func TestBackupValidator_FieldScoping(t *testing.T) {
	v := NewBackupValidator()
	ctx := context.Background()

	tx := models.Transaction{Type: "transfer", Amount: decimal.NewFromInt(10), Category: "food", Date: "2026-08-01"}

	assert.ErrorIs(t, v.Validate(ctx, tx), ErrInvalidType)
	assert.NoError(t, v.Validate(ctx, tx, FieldAmount, FieldDate))
}

func TestBackupValidator_UnsupportedType(t *testing.T) {
	v := NewBackupValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}
