// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"context"
	"fmt"
	"time"

	"github.com/finkeep/finkeep/models"
)

const (
	FieldVersion  = "version"
	FieldUser     = "user"
	FieldType     = "type"
	FieldAmount   = "amount"
	FieldDate     = "date"
	FieldCategory = "category"
	FieldName     = "name"
	FieldDueDay   = "due_day"
	FieldMonth    = "month"
)

type BackupValidator struct {
}

// NewBackupValidator returns a Validator for backup files and the typed
// entities they carry.
func NewBackupValidator() Validator {
	return &BackupValidator{}
}

func (v *BackupValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Backup:
		return v.validateBackup(ctx, value, fields...)
	case *models.Backup:
		return v.validateBackup(ctx, *value, fields...)

	case models.Transaction:
		return v.validateTransaction(value, fields...)
	case *models.Transaction:
		return v.validateTransaction(*value, fields...)

	case models.Goal:
		return v.validateGoal(value, fields...)
	case *models.Goal:
		return v.validateGoal(*value, fields...)

	case models.Bill:
		return v.validateBill(value, fields...)
	case *models.Bill:
		return v.validateBill(*value, fields...)

	case models.Budget:
		return v.validateBudget(value, fields...)
	case *models.Budget:
		return v.validateBudget(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *BackupValidator) validateBackup(ctx context.Context, backup models.Backup, fields ...string) error {
	if hasField(fields, FieldVersion) && backup.Version != models.BackupVersion {
		return fmt.Errorf("%w: %q", ErrInvalidVersion, backup.Version)
	}
	if hasField(fields, FieldUser) {
		if backup.User.Username == "" {
			return ErrEmptyUsername
		}
		if len(backup.User.Salt) == 0 || backup.User.PasswordCheck.IsZero() {
			return ErrMissingPasswordCheck
		}
	}

	for i, tx := range backup.Transactions {
		if err := v.Validate(ctx, tx); err != nil {
			return fmt.Errorf("transaction %d: %w", i, err)
		}
	}
	for i, goal := range backup.Goals {
		if err := v.Validate(ctx, goal); err != nil {
			return fmt.Errorf("goal %d: %w", i, err)
		}
	}
	for i, bill := range backup.Bills {
		if err := v.Validate(ctx, bill); err != nil {
			return fmt.Errorf("bill %d: %w", i, err)
		}
	}
	for i, budget := range backup.Budgets {
		if err := v.Validate(ctx, budget); err != nil {
			return fmt.Errorf("budget %d: %w", i, err)
		}
	}

	return nil
}

func (v *BackupValidator) validateTransaction(tx models.Transaction, fields ...string) error {
	if hasField(fields, FieldType) && tx.Type != models.TransactionIncome && tx.Type != models.TransactionExpense {
		return fmt.Errorf("%w: %q", ErrInvalidType, tx.Type)
	}
	if hasField(fields, FieldAmount) && tx.Amount.IsNegative() {
		return ErrInvalidAmount
	}
	if hasField(fields, FieldCategory) && tx.Category == "" {
		return ErrEmptyCategory
	}
	if hasField(fields, FieldDate) && !isValidDate(tx.Date) {
		return fmt.Errorf("%w: %q", ErrInvalidDate, tx.Date)
	}
	return nil
}

func (v *BackupValidator) validateGoal(goal models.Goal, fields ...string) error {
	if hasField(fields, FieldName) && goal.Name == "" {
		return ErrEmptyName
	}
	if hasField(fields, FieldAmount) && (goal.TargetAmount.IsNegative() || goal.SavedAmount.IsNegative()) {
		return ErrInvalidAmount
	}
	return nil
}

func (v *BackupValidator) validateBill(bill models.Bill, fields ...string) error {
	if hasField(fields, FieldName) && bill.Name == "" {
		return ErrEmptyName
	}
	if hasField(fields, FieldAmount) && bill.Amount.IsNegative() {
		return ErrInvalidAmount
	}
	if hasField(fields, FieldDueDay) && (bill.DueDay < 1 || bill.DueDay > 31) {
		return fmt.Errorf("%w: %d", ErrInvalidDueDay, bill.DueDay)
	}
	return nil
}

func (v *BackupValidator) validateBudget(budget models.Budget, fields ...string) error {
	if hasField(fields, FieldCategory) && budget.Category == "" {
		return ErrEmptyCategory
	}
	if hasField(fields, FieldAmount) && budget.Limit.IsNegative() {
		return ErrInvalidAmount
	}
	if hasField(fields, FieldMonth) && !isValidMonth(budget.Month) {
		return fmt.Errorf("%w: %q", ErrInvalidMonth, budget.Month)
	}
	return nil
}

// hasField reports whether name is in scope: an empty fields list means every
// field is.
func hasField(fields []string, name string) bool {
	if len(fields) == 0 {
		return true
	}
	for _, f := range fields {
		if f == name {
			return true
		}
	}
	return false
}

func isValidDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

func isValidMonth(month string) bool {
	_, err := time.Parse("2006-01", month)
	return err == nil
}
