// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/finkeep/finkeep/internal/logger"
	"github.com/finkeep/finkeep/internal/store"
	"github.com/finkeep/finkeep/internal/validators"
	"github.com/finkeep/finkeep/models"
)

type backupService struct {
	records     store.RecordStore
	credentials store.CredentialStore
	validator   validators.Validator
}

// NewBackupService constructs a [BackupService].
func NewBackupService(records store.RecordStore, credentials store.CredentialStore, validator validators.Validator) BackupService {
	return &backupService{records: records, credentials: credentials, validator: validator}
}

func (b *backupService) Export(ctx context.Context) (models.Backup, error) {
	record, err := b.credentials.Load(ctx)
	if err != nil {
		return models.Backup{}, fmt.Errorf("load credential record: %w", err)
	}

	transactions, err := decodeCollection[models.Transaction](ctx, b.records, models.CollectionTransactions)
	if err != nil {
		return models.Backup{}, err
	}
	goals, err := decodeCollection[models.Goal](ctx, b.records, models.CollectionGoals)
	if err != nil {
		return models.Backup{}, err
	}
	bills, err := decodeCollection[models.Bill](ctx, b.records, models.CollectionBills)
	if err != nil {
		return models.Backup{}, err
	}
	budgets, err := decodeCollection[models.Budget](ctx, b.records, models.CollectionBudgets)
	if err != nil {
		return models.Backup{}, err
	}

	return models.Backup{
		User:         record,
		Transactions: transactions,
		Goals:        goals,
		Bills:        bills,
		Budgets:      budgets,
		Version:      models.BackupVersion,
		ExportedAt:   time.Now().UTC(),
	}, nil
}

func (b *backupService) Restore(ctx context.Context, backup models.Backup) (map[string]int, error) {
	log := logger.FromContext(ctx)

	if backup.Version != models.BackupVersion {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedBackupVersion, backup.Version)
	}

	if err := b.validator.Validate(ctx, backup); err != nil {
		return nil, fmt.Errorf("validate backup: %w", err)
	}

	if err := b.credentials.Save(ctx, backup.User); err != nil {
		return nil, fmt.Errorf("restore credential record: %w", err)
	}

	counts := make(map[string]int)

	if err := restoreCollection(ctx, b.records, models.CollectionTransactions, backup.Transactions, counts); err != nil {
		return counts, err
	}
	if err := restoreCollection(ctx, b.records, models.CollectionGoals, backup.Goals, counts); err != nil {
		return counts, err
	}
	if err := restoreCollection(ctx, b.records, models.CollectionBills, backup.Bills, counts); err != nil {
		return counts, err
	}
	if err := restoreCollection(ctx, b.records, models.CollectionBudgets, backup.Budgets, counts); err != nil {
		return counts, err
	}

	log.Info().
		Str("func", "backupService.Restore").
		Interface("counts", counts).
		Msg("backup restored")

	return counts, nil
}

// decodeCollection loads a collection and unmarshals every envelope payload
// into the typed entity.
func decodeCollection[T any](ctx context.Context, records store.RecordStore, collection string) ([]T, error) {
	rows, err := records.List(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}

	out := make([]T, 0, len(rows))
	for _, row := range rows {
		var entity T
		if err := json.Unmarshal(row.Payload, &entity); err != nil {
			return nil, fmt.Errorf("decode %s record %s: %w", collection, row.ID, err)
		}
		out = append(out, entity)
	}

	return out, nil
}

// restoreCollection clears the destination and bulk-inserts the entities,
// the same contract the migration uses.
func restoreCollection[T any](ctx context.Context, records store.RecordStore, collection string, entities []T, counts map[string]int) error {
	rows := make([]models.Record, 0, len(entities))
	for _, entity := range entities {
		payload, err := json.Marshal(entity)
		if err != nil {
			return fmt.Errorf("encode %s record: %w", collection, err)
		}
		rows = append(rows, models.Record{
			ID:            extractID(payload),
			SchemaVersion: models.RecordSchemaVersion,
			Payload:       payload,
		})
	}

	if err := records.Clear(ctx, collection); err != nil {
		return fmt.Errorf("clear %s: %w", collection, err)
	}

	inserted, err := records.BulkInsert(ctx, collection, rows)
	if err != nil {
		return fmt.Errorf("restore %s: %w", collection, err)
	}

	counts[collection] = inserted
	return nil
}
