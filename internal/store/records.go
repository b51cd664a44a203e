// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/finkeep/finkeep/internal/logger"
	"github.com/finkeep/finkeep/models"
)

// recordStore is the SQLite-backed implementation of [RecordStore]. Every
// collection name is validated against the registry before it is used as a
// table name.
type recordStore struct {
	*DB
	logger *logger.Logger
	tables map[string]struct{}
}

// NewRecordStore constructs a [RecordStore] on top of an open, migrated DB.
func NewRecordStore(db *DB, log *logger.Logger) RecordStore {
	tables := make(map[string]struct{})
	for _, name := range models.KnownCollections() {
		tables[name] = struct{}{}
	}
	return &recordStore{DB: db, logger: log, tables: tables}
}

func (r *recordStore) table(collection string) (string, error) {
	if _, ok := r.tables[collection]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}
	return collection, nil
}

func (r *recordStore) Clear(ctx context.Context, collection string) error {
	log := logger.FromContext(ctx)

	table, err := r.table(collection)
	if err != nil {
		return err
	}

	query, args, err := sq.Delete(table).ToSql()
	if err != nil {
		return fmt.Errorf("build clear query: %w", err)
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "recordStore.Clear").
			Str("collection", collection).
			Msg("failed to clear collection")
		return fmt.Errorf("%w: clear %s: %v", ErrStorageUnavailable, collection, err)
	}

	return nil
}

func (r *recordStore) BulkInsert(ctx context.Context, collection string, records []models.Record) (int, error) {
	log := logger.FromContext(ctx)

	table, err := r.table(collection)
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: begin bulk insert: %v", ErrStorageUnavailable, err)
	}
	defer tx.Rollback()

	for _, record := range records {
		if record.ID == "" {
			record.ID = uuid.NewString()
		}
		if record.SchemaVersion == 0 {
			record.SchemaVersion = models.RecordSchemaVersion
		}

		query, args, err := sq.Insert(table).
			Columns("id", "schema_version", "payload").
			Values(record.ID, record.SchemaVersion, string(record.Payload)).
			ToSql()
		if err != nil {
			return 0, fmt.Errorf("build insert query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "recordStore.BulkInsert").
				Str("collection", collection).
				Str("record_id", record.ID).
				Msg("failed to insert record, rolling back")
			return 0, fmt.Errorf("%w: insert into %s (id=%s): %v", ErrStorageUnavailable, collection, record.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%w: commit bulk insert: %v", ErrStorageUnavailable, err)
	}

	return len(records), nil
}

func (r *recordStore) Count(ctx context.Context, collection string) (int, error) {
	table, err := r.table(collection)
	if err != nil {
		return 0, err
	}

	query, args, err := sq.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var count int
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: count %s: %v", ErrStorageUnavailable, collection, err)
	}

	return count, nil
}

func (r *recordStore) List(ctx context.Context, collection string) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	table, err := r.table(collection)
	if err != nil {
		return nil, err
	}

	query, args, err := sq.Select("id", "schema_version", "payload").
		From(table).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recordStore.List").
			Str("collection", collection).
			Msg("failed to query records")
		return nil, fmt.Errorf("%w: list %s: %v", ErrStorageUnavailable, collection, err)
	}
	defer rows.Close()

	var records []models.Record
	for rows.Next() {
		var (
			record  models.Record
			payload string
		)
		if err := rows.Scan(&record.ID, &record.SchemaVersion, &payload); err != nil {
			return nil, fmt.Errorf("%w: scan record row: %v", ErrStorageUnavailable, err)
		}
		record.Payload = json.RawMessage(payload)
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate record rows: %v", ErrStorageUnavailable, err)
	}

	return records, nil
}

func (r *recordStore) Get(ctx context.Context, collection, id string) (models.Record, error) {
	table, err := r.table(collection)
	if err != nil {
		return models.Record{}, err
	}

	query, args, err := sq.Select("id", "schema_version", "payload").
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Record{}, fmt.Errorf("build get query: %w", err)
	}

	var (
		record  models.Record
		payload string
	)
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&record.ID, &record.SchemaVersion, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Record{}, fmt.Errorf("%w: %s/%s", ErrNotFound, collection, id)
	}
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: get %s/%s: %v", ErrStorageUnavailable, collection, id, err)
	}
	record.Payload = json.RawMessage(payload)

	return record, nil
}

func (r *recordStore) Put(ctx context.Context, collection string, record models.Record) error {
	table, err := r.table(collection)
	if err != nil {
		return err
	}

	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.SchemaVersion == 0 {
		record.SchemaVersion = models.RecordSchemaVersion
	}

	query, args, err := sq.Insert(table).
		Columns("id", "schema_version", "payload").
		Values(record.ID, record.SchemaVersion, string(record.Payload)).
		Suffix("ON CONFLICT(id) DO UPDATE SET schema_version=excluded.schema_version, payload=excluded.payload").
		ToSql()
	if err != nil {
		return fmt.Errorf("build put query: %w", err)
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: put %s/%s: %v", ErrStorageUnavailable, collection, record.ID, err)
	}

	return nil
}

func (r *recordStore) Delete(ctx context.Context, collection, id string) error {
	table, err := r.table(collection)
	if err != nil {
		return err
	}

	query, args, err := sq.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: delete %s/%s: %v", ErrStorageUnavailable, collection, id, err)
	}

	return nil
}

func (r *recordStore) MigrationState(ctx context.Context) (MigrationState, error) {
	query, args, err := sq.Select("value").
		From("meta").
		Where(sq.Eq{"key": migrationStateKey}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build migration state query: %w", err)
	}

	var value string
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return MigrationPending, nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: read migration state: %v", ErrStorageUnavailable, err)
	}

	if MigrationState(value) == MigrationCompleted {
		return MigrationCompleted, nil
	}
	return MigrationPending, nil
}

func (r *recordStore) CompleteMigration(ctx context.Context) error {
	query, args, err := sq.Insert("meta").
		Columns("key", "value").
		Values(migrationStateKey, string(MigrationCompleted)).
		Suffix("ON CONFLICT(key) DO UPDATE SET value=excluded.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("build complete migration query: %w", err)
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: set migration state: %v", ErrStorageUnavailable, err)
	}

	return nil
}

func (r *recordStore) ResetMigration(ctx context.Context) error {
	query, args, err := sq.Delete("meta").
		Where(sq.Eq{"key": migrationStateKey}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build reset migration query: %w", err)
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: reset migration state: %v", ErrStorageUnavailable, err)
	}

	return nil
}
