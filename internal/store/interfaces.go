package store

import (
	"context"

	"github.com/finkeep/finkeep/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RecordStore is the structured, per-record collection store backed by
// SQLite. One logical table exists per entity type; rows are versioned
// envelopes (see models.Record). No encryption happens at this layer.
type RecordStore interface {
	// Clear removes every record from the collection.
	Clear(ctx context.Context, collection string) error

	// BulkInsert writes records into the collection inside a single
	// transaction: on any failure nothing is inserted and the returned
	// error wraps ErrStorageUnavailable. Records with an empty ID are
	// assigned a fresh UUID. Returns the number of records inserted.
	BulkInsert(ctx context.Context, collection string, records []models.Record) (int, error)

	// Count returns the number of records in the collection.
	Count(ctx context.Context, collection string) (int, error)

	// List returns every record in the collection ordered by id.
	List(ctx context.Context, collection string) ([]models.Record, error)

	// Get returns one record by id, or ErrNotFound.
	Get(ctx context.Context, collection, id string) (models.Record, error)

	// Put inserts or replaces a single record.
	Put(ctx context.Context, collection string, record models.Record) error

	// Delete removes one record by id. Deleting an absent id is not an
	// error.
	Delete(ctx context.Context, collection, id string) error

	// MigrationState reads the persisted legacy-migration state. An absent
	// marker reads as MigrationPending.
	MigrationState(ctx context.Context) (MigrationState, error)

	// CompleteMigration performs the single authorized state transition
	// Pending -> Completed.
	CompleteMigration(ctx context.Context) error

	// ResetMigration clears the marker back to Pending. Operator-only
	// escape hatch for retrying a migration against repaired legacy data.
	ResetMigration(ctx context.Context) error
}

// LegacyBlobStore is the first-generation storage: one encrypted JSON blob
// per collection, keyed by collection name. It only shuttles bytes; no
// crypto lives here.
type LegacyBlobStore interface {
	// ReadCollection returns the blob stored under name. The second return
	// is false when the collection was never written, which is not an
	// error.
	ReadCollection(ctx context.Context, name string) (models.EncryptedBlob, bool, error)

	// WriteCollection stores blob under name, replacing any previous value.
	WriteCollection(ctx context.Context, name string, blob models.EncryptedBlob) error

	// ClearCollection removes the blob stored under name, if any.
	ClearCollection(ctx context.Context, name string) error

	// Collections returns the names currently present, sorted.
	Collections(ctx context.Context) ([]string, error)
}

// CredentialStore persists the single credential record for this device.
type CredentialStore interface {
	// Load returns the stored credential record, or ErrNoCredential.
	Load(ctx context.Context) (models.CredentialRecord, error)

	// Save writes the credential record, replacing any previous one.
	Save(ctx context.Context, record models.CredentialRecord) error

	// Delete removes the credential record. Full account reset only.
	Delete(ctx context.Context) error
}
