// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/finkeep/finkeep/internal/crypto"
	"github.com/finkeep/finkeep/internal/logger"
	"github.com/finkeep/finkeep/internal/store"
	"github.com/finkeep/finkeep/models"
)

// MigrationReport aggregates the outcome of one migration run.
type MigrationReport struct {
	// Counts maps collection name to the number of records inserted. Absent
	// and empty collections count zero.
	Counts map[string]int

	// Errors maps collection name to the isolated failure that skipped it:
	// crypto.ErrDecryptionFailed or ErrMalformedCollection, checkable with
	// errors.Is. A skipped collection never blocks the rest.
	Errors map[string]error

	// Success is false only when the run itself aborted (storage failure),
	// not when individual collections were skipped.
	Success bool
}

// Migrated returns the total number of records moved.
func (r MigrationReport) Migrated() int {
	total := 0
	for _, n := range r.Counts {
		total += n
	}
	return total
}

type migrationService struct {
	records  store.RecordStore
	legacy   store.LegacyBlobStore
	keychain crypto.KeyChainService
}

// NewMigrationService constructs a [MigrationService].
func NewMigrationService(records store.RecordStore, legacy store.LegacyBlobStore, keychain crypto.KeyChainService) MigrationService {
	return &migrationService{records: records, legacy: legacy, keychain: keychain}
}

// Migrate implements [MigrationService]. The loop is deliberately resilient:
// a collection that cannot be decrypted or parsed is recorded and skipped,
// and the state still moves to Completed at the end so permanently corrupted
// legacy data does not trigger the migration on every sign-in. Storage
// failures abort the run and leave the state Pending.
func (m *migrationService) Migrate(ctx context.Context, sessionKey []byte) (MigrationReport, error) {
	log := logger.FromContext(ctx)

	report := MigrationReport{
		Counts: make(map[string]int),
		Errors: make(map[string]error),
	}

	for _, name := range models.KnownCollections() {
		blob, ok, err := m.legacy.ReadCollection(ctx, name)
		if err != nil {
			return report, fmt.Errorf("read legacy collection %s: %w", name, err)
		}
		if !ok {
			report.Counts[name] = 0
			continue
		}

		plaintext, err := m.keychain.Decrypt(blob, sessionKey)
		if err != nil {
			log.Warn().
				Err(err).
				Str("func", "migrationService.Migrate").
				Str("collection", name).
				Msg("legacy collection failed to decrypt, skipping")
			report.Errors[name] = err
			continue
		}

		var rawRecords []json.RawMessage
		if err := json.Unmarshal(plaintext, &rawRecords); err != nil {
			log.Warn().
				Err(err).
				Str("func", "migrationService.Migrate").
				Str("collection", name).
				Msg("legacy collection is not a JSON array, skipping")
			report.Errors[name] = fmt.Errorf("%w: %v", ErrMalformedCollection, err)
			continue
		}

		if len(rawRecords) == 0 {
			report.Counts[name] = 0
			continue
		}

		records := make([]models.Record, 0, len(rawRecords))
		for _, raw := range rawRecords {
			records = append(records, models.Record{
				ID:            extractID(raw),
				SchemaVersion: models.RecordSchemaVersion,
				Payload:       raw,
			})
		}

		if err := m.records.Clear(ctx, name); err != nil {
			return report, fmt.Errorf("clear collection %s: %w", name, err)
		}

		inserted, err := m.records.BulkInsert(ctx, name, records)
		if err != nil {
			return report, fmt.Errorf("bulk insert collection %s: %w", name, err)
		}

		report.Counts[name] = inserted
		log.Info().
			Str("func", "migrationService.Migrate").
			Str("collection", name).
			Int("records", inserted).
			Msg("collection migrated")
	}

	// The state moves to Completed regardless of per-collection errors;
	// operators reset it explicitly to retry against repaired data.
	if err := m.records.CompleteMigration(ctx); err != nil {
		return report, fmt.Errorf("complete migration: %w", err)
	}

	report.Success = true
	return report, nil
}

func (m *migrationService) State(ctx context.Context) (store.MigrationState, error) {
	return m.records.MigrationState(ctx)
}

func (m *migrationService) Reset(ctx context.Context) error {
	return m.records.ResetMigration(ctx)
}

// extractID pulls the required unique identifier out of a raw legacy record.
// Records without one get a store-assigned UUID at insert time.
func extractID(raw json.RawMessage) string {
	var probe struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return ""
	}
	return probe.ID
}
