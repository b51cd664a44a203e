// SPDX-License-Identifier: Apache-2.0

package store

// MigrationState is the explicit finite-state value guarding the one-shot
// legacy-to-structured migration. The only authorized transition is
// Pending -> Completed (RecordStore.CompleteMigration); going back requires
// the operator-only RecordStore.ResetMigration.
type MigrationState string

const (
	// MigrationPending means the legacy data has not been migrated yet.
	MigrationPending MigrationState = "pending"

	// MigrationCompleted means migration ran to the end. It stays set even
	// when individual collections failed, so permanently corrupted legacy
	// data does not cause a retry loop on every sign-in.
	MigrationCompleted MigrationState = "completed"
)

// migrationStateKey is the meta-table key of the marker. It is deliberately
// distinct from every collection name.
const migrationStateKey = "legacy_migration"
