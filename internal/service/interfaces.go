package service

import (
	"context"

	"github.com/finkeep/finkeep/internal/store"
	"github.com/finkeep/finkeep/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CredentialService creates and verifies the device's account record. It is
// the only component that turns passwords into session keys.
type CredentialService interface {
	// CreateAccount generates a salt, derives a key from password, seals
	// the password-check marker and persists the assembled credential
	// record. Returns the record and the derived session key.
	// Fails with ErrAccountExists when a record is already present.
	CreateAccount(ctx context.Context, username, password string) (models.CredentialRecord, []byte, error)

	// VerifyPassword re-derives the key from password and the record's salt
	// and proves it by decrypting the password-check marker. Any decryption
	// failure or marker mismatch yields ErrAuthenticationFailed.
	VerifyPassword(ctx context.Context, record models.CredentialRecord, password string) ([]byte, error)

	// ChangePassword verifies oldPassword, then re-keys the account: fresh
	// salt, fresh key, re-sealed marker, and every legacy collection blob
	// re-encrypted under the new key in the same operation, so no live
	// ciphertext stays protected by the old key. Returns the new record and
	// the new session key.
	ChangePassword(ctx context.Context, record models.CredentialRecord, oldPassword, newPassword string) (models.CredentialRecord, []byte, error)
}

// MigrationService runs the one-shot copy of legacy encrypted blobs into the
// structured record store.
type MigrationService interface {
	// Migrate decrypts every known legacy collection with sessionKey and
	// bulk-loads it into the record store. Decrypt and parse failures are
	// isolated per collection; storage failures abort. The migration state
	// is set to Completed after the loop even when some collections failed.
	Migrate(ctx context.Context, sessionKey []byte) (MigrationReport, error)

	// State reads the persisted migration state.
	State(ctx context.Context) (store.MigrationState, error)

	// Reset clears the migration state back to Pending. Operator-only.
	Reset(ctx context.Context) error
}

// SessionService orchestrates sign-up, sign-in, sign-out and password
// change. It owns the in-memory session key and sequences migration before a
// session is declared ready; other components receive the key as a call
// parameter and must not cache it.
type SessionService interface {
	// SignUp creates the account and opens a session.
	SignUp(ctx context.Context, username, password string) error

	// SignIn verifies the password, runs the legacy migration when still
	// pending, and opens a session.
	SignIn(ctx context.Context, username, password string) error

	// SignOut discards the in-memory session key immediately.
	SignOut()

	// ChangePassword re-keys the account of the active session.
	ChangePassword(ctx context.Context, oldPassword, newPassword string) error

	// State returns the current lifecycle state.
	State() SessionState

	// Key returns the session key of an active session, or ErrNotSignedIn.
	// Callers use it for the duration of one call and must not cache it.
	Key() ([]byte, error)

	// Username returns the signed-in account name, or ErrNotSignedIn.
	Username() (string, error)
}

// BackupService exports and restores the structured store as a JSON file.
type BackupService interface {
	// Export assembles the backup envelope from the credential record and
	// the structured store.
	Export(ctx context.Context) (models.Backup, error)

	// Restore replaces the credential record and the exported collections
	// with the backup's contents (clear + bulk-insert per collection).
	// Returns restored record counts per collection.
	Restore(ctx context.Context, backup models.Backup) (map[string]int, error)
}
