// SPDX-License-Identifier: Apache-2.0

package service

import (
	"github.com/finkeep/finkeep/internal/crypto"
	"github.com/finkeep/finkeep/internal/logger"
	"github.com/finkeep/finkeep/internal/store"
	"github.com/finkeep/finkeep/internal/validators"
)

// Services groups every service into a single value wired once at startup.
type Services struct {
	Credential CredentialService
	Migration  MigrationService
	Session    SessionService
	Backup     BackupService
}

// NewServices wires the service layer on top of the storage layer and the
// keychain.
func NewServices(storages *store.Storages, keychain crypto.KeyChainService, log *logger.Logger) *Services {
	log.Info().Msg("creating services...")

	credential := NewCredentialService(storages.Credentials, storages.Legacy, keychain)
	migration := NewMigrationService(storages.Records, storages.Legacy, keychain)

	return &Services{
		Credential: credential,
		Migration:  migration,
		Session:    NewSessionService(storages.Credentials, credential, migration),
		Backup:     NewBackupService(storages.Records, storages.Credentials, validators.NewBackupValidator()),
	}
}
