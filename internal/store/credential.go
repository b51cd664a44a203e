// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/finkeep/finkeep/internal/logger"
	"github.com/finkeep/finkeep/models"
)

// fileCredentialStore persists the single credential record as a JSON file
// with 0600 permissions. The record contains no secret material; the tight
// mode simply keeps other local users from reading the username and salt.
type fileCredentialStore struct {
	path   string
	logger *logger.Logger
}

// NewCredentialStore constructs a [CredentialStore] writing to path.
func NewCredentialStore(path string, log *logger.Logger) CredentialStore {
	return &fileCredentialStore{path: path, logger: log}
}

func (s *fileCredentialStore) Load(ctx context.Context) (models.CredentialRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.CredentialRecord{}, ErrNoCredential
		}
		return models.CredentialRecord{}, fmt.Errorf("%w: read credential file: %v", ErrStorageUnavailable, err)
	}

	var record models.CredentialRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return models.CredentialRecord{}, fmt.Errorf("%w: decode credential file: %v", ErrStorageUnavailable, err)
	}

	return record, nil
}

func (s *fileCredentialStore) Save(ctx context.Context, record models.CredentialRecord) error {
	log := logger.FromContext(ctx)

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create credential dir: %v", ErrStorageUnavailable, err)
		}
	}

	payload, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("encode credential record: %w", err)
	}

	if err := os.WriteFile(s.path, payload, 0o600); err != nil {
		log.Err(err).
			Str("func", "fileCredentialStore.Save").
			Msg("failed to write credential file")
		return fmt.Errorf("%w: write credential file: %v", ErrStorageUnavailable, err)
	}

	return nil
}

func (s *fileCredentialStore) Delete(ctx context.Context) error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: remove credential file: %v", ErrStorageUnavailable, err)
	}
	return nil
}
