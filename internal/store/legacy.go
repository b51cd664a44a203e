// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/finkeep/finkeep/internal/logger"
	"github.com/finkeep/finkeep/models"
)

// legacyBlobStore is the file-backed implementation of [LegacyBlobStore].
// The whole first-generation store is one JSON file mapping collection name
// to encrypted blob; the file is loaded once and rewritten on every mutation.
type legacyBlobStore struct {
	path   string
	logger *logger.Logger

	mu          sync.RWMutex
	collections map[string]models.EncryptedBlob
}

type legacyPersistedState struct {
	Collections map[string]models.EncryptedBlob `json:"collections"`
}

// NewLegacyBlobStore opens the legacy store file at path. A missing file is
// an empty store, not an error.
func NewLegacyBlobStore(path string, log *logger.Logger) (LegacyBlobStore, error) {
	s := &legacyBlobStore{
		path:        path,
		logger:      log,
		collections: make(map[string]models.EncryptedBlob),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *legacyBlobStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%w: read legacy store file: %v", ErrStorageUnavailable, err)
	}

	var st legacyPersistedState
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("%w: decode legacy store file: %v", ErrStorageUnavailable, err)
	}

	if st.Collections != nil {
		s.collections = st.Collections
	}

	return nil
}

func (s *legacyBlobStore) persist() error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create legacy store dir: %v", ErrStorageUnavailable, err)
		}
	}

	state := legacyPersistedState{Collections: s.collections}
	payload, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode legacy store: %w", err)
	}

	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("%w: write legacy store file: %v", ErrStorageUnavailable, err)
	}

	return nil
}

func (s *legacyBlobStore) ReadCollection(ctx context.Context, name string) (models.EncryptedBlob, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	blob, ok := s.collections[name]
	if !ok {
		return models.EncryptedBlob{}, false, nil
	}
	return blob, true, nil
}

func (s *legacyBlobStore) WriteCollection(ctx context.Context, name string, blob models.EncryptedBlob) error {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.collections[name] = blob
	if err := s.persist(); err != nil {
		log.Err(err).
			Str("func", "legacyBlobStore.WriteCollection").
			Str("collection", name).
			Msg("failed to persist legacy store")
		return err
	}

	return nil
}

func (s *legacyBlobStore) ClearCollection(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.collections[name]; !ok {
		return nil
	}

	delete(s.collections, name)
	if err := s.persist(); err != nil {
		log.Err(err).
			Str("func", "legacyBlobStore.ClearCollection").
			Str("collection", name).
			Msg("failed to persist legacy store")
		return err
	}

	return nil
}

func (s *legacyBlobStore) Collections(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}
