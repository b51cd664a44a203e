// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/finkeep/finkeep/internal/logger"
	"github.com/finkeep/finkeep/internal/store"
)

// SessionState is the lifecycle state of the local session.
type SessionState string

const (
	// SignedOut means no session key is held in memory.
	SignedOut SessionState = "signed_out"

	// Authenticating means a sign-in or sign-up attempt is resolving.
	// Further attempts are rejected until it settles.
	Authenticating SessionState = "authenticating"

	// SignedIn means the session key is held and, because migration is
	// sequenced before this state is reached, the structured store is the
	// authoritative system of record.
	SignedIn SessionState = "signed_in"
)

type sessionService struct {
	credentials store.CredentialStore
	credential  CredentialService
	migration   MigrationService

	mu       sync.Mutex
	state    SessionState
	key      []byte
	username string
}

// NewSessionService constructs a [SessionService] starting SignedOut.
func NewSessionService(credentials store.CredentialStore, credential CredentialService, migration MigrationService) SessionService {
	return &sessionService{
		credentials: credentials,
		credential:  credential,
		migration:   migration,
		state:       SignedOut,
	}
}

func (s *sessionService) SignUp(ctx context.Context, username, password string) error {
	if err := s.beginAuthenticating(); err != nil {
		return err
	}

	_, key, err := s.credential.CreateAccount(ctx, username, password)
	if err != nil {
		s.abortAuthenticating()
		return err
	}

	// A fresh account may still sit on a device carrying legacy data; the
	// pending-state guard decides, not the account age.
	if err := s.ensureMigrated(ctx, key); err != nil {
		s.abortAuthenticating()
		return err
	}

	s.completeAuthenticating(username, key)
	return nil
}

func (s *sessionService) SignIn(ctx context.Context, username, password string) error {
	log := logger.FromContext(ctx)

	if err := s.beginAuthenticating(); err != nil {
		return err
	}

	record, err := s.credentials.Load(ctx)
	if errors.Is(err, store.ErrNoCredential) {
		s.abortAuthenticating()
		return ErrNoAccount
	}
	if err != nil {
		s.abortAuthenticating()
		return fmt.Errorf("load credential record: %w", err)
	}

	if record.Username != username {
		// Same taxonomy as a wrong password: the caller learns nothing
		// about which part was wrong.
		log.Debug().
			Str("func", "sessionService.SignIn").
			Msg("username mismatch")
		s.abortAuthenticating()
		return ErrAuthenticationFailed
	}

	key, err := s.credential.VerifyPassword(ctx, record, password)
	if err != nil {
		s.abortAuthenticating()
		return err
	}

	if err := s.ensureMigrated(ctx, key); err != nil {
		s.abortAuthenticating()
		return err
	}

	s.completeAuthenticating(username, key)
	return nil
}

// ensureMigrated sequences the one-shot legacy migration before the session
// becomes ready. The structured store is not authoritative until this
// returns.
func (s *sessionService) ensureMigrated(ctx context.Context, key []byte) error {
	log := logger.FromContext(ctx)

	state, err := s.migration.State(ctx)
	if err != nil {
		return fmt.Errorf("read migration state: %w", err)
	}
	if state == store.MigrationCompleted {
		return nil
	}

	report, err := s.migration.Migrate(ctx, key)
	if err != nil {
		return fmt.Errorf("legacy migration: %w", err)
	}

	log.Info().
		Str("func", "sessionService.ensureMigrated").
		Int("migrated", report.Migrated()).
		Int("skipped_collections", len(report.Errors)).
		Msg("legacy migration finished")

	return nil
}

func (s *sessionService) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.zeroKeyLocked()
	s.username = ""
	s.state = SignedOut
}

func (s *sessionService) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	s.mu.Lock()
	if s.state != SignedIn {
		s.mu.Unlock()
		return ErrNotSignedIn
	}
	s.mu.Unlock()

	record, err := s.credentials.Load(ctx)
	if err != nil {
		return fmt.Errorf("load credential record: %w", err)
	}

	_, newKey, err := s.credential.ChangePassword(ctx, record, oldPassword, newPassword)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.zeroKeyLocked()
	s.key = newKey
	return nil
}

func (s *sessionService) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *sessionService) Key() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != SignedIn {
		return nil, ErrNotSignedIn
	}
	return s.key, nil
}

func (s *sessionService) Username() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != SignedIn {
		return "", ErrNotSignedIn
	}
	return s.username, nil
}

func (s *sessionService) beginAuthenticating() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case Authenticating:
		return ErrAuthenticationInProgress
	case SignedIn:
		return ErrAlreadySignedIn
	}

	s.state = Authenticating
	return nil
}

func (s *sessionService) abortAuthenticating() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.zeroKeyLocked()
	s.state = SignedOut
}

func (s *sessionService) completeAuthenticating(username string, key []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.username = username
	s.key = key
	s.state = SignedIn
}

// zeroKeyLocked wipes the key bytes before dropping the reference. Callers
// must hold s.mu.
func (s *sessionService) zeroKeyLocked() {
	for i := range s.key {
		s.key[i] = 0
	}
	s.key = nil
}
