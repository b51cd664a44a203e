// SPDX-License-Identifier: Apache-2.0

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finkeep/finkeep/internal/crypto"
	"github.com/finkeep/finkeep/internal/logger"
	"github.com/finkeep/finkeep/internal/store"
	"github.com/finkeep/finkeep/models"
)

// passwordCheckMarker is the fixed known plaintext sealed under the derived
// key at sign-up. Successful authenticated decryption plus an exact match of
// this value is the whole password-verification mechanism; neither the
// password nor the key is ever persisted.
var passwordCheckMarker = []byte("finkeep:password-check:v1")

type credentialService struct {
	credentials store.CredentialStore
	legacy      store.LegacyBlobStore
	keychain    crypto.KeyChainService
}

// NewCredentialService constructs a [CredentialService].
func NewCredentialService(credentials store.CredentialStore, legacy store.LegacyBlobStore, keychain crypto.KeyChainService) CredentialService {
	return &credentialService{credentials: credentials, legacy: legacy, keychain: keychain}
}

func (c *credentialService) CreateAccount(ctx context.Context, username, password string) (models.CredentialRecord, []byte, error) {
	log := logger.FromContext(ctx)

	_, err := c.credentials.Load(ctx)
	switch {
	case err == nil:
		return models.CredentialRecord{}, nil, ErrAccountExists
	case !errors.Is(err, store.ErrNoCredential):
		return models.CredentialRecord{}, nil, fmt.Errorf("load credential record: %w", err)
	}

	salt, err := c.keychain.GenerateSalt()
	if err != nil {
		return models.CredentialRecord{}, nil, fmt.Errorf("generate salt: %w", err)
	}

	key := c.keychain.DeriveKey(password, salt)

	check, err := c.keychain.Encrypt(passwordCheckMarker, key)
	if err != nil {
		return models.CredentialRecord{}, nil, fmt.Errorf("seal password check: %w", err)
	}

	now := time.Now().UTC()
	record := models.CredentialRecord{
		Username:      username,
		Salt:          salt,
		PasswordCheck: check,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := c.credentials.Save(ctx, record); err != nil {
		return models.CredentialRecord{}, nil, fmt.Errorf("save credential record: %w", err)
	}

	log.Info().
		Str("func", "credentialService.CreateAccount").
		Str("username", username).
		Msg("account created")

	return record, key, nil
}

func (c *credentialService) VerifyPassword(ctx context.Context, record models.CredentialRecord, password string) ([]byte, error) {
	log := logger.FromContext(ctx)

	key := c.keychain.DeriveKey(password, record.Salt)

	marker, err := c.keychain.Decrypt(record.PasswordCheck, key)
	if err != nil {
		// Wrong password and corrupted record are indistinguishable here;
		// log the raw cause but surface only ErrAuthenticationFailed.
		log.Debug().
			Err(err).
			Str("func", "credentialService.VerifyPassword").
			Msg("password check decryption failed")
		return nil, ErrAuthenticationFailed
	}

	if !bytes.Equal(marker, passwordCheckMarker) {
		log.Debug().
			Str("func", "credentialService.VerifyPassword").
			Msg("password check marker mismatch")
		return nil, ErrAuthenticationFailed
	}

	return key, nil
}

func (c *credentialService) ChangePassword(ctx context.Context, record models.CredentialRecord, oldPassword, newPassword string) (models.CredentialRecord, []byte, error) {
	log := logger.FromContext(ctx)

	oldKey, err := c.VerifyPassword(ctx, record, oldPassword)
	if err != nil {
		return models.CredentialRecord{}, nil, err
	}

	// Fresh salt: the old salt is never reused for the new password.
	newSalt, err := c.keychain.GenerateSalt()
	if err != nil {
		return models.CredentialRecord{}, nil, fmt.Errorf("generate salt: %w", err)
	}
	newKey := c.keychain.DeriveKey(newPassword, newSalt)

	newCheck, err := c.keychain.Encrypt(passwordCheckMarker, newKey)
	if err != nil {
		return models.CredentialRecord{}, nil, fmt.Errorf("seal password check: %w", err)
	}

	// Re-encrypt every legacy blob still present so no live ciphertext is
	// left protected by the old key. A blob that fails to decrypt under the
	// verified old key is corrupted; abort rather than strand it under a
	// retired key.
	if err := c.rekeyLegacyBlobs(ctx, oldKey, newKey); err != nil {
		return models.CredentialRecord{}, nil, err
	}

	record.Salt = newSalt
	record.PasswordCheck = newCheck
	record.UpdatedAt = time.Now().UTC()

	if err := c.credentials.Save(ctx, record); err != nil {
		return models.CredentialRecord{}, nil, fmt.Errorf("save credential record: %w", err)
	}

	log.Info().
		Str("func", "credentialService.ChangePassword").
		Str("username", record.Username).
		Msg("password changed")

	return record, newKey, nil
}

func (c *credentialService) rekeyLegacyBlobs(ctx context.Context, oldKey, newKey []byte) error {
	names, err := c.legacy.Collections(ctx)
	if err != nil {
		return fmt.Errorf("list legacy collections: %w", err)
	}

	for _, name := range names {
		blob, ok, err := c.legacy.ReadCollection(ctx, name)
		if err != nil {
			return fmt.Errorf("read legacy collection %s: %w", name, err)
		}
		if !ok {
			continue
		}

		plaintext, err := c.keychain.Decrypt(blob, oldKey)
		if err != nil {
			return fmt.Errorf("re-encrypt legacy collection %s: %w", name, err)
		}

		sealed, err := c.keychain.Encrypt(plaintext, newKey)
		if err != nil {
			return fmt.Errorf("re-encrypt legacy collection %s: %w", name, err)
		}

		if err := c.legacy.WriteCollection(ctx, name, sealed); err != nil {
			return fmt.Errorf("write legacy collection %s: %w", name, err)
		}
	}

	return nil
}
