// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"

	"github.com/finkeep/finkeep/models"
)

// ErrDecryptionFailed marks an authenticated-decryption failure: wrong key or
// tampered blob. Callers check it with errors.Is and must not try to tell the
// two causes apart.
var ErrDecryptionFailed = errors.New("decryption failed")

const (
	saltLength = 16
	keyLength  = 32 // 256 bits

	// DefaultIterations is the PBKDF2 work factor used unless the config
	// overrides it (tests lower it to keep the suite fast).
	DefaultIterations = 100_000
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	iterations int
}

// NewKeyChainService constructs a [KeyChainService] deriving keys with
// PBKDF2-SHA256 at [DefaultIterations] iterations and a 32-byte output.
func NewKeyChainService() KeyChainService {
	return &keyChainService{iterations: DefaultIterations}
}

// NewKeyChainServiceWithIterations is NewKeyChainService with an explicit
// PBKDF2 work factor. Values below 1 fall back to [DefaultIterations].
func NewKeyChainServiceWithIterations(iterations int) KeyChainService {
	if iterations < 1 {
		iterations = DefaultIterations
	}
	return &keyChainService{iterations: iterations}
}

// GenerateSalt implements [KeyChainService]. It reads 16 random bytes from
// the OS CSPRNG. Returns an error only if the random read fails.
func (k *keyChainService) GenerateSalt() ([]byte, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

// DeriveKey implements [KeyChainService].
func (k *keyChainService) DeriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, k.iterations, keyLength, sha256.New)
}

// Encrypt implements [KeyChainService]. The IV is generated fresh from the
// CSPRNG on every call and stored alongside the ciphertext in the blob.
func (k *keyChainService) Encrypt(plaintext []byte, key []byte) (models.EncryptedBlob, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return models.EncryptedBlob{}, err
	}

	iv := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return models.EncryptedBlob{}, fmt.Errorf("generate iv: %w", err)
	}

	return models.EncryptedBlob{
		IV:         iv,
		Ciphertext: gcm.Seal(nil, iv, plaintext, nil),
	}, nil
}

// Decrypt implements [KeyChainService].
func (k *keyChainService) Decrypt(blob models.EncryptedBlob, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	if len(blob.IV) != gcm.NonceSize() {
		return nil, fmt.Errorf("%w: bad iv length %d", ErrDecryptionFailed, len(blob.IV))
	}

	// An auth-tag mismatch here almost always means the caller derived the
	// key from the wrong password.
	plaintext, err := gcm.Open(nil, blob.IV, blob.Ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}

	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
