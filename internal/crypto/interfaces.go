package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

import "github.com/finkeep/finkeep/models"

// KeyChainService owns all client-side cryptography. It knows nothing about
// storage, sessions or users; its only job is deriving keys and sealing data.
//
// Scheme:
//
//	salt = GenerateSalt()                  (sign-up, once per password)
//	key  = DeriveKey(password, salt)       (sign-up and every sign-in)
//	blob = Encrypt(plaintext, key)         (fresh IV per call)
//	text = Decrypt(blob, key)              (fails on wrong key or tamper)
type KeyChainService interface {
	// GenerateSalt returns a fresh random 16-byte key-derivation salt from
	// the OS CSPRNG. The salt is not a secret and is stored in the clear
	// inside the credential record.
	GenerateSalt() ([]byte, error)

	// DeriveKey stretches password and salt into a 256-bit symmetric key
	// using PBKDF2-SHA256. Deterministic for a given (password, salt) pair:
	// sign-in relies on re-deriving the exact same key without ever storing
	// it.
	DeriveKey(password string, salt []byte) []byte

	// Encrypt seals plaintext under key with AES-256-GCM using a fresh
	// random IV. The IV is never reused with the same key.
	Encrypt(plaintext []byte, key []byte) (models.EncryptedBlob, error)

	// Decrypt opens a blob produced by Encrypt. Wrong key, a flipped byte in
	// the IV or the ciphertext all fail the GCM authentication tag and
	// return an error wrapping ErrDecryptionFailed; garbage plaintext is
	// never returned.
	Decrypt(blob models.EncryptedBlob, key []byte) ([]byte, error)
}
