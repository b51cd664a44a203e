// SPDX-License-Identifier: Apache-2.0

package models

import "time"

// CredentialRecord is the only artifact persisted for authentication.
// No password and no derived key is ever stored: sign-in re-derives the key
// from the password and Salt, then proves it by decrypting PasswordCheck.
type CredentialRecord struct {
	Username string `json:"username"`

	// Salt is the random key-derivation salt generated at sign-up (or at
	// password change). It is not a secret.
	Salt []byte `json:"salt"`

	// PasswordCheck is a fixed known-plaintext marker encrypted under the
	// key derived from the user's password. Successful authenticated
	// decryption of this blob is the password-verification mechanism.
	PasswordCheck EncryptedBlob `json:"password_check"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
