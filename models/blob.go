// SPDX-License-Identifier: Apache-2.0

package models

// EncryptedBlob is the at-rest form of every encrypted payload: a fresh
// random IV plus the AES-GCM ciphertext (which carries the authentication
// tag). The blob is opaque outside the crypto package.
//
// Both fields marshal to base64 strings in JSON, which is the persisted
// legacy-store representation: {"iv": "...", "ciphertext": "..."}.
type EncryptedBlob struct {
	IV         []byte `json:"iv"`
	Ciphertext []byte `json:"ciphertext"`
}

// IsZero reports whether the blob holds no data at all.
func (b EncryptedBlob) IsZero() bool {
	return len(b.IV) == 0 && len(b.Ciphertext) == 0
}
