// SPDX-License-Identifier: Apache-2.0

package service

import "errors"

var (
	// ErrAuthenticationFailed covers both a wrong password and a corrupted
	// credential record. The two causes are deliberately not distinguished
	// to the caller; the internal distinction is logged for diagnostics
	// only.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrAuthenticationInProgress is returned for a sign-in or sign-up
	// attempt while another attempt is still resolving.
	ErrAuthenticationInProgress = errors.New("authentication already in progress")

	// ErrAlreadySignedIn is returned for sign-in/sign-up while a session is
	// active.
	ErrAlreadySignedIn = errors.New("already signed in")

	// ErrNotSignedIn is returned for operations that need an active session.
	ErrNotSignedIn = errors.New("not signed in")

	// ErrAccountExists is returned by sign-up when a credential record is
	// already present on this device.
	ErrAccountExists = errors.New("account already exists")

	// ErrNoAccount is returned by sign-in when no credential record exists
	// on this device.
	ErrNoAccount = errors.New("no account registered")

	// ErrUnsupportedBackupVersion is returned by restore for export files
	// written in an unknown format version.
	ErrUnsupportedBackupVersion = errors.New("unsupported backup version")

	// ErrMalformedCollection marks a legacy collection that decrypted fine
	// but did not parse as a JSON array of records. Recorded per collection
	// in the migration report, never fatal for the run.
	ErrMalformedCollection = errors.New("malformed legacy collection")
)
