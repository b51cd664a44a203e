// SPDX-License-Identifier: Apache-2.0

package store

import "errors"

var (
	// ErrNotFound is returned when a record with the requested id does not
	// exist in a collection.
	ErrNotFound = errors.New("record not found")

	// ErrUnknownCollection is returned for collection names outside the
	// registry in models.KnownCollections. The name doubles as a table name,
	// so unknown values are rejected before any SQL is built.
	ErrUnknownCollection = errors.New("unknown collection")

	// ErrNoCredential is returned when no credential record has been
	// persisted yet (no account exists on this device).
	ErrNoCredential = errors.New("no credential record")

	// ErrStorageUnavailable marks a persistence failure (file system or
	// database). It is fatal for the current operation: callers abort
	// instead of retrying or isolating it.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
