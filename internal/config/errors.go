// SPDX-License-Identifier: Apache-2.0

package config

import "errors"

var (
	// ErrNoDataDir is returned when no data directory is configured and the
	// user's home directory cannot be resolved.
	ErrNoDataDir = errors.New("config: data dir not set and home dir unavailable")

	// ErrBadLogLevel is returned for log levels other than
	// debug/info/warn/error.
	ErrBadLogLevel = errors.New("config: invalid log level")

	// ErrBadKDFIterations is returned for a negative KDF work factor.
	ErrBadKDFIterations = errors.New("config: kdf iterations must not be negative")
)
