// SPDX-License-Identifier: Apache-2.0

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrInvalidVersion       = errors.New("invalid backup version")
	ErrEmptyUsername        = errors.New("username is required")
	ErrMissingPasswordCheck = errors.New("credential record is incomplete")
	ErrInvalidType          = errors.New("invalid transaction type")
	ErrInvalidAmount        = errors.New("amount must not be negative")
	ErrInvalidDate          = errors.New("invalid date, expected YYYY-MM-DD")
	ErrEmptyCategory        = errors.New("category is required")
	ErrEmptyName            = errors.New("name is required")
	ErrInvalidDueDay        = errors.New("due day must be between 1 and 31")
	ErrInvalidMonth         = errors.New("invalid month, expected YYYY-MM")
)
