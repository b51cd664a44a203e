// SPDX-License-Identifier: Apache-2.0

package models

import "github.com/shopspring/decimal"

// Budget is a monthly spending cap for one category.
type Budget struct {
	ID       string          `json:"id"`
	Category string          `json:"category"`
	Limit    decimal.Decimal `json:"limit"`
	Month    string          `json:"month"` // e.g. "2026-08"
}
