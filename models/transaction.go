// SPDX-License-Identifier: Apache-2.0

package models

import "github.com/shopspring/decimal"

// Transaction kinds.
const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// Transaction is a single income or expense entry. The JSON tags match the
// payloads found in the legacy encrypted blobs, so migrated records decode
// without any field mapping.
type Transaction struct {
	ID       string          `json:"id"`
	Type     string          `json:"type"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Note     string          `json:"note,omitempty"`
	Date     string          `json:"date"` // ISO 8601 date (YYYY-MM-DD)
}

// RecurringTransaction is a template that spawns Transactions on a schedule.
// Scheduling itself is outside the persistence core.
type RecurringTransaction struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	Note      string          `json:"note,omitempty"`
	Frequency string          `json:"frequency"` // daily, weekly, monthly, yearly
	NextDate  string          `json:"next_date"`
	Active    bool            `json:"active"`
}
