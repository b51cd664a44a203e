// SPDX-License-Identifier: Apache-2.0

package models

import "github.com/shopspring/decimal"

// Bill is a recurring obligation (rent, utilities, subscriptions).
type Bill struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Amount  decimal.Decimal `json:"amount"`
	DueDay  int             `json:"due_day"` // day of month, 1..31
	AutoPay bool            `json:"auto_pay"`
}

// BillPayment records that a bill was paid for a given period.
type BillPayment struct {
	ID     string          `json:"id"`
	BillID string          `json:"bill_id"`
	Amount decimal.Decimal `json:"amount"`
	PaidAt string          `json:"paid_at"`
	Period string          `json:"period"` // e.g. "2026-08"
}
