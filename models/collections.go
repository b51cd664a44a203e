// SPDX-License-Identifier: Apache-2.0

package models

import "encoding/json"

// Collection names. Each name identifies one legacy encrypted blob and one
// table in the structured record store.
const (
	CollectionTransactions          = "transactions"
	CollectionGoals                 = "goals"
	CollectionBills                 = "bills"
	CollectionBudgets               = "budgets"
	CollectionRecurringTransactions = "recurring_transactions"
	CollectionNotifications         = "notifications"
	CollectionGoalContributions     = "goal_contributions"
	CollectionBillPayments          = "bill_payments"
)

// KnownCollections lists every collection in migration order. The order is
// stable so migration reports and tests are deterministic.
func KnownCollections() []string {
	return []string{
		CollectionTransactions,
		CollectionGoals,
		CollectionBills,
		CollectionBudgets,
		CollectionRecurringTransactions,
		CollectionNotifications,
		CollectionGoalContributions,
		CollectionBillPayments,
	}
}

// RecordSchemaVersion tags every stored record envelope so a future schema
// change can be detected and migrated explicitly instead of assumed.
const RecordSchemaVersion = 1

// Record is the versioned envelope the structured store persists for every
// entity row. The store itself is schema-agnostic: typed decoding happens in
// the layers that need it (backup, reports).
type Record struct {
	ID            string          `json:"id"`
	SchemaVersion int             `json:"schema_version"`
	Payload       json.RawMessage `json:"payload"`
}
