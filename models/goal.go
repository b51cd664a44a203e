// SPDX-License-Identifier: Apache-2.0

package models

import "github.com/shopspring/decimal"

// Goal is a savings goal with a target amount and optional deadline.
type Goal struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	SavedAmount  decimal.Decimal `json:"saved_amount"`
	Deadline     string          `json:"deadline,omitempty"`
}

// GoalContribution is one deposit toward a goal.
type GoalContribution struct {
	ID     string          `json:"id"`
	GoalID string          `json:"goal_id"`
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date"`
	Note   string          `json:"note,omitempty"`
}
