// SPDX-License-Identifier: Apache-2.0

package models

// Notification is a stored reminder (bill due, goal deadline). Delivery and
// scheduling are outside the persistence core; only the records live here.
type Notification struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at"`
}
