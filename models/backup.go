// SPDX-License-Identifier: Apache-2.0

package models

import "time"

// BackupVersion is written into every export file so a restore can reject
// formats it does not understand.
const BackupVersion = "1"

// Backup is the export file format. The credential record travels with the
// data so an import on a fresh device restores the account as well; the
// record contains no secret material (see CredentialRecord).
type Backup struct {
	User         CredentialRecord `json:"user"`
	Transactions []Transaction    `json:"transactions"`
	Goals        []Goal           `json:"goals"`
	Bills        []Bill           `json:"bills"`
	Budgets      []Budget         `json:"budgets"`
	Version      string           `json:"version"`
	ExportedAt   time.Time        `json:"exportedAt"`
}
