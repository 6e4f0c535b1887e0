package models

import (
	"time"
)

// Vault is a named cash-holding account. Balance is maintained by explicit
// bookkeeping, not derived from the transaction ledger.
type Vault struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Code      string    `gorm:"uniqueIndex;size:32" json:"code"`
	Name      string    `gorm:"size:255" json:"name"`
	Balance   float64   `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
