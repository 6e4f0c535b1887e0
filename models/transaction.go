package models

import (
	"time"

	"gorm.io/gorm"
)

// Transaction types.
const (
	TransactionIncome  = "INCOME"
	TransactionExpense = "EXPENSE"
)

// Ledger categories.
const (
	CategoryBooking     = "BOOKING"
	CategorySalary      = "SALARY"
	CategoryBills       = "BILLS"
	CategoryMaintenance = "MAINTENANCE"
	CategoryOther       = "OTHER"
)

// Transaction is a single vault ledger entry. Entries are append-only and
// independent of reservations; booking income is recorded manually.
type Transaction struct {
	gorm.Model

	VaultID     uint      `gorm:"index;column:vault_id" json:"vault_id"`
	Type        string    `gorm:"size:16;index" json:"type"`
	Amount      float64   `json:"amount"`
	Category    string    `gorm:"size:32" json:"category"`
	Description string    `gorm:"size:255" json:"description"`
	Date        time.Time `gorm:"index" json:"date"`

	Vault Vault `gorm:"foreignKey:VaultID;references:ID" json:"vault,omitempty"`
}
