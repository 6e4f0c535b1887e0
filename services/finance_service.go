// services/finance_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"safir-backend/models"

	"gorm.io/gorm"
)

type FinanceService struct {
	DB *gorm.DB
}

func NewFinanceService(db *gorm.DB) *FinanceService {
	return &FinanceService{DB: db}
}

// ExpenseInput is a manual ledger entry recorded against a vault.
type ExpenseInput struct {
	VaultID     uint
	Amount      float64
	Category    string
	Description string
	Date        string
}

// FinanceSummary is the finance page header: vault liquidity, ledger totals
// and the tax/service allocation computed from recorded income.
type FinanceSummary struct {
	TotalBalance float64 `json:"total_balance"`
	Income       float64 `json:"income"`
	Expenses     float64 `json:"expenses"`
	NetProfit    float64 `json:"net_profit"`

	VATAllocation     float64 `json:"vat_allocation"`
	ServiceAllocation float64 `json:"service_allocation"`
	TotalAllocation   float64 `json:"total_allocation"`
}

func validCategory(category string) bool {
	switch category {
	case models.CategoryBooking, models.CategorySalary, models.CategoryBills,
		models.CategoryMaintenance, models.CategoryOther:
		return true
	}
	return false
}

// CreateExpense records an EXPENSE transaction. Vault balances are not
// touched; they are reconciled by explicit bookkeeping.
func (s *FinanceService) CreateExpense(input ExpenseInput) (models.Transaction, error) {
	var tx models.Transaction

	if input.Amount <= 0 {
		return tx, fmt.Errorf("validation: amount must be positive")
	}

	category := strings.ToUpper(strings.TrimSpace(input.Category))
	if category == "" {
		category = models.CategoryOther
	}
	if !validCategory(category) {
		return tx, fmt.Errorf("validation: unknown category %q", input.Category)
	}

	var vault models.Vault
	if err := s.DB.First(&vault, input.VaultID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx, fmt.Errorf("validation: vault %d not found", input.VaultID)
		}
		return tx, fmt.Errorf("db error checking vault %d: %w", input.VaultID, err)
	}

	date := time.Now().UTC()
	if strings.TrimSpace(input.Date) != "" {
		parsed, err := ParseDate(input.Date)
		if err != nil {
			return tx, fmt.Errorf("validation: invalid date: %v", err)
		}
		date = parsed
	}

	tx = models.Transaction{
		VaultID:     vault.ID,
		Type:        models.TransactionExpense,
		Amount:      input.Amount,
		Category:    category,
		Description: strings.TrimSpace(input.Description),
		Date:        date,
	}

	if err := s.DB.Create(&tx).Error; err != nil {
		return tx, fmt.Errorf("failed to create transaction: %w", err)
	}

	tx.Vault = vault
	return tx, nil
}

// ListTransactions returns the ledger, newest first.
func (s *FinanceService) ListTransactions() ([]models.Transaction, error) {
	var list []models.Transaction
	if err := s.DB.
		Preload("Vault").
		Order("date DESC, id DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve transactions: %w", err)
	}
	return list, nil
}

// ListVaults returns every vault with its bookkept balance.
func (s *FinanceService) ListVaults() ([]models.Vault, error) {
	var vaults []models.Vault
	err := s.DB.Order("id ASC").Find(&vaults).Error
	return vaults, err
}

// Summary aggregates the ledger and vault balances for the finance page.
func (s *FinanceService) Summary() (FinanceSummary, error) {
	var summary FinanceSummary

	if err := s.DB.Model(&models.Vault{}).
		Select("COALESCE(SUM(balance), 0)").
		Scan(&summary.TotalBalance).Error; err != nil {
		return summary, fmt.Errorf("failed to sum vault balances: %w", err)
	}

	if err := s.DB.Model(&models.Transaction{}).
		Where("type = ?", models.TransactionIncome).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&summary.Income).Error; err != nil {
		return summary, fmt.Errorf("failed to sum income: %w", err)
	}

	if err := s.DB.Model(&models.Transaction{}).
		Where("type = ?", models.TransactionExpense).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&summary.Expenses).Error; err != nil {
		return summary, fmt.Errorf("failed to sum expenses: %w", err)
	}

	summary.NetProfit = summary.Income - summary.Expenses
	summary.VATAllocation = summary.Income * TaxRate
	summary.ServiceAllocation = summary.Income * ServiceCharge
	summary.TotalAllocation = summary.Income * (TaxRate + ServiceCharge)

	return summary, nil
}
