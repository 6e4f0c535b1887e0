package controllers

import (
	"net/http"
	"strings"

	"safir-backend/services"
	"safir-backend/utils"

	"github.com/gin-gonic/gin"
)

type ExpenseRequest struct {
	VaultID     uint    `json:"vault_id" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
}

type FinanceController struct {
	FinanceSvc *services.FinanceService
}

func NewFinanceController(svc *services.FinanceService) *FinanceController {
	return &FinanceController{FinanceSvc: svc}
}

// GetTransactions lists the ledger, newest first.
// GET /api/admin/finance/transactions
func (fc *FinanceController) GetTransactions(c *gin.Context) {
	list, err := fc.FinanceSvc.ListTransactions()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// CreateExpense records a manual expense entry against a vault.
// POST /api/admin/finance/expenses
func (fc *FinanceController) CreateExpense(c *gin.Context) {
	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	tx, err := fc.FinanceSvc.CreateExpense(services.ExpenseInput{
		VaultID:     req.VaultID,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Date:        req.Date,
	})
	if err != nil {
		if strings.HasPrefix(err.Error(), "validation:") {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, tx)
}

// GetVaults lists the vaults with their bookkept balances.
// GET /api/admin/finance/vaults
func (fc *FinanceController) GetVaults(c *gin.Context) {
	vaults, err := fc.FinanceSvc.ListVaults()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, vaults)
}

// GetSummary returns the finance page aggregates.
// GET /api/admin/finance/summary
func (fc *FinanceController) GetSummary(c *gin.Context) {
	summary, err := fc.FinanceSvc.Summary()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, summary)
}
