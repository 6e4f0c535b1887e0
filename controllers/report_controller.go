package controllers

import (
	"net/http"

	"safir-backend/services"
	"safir-backend/utils"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	ReportSvc   *services.ReportService
	RoomSvc     *services.RoomService
	AdvisorySvc *services.AdvisoryService
}

func NewReportController(
	reportSvc *services.ReportService,
	roomSvc *services.RoomService,
	advisorySvc *services.AdvisoryService,
) *ReportController {
	return &ReportController{
		ReportSvc:   reportSvc,
		RoomSvc:     roomSvc,
		AdvisorySvc: advisorySvc,
	}
}

// GetDashboard returns the admin landing page overview.
// GET /api/admin/dashboard
func (rc *ReportController) GetDashboard(c *gin.Context) {
	overview, err := rc.ReportSvc.Overview()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, overview)
}

// GetReport returns the analytics KPIs and the monthly ledger series.
// GET /api/admin/reports
func (rc *ReportController) GetReport(c *gin.Context) {
	report, err := rc.ReportSvc.Report()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, report)
}

// GetPricingAdvice asks the AI provider for pricing suggestions over the
// current inventory. Kept on its own endpoint so the dashboard loads without
// waiting on the provider; on any failure the fixed fallback text comes back
// with a 200.
// GET /api/admin/advisory/pricing
func (rc *ReportController) GetPricingAdvice(c *gin.Context) {
	rooms, err := rc.RoomSvc.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	suggestion := rc.AdvisorySvc.SmartPricingSuggestions(rooms)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"suggestion": suggestion})
}
