// controllers/reservation_controller.go
package controllers

import (
	"net/http"
	"strings"

	"safir-backend/services"
	"safir-backend/utils"

	"github.com/gin-gonic/gin"
)

type WalkInRequest struct {
	CustomerName  string  `json:"customer_name" binding:"required"`
	CustomerPhone string  `json:"customer_phone"`
	NationalID    *string `json:"national_id,omitempty"`
	RoomIDs       []uint  `json:"room_ids" binding:"required"`
	CheckIn       string  `json:"check_in" binding:"required"`
	CheckOut      string  `json:"check_out" binding:"required"`
	PaidAmount    float64 `json:"paid_amount"`
	PaymentMethod string  `json:"payment_method"`
	Notes         string  `json:"notes"`
}

type ReservationController struct {
	ReservationSvc *services.ReservationService
}

func NewReservationController(svc *services.ReservationService) *ReservationController {
	return &ReservationController{ReservationSvc: svc}
}

// GetReservations lists every reservation, newest first.
// GET /api/admin/reservations
func (rc *ReservationController) GetReservations(c *gin.Context) {
	list, err := rc.ReservationSvc.GetAllWithRooms()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// GetReservation fetches one reservation by reference code.
// GET /api/admin/reservations/:ref
func (rc *ReservationController) GetReservation(c *gin.Context) {
	reservation, err := rc.ReservationSvc.GetByReference(c.Param("ref"))
	if err != nil {
		if err.Error() == "reservation_not_found" {
			utils.JSONError(c, http.StatusNotFound, "reservation not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservation)
}

// CreateWalkIn records a front-desk reservation; it is CONFIRMED on creation
// and every selected room flips to BOOKED.
// POST /api/admin/reservations
func (rc *ReservationController) CreateWalkIn(c *gin.Context) {
	var req WalkInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	reservation, err := rc.ReservationSvc.CreateWalkIn(services.WalkInReservationInput{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		NationalID:    req.NationalID,
		RoomIDs:       req.RoomIDs,
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
		PaidAmount:    req.PaidAmount,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	})
	if err != nil {
		if strings.HasPrefix(err.Error(), "validation:") {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, reservation)
}

func (rc *ReservationController) transition(c *gin.Context, apply func(string) error) {
	ref := c.Param("ref")
	if err := apply(ref); err != nil {
		switch {
		case err.Error() == "reservation_not_found":
			utils.JSONError(c, http.StatusNotFound, "reservation not found")
		case strings.HasPrefix(err.Error(), "invalid_status_transition"):
			utils.JSONError(c, http.StatusConflict, err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	reservation, err := rc.ReservationSvc.GetByReference(ref)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservation)
}

// ConfirmReservation moves a NEW online reservation to CONFIRMED.
// POST /api/admin/reservations/:ref/confirm
func (rc *ReservationController) ConfirmReservation(c *gin.Context) {
	rc.transition(c, rc.ReservationSvc.Confirm)
}

// CancelReservation voids a reservation and frees its rooms.
// POST /api/admin/reservations/:ref/cancel
func (rc *ReservationController) CancelReservation(c *gin.Context) {
	rc.transition(c, rc.ReservationSvc.Cancel)
}

// CompleteReservation closes out a stay and frees its rooms.
// POST /api/admin/reservations/:ref/complete
func (rc *ReservationController) CompleteReservation(c *gin.Context) {
	rc.transition(c, rc.ReservationSvc.Complete)
}
