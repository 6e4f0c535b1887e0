// controllers/booking_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strings"

	"safir-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type StayQuoteRequest struct {
	RoomID    uint   `json:"room_id" binding:"required"`
	CheckIn   string `json:"check_in" binding:"required"`
	CheckOut  string `json:"check_out" binding:"required"`
	ExtraBeds int    `json:"extra_beds"`
}

type CreateBookingRequest struct {
	FullName      string `json:"full_name" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	RoomID        uint   `json:"room_id" binding:"required"`
	CheckIn       string `json:"check_in" binding:"required"`
	CheckOut      string `json:"check_out" binding:"required"`
	ExtraBeds     int    `json:"extra_beds"`
	PaymentOption string `json:"payment_option"` // ARRIVAL or DEPOSIT
	Notes         string `json:"notes"`
}

// ---------------------------
// Controller
// ---------------------------

// BookingController serves the public booking flow: quoting a stay and
// submitting an online reservation.
type BookingController struct {
	ReservationSvc *services.ReservationService
	RoomSvc        *services.RoomService
	AdvisorySvc    *services.AdvisoryService
}

func NewBookingController(
	reservationSvc *services.ReservationService,
	roomSvc *services.RoomService,
	advisorySvc *services.AdvisoryService,
) *BookingController {
	return &BookingController{
		ReservationSvc: reservationSvc,
		RoomSvc:        roomSvc,
		AdvisorySvc:    advisorySvc,
	}
}

// QuoteStay prices a candidate stay without creating anything.
// POST /api/public/quote
func (bc *BookingController) QuoteStay(c *gin.Context) {
	var req StayQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}

	room, err := bc.RoomSvc.GetByID(req.RoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	checkIn, err := services.ParseDate(req.CheckIn)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid check_in"})
		return
	}
	checkOut, err := services.ParseDate(req.CheckOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid check_out"})
		return
	}

	extraBeds := req.ExtraBeds
	if extraBeds < 0 {
		extraBeds = 0
	}

	nights := services.Nights(checkIn, checkOut)
	quote := services.QuoteStay(room.BasePrice, nights, extraBeds, room.ExtraBedCost)

	c.JSON(http.StatusOK, quote)
}

// CreateBooking submits the public booking form. The new reservation starts
// NEW and its room is locked immediately; the suspicious-booking signal is
// advisory metadata in the response and gates nothing.
// POST /api/public/bookings
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}

	reservation, err := bc.ReservationSvc.CreateOnline(services.OnlineReservationInput{
		FullName:      req.FullName,
		Phone:         req.Phone,
		RoomID:        req.RoomID,
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
		ExtraBeds:     req.ExtraBeds,
		PaymentOption: req.PaymentOption,
		Notes:         req.Notes,
	})
	if err != nil {
		if strings.HasPrefix(err.Error(), "validation:") {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	suspicious := bc.AdvisorySvc.DetectSuspiciousBooking(reservation)

	c.JSON(http.StatusCreated, gin.H{
		"reservation": reservation,
		"suspicious":  suspicious,
	})
}
