// services/reservation_service.go
package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"safir-backend/models"
	"safir-backend/utils"

	"gorm.io/gorm"
)

// ReservationService wraps *gorm.DB and owns the reservation lifecycle:
// building new reservations from either channel, locking their rooms, and
// moving them through confirm/cancel/complete.
type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db}
}

// OnlineReservationInput is the public booking flow submission: exactly one
// room, the one under view.
type OnlineReservationInput struct {
	FullName  string
	Phone     string
	RoomID    uint
	CheckIn   string
	CheckOut  string
	ExtraBeds int
	// ARRIVAL or DEPOSIT; mapped to CASH / CARD on the record.
	PaymentOption string
	Notes         string
}

// WalkInReservationInput is the front-desk manual entry: one or more rooms,
// staff-confirmed on the spot.
type WalkInReservationInput struct {
	CustomerName  string
	CustomerPhone string
	NationalID    *string
	RoomIDs       []uint
	CheckIn       string
	CheckOut      string
	PaidAmount    float64
	PaymentMethod string
	Notes         string
}

// ParseDate accepts a date-only value, with RFC3339 as a fallback for
// clients that send full timestamps.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date format: %q", value)
}

func normalizePaymentMethod(method string) string {
	switch strings.ToUpper(strings.TrimSpace(method)) {
	case models.PaymentCard:
		return models.PaymentCard
	case models.PaymentTransfer:
		return models.PaymentTransfer
	default:
		return models.PaymentCash
	}
}

// createWithRef inserts the reservation, retrying with a fresh reference code
// on a unique collision (the short code truncates a UUID).
func createWithRef(tx *gorm.DB, reservation *models.Reservation) error {
	const maxRetries = 5

	var createErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		reservation.ReferenceCode = utils.NewReservationRef()

		createErr = tx.Create(reservation).Error
		if createErr == nil {
			return nil
		}

		lc := strings.ToLower(createErr.Error())
		if strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") || strings.Contains(lc, "constraint") {
			log.Printf("reservation reference collision (attempt %d) - retrying", attempt+1)
			continue
		}
		return createErr
	}
	return fmt.Errorf("failed to create reservation after retries: %w", createErr)
}

// CreateOnline builds a NEW reservation from the public booking flow and
// locks the room immediately, before any staff confirmation.
func (s *ReservationService) CreateOnline(input OnlineReservationInput) (models.Reservation, error) {
	var result models.Reservation

	if strings.TrimSpace(input.FullName) == "" {
		return result, fmt.Errorf("validation: full name is required")
	}
	if strings.TrimSpace(input.Phone) == "" {
		return result, fmt.Errorf("validation: phone is required")
	}
	if input.RoomID == 0 {
		return result, fmt.Errorf("validation: room id is required")
	}

	checkIn, err := ParseDate(input.CheckIn)
	if err != nil {
		return result, fmt.Errorf("validation: invalid check_in: %v", err)
	}
	checkOut, err := ParseDate(input.CheckOut)
	if err != nil {
		return result, fmt.Errorf("validation: invalid check_out: %v", err)
	}

	extraBeds := input.ExtraBeds
	if extraBeds < 0 {
		extraBeds = 0
	}

	var room models.Room
	if err := s.DB.First(&room, input.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return result, fmt.Errorf("validation: room %d not found", input.RoomID)
		}
		return result, fmt.Errorf("db error checking room %d: %w", input.RoomID, err)
	}

	nights := Nights(checkIn, checkOut)
	quote := QuoteStay(room.BasePrice, nights, extraBeds, room.ExtraBedCost)

	paymentMethod := models.PaymentCash
	if strings.EqualFold(strings.TrimSpace(input.PaymentOption), "DEPOSIT") {
		paymentMethod = models.PaymentCard
	}

	var reservationID uint
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		reservation := models.Reservation{
			CustomerName:  strings.TrimSpace(input.FullName),
			CustomerPhone: strings.TrimSpace(input.Phone),
			CheckIn:       &checkIn,
			CheckOut:      &checkOut,
			TotalNights:   nights,
			TotalPrice:    quote.Total,
			PaidAmount:    0,
			Status:        models.ReservationNew,
			PaymentMethod: paymentMethod,
			Notes:         input.Notes,
			Source:        models.SourceOnline,
		}

		if err := createWithRef(tx, &reservation); err != nil {
			return fmt.Errorf("failed to create reservation: %w", err)
		}
		reservationID = reservation.ID

		row := models.ReservationRoom{
			ReservationID: reservation.ID,
			RoomID:        room.ID,
			Nights:        nights,
			NightRate:     room.BasePrice,
		}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to create reservation room: %w", err)
		}

		if err := tx.Model(&models.Room{}).
			Where("id = ?", room.ID).
			Updates(map[string]interface{}{"status": models.RoomBooked}).Error; err != nil {
			return fmt.Errorf("failed to update room %d status: %w", room.ID, err)
		}

		return nil
	})
	if txErr != nil {
		return result, txErr
	}

	return s.reload(reservationID)
}

// CreateWalkIn builds a CONFIRMED reservation from the front-desk form.
// Every selected room is billed at its base rate and flipped to BOOKED.
func (s *ReservationService) CreateWalkIn(input WalkInReservationInput) (models.Reservation, error) {
	var result models.Reservation

	if strings.TrimSpace(input.CustomerName) == "" {
		return result, fmt.Errorf("validation: customer name is required")
	}
	if len(input.RoomIDs) == 0 {
		return result, fmt.Errorf("validation: no room ids provided")
	}

	checkIn, err := ParseDate(input.CheckIn)
	if err != nil {
		return result, fmt.Errorf("validation: invalid check_in: %v", err)
	}
	checkOut, err := ParseDate(input.CheckOut)
	if err != nil {
		return result, fmt.Errorf("validation: invalid check_out: %v", err)
	}

	paidAmount := input.PaidAmount
	if paidAmount < 0 {
		paidAmount = 0
	}

	rooms := make([]models.Room, 0, len(input.RoomIDs))
	for _, rid := range input.RoomIDs {
		if rid == 0 {
			return result, fmt.Errorf("validation: invalid room id 0 in room_ids")
		}
		var rm models.Room
		if err := s.DB.First(&rm, rid).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return result, fmt.Errorf("validation: room %d not found", rid)
			}
			return result, fmt.Errorf("db error checking room %d: %w", rid, err)
		}
		rooms = append(rooms, rm)
	}

	nights := Nights(checkIn, checkOut)
	rates := make([]float64, 0, len(rooms))
	for _, rm := range rooms {
		rates = append(rates, rm.BasePrice)
	}
	quote := QuoteWalkIn(rates, nights)

	var nationalID *string
	if input.NationalID != nil && strings.TrimSpace(*input.NationalID) != "" {
		trimmed := strings.TrimSpace(*input.NationalID)
		nationalID = &trimmed
	}

	var reservationID uint
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		reservation := models.Reservation{
			CustomerName:  strings.TrimSpace(input.CustomerName),
			CustomerPhone: strings.TrimSpace(input.CustomerPhone),
			NationalID:    nationalID,
			CheckIn:       &checkIn,
			CheckOut:      &checkOut,
			TotalNights:   nights,
			TotalPrice:    quote.Total,
			PaidAmount:    paidAmount,
			Status:        models.ReservationConfirmed,
			PaymentMethod: normalizePaymentMethod(input.PaymentMethod),
			Notes:         input.Notes,
			Source:        models.SourceWalkIn,
		}

		if err := createWithRef(tx, &reservation); err != nil {
			return fmt.Errorf("failed to create reservation: %w", err)
		}
		reservationID = reservation.ID

		for _, rm := range rooms {
			row := models.ReservationRoom{
				ReservationID: reservation.ID,
				RoomID:        rm.ID,
				Nights:        nights,
				NightRate:     rm.BasePrice,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to create reservation room for room %d: %w", rm.ID, err)
			}

			if err := tx.Model(&models.Room{}).
				Where("id = ?", rm.ID).
				Updates(map[string]interface{}{"status": models.RoomBooked}).Error; err != nil {
				return fmt.Errorf("failed to update room %d status: %w", rm.ID, err)
			}
		}

		return nil
	})
	if txErr != nil {
		return result, txErr
	}

	return s.reload(reservationID)
}

func (s *ReservationService) reload(id uint) (models.Reservation, error) {
	var reservation models.Reservation
	if err := s.DB.
		Preload("Rooms").
		Preload("Rooms.Room").
		First(&reservation, id).Error; err != nil {
		return reservation, err
	}
	if reservation.Rooms == nil {
		reservation.Rooms = []models.ReservationRoom{}
	}
	return reservation, nil
}

// GetAllWithRooms returns every reservation, newest first, rooms preloaded.
func (s *ReservationService) GetAllWithRooms() ([]models.Reservation, error) {
	var list []models.Reservation

	if err := s.DB.
		Preload("Rooms").
		Preload("Rooms.Room").
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve reservations: %w", err)
	}

	for i := range list {
		if list[i].Rooms == nil {
			list[i].Rooms = []models.ReservationRoom{}
		}
	}

	return list, nil
}

// GetByReference looks a reservation up by its public reference code.
func (s *ReservationService) GetByReference(ref string) (models.Reservation, error) {
	var reservation models.Reservation
	if err := s.DB.
		Preload("Rooms").
		Preload("Rooms.Room").
		Where("reference_code = ?", ref).
		First(&reservation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return reservation, errors.New("reservation_not_found")
		}
		return reservation, fmt.Errorf("failed to retrieve reservation: %w", err)
	}
	return reservation, nil
}

// Confirm moves a NEW online reservation to CONFIRMED. The rooms are already
// BOOKED from creation; only the status changes.
func (s *ReservationService) Confirm(ref string) error {
	return s.transition(ref, []string{models.ReservationNew}, models.ReservationConfirmed, false)
}

// Cancel voids a NEW or CONFIRMED reservation and returns its rooms to
// AVAILABLE.
func (s *ReservationService) Cancel(ref string) error {
	return s.transition(ref, []string{models.ReservationNew, models.ReservationConfirmed}, models.ReservationCancelled, true)
}

// Complete closes out a CONFIRMED stay and returns its rooms to AVAILABLE.
func (s *ReservationService) Complete(ref string) error {
	return s.transition(ref, []string{models.ReservationConfirmed}, models.ReservationCompleted, true)
}

func (s *ReservationService) transition(ref string, from []string, to string, releaseRooms bool) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var reservation models.Reservation
		if err := tx.Preload("Rooms").
			Where("reference_code = ?", ref).
			First(&reservation).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("reservation_not_found")
			}
			return err
		}

		allowed := false
		for _, status := range from {
			if reservation.Status == status {
				allowed = true
				break
			}
		}
		if !allowed {
			return fmt.Errorf("invalid_status_transition: %s -> %s", reservation.Status, to)
		}

		if err := tx.Model(&reservation).
			Updates(map[string]interface{}{"status": to}).Error; err != nil {
			return err
		}

		if releaseRooms {
			for _, row := range reservation.Rooms {
				if err := tx.Model(&models.Room{}).
					Where("id = ?", row.RoomID).
					Updates(map[string]interface{}{"status": models.RoomAvailable}).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})
}
