package models

import (
	"time"

	"gorm.io/gorm"
)

// Reservation lifecycle states.
const (
	ReservationNew       = "NEW"
	ReservationConfirmed = "CONFIRMED"
	ReservationCompleted = "COMPLETED"
	ReservationCancelled = "CANCELLED"
)

// Booking channels. Walk-in reservations are entered by staff and start
// confirmed; online reservations wait for staff confirmation.
const (
	SourceWalkIn = "WALK_IN"
	SourceOnline = "ONLINE"
)

// Payment methods.
const (
	PaymentCash     = "CASH"
	PaymentCard     = "CARD"
	PaymentTransfer = "TRANSFER"
)

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ReferenceCode string  `gorm:"column:reference_code;size:64;uniqueIndex" json:"reference_code"`
	CustomerName  string  `gorm:"column:customer_name;size:255" json:"customer_name"`
	CustomerPhone string  `gorm:"column:customer_phone;size:50" json:"customer_phone"`
	NationalID    *string `gorm:"column:national_id;size:32" json:"national_id,omitempty"`

	CheckIn  *time.Time `gorm:"column:check_in" json:"check_in,omitempty"`
	CheckOut *time.Time `gorm:"column:check_out" json:"check_out,omitempty"`

	// TotalNights and TotalPrice are fixed at creation from the rates in
	// effect then; later room price edits do not reprice the stay.
	TotalNights int     `gorm:"column:total_nights" json:"total_nights"`
	TotalPrice  float64 `gorm:"column:total_price" json:"total_price"`
	PaidAmount  float64 `gorm:"column:paid_amount" json:"paid_amount"`

	Status        string `gorm:"column:status;size:32;index" json:"status"`
	PaymentMethod string `gorm:"column:payment_method;size:32" json:"payment_method"`
	Notes         string `gorm:"column:notes;type:text" json:"notes"`
	Source        string `gorm:"column:source;size:32" json:"source"`

	Rooms []ReservationRoom `gorm:"foreignKey:ReservationID" json:"rooms"`
}
