package models

import (
	"gorm.io/gorm"
)

// ReservationRoom links a reservation to one of its rooms.
type ReservationRoom struct {
	gorm.Model

	ReservationID uint `gorm:"index;column:reservation_id" json:"reservation_id"`
	RoomID        uint `gorm:"index;column:room_id" json:"room_id"`

	// Nightly rate copied from the room at booking time.
	Nights    int     `gorm:"column:nights;default:0" json:"nights,omitempty"`
	NightRate float64 `gorm:"column:night_rate" json:"night_rate,omitempty"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}
