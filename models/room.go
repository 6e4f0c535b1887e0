package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Room status values. Status is the single source of truth for bookability.
const (
	RoomAvailable   = "AVAILABLE"
	RoomBooked      = "BOOKED"
	RoomMaintenance = "MAINTENANCE"
)

type Room struct {
	gorm.Model

	Name string `json:"name" gorm:"size:255"`
	Type string `json:"type" gorm:"size:100"`

	// BasePrice is the only rate pricing consumes; weekend/seasonal rates are
	// stored for the rate card but not billed yet.
	BasePrice     float64 `json:"basePrice" gorm:"column:base_price"`
	WeekendPrice  float64 `json:"weekendPrice" gorm:"column:weekend_price"`
	SeasonalPrice float64 `json:"seasonalPrice" gorm:"column:seasonal_price"`

	Description  string         `json:"description" gorm:"type:text"`
	Features     datatypes.JSON `json:"features"`
	Capacity     int            `json:"capacity"`
	ExtraBedCost float64        `json:"extraBedCost" gorm:"column:extra_bed_cost"`
	Images       datatypes.JSON `json:"images"`
	Status       string         `json:"status" gorm:"size:32;index"`
}
