package services

import (
	"math"
	"time"
)

// VAT and service charge applied on top of room subtotals.
const (
	TaxRate       = 0.14
	ServiceCharge = 0.12
)

// Nights returns the number of chargeable nights between check-in and
// check-out, comparing calendar days only. Same-day and inverted ranges are
// normalized to a single night rather than rejected.
func Nights(checkIn, checkOut time.Time) int {
	ci := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, time.UTC)
	co := time.Date(checkOut.Year(), checkOut.Month(), checkOut.Day(), 0, 0, 0, 0, time.UTC)

	n := int(math.Ceil(co.Sub(ci).Hours() / 24))
	if n <= 0 {
		return 1
	}
	return n
}

// StayQuote is the price breakdown for a public single-room booking:
// VAT only, extra beds billed once per booking.
type StayQuote struct {
	Nights   int     `json:"nights"`
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

func QuoteStay(basePrice float64, nights, extraBeds int, extraBedCost float64) StayQuote {
	subtotal := basePrice*float64(nights) + float64(extraBeds)*extraBedCost
	tax := subtotal * TaxRate

	return StayQuote{
		Nights:   nights,
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}

// WalkInQuote is the front-desk breakdown: VAT plus service charge over every
// selected room. Deliberately a separate policy from StayQuote; the two
// channels bill differently and must stay that way.
type WalkInQuote struct {
	Nights        int     `json:"nights"`
	Subtotal      float64 `json:"subtotal"`
	Tax           float64 `json:"tax"`
	ServiceCharge float64 `json:"service_charge"`
	Total         float64 `json:"total"`
}

func QuoteWalkIn(nightRates []float64, nights int) WalkInQuote {
	var subtotal float64
	for _, rate := range nightRates {
		subtotal += rate * float64(nights)
	}

	return WalkInQuote{
		Nights:        nights,
		Subtotal:      subtotal,
		Tax:           subtotal * TaxRate,
		ServiceCharge: subtotal * ServiceCharge,
		Total:         subtotal * (1 + TaxRate + ServiceCharge),
	}
}
