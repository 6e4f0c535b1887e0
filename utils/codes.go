package utils

import (
	"strings"

	"github.com/google/uuid"
)

const reservationRefPrefix = "RES-"

// NewReservationRef returns a reservation reference like "RES-9F2C41AB".
// The short segment comes from a fresh UUID; the unique index on the column
// plus a create retry covers the truncation.
func NewReservationRef() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return reservationRefPrefix + strings.ToUpper(raw[:8])
}
