package aircraft

import (
	"time"

	"github.com/google/uuid"
)

// Seat class names used across fare computation and seatmap rendering.
const (
	ClassFirst     = "first"
	ClassExecutive = "executive"
	ClassEconomy   = "economy"
)

// SeatClassBand maps a contiguous row range to a fare multiplier and the
// window/aisle column letters of that cabin section. Bands within one
// layout never overlap in row range and are kept sorted by RowStart.
type SeatClassBand struct {
	ClassName      string   `json:"class_name"`
	RowStart       int      `json:"row_start"`
	RowEnd         int      `json:"row_end"`
	WindowLetters  []string `json:"window_letters"`
	AisleLetters   []string `json:"aisle_letters"`
	FareMultiplier float64  `json:"fare_multiplier"`
}

// Contains reports whether the band covers the given row.
func (b SeatClassBand) Contains(row int) bool {
	return row >= b.RowStart && row <= b.RowEnd
}

// AircraftType describes a cabin configuration. Classes may be empty, in
// which case callers fall back to a synthetic three-tier layout derived
// from Rows and SeatsPerRow.
type AircraftType struct {
	ID          uuid.UUID       `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name        string          `json:"name" gorm:"uniqueIndex;not null;size:255"`
	Description string          `json:"description" gorm:"type:text"`
	TotalSeats  int             `json:"total_seats" gorm:"not null;check:total_seats > 0"`
	Rows        int             `json:"rows" gorm:"not null;check:rows > 0"`
	SeatsPerRow int             `json:"seats_per_row" gorm:"not null;check:seats_per_row > 0"`
	Classes     []SeatClassBand `json:"classes" gorm:"type:jsonb;serializer:json"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TableName sets the table name for AircraftType
func (AircraftType) TableName() string {
	return "aircraft_types"
}

// HasClassLayout reports whether the type carries an explicit seat-class
// configuration.
func (t *AircraftType) HasClassLayout() bool {
	return len(t.Classes) > 0
}
