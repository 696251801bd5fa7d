package flights

import (
	"time"

	"flightly/internal/aircraft"

	"github.com/google/uuid"
)

// DefaultBaseFare is used when a flight is created without an explicit
// base fare.
const DefaultBaseFare = 500.0

// Flight is the inventory record for a single departure. OccupiedSeats
// is the authoritative seat set: a seat code present in the array is
// taken, anything else is free. The column is JSONB so seat locking can
// run as one conditional UPDATE against it.
type Flight struct {
	ID             uuid.UUID              `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Number         string                 `json:"number" gorm:"not null;size:10;index"`
	Origin         string                 `json:"origin" gorm:"not null;size:64;index"`
	Destination    string                 `json:"destination" gorm:"not null;size:64;index"`
	DepartureTime  time.Time              `json:"departure_time" gorm:"not null;index"`
	ArrivalTime    time.Time              `json:"arrival_time"`
	AircraftTypeID uuid.UUID              `json:"aircraft_type_id" gorm:"type:uuid;not null"`
	AircraftType   *aircraft.AircraftType `json:"aircraft_type,omitempty" gorm:"foreignKey:AircraftTypeID"`
	BaseFare       float64                `json:"base_fare" gorm:"not null;default:500;check:base_fare >= 0"`
	Status         Status                 `json:"status" gorm:"type:varchar(20);default:'scheduled'"`
	OccupiedSeats  []string               `json:"occupied_seats" gorm:"type:jsonb;serializer:json;default:'[]'"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Flight) TableName() string {
	return "flights"
}

// HasDeparted reports whether the flight's departure time has passed.
func (f *Flight) HasDeparted(now time.Time) bool {
	return !f.DepartureTime.After(now)
}

// SeatOccupied reports whether the given seat code is currently taken.
func (f *Flight) SeatOccupied(code string) bool {
	for _, s := range f.OccupiedSeats {
		if s == code {
			return true
		}
	}
	return false
}

// ConflictingSeats returns the subset of the requested codes that are
// already occupied, preserving request order.
func (f *Flight) ConflictingSeats(codes []string) []string {
	var conflicts []string
	for _, code := range codes {
		if f.SeatOccupied(code) {
			conflicts = append(conflicts, code)
		}
	}
	return conflicts
}
