package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds database constraints and indexes the seat
// compare-and-set path and the sweeper scan depend on.
func MigrateConstraints(db *gorm.DB) error {
	// The expiration sweeper scans pending, unpaid deferred-slip
	// reservations every hour; keep that scan off a sequential table walk.
	err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_reservations_sweeper
		ON reservations (flight_id)
		WHERE cancelled = false
		  AND payment_method = 'deferred_slip'
		  AND payment_status = 'pending'
		  AND payment_slip_paid = false;
	`).Error
	if err != nil {
		return err
	}

	// Lookup path for a user's own reservations.
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_reservations_user_active
		ON reservations (user_id)
		WHERE cancelled = false;
	`).Error
	if err != nil {
		return err
	}

	// Occupied-seat containment checks run against the flight row's JSONB
	// set; a GIN index keeps the seatmap and conflict pre-checks cheap.
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_flights_occupied_seats
		ON flights USING GIN (occupied_seats);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
