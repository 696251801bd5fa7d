package reservations

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRequest covers structural problems with a booking
	// request: no seats, occupant/seat count mismatch, bad method.
	ErrInvalidRequest = errors.New("invalid reservation request")

	// ErrReservationNotFound is returned when the ID does not resolve
	// to a reservation the caller may see. Lookups scoped to a user
	// deliberately answer the same way for "absent" and "not yours".
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrAlreadyCancelled is returned when cancelling twice.
	ErrAlreadyCancelled = errors.New("reservation already cancelled")
)

// CancellationWindowClosedError reports a confirmed reservation being
// cancelled too close to departure.
type CancellationWindowClosedError struct {
	HoursRemaining float64
}

func (e *CancellationWindowClosedError) Error() string {
	return fmt.Sprintf("confirmed reservations require at least 24 hours before departure to cancel, %.1f remaining", e.HoursRemaining)
}
