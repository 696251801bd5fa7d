package flights

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFlightNotFound is returned when a flight ID does not resolve.
var ErrFlightNotFound = errors.New("flight not found")

// ErrFlightNotBookable is returned when the flight exists but is
// cancelled or has already departed.
var ErrFlightNotBookable = errors.New("flight is not open for booking")

// SeatConflictError reports which requested seats were already taken
// when a lock attempt failed.
type SeatConflictError struct {
	Seats []string
}

func (e *SeatConflictError) Error() string {
	return fmt.Sprintf("seats already occupied: %s", strings.Join(e.Seats, ", "))
}
