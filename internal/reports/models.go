package reports

import (
	"time"
)

// OverviewReport summarizes the whole inventory: how many flights are
// selling, how many reservations are live, and what they are worth.
type OverviewReport struct {
	TotalFlights          int       `json:"total_flights"`
	ScheduledFlights      int       `json:"scheduled_flights"`
	TotalReservations     int       `json:"total_reservations"`
	ActiveReservations    int       `json:"active_reservations"`
	CancelledReservations int       `json:"cancelled_reservations"`
	PendingSlips          int       `json:"pending_slips"`
	ConfirmedRevenue      float64   `json:"confirmed_revenue"`
	CancellationRate      float64   `json:"cancellation_rate"`
	GeneratedAt           time.Time `json:"generated_at"`
}

// FlightReport is one row of the per-flight occupancy and revenue feed.
// Revenue counts confirmed, non-cancelled reservations only; seats sold
// is the live occupied-seat count on the flight itself.
type FlightReport struct {
	FlightID         string    `json:"flight_id"`
	FlightNumber     string    `json:"flight_number"`
	Origin           string    `json:"origin"`
	Destination      string    `json:"destination"`
	DepartureTime    time.Time `json:"departure_time"`
	Status           string    `json:"status"`
	TotalSeats       int       `json:"total_seats"`
	SeatsSold        int       `json:"seats_sold"`
	OccupancyRate    float64   `json:"occupancy_rate"`
	ReservationCount int       `json:"reservation_count"`
	ConfirmedRevenue float64   `json:"confirmed_revenue"`
}

// ReservationLine is one non-cancelled reservation on a flight, as seen
// by the reporting feed.
type ReservationLine struct {
	ReservationID     string    `json:"reservation_id"`
	ReservationNumber string    `json:"reservation_number"`
	UserID            string    `json:"user_id"`
	UserEmail         string    `json:"user_email,omitempty"`
	SeatCount         int       `json:"seat_count"`
	Seats             []string  `json:"seats"`
	PaymentMethod     string    `json:"payment_method"`
	PaymentStatus     string    `json:"payment_status"`
	TotalAmount       float64   `json:"total_amount"`
	CreatedAt         time.Time `json:"created_at"`
}

// FlightReservationsReport combines a flight's summary row with the
// reservations behind it.
type FlightReservationsReport struct {
	Flight       FlightReport      `json:"flight"`
	Reservations []ReservationLine `json:"reservations"`
}
