package reservations

import (
	"time"

	"flightly/internal/payments"
)

type ReservationResponse struct {
	ID                string          `json:"id"`
	ReservationNumber string          `json:"reservation_number"`
	UserID            string          `json:"user_id"`
	FlightID          string          `json:"flight_id"`
	Flight            *FlightSummary  `json:"flight,omitempty"`
	Seats             []string        `json:"seats"`
	Occupants         []Occupant      `json:"occupants"`
	PaymentMethod     payments.Method `json:"payment_method"`
	PaymentStatus     payments.Status `json:"payment_status"`
	TotalAmount       float64         `json:"total_amount"`
	Card              *CardSummary    `json:"card,omitempty"`
	Slip              *SlipSummary    `json:"slip,omitempty"`
	Cancelled         bool            `json:"cancelled"`
	CancelledAt       *time.Time      `json:"cancelled_at,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

type FlightSummary struct {
	Number        string    `json:"number"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DepartureTime time.Time `json:"departure_time"`
}

type CardSummary struct {
	Brand  string `json:"brand"`
	Last4  string `json:"last4"`
	Expiry string `json:"expiry"`
}

type SlipSummary struct {
	Number  string     `json:"number"`
	DueDate *time.Time `json:"due_date,omitempty"`
	Paid    bool       `json:"paid"`
	PaidAt  *time.Time `json:"paid_at,omitempty"`
}

// ToResponse converts a Reservation into its API projection.
func (r *Reservation) ToResponse() ReservationResponse {
	resp := ReservationResponse{
		ID:                r.ID.String(),
		ReservationNumber: r.ReservationNumber,
		UserID:            r.UserID.String(),
		FlightID:          r.FlightID.String(),
		Seats:             r.Seats,
		Occupants:         r.Occupants,
		PaymentMethod:     r.PaymentMethod,
		PaymentStatus:     r.PaymentStatus,
		TotalAmount:       r.TotalAmount,
		Cancelled:         r.Cancelled,
		CancelledAt:       r.CancelledAt,
		CreatedAt:         r.CreatedAt,
	}

	if r.Flight != nil {
		resp.Flight = &FlightSummary{
			Number:        r.Flight.Number,
			Origin:        r.Flight.Origin,
			Destination:   r.Flight.Destination,
			DepartureTime: r.Flight.DepartureTime,
		}
	}

	if r.PaymentMethod == payments.MethodCard && r.CardLast4 != "" {
		resp.Card = &CardSummary{
			Brand:  r.CardBrand,
			Last4:  r.CardLast4,
			Expiry: r.CardExpiry,
		}
	}

	if r.IsDeferredSlip() && r.SlipNumber != "" {
		resp.Slip = &SlipSummary{
			Number:  r.SlipNumber,
			DueDate: r.SlipDueDate,
			Paid:    r.SlipPaid,
			PaidAt:  r.SlipPaidAt,
		}
	}

	return resp
}
