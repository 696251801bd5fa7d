package reservations

type CreateReservationRequest struct {
	FlightID      string            `json:"flight_id" binding:"required,uuid"`
	Seats         []string          `json:"seats" binding:"required,min=1,max=9,dive,seatcode"`
	Occupants     []OccupantRequest `json:"occupants" binding:"required,min=1,max=9,dive"`
	PaymentMethod string            `json:"payment_method" binding:"required,oneof=card deferred_slip"`
	Card          *CardRequest      `json:"card" binding:"omitempty"`

	// Optional caller-supplied total; when absent the fare calculator
	// decides.
	TotalAmount *float64 `json:"total_amount" binding:"omitempty,min=0"`
}

type OccupantRequest struct {
	FullName string `json:"full_name" binding:"required,min=2,max=120"`
}

type CardRequest struct {
	Number string `json:"number" binding:"required,min=13,max=23"`
	Expiry string `json:"expiry" binding:"required,cardexpiry"`
}
