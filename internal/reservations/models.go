package reservations

import (
	"time"

	"flightly/internal/flights"
	"flightly/internal/payments"
	"flightly/internal/users"

	"github.com/google/uuid"
)

// Occupant is one traveler assigned to one seat, by position: the n-th
// occupant sits in the n-th seat of the reservation.
type Occupant struct {
	FullName string `json:"full_name"`
}

// Reservation ties a user to a set of seats on one flight together with
// the payment that secures them. Cancellation is a soft flag; the row
// stays for history and the seats go back to the flight's pool.
type Reservation struct {
	ID                uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	ReservationNumber string    `json:"reservation_number" gorm:"uniqueIndex;not null;size:16"`

	UserID uuid.UUID   `json:"user_id" gorm:"type:uuid;not null;index"`
	User   *users.User `json:"-" gorm:"foreignKey:UserID"`

	FlightID uuid.UUID       `json:"flight_id" gorm:"type:uuid;not null;index"`
	Flight   *flights.Flight `json:"flight,omitempty" gorm:"foreignKey:FlightID"`

	Seats     []string   `json:"seats" gorm:"type:jsonb;serializer:json;not null"`
	Occupants []Occupant `json:"occupants" gorm:"type:jsonb;serializer:json"`

	PaymentMethod payments.Method `json:"payment_method" gorm:"column:payment_method;type:varchar(20);not null"`
	PaymentStatus payments.Status `json:"payment_status" gorm:"column:payment_status;type:varchar(20);not null;default:'pending'"`
	TotalAmount   float64         `json:"total_amount" gorm:"not null;check:total_amount >= 0"`

	// Card payments keep only what is safe to store.
	CardBrand  string `json:"card_brand,omitempty" gorm:"size:20"`
	CardLast4  string `json:"card_last4,omitempty" gorm:"size:4"`
	CardExpiry string `json:"card_expiry,omitempty" gorm:"size:5"`

	// Deferred-slip payments.
	SlipNumber  string     `json:"slip_number,omitempty" gorm:"column:payment_slip_number;size:16"`
	SlipDueDate *time.Time `json:"slip_due_date,omitempty" gorm:"column:payment_slip_due_date"`
	SlipPaid    bool       `json:"slip_paid" gorm:"column:payment_slip_paid;default:false"`
	SlipPaidAt  *time.Time `json:"slip_paid_at,omitempty" gorm:"column:payment_slip_paid_at"`

	Cancelled   bool       `json:"cancelled" gorm:"default:false;index"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Reservation) TableName() string {
	return "reservations"
}

// IsDeferredSlip reports whether the reservation is paid by slip.
func (r *Reservation) IsDeferredSlip() bool {
	return r.PaymentMethod == payments.MethodDeferredSlip
}
