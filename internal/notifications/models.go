package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationTypeReservationConfirmed NotificationType = "reservation_confirmed"
	NotificationTypeReservationCancelled NotificationType = "reservation_cancelled"
	NotificationTypeReservationExpired   NotificationType = "reservation_expired"
	NotificationTypeSlipPaymentConfirmed NotificationType = "slip_payment_confirmed"
)

type NotificationStatus string

const (
	NotificationStatusPending NotificationStatus = "pending"
	NotificationStatusQueued  NotificationStatus = "queued"
	NotificationStatusFailed  NotificationStatus = "failed"
)

// Notification is the message published for downstream delivery
// (email, push). The reservation service only produces these; delivery
// is a separate consumer's concern.
type Notification struct {
	ID     uuid.UUID          `json:"id"`
	Type   NotificationType   `json:"type"`
	Status NotificationStatus `json:"status"`

	RecipientID    uuid.UUID `json:"recipient_id"`
	RecipientEmail string    `json:"recipient_email"`
	RecipientName  string    `json:"recipient_name"`

	ReservationID     *uuid.UUID `json:"reservation_id,omitempty"`
	ReservationNumber string     `json:"reservation_number,omitempty"`
	FlightID          *uuid.UUID `json:"flight_id,omitempty"`
	FlightNumber      string     `json:"flight_number,omitempty"`

	Subject string                 `json:"subject"`
	Data    map[string]interface{} `json:"data,omitempty"`

	LastError *string   `json:"last_error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Recipient identifies who a notification is addressed to.
type Recipient struct {
	UserID uuid.UUID
	Email  string
	Name   string
}

// ReservationInfo carries the reservation context embedded in every
// reservation-lifecycle notification.
type ReservationInfo struct {
	ReservationID     uuid.UUID
	ReservationNumber string
	FlightID          uuid.UUID
	FlightNumber      string
	Seats             []string
	TotalAmount       float64
}

func NewNotification(t NotificationType, recipient Recipient, info ReservationInfo) *Notification {
	now := time.Now()
	reservationID := info.ReservationID
	flightID := info.FlightID

	return &Notification{
		ID:                uuid.New(),
		Type:              t,
		Status:            NotificationStatusPending,
		RecipientID:       recipient.UserID,
		RecipientEmail:    recipient.Email,
		RecipientName:     recipient.Name,
		ReservationID:     &reservationID,
		ReservationNumber: info.ReservationNumber,
		FlightID:          &flightID,
		FlightNumber:      info.FlightNumber,
		Subject:           subjectFor(t, info),
		Data: map[string]interface{}{
			"seats":        info.Seats,
			"total_amount": info.TotalAmount,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func subjectFor(t NotificationType, info ReservationInfo) string {
	switch t {
	case NotificationTypeReservationConfirmed:
		return "Reservation " + info.ReservationNumber + " confirmed"
	case NotificationTypeReservationCancelled:
		return "Reservation " + info.ReservationNumber + " cancelled"
	case NotificationTypeReservationExpired:
		return "Reservation " + info.ReservationNumber + " expired: payment slip not settled"
	case NotificationTypeSlipPaymentConfirmed:
		return "Payment received for reservation " + info.ReservationNumber
	default:
		return "Reservation update"
	}
}

// ToJSON serializes the notification for the wire.
func (n *Notification) ToJSON() ([]byte, error) {
	return json.Marshal(n)
}

// GetPartitionKey routes all of one user's notifications to the same
// partition so a consumer sees them in order.
func (n *Notification) GetPartitionKey() string {
	return n.RecipientID.String()
}
