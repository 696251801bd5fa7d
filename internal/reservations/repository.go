package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"flightly/internal/flights"
	"flightly/internal/payments"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	// CreateWithSeatLock books atomically: the seat compare-and-set and
	// the reservation insert commit together or not at all.
	CreateWithSeatLock(ctx context.Context, reservation *Reservation) error

	// CancelAndReleaseSeats soft-cancels and returns the seats to the
	// flight in one transaction. Safe to race with itself.
	CancelAndReleaseSeats(ctx context.Context, reservation *Reservation, cancelStatus payments.Status, now time.Time) error

	GetByID(ctx context.Context, id uuid.UUID) (*Reservation, error)
	GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*Reservation, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Reservation, error)

	MarkSlipPaid(ctx context.Context, id uuid.UUID, paidAt time.Time) error

	// FindExpiringSlips returns pending, unpaid deferred-slip
	// reservations whose flight departs within the window but has not
	// departed yet.
	FindExpiringSlips(ctx context.Context, now time.Time, window time.Duration) ([]Reservation, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateWithSeatLock(ctx context.Context, reservation *Reservation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := flights.LockSeatsTx(tx, reservation.FlightID, reservation.Seats); err != nil {
			return err
		}
		if err := tx.Create(reservation).Error; err != nil {
			return fmt.Errorf("failed to create reservation: %w", err)
		}
		return nil
	})
}

func (r *repository) CancelAndReleaseSeats(ctx context.Context, reservation *Reservation, cancelStatus payments.Status, now time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The cancelled = false guard makes concurrent cancels of the
		// same reservation settle to exactly one winner.
		res := tx.Model(&Reservation{}).
			Where("id = ? AND cancelled = ?", reservation.ID, false).
			Updates(map[string]interface{}{
				"cancelled":      true,
				"cancelled_at":   now,
				"payment_status": cancelStatus,
				"updated_at":     now,
			})
		if res.Error != nil {
			return fmt.Errorf("failed to cancel reservation: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyCancelled
		}

		if err := flights.ReleaseSeatsTx(tx, reservation.FlightID, reservation.Seats); err != nil {
			return err
		}
		return nil
	})
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Reservation, error) {
	var reservation Reservation
	err := r.db.WithContext(ctx).
		Preload("Flight").
		Preload("Flight.AircraftType").
		Preload("User").
		Where("id = ?", id).
		First(&reservation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return &reservation, nil
}

func (r *repository) GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*Reservation, error) {
	var reservation Reservation
	err := r.db.WithContext(ctx).
		Preload("Flight").
		Preload("User").
		Where("id = ? AND user_id = ?", id, userID).
		First(&reservation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return &reservation, nil
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]Reservation, error) {
	var results []Reservation
	err := r.db.WithContext(ctx).
		Preload("Flight").
		Preload("Flight.AircraftType").
		Where("user_id = ? AND cancelled = ?", userID, false).
		Order("created_at DESC").
		Find(&results).Error
	return results, err
}

func (r *repository) MarkSlipPaid(ctx context.Context, id uuid.UUID, paidAt time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&Reservation{}).
		Where("id = ? AND payment_slip_paid = ?", id, false).
		Updates(map[string]interface{}{
			"payment_slip_paid":    true,
			"payment_slip_paid_at": paidAt,
			"payment_status":       payments.StatusConfirmed,
			"updated_at":           paidAt,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to mark slip paid: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return payments.ErrAlreadyPaid
	}
	return nil
}

func (r *repository) FindExpiringSlips(ctx context.Context, now time.Time, window time.Duration) ([]Reservation, error) {
	var results []Reservation
	err := r.db.WithContext(ctx).
		Preload("Flight").
		Preload("User").
		Joins("JOIN flights ON flights.id = reservations.flight_id").
		Where("reservations.cancelled = ?", false).
		Where("reservations.payment_method = ?", payments.MethodDeferredSlip).
		Where("reservations.payment_status = ?", payments.StatusPending).
		Where("reservations.payment_slip_paid = ?", false).
		Where("flights.departure_time > ?", now).
		Where("flights.departure_time <= ?", now.Add(window)).
		Find(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to scan expiring slips: %w", err)
	}
	return results, nil
}
