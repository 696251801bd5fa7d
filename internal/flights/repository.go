package flights

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, flight *Flight) error
	GetByID(ctx context.Context, id uuid.UUID) (*Flight, error)
	GetAll(ctx context.Context, query FlightListQuery) ([]Flight, int64, error)
	LockSeats(ctx context.Context, flightID uuid.UUID, seats []string) error
	ReleaseSeats(ctx context.Context, flightID uuid.UUID, seats []string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, flight *Flight) error {
	if flight.OccupiedSeats == nil {
		flight.OccupiedSeats = []string{}
	}
	return r.db.WithContext(ctx).Create(flight).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Flight, error) {
	var flight Flight
	err := r.db.WithContext(ctx).
		Preload("AircraftType").
		Where("id = ?", id).
		First(&flight).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFlightNotFound
		}
		return nil, err
	}
	return &flight, nil
}

func (r *repository) GetAll(ctx context.Context, query FlightListQuery) ([]Flight, int64, error) {
	var results []Flight
	var totalCount int64

	db := r.db.WithContext(ctx).Model(&Flight{})

	if query.Origin != "" {
		db = db.Where("LOWER(origin) = ?", strings.ToLower(query.Origin))
	}
	if query.Destination != "" {
		db = db.Where("LOWER(destination) = ?", strings.ToLower(query.Destination))
	}
	if query.Status != "" {
		db = db.Where("status = ?", query.Status)
	}
	if query.Date != "" {
		if day, err := time.Parse("2006-01-02", query.Date); err == nil {
			db = db.Where("departure_time >= ? AND departure_time < ?", day, day.Add(24*time.Hour))
		}
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	if query.Page == 0 {
		query.Page = 1
	}
	if query.Limit == 0 {
		query.Limit = 20
	}
	offset := (query.Page - 1) * query.Limit

	err := db.Preload("AircraftType").
		Order("departure_time ASC").
		Offset(offset).
		Limit(query.Limit).
		Find(&results).Error

	return results, totalCount, err
}

// LockSeats marks the given seat codes occupied if, and only if, none
// of them is occupied already.
func (r *repository) LockSeats(ctx context.Context, flightID uuid.UUID, seats []string) error {
	return LockSeatsTx(r.db.WithContext(ctx), flightID, seats)
}

// ReleaseSeats removes the given seat codes from the occupied set.
func (r *repository) ReleaseSeats(ctx context.Context, flightID uuid.UUID, seats []string) error {
	return ReleaseSeatsTx(r.db.WithContext(ctx), flightID, seats)
}

// LockSeatsTx performs the compare-and-set seat lock on the given
// transaction handle. The whole check-and-append happens in a single
// conditional UPDATE, so two concurrent bookings for an overlapping seat
// set can never both succeed: the row version one of them reads after
// the other's commit already contains the contested seats.
//
// jsonb_exists_any is the function form of the jsonb ?| operator; the
// operator spelling cannot appear here because ? is the bind
// placeholder.
func LockSeatsTx(tx *gorm.DB, flightID uuid.UUID, seats []string) error {
	if len(seats) == 0 {
		return nil
	}

	seatsJSON, err := json.Marshal(seats)
	if err != nil {
		return fmt.Errorf("failed to encode seat codes: %w", err)
	}

	res := tx.Exec(`
		UPDATE flights
		SET occupied_seats = occupied_seats || ?::jsonb,
		    updated_at = NOW()
		WHERE id = ?
		  AND NOT jsonb_exists_any(occupied_seats, ARRAY(SELECT jsonb_array_elements_text(?::jsonb)))`,
		string(seatsJSON), flightID, string(seatsJSON))
	if res.Error != nil {
		return fmt.Errorf("failed to lock seats: %w", res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}

	// The update matched nothing: either the flight does not exist or
	// at least one seat is taken. Re-read to tell the two apart and to
	// name the contested seats.
	var flight Flight
	if err := tx.Where("id = ?", flightID).First(&flight).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFlightNotFound
		}
		return fmt.Errorf("failed to inspect seat conflict: %w", err)
	}

	conflicts := flight.ConflictingSeats(seats)
	if len(conflicts) == 0 {
		// Lost a race with a concurrent release; the caller may retry.
		conflicts = seats
	}
	return &SeatConflictError{Seats: conflicts}
}

// ReleaseSeatsTx removes the given seat codes from the occupied set on
// the given transaction handle. Releasing a seat that is not occupied
// is a no-op, which makes cancellation retries safe.
func ReleaseSeatsTx(tx *gorm.DB, flightID uuid.UUID, seats []string) error {
	if len(seats) == 0 {
		return nil
	}

	seatsJSON, err := json.Marshal(seats)
	if err != nil {
		return fmt.Errorf("failed to encode seat codes: %w", err)
	}

	res := tx.Exec(`
		UPDATE flights
		SET occupied_seats = COALESCE((
		      SELECT jsonb_agg(seat)
		      FROM jsonb_array_elements_text(occupied_seats) AS seat
		      WHERE NOT seat = ANY(ARRAY(SELECT jsonb_array_elements_text(?::jsonb)))
		    ), '[]'::jsonb),
		    updated_at = NOW()
		WHERE id = ?`,
		string(seatsJSON), flightID)
	if res.Error != nil {
		return fmt.Errorf("failed to release seats: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrFlightNotFound
	}
	return nil
}
