package reservations

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math"
	"math/big"
	"time"

	"flightly/internal/aircraft"
	"flightly/internal/fares"
	"flightly/internal/flights"
	"flightly/internal/notifications"
	"flightly/internal/payments"
	"flightly/internal/users"
	"flightly/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CancellationWindow is the minimum lead time before departure for
// cancelling a confirmed reservation.
const CancellationWindow = 24 * time.Hour

// reservationNumberAttempts bounds the retry loop on a generated
// number colliding with an existing one.
const reservationNumberAttempts = 3

type Service interface {
	SetNotifier(notifier notifications.Notifier)
	SetSeatMirror(mirror *flights.SeatMirror)
	SetFlightService(flightService flights.Service)
	SetUserRepository(userRepo users.Repository)

	Book(ctx context.Context, userID uuid.UUID, req CreateReservationRequest) (*ReservationResponse, error)
	Cancel(ctx context.Context, reservationID, userID uuid.UUID) (*ReservationResponse, error)
	ConfirmSlipPayment(ctx context.Context, reservationID uuid.UUID) (*ReservationResponse, error)
	ListUserReservations(ctx context.Context, userID uuid.UUID) ([]ReservationResponse, error)

	// CancelExpired sweeps deferred-slip reservations that are still
	// unpaid with departure inside the expiry window. Returns the
	// number of reservations cancelled.
	CancelExpired(ctx context.Context, now time.Time, window time.Duration) (int, error)
}

type service struct {
	repo          Repository
	flightRepo    flights.Repository
	gateway       payments.CardGateway
	notifier      notifications.Notifier
	mirror        *flights.SeatMirror
	flightService flights.Service
	userRepo      users.Repository
	log           *logger.Logger
}

func NewService(repo Repository, flightRepo flights.Repository, gateway payments.CardGateway) Service {
	return &service{
		repo:       repo,
		flightRepo: flightRepo,
		gateway:    gateway,
		log:        logger.GetDefault(),
	}
}

func (s *service) SetNotifier(notifier notifications.Notifier) {
	s.notifier = notifier
}

func (s *service) SetSeatMirror(mirror *flights.SeatMirror) {
	s.mirror = mirror
}

func (s *service) SetFlightService(flightService flights.Service) {
	s.flightService = flightService
}

func (s *service) SetUserRepository(userRepo users.Repository) {
	s.userRepo = userRepo
}

func (s *service) Book(ctx context.Context, userID uuid.UUID, req CreateReservationRequest) (*ReservationResponse, error) {
	if err := validateBookingRequest(req); err != nil {
		return nil, err
	}

	flightID, err := uuid.Parse(req.FlightID)
	if err != nil {
		return nil, fmt.Errorf("%w: bad flight id", ErrInvalidRequest)
	}

	flight, err := s.flightRepo.GetByID(ctx, flightID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if !flight.Status.CanBeBooked() || flight.HasDeparted(now) {
		return nil, flights.ErrFlightNotBookable
	}

	if err := validateSeatsWithinCabin(req.Seats, flight.AircraftType); err != nil {
		return nil, err
	}

	// Conflict pre-check against the loaded row. The authoritative
	// check is the conditional UPDATE inside the transaction; this one
	// just rejects obviously lost causes without mutating anything.
	if conflicts := flight.ConflictingSeats(req.Seats); len(conflicts) > 0 {
		s.log.LogSeatConflict(ctx, flight.ID.String(), conflicts)
		return nil, &flights.SeatConflictError{Seats: conflicts}
	}

	layout := fares.LayoutFor(flight.AircraftType)
	total, err := fares.TotalFare(req.Seats, layout, flight.BaseFare)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if req.TotalAmount != nil && *req.TotalAmount > 0 {
		total = *req.TotalAmount
	}

	reservation := &Reservation{
		UserID:        userID,
		FlightID:      flight.ID,
		Seats:         req.Seats,
		Occupants:     toOccupants(req.Occupants),
		PaymentMethod: payments.Method(req.PaymentMethod),
		PaymentStatus: payments.StatusPending,
		TotalAmount:   total,
	}

	// The payment method is settled before any seat is touched, so a
	// policy rejection never strands inventory.
	if err := s.applyPaymentPolicy(ctx, reservation, req, flight, now); err != nil {
		return nil, err
	}

	// Optional fast path: a mirror conflict saves the database
	// round-trip. Mirror errors other than a conflict are ignored.
	if s.mirror != nil {
		var conflict *flights.SeatConflictError
		if err := s.mirror.Reserve(ctx, flight.ID, req.Seats); errors.As(err, &conflict) {
			return nil, conflict
		}
	}

	if err := s.createWithRetry(ctx, reservation); err != nil {
		if s.mirror != nil {
			if _, mErr := s.mirror.Release(context.WithoutCancel(ctx), flight.ID, req.Seats); mErr != nil {
				s.log.WithError(mErr).Warn("failed to roll back seat mirror")
			}
		}
		return nil, err
	}

	s.log.LogReservationCreated(ctx, reservation.ID.String(), flight.ID.String(), userID.String(), len(reservation.Seats))
	s.invalidateFlightCaches(ctx, flight.ID)

	if reservation.PaymentStatus == payments.StatusConfirmed {
		s.notify(ctx, reservation, flight, func(n notifications.Notifier, rcpt notifications.Recipient, info notifications.ReservationInfo) {
			n.ReservationConfirmed(ctx, rcpt, info)
		})
	}

	reservation.Flight = flight
	resp := reservation.ToResponse()
	return &resp, nil
}

func (s *service) Cancel(ctx context.Context, reservationID, userID uuid.UUID) (*ReservationResponse, error) {
	reservation, err := s.repo.GetByIDForUser(ctx, reservationID, userID)
	if err != nil {
		return nil, err
	}

	if reservation.Cancelled {
		return nil, ErrAlreadyCancelled
	}
	if reservation.Flight == nil {
		return nil, fmt.Errorf("reservation %s has no flight loaded", reservation.ID)
	}

	now := time.Now()
	if reservation.PaymentStatus == payments.StatusConfirmed {
		hoursRemaining := reservation.Flight.DepartureTime.Sub(now).Hours()
		if hoursRemaining < CancellationWindow.Hours() {
			return nil, &CancellationWindowClosedError{HoursRemaining: roundToDecimal(hoursRemaining)}
		}
	}

	cancelStatus := payments.CancelStatus(reservation.PaymentMethod)
	if err := s.repo.CancelAndReleaseSeats(ctx, reservation, cancelStatus, now); err != nil {
		return nil, err
	}

	s.finishCancellation(ctx, reservation, cancelStatus, now)
	s.log.LogReservationCancelled(ctx, reservation.ID.String(), reservation.FlightID.String(), userID.String())

	s.notify(ctx, reservation, reservation.Flight, func(n notifications.Notifier, rcpt notifications.Recipient, info notifications.ReservationInfo) {
		n.ReservationCancelled(ctx, rcpt, info)
	})

	resp := reservation.ToResponse()
	return &resp, nil
}

func (s *service) ConfirmSlipPayment(ctx context.Context, reservationID uuid.UUID) (*ReservationResponse, error) {
	reservation, err := s.repo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if !reservation.IsDeferredSlip() {
		return nil, payments.ErrNotDeferredSlip
	}
	if reservation.SlipPaid {
		return nil, payments.ErrAlreadyPaid
	}
	if reservation.Cancelled {
		return nil, ErrAlreadyCancelled
	}

	now := time.Now()
	if err := s.repo.MarkSlipPaid(ctx, reservation.ID, now); err != nil {
		return nil, err
	}

	reservation.SlipPaid = true
	reservation.SlipPaidAt = &now
	reservation.PaymentStatus = payments.StatusConfirmed

	s.log.LogSlipPaymentConfirmed(ctx, reservation.ID.String(), reservation.SlipNumber)

	s.notify(ctx, reservation, reservation.Flight, func(n notifications.Notifier, rcpt notifications.Recipient, info notifications.ReservationInfo) {
		n.SlipPaymentConfirmed(ctx, rcpt, info)
	})

	resp := reservation.ToResponse()
	return &resp, nil
}

func (s *service) ListUserReservations(ctx context.Context, userID uuid.UUID) ([]ReservationResponse, error) {
	results, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}

	responses := make([]ReservationResponse, len(results))
	for i := range results {
		responses[i] = results[i].ToResponse()
	}
	return responses, nil
}

func (s *service) CancelExpired(ctx context.Context, now time.Time, window time.Duration) (int, error) {
	start := time.Now()
	expiring, err := s.repo.FindExpiringSlips(ctx, now, window)
	if err != nil {
		return 0, err
	}

	cancelled, failed := 0, 0
	for i := range expiring {
		reservation := &expiring[i]

		err := s.repo.CancelAndReleaseSeats(ctx, reservation, payments.StatusCancelled, now)
		if errors.Is(err, ErrAlreadyCancelled) {
			// Lost the race to a user-initiated cancel; nothing to do.
			continue
		}
		if err != nil {
			failed++
			s.log.WithError(err).Error("failed to cancel expired reservation",
				"reservation_id", reservation.ID.String())
			continue
		}

		cancelled++
		s.finishCancellation(ctx, reservation, payments.StatusCancelled, now)

		s.notify(ctx, reservation, reservation.Flight, func(n notifications.Notifier, rcpt notifications.Recipient, info notifications.ReservationInfo) {
			n.ReservationExpired(ctx, rcpt, info)
		})
	}

	s.log.LogSweepCompleted(ctx, len(expiring), cancelled, failed, time.Since(start))
	return cancelled, nil
}

// applyPaymentPolicy settles the payment fields on the reservation
// according to the chosen method, without touching storage.
func (s *service) applyPaymentPolicy(ctx context.Context, reservation *Reservation, req CreateReservationRequest, flight *flights.Flight, now time.Time) error {
	switch reservation.PaymentMethod {
	case payments.MethodCard:
		if req.Card == nil {
			return payments.ErrInvalidPaymentData
		}
		record, err := payments.ValidateCard(req.Card.Number, req.Card.Expiry)
		if err != nil {
			return err
		}
		if _, err := s.gateway.Authorize(ctx, record, reservation.TotalAmount); err != nil {
			return err
		}
		// Authorization succeeded; confirmation follows immediately.
		reservation.PaymentStatus = payments.StatusConfirmed
		reservation.CardBrand = record.Brand
		reservation.CardLast4 = record.Last4
		reservation.CardExpiry = req.Card.Expiry

	case payments.MethodDeferredSlip:
		businessDays := payments.BusinessDaysBetween(now, flight.DepartureTime)
		if !payments.SlipEligible(businessDays) {
			return &payments.IneligiblePaymentMethodError{BusinessDays: businessDays}
		}
		dueDate := payments.SlipDueDate(flight.DepartureTime)
		reservation.SlipNumber = payments.NewSlipNumber()
		reservation.SlipDueDate = &dueDate
		reservation.PaymentStatus = payments.StatusPending

	default:
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidRequest, reservation.PaymentMethod)
	}
	return nil
}

// createWithRetry inserts the reservation, regenerating the number on a
// unique-constraint collision.
func (s *service) createWithRetry(ctx context.Context, reservation *Reservation) error {
	for attempt := 0; attempt < reservationNumberAttempts; attempt++ {
		reservation.ReservationNumber = newReservationNumber()

		err := s.repo.CreateWithSeatLock(ctx, reservation)
		if err == nil {
			return nil
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			continue
		}
		return err
	}
	return fmt.Errorf("failed to allocate a unique reservation number after %d attempts", reservationNumberAttempts)
}

func (s *service) finishCancellation(ctx context.Context, reservation *Reservation, cancelStatus payments.Status, now time.Time) {
	cancelledAt := now
	reservation.Cancelled = true
	reservation.CancelledAt = &cancelledAt
	reservation.PaymentStatus = cancelStatus

	if s.mirror != nil {
		if _, err := s.mirror.Release(ctx, reservation.FlightID, reservation.Seats); err != nil {
			s.log.WithError(err).Warn("failed to release seats on mirror")
		}
	}
	s.invalidateFlightCaches(ctx, reservation.FlightID)
}

func (s *service) invalidateFlightCaches(ctx context.Context, flightID uuid.UUID) {
	if s.flightService != nil {
		s.flightService.InvalidateSeatCaches(ctx, flightID)
	}
}

// notify resolves the recipient and fires the notification. Delivery is
// best effort; a missing user or notifier only logs.
func (s *service) notify(ctx context.Context, reservation *Reservation, flight *flights.Flight, send func(notifications.Notifier, notifications.Recipient, notifications.ReservationInfo)) {
	if s.notifier == nil {
		return
	}

	recipient := notifications.Recipient{UserID: reservation.UserID}
	if reservation.User != nil {
		recipient.Email = reservation.User.Email
		recipient.Name = reservation.User.FullName()
	} else if s.userRepo != nil {
		if user, err := s.userRepo.GetByID(ctx, reservation.UserID); err == nil {
			recipient.Email = user.Email
			recipient.Name = user.FullName()
		} else {
			s.log.WithError(err).Warn("failed to resolve notification recipient",
				"user_id", reservation.UserID.String())
		}
	}

	info := notifications.ReservationInfo{
		ReservationID:     reservation.ID,
		ReservationNumber: reservation.ReservationNumber,
		FlightID:          reservation.FlightID,
		Seats:             reservation.Seats,
		TotalAmount:       reservation.TotalAmount,
	}
	if flight != nil {
		info.FlightNumber = flight.Number
	}

	send(s.notifier, recipient, info)
}

func validateBookingRequest(req CreateReservationRequest) error {
	if len(req.Seats) == 0 {
		return fmt.Errorf("%w: at least one seat is required", ErrInvalidRequest)
	}
	if len(req.Occupants) != len(req.Seats) {
		return fmt.Errorf("%w: occupant count must match seat count", ErrInvalidRequest)
	}
	seen := make(map[string]bool, len(req.Seats))
	for _, code := range req.Seats {
		if _, _, err := fares.ParseSeatCode(code); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
		}
		if seen[code] {
			return fmt.Errorf("%w: duplicate seat %s", ErrInvalidRequest, code)
		}
		seen[code] = true
	}
	for _, occupant := range req.Occupants {
		if occupant.FullName == "" {
			return fmt.Errorf("%w: occupant name is required", ErrInvalidRequest)
		}
	}
	if !payments.ValidMethod(payments.Method(req.PaymentMethod)) {
		return fmt.Errorf("%w: unsupported payment method %q", ErrInvalidRequest, req.PaymentMethod)
	}
	return nil
}

// validateSeatsWithinCabin rejects codes addressing rows or columns the
// aircraft does not have.
func validateSeatsWithinCabin(seats []string, t *aircraft.AircraftType) error {
	rows, seatsPerRow := fares.DefaultRows, fares.DefaultSeatsPerRow
	if t != nil {
		if t.Rows > 0 {
			rows = t.Rows
		}
		if t.SeatsPerRow > 0 {
			seatsPerRow = t.SeatsPerRow
		}
	}
	if seatsPerRow > 26 {
		seatsPerRow = 26
	}

	for _, code := range seats {
		row, letter, err := fares.ParseSeatCode(code)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
		}
		if row > rows || int(letter-'A') >= seatsPerRow {
			return fmt.Errorf("%w: seat %s does not exist on this aircraft", ErrInvalidRequest, code)
		}
	}
	return nil
}

func toOccupants(reqs []OccupantRequest) []Occupant {
	occupants := make([]Occupant, len(reqs))
	for i, r := range reqs {
		occupants[i] = Occupant{FullName: r.FullName}
	}
	return occupants
}

const reservationNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// newReservationNumber generates a reference of the form "RS" followed
// by eight random alphanumeric characters.
func newReservationNumber() string {
	buf := make([]byte, 8)
	max := big.NewInt(int64(len(reservationNumberAlphabet)))
	for i := range buf {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic(err)
		}
		buf[i] = reservationNumberAlphabet[idx.Int64()]
	}
	return "RS" + string(buf)
}

func roundToDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
