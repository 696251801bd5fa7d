package reservations

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"flightly/internal/aircraft"
	"flightly/internal/flights"
	"flightly/internal/notifications"
	"flightly/internal/payments"
)

// fakeRepository keeps reservations and seat occupancy in memory. The
// seat compare-and-set in CreateWithSeatLock runs under one mutex, the
// same all-or-nothing shape the transactional implementation has.
type fakeRepository struct {
	mu           sync.Mutex
	flight       *flights.Flight
	occupied     map[string]bool
	reservations map[uuid.UUID]*Reservation
	numbers      map[string]bool

	// duplicateInserts forces the next N inserts to fail as if the
	// generated reservation number already existed.
	duplicateInserts int
}

func newFakeRepository(flight *flights.Flight) *fakeRepository {
	return &fakeRepository{
		flight:       flight,
		occupied:     make(map[string]bool),
		reservations: make(map[uuid.UUID]*Reservation),
		numbers:      make(map[string]bool),
	}
}

func (f *fakeRepository) CreateWithSeatLock(_ context.Context, reservation *Reservation) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.duplicateInserts > 0 {
		f.duplicateInserts--
		return gorm.ErrDuplicatedKey
	}
	if f.numbers[reservation.ReservationNumber] {
		return gorm.ErrDuplicatedKey
	}

	var conflicts []string
	for _, seat := range reservation.Seats {
		if f.occupied[seat] {
			conflicts = append(conflicts, seat)
		}
	}
	if len(conflicts) > 0 {
		return &flights.SeatConflictError{Seats: conflicts}
	}

	for _, seat := range reservation.Seats {
		f.occupied[seat] = true
	}
	reservation.ID = uuid.New()
	f.numbers[reservation.ReservationNumber] = true

	stored := *reservation
	f.reservations[reservation.ID] = &stored
	return nil
}

func (f *fakeRepository) CancelAndReleaseSeats(_ context.Context, reservation *Reservation, cancelStatus payments.Status, now time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.reservations[reservation.ID]
	if !ok || stored.Cancelled {
		return ErrAlreadyCancelled
	}

	cancelledAt := now
	stored.Cancelled = true
	stored.CancelledAt = &cancelledAt
	stored.PaymentStatus = cancelStatus
	for _, seat := range stored.Seats {
		delete(f.occupied, seat)
	}
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id uuid.UUID) (*Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.reservations[id]
	if !ok {
		return nil, ErrReservationNotFound
	}
	out := *stored
	out.Flight = f.flight
	return &out, nil
}

func (f *fakeRepository) GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*Reservation, error) {
	reservation, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reservation.UserID != userID {
		return nil, ErrReservationNotFound
	}
	return reservation, nil
}

func (f *fakeRepository) ListByUser(_ context.Context, userID uuid.UUID) ([]Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []Reservation
	for _, stored := range f.reservations {
		if stored.UserID == userID && !stored.Cancelled {
			item := *stored
			item.Flight = f.flight
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeRepository) MarkSlipPaid(_ context.Context, id uuid.UUID, paidAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.reservations[id]
	if !ok {
		return ErrReservationNotFound
	}
	if stored.SlipPaid {
		return payments.ErrAlreadyPaid
	}
	at := paidAt
	stored.SlipPaid = true
	stored.SlipPaidAt = &at
	stored.PaymentStatus = payments.StatusConfirmed
	return nil
}

func (f *fakeRepository) FindExpiringSlips(_ context.Context, now time.Time, window time.Duration) ([]Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []Reservation
	for _, stored := range f.reservations {
		if stored.Cancelled || stored.PaymentMethod != payments.MethodDeferredSlip {
			continue
		}
		if stored.PaymentStatus != payments.StatusPending || stored.SlipPaid {
			continue
		}
		departure := f.flight.DepartureTime
		if departure.After(now) && !departure.After(now.Add(window)) {
			item := *stored
			item.Flight = f.flight
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeRepository) seatOccupied(seat string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.occupied[seat]
}

// stubFlightRepo serves flight lookups from the fake repository's state
// so the service's occupancy pre-check sees current seat assignments.
type stubFlightRepo struct {
	repo *fakeRepository
	err  error
}

func (s *stubFlightRepo) GetByID(_ context.Context, id uuid.UUID) (*flights.Flight, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.repo.mu.Lock()
	defer s.repo.mu.Unlock()

	if s.repo.flight.ID != id {
		return nil, flights.ErrFlightNotFound
	}
	out := *s.repo.flight
	out.OccupiedSeats = make([]string, 0, len(s.repo.occupied))
	for seat := range s.repo.occupied {
		out.OccupiedSeats = append(out.OccupiedSeats, seat)
	}
	return &out, nil
}

func (s *stubFlightRepo) Create(context.Context, *flights.Flight) error { return nil }
func (s *stubFlightRepo) GetAll(context.Context, flights.FlightListQuery) ([]flights.Flight, int64, error) {
	return nil, 0, nil
}
func (s *stubFlightRepo) LockSeats(context.Context, uuid.UUID, []string) error    { return nil }
func (s *stubFlightRepo) ReleaseSeats(context.Context, uuid.UUID, []string) error { return nil }

// recordingNotifier captures which lifecycle events fired.
type recordingNotifier struct {
	mu     sync.Mutex
	events []string
}

func (n *recordingNotifier) record(event string, info notifications.ReservationInfo) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event+":"+info.ReservationNumber)
}

func (n *recordingNotifier) ReservationConfirmed(_ context.Context, _ notifications.Recipient, info notifications.ReservationInfo) {
	n.record("confirmed", info)
}

func (n *recordingNotifier) ReservationCancelled(_ context.Context, _ notifications.Recipient, info notifications.ReservationInfo) {
	n.record("cancelled", info)
}

func (n *recordingNotifier) ReservationExpired(_ context.Context, _ notifications.Recipient, info notifications.ReservationInfo) {
	n.record("expired", info)
}

func (n *recordingNotifier) SlipPaymentConfirmed(_ context.Context, _ notifications.Recipient, info notifications.ReservationInfo) {
	n.record("slip_paid", info)
}

func (n *recordingNotifier) eventKinds() []string {
	n.mu.Lock()
	defer n.mu.Unlock()

	kinds := make([]string, len(n.events))
	for i, e := range n.events {
		kinds[i] = strings.SplitN(e, ":", 2)[0]
	}
	return kinds
}

type fixture struct {
	service  Service
	repo     *fakeRepository
	flight   *flights.Flight
	notifier *recordingNotifier
	userID   uuid.UUID
}

func newFixture(t *testing.T, departure time.Time) *fixture {
	t.Helper()

	flight := &flights.Flight{
		ID:            uuid.New(),
		Number:        "FL204",
		Origin:        "GRU",
		Destination:   "REC",
		DepartureTime: departure,
		ArrivalTime:   departure.Add(3 * time.Hour),
		BaseFare:      500,
		Status:        flights.StatusScheduled,
		AircraftType: &aircraft.AircraftType{
			ID:          uuid.New(),
			Name:        "Regional Jet",
			TotalSeats:  60,
			Rows:        10,
			SeatsPerRow: 6,
		},
	}

	repo := newFakeRepository(flight)
	notifier := &recordingNotifier{}

	svc := NewService(repo, &stubFlightRepo{repo: repo}, payments.NewStubGateway())
	svc.SetNotifier(notifier)

	return &fixture{
		service:  svc,
		repo:     repo,
		flight:   flight,
		notifier: notifier,
		userID:   uuid.New(),
	}
}

func (fx *fixture) bookRequest(method string, seats ...string) CreateReservationRequest {
	occupants := make([]OccupantRequest, len(seats))
	for i := range seats {
		occupants[i] = OccupantRequest{FullName: fmt.Sprintf("Passenger %d", i+1)}
	}
	req := CreateReservationRequest{
		FlightID:      fx.flight.ID.String(),
		Seats:         seats,
		Occupants:     occupants,
		PaymentMethod: method,
	}
	if method == string(payments.MethodCard) {
		req.Card = &CardRequest{Number: "4111 1111 1111 1111", Expiry: "12/28"}
	}
	return req
}

func TestBookWithCard(t *testing.T) {
	fx := newFixture(t, time.Now().Add(14*24*time.Hour))

	resp, err := fx.service.Book(context.Background(), fx.userID, fx.bookRequest("card", "1A", "4B", "7D"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(resp.ReservationNumber, "RS"))
	assert.Len(t, resp.ReservationNumber, 10)
	assert.Equal(t, payments.StatusConfirmed, resp.PaymentStatus)
	// 1A first class 3.0x, 4B executive 1.8x, 7D economy 1.0x on a 500 base.
	assert.Equal(t, 2900.0, resp.TotalAmount)
	require.NotNil(t, resp.Card)
	assert.Equal(t, "visa", resp.Card.Brand)
	assert.Equal(t, "1111", resp.Card.Last4)
	assert.Nil(t, resp.Slip)

	assert.True(t, fx.repo.seatOccupied("1A"))
	assert.True(t, fx.repo.seatOccupied("4B"))
	assert.True(t, fx.repo.seatOccupied("7D"))
	assert.Equal(t, []string{"confirmed"}, fx.notifier.eventKinds())
}

func TestBookWithDeferredSlip(t *testing.T) {
	departure := time.Now().Add(14 * 24 * time.Hour)
	fx := newFixture(t, departure)

	resp, err := fx.service.Book(context.Background(), fx.userID, fx.bookRequest("deferred_slip", "7C"))
	require.NoError(t, err)

	assert.Equal(t, payments.StatusPending, resp.PaymentStatus)
	require.NotNil(t, resp.Slip)
	assert.True(t, strings.HasPrefix(resp.Slip.Number, "FC"))
	require.NotNil(t, resp.Slip.DueDate)
	assert.True(t, resp.Slip.DueDate.Before(departure))
	assert.False(t, resp.Slip.Paid)
	assert.Nil(t, resp.Card)

	// A pending slip is not a confirmed booking yet, so nothing fires.
	assert.Empty(t, fx.notifier.eventKinds())
}

func TestBookSlipTooCloseToDeparture(t *testing.T) {
	fx := newFixture(t, time.Now().Add(48*time.Hour))

	_, err := fx.service.Book(context.Background(), fx.userID, fx.bookRequest("deferred_slip", "7C"))

	var ineligible *payments.IneligiblePaymentMethodError
	require.ErrorAs(t, err, &ineligible)
	assert.Less(t, ineligible.BusinessDays, payments.MinBusinessDaysForSlip)
	assert.False(t, fx.repo.seatOccupied("7C"))
}

func TestBookSeatConflict(t *testing.T) {
	fx := newFixture(t, time.Now().Add(14*24*time.Hour))

	_, err := fx.service.Book(context.Background(), fx.userID, fx.bookRequest("card", "5C"))
	require.NoError(t, err)

	_, err = fx.service.Book(context.Background(), uuid.New(), fx.bookRequest("card", "5C", "5D"))

	var conflict *flights.SeatConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, []string{"5C"}, conflict.Seats)
	// The losing request must not strand its other seat.
	assert.False(t, fx.repo.seatOccupied("5D"))
}

func TestBookValidation(t *testing.T) {
	fx := newFixture(t, time.Now().Add(14*24*time.Hour))

	noOccupant := fx.bookRequest("card", "7A", "7B")
	noOccupant.Occupants = noOccupant.Occupants[:1]

	badSeat := fx.bookRequest("card", "C7")
	duplicateSeat := fx.bookRequest("card", "7A", "7A")
	badMethod := fx.bookRequest("card", "7A")
	badMethod.PaymentMethod = "cash"

	cases := []struct {
		name string
		req  CreateReservationRequest
	}{
		{"no seats", fx.bookRequest("card")},
		{"occupant count mismatch", noOccupant},
		{"malformed seat code", badSeat},
		{"duplicate seat", duplicateSeat},
		{"unsupported payment method", badMethod},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fx.service.Book(context.Background(), fx.userID, tc.req)
			assert.ErrorIs(t, err, ErrInvalidRequest)
		})
	}
}

func TestBookSeatOutsideCabin(t *testing.T) {
	fx := newFixture(t, time.Now().Add(14*24*time.Hour))

	cases := []string{"11A", "7G"}
	for _, seat := range cases {
		t.Run(seat, func(t *testing.T) {
			_, err := fx.service.Book(context.Background(), fx.userID, fx.bookRequest("card", seat))
			assert.ErrorIs(t, err, ErrInvalidRequest)
			assert.False(t, fx.repo.seatOccupied(seat))
		})
	}
}

func TestBookCardWithoutCardData(t *testing.T) {
	fx := newFixture(t, time.Now().Add(14*24*time.Hour))

	req := fx.bookRequest("card", "7A")
	req.Card = nil

	_, err := fx.service.Book(context.Background(), fx.userID, req)
	assert.ErrorIs(t, err, payments.ErrInvalidPaymentData)
	assert.False(t, fx.repo.seatOccupied("7A"))
}

func TestBookFlightNotBookable(t *testing.T) {
	fx := newFixture(t, time.Now().Add(14*24*time.Hour))
	fx.flight.Status = flights.StatusCancelled

	_, err := fx.service.Book(context.Background(), fx.userID, fx.bookRequest("card", "7A"))
	assert.ErrorIs(t, err, flights.ErrFlightNotBookable)
}

func TestBookDepartedFlight(t *testing.T) {
	fx := newFixture(t, time.Now().Add(-1*time.Hour))

	_, err := fx.service.Book(context.Background(), fx.userID, fx.bookRequest("card", "7A"))
	assert.ErrorIs(t, err, flights.ErrFlightNotBookable)
}

func TestBookFlightNotFound(t *testing.T) {
	fx := newFixture(t, time.Now().Add(14*24*time.Hour))

	req := fx.bookRequest("card", "7A")
	req.FlightID = uuid.NewString()

	_, err := fx.service.Book(context.Background(), fx.userID, req)
	assert.ErrorIs(t, err, flights.ErrFlightNotFound)
}

func TestBookRetriesOnNumberCollision(t *testing.T) {
	fx := newFixture(t, time.Now().Add(14*24*time.Hour))
	fx.repo.duplicateInserts = 2

	resp, err := fx.service.Book(context.Background(), fx.userID, fx.bookRequest("card", "7A"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.ReservationNumber, "RS"))
}

func TestBookGivesUpAfterRepeatedCollisions(t *testing.T) {
	fx := newFixture(t, time.Now().Add(14*24*time.Hour))
	fx.repo.duplicateInserts = reservationNumberAttempts

	_, err := fx.service.Book(context.Background(), fx.userID, fx.bookRequest("card", "7A"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unique reservation number")
}

func TestCancelConfirmedOutsideWindow(t *testing.T) {
	fx := newFixture(t, time.Now().Add(25*time.Hour))

	booked, err := fx.service.Book(context.Background(), fx.userID, fx.bookRequest("card", "7A"))
	require.NoError(t, err)

	resp, err := fx.service.Cancel(context.Background(), uuid.MustParse(booked.ID), fx.userID)
	require.NoError(t, err)

	assert.True(t, resp.Cancelled)
	assert.NotNil(t, resp.CancelledAt)
	// Card money already moved, so cancellation refunds it.
	assert.Equal(t, payments.StatusRefunded, resp.PaymentStatus)
	assert.False(t, fx.repo.seatOccupied("7A"))
	assert.Equal(t, []string{"confirmed", "cancelled"}, fx.notifier.eventKinds())
}

func TestCancelConfirmedInsideWindow(t *testing.T) {
	fx := newFixture(t, time.Now().Add(23*time.Hour))

	booked, err := fx.service.Book(context.Background(), fx.userID, fx.bookRequest("card", "7A"))
	require.NoError(t, err)

	_, err = fx.service.Cancel(context.Background(), uuid.MustParse(booked.ID), fx.userID)

	var windowClosed *CancellationWindowClosedError
	require.ErrorAs(t, err, &windowClosed)
	assert.InDelta(t, 23.0, windowClosed.HoursRemaining, 0.2)
	assert.True(t, fx.repo.seatOccupied("7A"))
}

func TestCancelPendingSlipAnytime(t *testing.T) {
	// Book while the slip is still eligible, then move departure close.
	fx := newFixture(t, time.Now().Add(14*24*time.Hour))

	booked, err := fx.service.Book(context.Background(), fx.userID, fx.bookRequest("deferred_slip", "7A"))
	require.NoError(t, err)

	fx.flight.DepartureTime = time.Now().Add(2 * time.Hour)

	resp, err := fx.service.Cancel(context.Background(), uuid.MustParse(booked.ID), fx.userID)
	require.NoError(t, err)

	// Nothing was charged, so there is nothing to refund.
	assert.Equal(t, payments.StatusCancelled, resp.PaymentStatus)
	assert.False(t, fx.repo.seatOccupied("7A"))
}

func TestCancelOtherUsersReservation(t *testing.T) {
	fx := newFixture(t, time.Now().Add(14*24*time.Hour))

	booked, err := fx.service.Book(context.Background(), fx.userID, fx.bookRequest("card", "7A"))
	require.NoError(t, err)

	_, err = fx.service.Cancel(context.Background(), uuid.MustParse(booked.ID), uuid.New())
	assert.ErrorIs(t, err, ErrReservationNotFound)
	assert.True(t, fx.repo.seatOccupied("7A"))
}

func TestCancelTwice(t *testing.T) {
	fx := newFixture(t, time.Now().Add(14*24*time.Hour))

	booked, err := fx.service.Book(context.Background(), fx.userID, fx.bookRequest("card", "7A"))
	require.NoError(t, err)

	_, err = fx.service.Cancel(context.Background(), uuid.MustParse(booked.ID), fx.userID)
	require.NoError(t, err)

	_, err = fx.service.Cancel(context.Background(), uuid.MustParse(booked.ID), fx.userID)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestConfirmSlipPayment(t *testing.T) {
	fx := newFixture(t, time.Now().Add(14*24*time.Hour))

	booked, err := fx.service.Book(context.Background(), fx.userID, fx.bookRequest("deferred_slip", "7A"))
	require.NoError(t, err)

	resp, err := fx.service.ConfirmSlipPayment(context.Background(), uuid.MustParse(booked.ID))
	require.NoError(t, err)

	assert.Equal(t, payments.StatusConfirmed, resp.PaymentStatus)
	require.NotNil(t, resp.Slip)
	assert.True(t, resp.Slip.Paid)
	assert.NotNil(t, resp.Slip.PaidAt)
	assert.Equal(t, []string{"slip_paid"}, fx.notifier.eventKinds())

	_, err = fx.service.ConfirmSlipPayment(context.Background(), uuid.MustParse(booked.ID))
	assert.ErrorIs(t, err, payments.ErrAlreadyPaid)
}

func TestConfirmSlipPaymentOnCardReservation(t *testing.T) {
	fx := newFixture(t, time.Now().Add(14*24*time.Hour))

	booked, err := fx.service.Book(context.Background(), fx.userID, fx.bookRequest("card", "7A"))
	require.NoError(t, err)

	_, err = fx.service.ConfirmSlipPayment(context.Background(), uuid.MustParse(booked.ID))
	assert.ErrorIs(t, err, payments.ErrNotDeferredSlip)
}

func TestConfirmSlipPaymentOnCancelledReservation(t *testing.T) {
	fx := newFixture(t, time.Now().Add(14*24*time.Hour))

	booked, err := fx.service.Book(context.Background(), fx.userID, fx.bookRequest("deferred_slip", "7A"))
	require.NoError(t, err)

	_, err = fx.service.Cancel(context.Background(), uuid.MustParse(booked.ID), fx.userID)
	require.NoError(t, err)

	_, err = fx.service.ConfirmSlipPayment(context.Background(), uuid.MustParse(booked.ID))
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestCancelExpired(t *testing.T) {
	fx := newFixture(t, time.Now().Add(14*24*time.Hour))

	unpaid1, err := fx.service.Book(context.Background(), fx.userID, fx.bookRequest("deferred_slip", "7A"))
	require.NoError(t, err)
	unpaid2, err := fx.service.Book(context.Background(), uuid.New(), fx.bookRequest("deferred_slip", "7B"))
	require.NoError(t, err)
	paid, err := fx.service.Book(context.Background(), uuid.New(), fx.bookRequest("deferred_slip", "7C"))
	require.NoError(t, err)
	_, err = fx.service.ConfirmSlipPayment(context.Background(), uuid.MustParse(paid.ID))
	require.NoError(t, err)

	// Departure is now inside the sweep window.
	now := fx.flight.DepartureTime.Add(-12 * time.Hour)

	cancelled, err := fx.service.CancelExpired(context.Background(), now, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 2, cancelled)

	for _, id := range []uuid.UUID{uuid.MustParse(unpaid1.ID), uuid.MustParse(unpaid2.ID)} {
		stored, err := fx.repo.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.True(t, stored.Cancelled)
		assert.Equal(t, payments.StatusCancelled, stored.PaymentStatus)
	}
	assert.False(t, fx.repo.seatOccupied("7A"))
	assert.False(t, fx.repo.seatOccupied("7B"))
	assert.True(t, fx.repo.seatOccupied("7C"))

	// A second sweep finds nothing left.
	cancelled, err = fx.service.CancelExpired(context.Background(), now, 24*time.Hour)
	require.NoError(t, err)
	assert.Zero(t, cancelled)
}

func TestCancelExpiredIgnoresDistantDepartures(t *testing.T) {
	fx := newFixture(t, time.Now().Add(14*24*time.Hour))

	_, err := fx.service.Book(context.Background(), fx.userID, fx.bookRequest("deferred_slip", "7A"))
	require.NoError(t, err)

	cancelled, err := fx.service.CancelExpired(context.Background(), time.Now(), 24*time.Hour)
	require.NoError(t, err)
	assert.Zero(t, cancelled)
	assert.True(t, fx.repo.seatOccupied("7A"))
}

func TestListUserReservations(t *testing.T) {
	fx := newFixture(t, time.Now().Add(14*24*time.Hour))

	_, err := fx.service.Book(context.Background(), fx.userID, fx.bookRequest("card", "7A"))
	require.NoError(t, err)
	cancelledResp, err := fx.service.Book(context.Background(), fx.userID, fx.bookRequest("card", "7B"))
	require.NoError(t, err)
	_, err = fx.service.Book(context.Background(), uuid.New(), fx.bookRequest("card", "7C"))
	require.NoError(t, err)

	_, err = fx.service.Cancel(context.Background(), uuid.MustParse(cancelledResp.ID), fx.userID)
	require.NoError(t, err)

	results, err := fx.service.ListUserReservations(context.Background(), fx.userID)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, []string{"7A"}, results[0].Seats)
	require.NotNil(t, results[0].Flight)
	assert.Equal(t, "FL204", results[0].Flight.Number)
}

func TestConcurrentBookingSingleWinner(t *testing.T) {
	fx := newFixture(t, time.Now().Add(14*24*time.Hour))

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := fx.service.Book(context.Background(), uuid.New(), fx.bookRequest("card", "9F"))
			errs[i] = err
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
			continue
		}
		var conflict *flights.SeatConflictError
		require.ErrorAs(t, err, &conflict)
	}
	assert.Equal(t, 1, winners)
	assert.True(t, fx.repo.seatOccupied("9F"))
}
