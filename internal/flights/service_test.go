package flights

import (
	"context"
	"testing"
	"time"

	"flightly/internal/aircraft"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockFlightRepo struct {
	createFn  func(ctx context.Context, flight *Flight) error
	getByIDFn func(ctx context.Context, id uuid.UUID) (*Flight, error)
	getAllFn  func(ctx context.Context, query FlightListQuery) ([]Flight, int64, error)
	lockFn    func(ctx context.Context, flightID uuid.UUID, seats []string) error
	releaseFn func(ctx context.Context, flightID uuid.UUID, seats []string) error
}

func (m *mockFlightRepo) Create(ctx context.Context, flight *Flight) error {
	return m.createFn(ctx, flight)
}

func (m *mockFlightRepo) GetByID(ctx context.Context, id uuid.UUID) (*Flight, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockFlightRepo) GetAll(ctx context.Context, query FlightListQuery) ([]Flight, int64, error) {
	return m.getAllFn(ctx, query)
}

func (m *mockFlightRepo) LockSeats(ctx context.Context, flightID uuid.UUID, seats []string) error {
	return m.lockFn(ctx, flightID, seats)
}

func (m *mockFlightRepo) ReleaseSeats(ctx context.Context, flightID uuid.UUID, seats []string) error {
	return m.releaseFn(ctx, flightID, seats)
}

func testFlight() *Flight {
	return &Flight{
		ID:            uuid.New(),
		Number:        "FL100",
		Origin:        "GRU",
		Destination:   "GIG",
		DepartureTime: time.Now().Add(72 * time.Hour),
		BaseFare:      500,
		Status:        StatusScheduled,
		OccupiedSeats: []string{"1A", "8C"},
		AircraftType: &aircraft.AircraftType{
			ID:          uuid.New(),
			Name:        "Regional Jet",
			TotalSeats:  60,
			Rows:        10,
			SeatsPerRow: 6,
		},
	}
}

func TestGetSeatMap(t *testing.T) {
	flight := testFlight()
	repo := &mockFlightRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*Flight, error) {
			return flight, nil
		},
	}
	svc := NewService(repo)

	seatMap, err := svc.GetSeatMap(context.Background(), flight.ID)
	require.NoError(t, err)

	assert.Equal(t, flight.ID.String(), seatMap.FlightID)
	assert.Equal(t, 10, seatMap.Rows)
	assert.Equal(t, 6, seatMap.SeatsPerRow)
	assert.Len(t, seatMap.Seats, 60)

	// Synthetic layout fallback yields three cabin sections.
	assert.Len(t, seatMap.Classes, 3)

	byCode := make(map[string]SeatMapSeat)
	for _, seat := range seatMap.Seats {
		byCode[seat.Code] = seat
	}

	// Row 1 is first class at triple fare; row 7 is economy at base fare.
	assert.Equal(t, aircraft.ClassFirst, byCode["1A"].Class)
	assert.Equal(t, 1500.0, byCode["1A"].Fare)
	assert.Equal(t, aircraft.ClassExecutive, byCode["4B"].Class)
	assert.Equal(t, 900.0, byCode["4B"].Fare)
	assert.Equal(t, aircraft.ClassEconomy, byCode["7D"].Class)
	assert.Equal(t, 500.0, byCode["7D"].Fare)

	// Occupancy reflects the flight's occupied set.
	assert.True(t, byCode["1A"].Occupied)
	assert.True(t, byCode["8C"].Occupied)
	assert.False(t, byCode["2B"].Occupied)

	// Window and aisle flags follow the column letters.
	assert.True(t, byCode["7A"].Window)
	assert.True(t, byCode["7F"].Window)
	assert.True(t, byCode["7C"].Aisle)
	assert.True(t, byCode["7D"].Aisle)
	assert.False(t, byCode["7B"].Window)
	assert.False(t, byCode["7B"].Aisle)
}

func TestGetSeatMap_FlightNotFound(t *testing.T) {
	repo := &mockFlightRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*Flight, error) {
			return nil, ErrFlightNotFound
		},
	}
	svc := NewService(repo)

	_, err := svc.GetSeatMap(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrFlightNotFound)
}

func TestQuoteFare(t *testing.T) {
	flight := testFlight()
	repo := &mockFlightRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*Flight, error) {
			return flight, nil
		},
	}
	svc := NewService(repo)

	quote, err := svc.QuoteFare(context.Background(), flight.ID, []string{"1A", "4B", "8C"})
	require.NoError(t, err)

	assert.Equal(t, 500.0, quote.BaseFare)
	require.Len(t, quote.Seats, 3)
	assert.Equal(t, 1500.0, quote.Seats[0].Fare)
	assert.Equal(t, 900.0, quote.Seats[1].Fare)
	assert.Equal(t, 500.0, quote.Seats[2].Fare)
	assert.Equal(t, 2900.0, quote.Total)
}

func TestQuoteFare_InvalidSeatCode(t *testing.T) {
	flight := testFlight()
	repo := &mockFlightRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*Flight, error) {
			return flight, nil
		},
	}
	svc := NewService(repo)

	_, err := svc.QuoteFare(context.Background(), flight.ID, []string{"bogus"})
	assert.Error(t, err)
}

func TestListFlights(t *testing.T) {
	flight := testFlight()
	var gotQuery FlightListQuery
	repo := &mockFlightRepo{
		getAllFn: func(ctx context.Context, query FlightListQuery) ([]Flight, int64, error) {
			gotQuery = query
			return []Flight{*flight}, 1, nil
		},
	}
	svc := NewService(repo)

	result, err := svc.ListFlights(context.Background(), FlightListQuery{Origin: "GRU"})
	require.NoError(t, err)

	assert.Equal(t, 1, gotQuery.Page)
	assert.Equal(t, 20, gotQuery.Limit)
	assert.Equal(t, int64(1), result.TotalCount)
	assert.Equal(t, 1, result.TotalPages)
	require.Len(t, result.Flights, 1)
	assert.Equal(t, "FL100", result.Flights[0].Number)
	assert.Equal(t, 58, result.Flights[0].AvailableSeats)
}

func TestFlightToResponse(t *testing.T) {
	flight := testFlight()
	resp := flight.ToResponse()

	assert.Equal(t, 2, resp.OccupiedCount)
	assert.Equal(t, 60, resp.TotalSeats)
	assert.Equal(t, 58, resp.AvailableSeats)
	assert.Equal(t, "Regional Jet", resp.AircraftType)
}

func TestFlightHelpers(t *testing.T) {
	flight := testFlight()

	assert.True(t, flight.SeatOccupied("1A"))
	assert.False(t, flight.SeatOccupied("2A"))

	conflicts := flight.ConflictingSeats([]string{"2A", "8C", "1A"})
	assert.Equal(t, []string{"8C", "1A"}, conflicts)

	assert.False(t, flight.HasDeparted(time.Now()))
	assert.True(t, flight.HasDeparted(flight.DepartureTime.Add(time.Minute)))
}
