package reports

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightly/internal/aircraft"
	"flightly/internal/flights"
	"flightly/internal/payments"
	"flightly/internal/reservations"
)

type mockReportRepo struct {
	overviewFn           func(ctx context.Context) (*OverviewReport, error)
	flightReportsFn      func(ctx context.Context) ([]FlightReport, error)
	flightReservationsFn func(ctx context.Context, flightID uuid.UUID) (*FlightReservationsReport, error)
}

func (m *mockReportRepo) GetOverview(ctx context.Context) (*OverviewReport, error) {
	return m.overviewFn(ctx)
}

func (m *mockReportRepo) GetFlightReports(ctx context.Context) ([]FlightReport, error) {
	return m.flightReportsFn(ctx)
}

func (m *mockReportRepo) GetFlightReservations(ctx context.Context, flightID uuid.UUID) (*FlightReservationsReport, error) {
	return m.flightReservationsFn(ctx, flightID)
}

func TestGetOverviewWithoutCache(t *testing.T) {
	want := &OverviewReport{
		TotalFlights:          3,
		TotalReservations:     10,
		CancelledReservations: 2,
		ActiveReservations:    8,
		ConfirmedRevenue:      12400,
		CancellationRate:      20,
	}
	svc := NewService(&mockReportRepo{
		overviewFn: func(context.Context) (*OverviewReport, error) { return want, nil },
	})

	got, err := svc.GetOverview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFlightReportRowOccupancy(t *testing.T) {
	row := flightReportRow{
		ID:               uuid.New(),
		Number:           "FL310",
		TotalSeats:       60,
		SeatsSold:        15,
		ReservationCount: 6,
		ConfirmedRevenue: 9000,
	}

	report := row.toReport()
	assert.Equal(t, 25.0, report.OccupancyRate)
	assert.Equal(t, 15, report.SeatsSold)

	// Unknown cabin size must not divide by zero.
	row.TotalSeats = 0
	assert.Zero(t, row.toReport().OccupancyRate)
}

func TestFlightSummaryCountsConfirmedRevenueOnly(t *testing.T) {
	flight := &flights.Flight{
		ID:            uuid.New(),
		Number:        "FL310",
		Origin:        "GRU",
		Destination:   "SSA",
		DepartureTime: time.Now().Add(48 * time.Hour),
		Status:        flights.StatusScheduled,
		OccupiedSeats: []string{"1A", "1B", "7C"},
		AircraftType:  &aircraft.AircraftType{TotalSeats: 60},
	}
	rows := []reservations.Reservation{
		{PaymentStatus: payments.StatusConfirmed, TotalAmount: 3000},
		{PaymentStatus: payments.StatusPending, TotalAmount: 500},
		{PaymentStatus: payments.StatusConfirmed, TotalAmount: 500},
	}

	report := flightSummary(flight, rows)
	assert.Equal(t, 3, report.SeatsSold)
	assert.Equal(t, 3, report.ReservationCount)
	assert.Equal(t, 3500.0, report.ConfirmedRevenue)
	assert.Equal(t, 5.0, report.OccupancyRate)
}

func TestReservationLineIncludesUserEmail(t *testing.T) {
	r := &reservations.Reservation{
		ID:                uuid.New(),
		ReservationNumber: "RSABCD1234",
		UserID:            uuid.New(),
		Seats:             []string{"7A", "7B"},
		PaymentMethod:     payments.MethodCard,
		PaymentStatus:     payments.StatusConfirmed,
		TotalAmount:       1000,
	}

	line := toLine(r)
	assert.Equal(t, 2, line.SeatCount)
	assert.Empty(t, line.UserEmail)
}
