package reports

import (
	"context"
	"errors"
	"fmt"
	"time"

	"flightly/internal/flights"
	"flightly/internal/payments"
	"flightly/internal/reservations"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	GetOverview(ctx context.Context) (*OverviewReport, error)
	GetFlightReports(ctx context.Context) ([]FlightReport, error)
	GetFlightReservations(ctx context.Context, flightID uuid.UUID) (*FlightReservationsReport, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetOverview(ctx context.Context) (*OverviewReport, error) {
	db := r.db.WithContext(ctx)
	overview := &OverviewReport{GeneratedAt: time.Now()}

	var totalFlights int64
	if err := db.Table("flights").Count(&totalFlights).Error; err != nil {
		return nil, fmt.Errorf("failed to count flights: %w", err)
	}
	overview.TotalFlights = int(totalFlights)

	var scheduledFlights int64
	err := db.Table("flights").
		Where("status = ? AND departure_time > ?", flights.StatusScheduled, time.Now()).
		Count(&scheduledFlights).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count scheduled flights: %w", err)
	}
	overview.ScheduledFlights = int(scheduledFlights)

	var totalReservations, cancelledReservations, pendingSlips int64
	if err := db.Table("reservations").Count(&totalReservations).Error; err != nil {
		return nil, fmt.Errorf("failed to count reservations: %w", err)
	}
	err = db.Table("reservations").
		Where("cancelled = ?", true).
		Count(&cancelledReservations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count cancelled reservations: %w", err)
	}
	err = db.Table("reservations").
		Where("cancelled = ? AND payment_method = ? AND payment_slip_paid = ?",
			false, payments.MethodDeferredSlip, false).
		Count(&pendingSlips).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count pending slips: %w", err)
	}
	overview.TotalReservations = int(totalReservations)
	overview.CancelledReservations = int(cancelledReservations)
	overview.ActiveReservations = int(totalReservations - cancelledReservations)
	overview.PendingSlips = int(pendingSlips)

	err = db.Table("reservations").
		Where("cancelled = ? AND payment_status = ?", false, payments.StatusConfirmed).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&overview.ConfirmedRevenue).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum confirmed revenue: %w", err)
	}

	if totalReservations > 0 {
		overview.CancellationRate = float64(cancelledReservations) / float64(totalReservations) * 100
	}

	return overview, nil
}

func (r *repository) GetFlightReports(ctx context.Context) ([]FlightReport, error) {
	var rows []flightReportRow
	err := r.db.WithContext(ctx).
		Table("flights f").
		Select(`f.id, f.number, f.origin, f.destination, f.departure_time, f.status,
			COALESCE(a.total_seats, 0) AS total_seats,
			jsonb_array_length(f.occupied_seats) AS seats_sold,
			COUNT(res.id) AS reservation_count,
			COALESCE(SUM(res.total_amount) FILTER (WHERE res.payment_status = ?), 0) AS confirmed_revenue`,
			payments.StatusConfirmed).
		Joins("LEFT JOIN aircraft_types a ON a.id = f.aircraft_type_id").
		Joins("LEFT JOIN reservations res ON res.flight_id = f.id AND res.cancelled = false").
		Group("f.id, a.total_seats").
		Order("f.departure_time ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to scan flight reports: %w", err)
	}

	out := make([]FlightReport, len(rows))
	for i, row := range rows {
		out[i] = row.toReport()
	}
	return out, nil
}

func (r *repository) GetFlightReservations(ctx context.Context, flightID uuid.UUID) (*FlightReservationsReport, error) {
	var flight flights.Flight
	err := r.db.WithContext(ctx).
		Preload("AircraftType").
		Where("id = ?", flightID).
		First(&flight).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, flights.ErrFlightNotFound
		}
		return nil, fmt.Errorf("failed to load flight: %w", err)
	}

	var rows []reservations.Reservation
	err = r.db.WithContext(ctx).
		Preload("User").
		Where("flight_id = ? AND cancelled = ?", flightID, false).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load reservations: %w", err)
	}

	report := &FlightReservationsReport{
		Flight:       flightSummary(&flight, rows),
		Reservations: make([]ReservationLine, len(rows)),
	}
	for i := range rows {
		report.Reservations[i] = toLine(&rows[i])
	}
	return report, nil
}

type flightReportRow struct {
	ID               uuid.UUID `json:"id"`
	Number           string    `json:"number"`
	Origin           string    `json:"origin"`
	Destination      string    `json:"destination"`
	DepartureTime    time.Time `json:"departure_time"`
	Status           string    `json:"status"`
	TotalSeats       int       `json:"total_seats"`
	SeatsSold        int       `json:"seats_sold"`
	ReservationCount int       `json:"reservation_count"`
	ConfirmedRevenue float64   `json:"confirmed_revenue"`
}

func (row flightReportRow) toReport() FlightReport {
	report := FlightReport{
		FlightID:         row.ID.String(),
		FlightNumber:     row.Number,
		Origin:           row.Origin,
		Destination:      row.Destination,
		DepartureTime:    row.DepartureTime,
		Status:           row.Status,
		TotalSeats:       row.TotalSeats,
		SeatsSold:        row.SeatsSold,
		ReservationCount: row.ReservationCount,
		ConfirmedRevenue: row.ConfirmedRevenue,
	}
	if report.TotalSeats > 0 {
		report.OccupancyRate = float64(report.SeatsSold) / float64(report.TotalSeats) * 100
	}
	return report
}

func flightSummary(flight *flights.Flight, rows []reservations.Reservation) FlightReport {
	report := FlightReport{
		FlightID:      flight.ID.String(),
		FlightNumber:  flight.Number,
		Origin:        flight.Origin,
		Destination:   flight.Destination,
		DepartureTime: flight.DepartureTime,
		Status:        string(flight.Status),
		SeatsSold:     len(flight.OccupiedSeats),
	}
	if flight.AircraftType != nil {
		report.TotalSeats = flight.AircraftType.TotalSeats
	}
	if report.TotalSeats > 0 {
		report.OccupancyRate = float64(report.SeatsSold) / float64(report.TotalSeats) * 100
	}
	for i := range rows {
		report.ReservationCount++
		if rows[i].PaymentStatus == payments.StatusConfirmed {
			report.ConfirmedRevenue += rows[i].TotalAmount
		}
	}
	return report
}

func toLine(r *reservations.Reservation) ReservationLine {
	line := ReservationLine{
		ReservationID:     r.ID.String(),
		ReservationNumber: r.ReservationNumber,
		UserID:            r.UserID.String(),
		SeatCount:         len(r.Seats),
		Seats:             r.Seats,
		PaymentMethod:     string(r.PaymentMethod),
		PaymentStatus:     string(r.PaymentStatus),
		TotalAmount:       r.TotalAmount,
		CreatedAt:         r.CreatedAt,
	}
	if r.User != nil {
		line.UserEmail = r.User.Email
	}
	return line
}
