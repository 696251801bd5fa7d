package flights

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"flightly/internal/aircraft"
	"flightly/internal/fares"
	"flightly/internal/shared/constants"
	"flightly/pkg/cache"
	"flightly/pkg/logger"

	"github.com/google/uuid"
)

type Service interface {
	SetCacheService(cacheService cache.Service)
	SetSeatMirror(mirror *SeatMirror)

	CreateFlight(ctx context.Context, req CreateFlightRequest) (*FlightResponse, error)
	GetFlight(ctx context.Context, id uuid.UUID) (*FlightResponse, error)
	ListFlights(ctx context.Context, query FlightListQuery) (*PaginatedFlights, error)
	GetSeatMap(ctx context.Context, id uuid.UUID) (*SeatMapResponse, error)
	QuoteFare(ctx context.Context, id uuid.UUID, seatCodes []string) (*FareQuoteResponse, error)

	// InvalidateSeatCaches drops every cached projection of the flight
	// after a seat lock or release.
	InvalidateSeatCaches(ctx context.Context, id uuid.UUID)
}

type service struct {
	repo         Repository
	cacheService cache.Service
	mirror       *SeatMirror
	log          *logger.Logger
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
		log:  logger.GetDefault(),
	}
}

func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func (s *service) SetSeatMirror(mirror *SeatMirror) {
	s.mirror = mirror
}

func (s *service) CreateFlight(ctx context.Context, req CreateFlightRequest) (*FlightResponse, error) {
	if !req.DepartureTime.After(time.Now()) {
		return nil, fmt.Errorf("departure time must be in the future")
	}

	aircraftTypeID, err := uuid.Parse(req.AircraftTypeID)
	if err != nil {
		return nil, fmt.Errorf("invalid aircraft type ID: %w", err)
	}

	baseFare := DefaultBaseFare
	if req.BaseFare != nil {
		baseFare = *req.BaseFare
	}

	flight := &Flight{
		Number:         strings.ToUpper(req.Number),
		Origin:         req.Origin,
		Destination:    req.Destination,
		DepartureTime:  req.DepartureTime,
		ArrivalTime:    req.ArrivalTime,
		AircraftTypeID: aircraftTypeID,
		BaseFare:       baseFare,
		Status:         StatusScheduled,
		OccupiedSeats:  []string{},
	}

	if err := s.repo.Create(ctx, flight); err != nil {
		return nil, fmt.Errorf("failed to create flight: %w", err)
	}

	s.invalidateListCaches(ctx)

	resp := flight.ToResponse()
	return &resp, nil
}

func (s *service) GetFlight(ctx context.Context, id uuid.UUID) (*FlightResponse, error) {
	if s.cacheService != nil {
		var cached FlightResponse
		cacheKey := constants.CacheKeyFlight(id.String())
		err := s.cacheService.GetOrSet(ctx, cacheKey, constants.TTL_FLIGHT_DETAIL, func() (interface{}, error) {
			flight, err := s.repo.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			return flight.ToResponse(), nil
		}, &cached)
		if err == nil {
			return &cached, nil
		}
		if err := unwrapDomainError(err); err != nil {
			return nil, err
		}
		// Cache trouble falls through to a direct read.
	}

	flight, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := flight.ToResponse()
	return &resp, nil
}

func (s *service) ListFlights(ctx context.Context, query FlightListQuery) (*PaginatedFlights, error) {
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 20
	}

	build := func() (*PaginatedFlights, error) {
		results, totalCount, err := s.repo.GetAll(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("failed to list flights: %w", err)
		}

		responses := make([]FlightResponse, len(results))
		for i := range results {
			responses[i] = results[i].ToResponse()
		}

		return &PaginatedFlights{
			Flights:    responses,
			TotalCount: totalCount,
			Page:       query.Page,
			Limit:      query.Limit,
			TotalPages: int(math.Ceil(float64(totalCount) / float64(query.Limit))),
		}, nil
	}

	// Only the exact date+route search is cached; open-ended listings
	// churn too much to be worth the invalidation traffic.
	if s.cacheService != nil && query.Date != "" && query.Origin != "" && query.Destination != "" && query.Page == 1 {
		var cached PaginatedFlights
		cacheKey := constants.CacheKeyFlightSearch(query.Date, strings.ToLower(query.Origin), strings.ToLower(query.Destination))
		err := s.cacheService.GetOrSet(ctx, cacheKey, constants.TTL_FLIGHT_LIST, func() (interface{}, error) {
			return build()
		}, &cached)
		if err == nil {
			return &cached, nil
		}
	}

	return build()
}

func (s *service) GetSeatMap(ctx context.Context, id uuid.UUID) (*SeatMapResponse, error) {
	if s.cacheService != nil {
		var cached SeatMapResponse
		cacheKey := constants.CacheKeySeatMap(id.String())
		err := s.cacheService.GetOrSet(ctx, cacheKey, constants.TTL_SEATMAP, func() (interface{}, error) {
			return s.buildSeatMap(ctx, id)
		}, &cached)
		if err == nil {
			return &cached, nil
		}
		if err := unwrapDomainError(err); err != nil {
			return nil, err
		}
	}

	return s.buildSeatMap(ctx, id)
}

func (s *service) buildSeatMap(ctx context.Context, id uuid.UUID) (*SeatMapResponse, error) {
	flight, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rows, seatsPerRow := cabinDimensions(flight.AircraftType)
	layout := fares.LayoutFor(flight.AircraftType)

	// Keep the self-healing mirror in step with the authoritative set.
	if s.mirror != nil {
		if err := s.mirror.Seed(ctx, id, flight.OccupiedSeats); err != nil {
			s.log.WithError(err).Warn("failed to seed seat mirror")
		}
	}

	resp := &SeatMapResponse{
		FlightID:    flight.ID.String(),
		Number:      flight.Number,
		BaseFare:    flight.BaseFare,
		Rows:        rows,
		SeatsPerRow: seatsPerRow,
		Seats:       make([]SeatMapSeat, 0, rows*seatsPerRow),
		Classes:     make([]SeatClassBrief, 0, len(layout)),
	}

	for _, band := range layout {
		resp.Classes = append(resp.Classes, SeatClassBrief{
			ClassName:      band.ClassName,
			RowStart:       band.RowStart,
			RowEnd:         band.RowEnd,
			FareMultiplier: band.FareMultiplier,
		})
	}

	for row := 1; row <= rows; row++ {
		band := bandForRow(layout, row)
		for col := 0; col < seatsPerRow; col++ {
			letter := string(rune('A' + col))
			code := fmt.Sprintf("%d%s", row, letter)

			fare := flight.BaseFare
			className := aircraft.ClassEconomy
			window, aisle := false, false
			if band != nil {
				fare = flight.BaseFare * band.FareMultiplier
				className = band.ClassName
				window = containsLetter(band.WindowLetters, letter)
				aisle = containsLetter(band.AisleLetters, letter)
			}

			resp.Seats = append(resp.Seats, SeatMapSeat{
				Code:     code,
				Row:      row,
				Letter:   letter,
				Class:    className,
				Window:   window,
				Aisle:    aisle,
				Fare:     fare,
				Occupied: flight.SeatOccupied(code),
			})
		}
	}

	return resp, nil
}

func (s *service) QuoteFare(ctx context.Context, id uuid.UUID, seatCodes []string) (*FareQuoteResponse, error) {
	flight, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	layout := fares.LayoutFor(flight.AircraftType)

	resp := &FareQuoteResponse{
		FlightID: flight.ID.String(),
		BaseFare: flight.BaseFare,
		Seats:    make([]SeatFareQuote, 0, len(seatCodes)),
	}

	for _, code := range seatCodes {
		fare, err := fares.SeatFare(code, layout, flight.BaseFare)
		if err != nil {
			return nil, err
		}
		resp.Seats = append(resp.Seats, SeatFareQuote{Code: code, Fare: fare})
		resp.Total += fare
	}

	return resp, nil
}

func (s *service) InvalidateSeatCaches(ctx context.Context, id uuid.UUID) {
	if s.cacheService == nil {
		return
	}
	if err := s.cacheService.DeletePattern(ctx, constants.CacheKeyPatternFlight(id.String())); err != nil {
		s.log.WithError(err).Warn("failed to invalidate flight caches")
	}
}

func (s *service) invalidateListCaches(ctx context.Context) {
	if s.cacheService == nil {
		return
	}
	if err := s.cacheService.DeletePattern(ctx, "flightly:flights:search:*"); err != nil {
		s.log.WithError(err).Warn("failed to invalidate flight search caches")
	}
}

func cabinDimensions(t *aircraft.AircraftType) (rows, seatsPerRow int) {
	rows, seatsPerRow = fares.DefaultRows, fares.DefaultSeatsPerRow
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
	return rows, seatsPerRow
}

func bandForRow(layout []aircraft.SeatClassBand, row int) *aircraft.SeatClassBand {
	for i := range layout {
		if layout[i].Contains(row) {
			return &layout[i]
		}
	}
	return nil
}

func containsLetter(letters []string, letter string) bool {
	for _, l := range letters {
		if l == letter {
			return true
		}
	}
	return false
}

// unwrapDomainError surfaces the not-found case through the cache
// wrapper; anything else is treated as a cache-layer failure and the
// caller retries against the repository directly.
func unwrapDomainError(err error) error {
	if errors.Is(err, ErrFlightNotFound) {
		return ErrFlightNotFound
	}
	return nil
}
