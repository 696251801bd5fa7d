package reports

import (
	"context"
	"fmt"

	"flightly/internal/shared/constants"
	"flightly/pkg/cache"
	"flightly/pkg/logger"

	"github.com/google/uuid"
)

type Service interface {
	SetCacheService(cacheService cache.Service)

	GetOverview(ctx context.Context) (*OverviewReport, error)
	GetFlightReports(ctx context.Context) ([]FlightReport, error)
	GetFlightReservations(ctx context.Context, flightID uuid.UUID) (*FlightReservationsReport, error)
}

type service struct {
	repo         Repository
	cacheService cache.Service
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

func (s *service) GetOverview(ctx context.Context) (*OverviewReport, error) {
	if s.cacheService != nil {
		var cached OverviewReport
		err := s.cacheService.GetOrSet(ctx, constants.CacheKeyReportOverview(), constants.TTL_REPORT_OVERVIEW,
			func() (interface{}, error) {
				return s.repo.GetOverview(ctx)
			}, &cached)
		if err == nil {
			return &cached, nil
		}
		s.log.WithError(err).Warn("report overview cache path failed, serving direct")
	}

	overview, err := s.repo.GetOverview(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build overview report: %w", err)
	}
	return overview, nil
}

func (s *service) GetFlightReports(ctx context.Context) ([]FlightReport, error) {
	if s.cacheService != nil {
		var cached []FlightReport
		err := s.cacheService.GetOrSet(ctx, constants.CacheKeyReportFlights(), constants.TTL_REPORT_FLIGHTS,
			func() (interface{}, error) {
				return s.repo.GetFlightReports(ctx)
			}, &cached)
		if err == nil {
			return cached, nil
		}
		s.log.WithError(err).Warn("flight reports cache path failed, serving direct")
	}

	reports, err := s.repo.GetFlightReports(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build flight reports: %w", err)
	}
	return reports, nil
}

// GetFlightReservations always reads storage directly; the per-flight
// drill-down is rare enough that caching buys nothing.
func (s *service) GetFlightReservations(ctx context.Context, flightID uuid.UUID) (*FlightReservationsReport, error) {
	return s.repo.GetFlightReservations(ctx, flightID)
}
