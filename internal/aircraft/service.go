package aircraft

import (
	"context"
	"fmt"

	"flightly/internal/shared/constants"
	"flightly/pkg/cache"

	"github.com/google/uuid"
)

// Service exposes read access to cabin configurations. Fleet management
// (creating and editing aircraft types) is an admin CRUD concern owned by
// the fleet collaborator.
type Service interface {
	GetType(ctx context.Context, id uuid.UUID) (*AircraftType, error)
	ListTypes(ctx context.Context) ([]AircraftType, error)
	SetCacheService(cacheService cache.Service)
}

type service struct {
	repo         Repository
	cacheService cache.Service
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// SetCacheService injects the cache service dependency
func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func (s *service) GetType(ctx context.Context, id uuid.UUID) (*AircraftType, error) {
	if s.cacheService != nil {
		var cached AircraftType
		key := constants.CacheKeyAircraftType(id.String())
		err := s.cacheService.GetOrSet(ctx, key, constants.TTL_AIRCRAFT_TYPE, func() (interface{}, error) {
			return s.repo.GetByID(ctx, id)
		}, &cached)
		if err == nil {
			return &cached, nil
		}
		// Fall through to the repository on any cache path error so a
		// degraded Redis never blocks fare computation.
	}

	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get aircraft type: %w", err)
	}
	return t, nil
}

func (s *service) ListTypes(ctx context.Context) ([]AircraftType, error) {
	return s.repo.List(ctx)
}
