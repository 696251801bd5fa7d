package aircraft

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrAircraftTypeNotFound is returned when no aircraft type exists for the
// given id.
var ErrAircraftTypeNotFound = errors.New("aircraft type not found")

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AircraftType, error)
	List(ctx context.Context) ([]AircraftType, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*AircraftType, error) {
	var t AircraftType
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAircraftTypeNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *repository) List(ctx context.Context) ([]AircraftType, error) {
	var types []AircraftType
	err := r.db.WithContext(ctx).Order("name ASC").Find(&types).Error
	return types, err
}
