package database

import (
	"flightly/internal/aircraft"
	"flightly/internal/flights"
	"flightly/internal/reservations"
	"flightly/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&users.User{},
		&aircraft.AircraftType{},
		&flights.Flight{},
		&reservations.Reservation{},
	); err != nil {
		return err
	}
	return MigrateConstraints(db)
}
