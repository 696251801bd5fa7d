package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"flightly/internal/aircraft"
	"flightly/internal/flights"
	"flightly/internal/shared/config"
	"flightly/internal/shared/database"
	"flightly/internal/users"

	"github.com/google/uuid"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting Flightly Database Seeder...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db.GetPostgreSQL()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	seeder := &Seeder{db: db}

	// Clean database
	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	// Seed data
	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in reverse dependency order.
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"reservations",
		"flights",
		"aircraft_types",
		"users",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Exec("SET CONSTRAINTS ALL DEFERRED").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to defer constraints: %w", err)
	}

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	if err := tx.Exec("SET CONSTRAINTS ALL IMMEDIATE").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to restore constraints: %w", err)
	}

	return tx.Commit().Error
}

// SeedAll seeds all required data
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	if _, err := s.SeedUsers(); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	typeIDs, err := s.SeedAircraftTypes()
	if err != nil {
		return fmt.Errorf("failed to seed aircraft types: %w", err)
	}

	if err := s.SeedFlights(typeIDs); err != nil {
		return fmt.Errorf("failed to seed flights: %w", err)
	}

	// Clear Redis cache to ensure fresh state
	if s.db.Redis != nil {
		if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
			log.Printf("Warning: Failed to clear Redis cache: %v", err)
		}
	}

	return nil
}

// SeedUsers creates 3 users: 1 admin and 2 travelers. Credentials live
// with the identity service; this schema only carries the read model.
func (s *Seeder) SeedUsers() (map[string]uuid.UUID, error) {
	fmt.Println("  👤 Seeding users...")

	userIDs := make(map[string]uuid.UUID)

	usersData := []struct {
		key       string
		firstName string
		lastName  string
		email     string
		role      users.Role
	}{
		{"admin", "Admin", "User", "admin@flightly.dev", users.RoleAdmin},
		{"user1", "Ana", "Souza", "ana.souza@example.com", users.RoleUser},
		{"user2", "Bruno", "Lima", "bruno.lima@example.com", users.RoleUser},
	}

	for _, userData := range usersData {
		user := users.User{
			ID:        uuid.New(),
			FirstName: userData.firstName,
			LastName:  userData.lastName,
			Email:     userData.email,
			Role:      userData.role,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", userData.email, err)
		}

		userIDs[userData.key] = user.ID
		fmt.Printf("    ✅ Created user: %s (%s)\n", user.Email, user.Role)
	}

	return userIDs, nil
}

// SeedAircraftTypes creates cabin configurations: one with an explicit
// class layout and one that relies on the synthetic fallback.
func (s *Seeder) SeedAircraftTypes() (map[string]uuid.UUID, error) {
	fmt.Println("  ✈️ Seeding aircraft types...")

	typeIDs := make(map[string]uuid.UUID)

	narrowBody := aircraft.AircraftType{
		ID:          uuid.New(),
		Name:        "Narrow Body 150",
		Description: "Single-aisle cabin with first, executive and economy sections",
		TotalSeats:  150,
		Rows:        25,
		SeatsPerRow: 6,
		Classes: []aircraft.SeatClassBand{
			{
				ClassName:      aircraft.ClassFirst,
				RowStart:       1,
				RowEnd:         2,
				WindowLetters:  []string{"A", "F"},
				AisleLetters:   []string{"C", "D"},
				FareMultiplier: 3.0,
			},
			{
				ClassName:      aircraft.ClassExecutive,
				RowStart:       3,
				RowEnd:         6,
				WindowLetters:  []string{"A", "F"},
				AisleLetters:   []string{"C", "D"},
				FareMultiplier: 1.8,
			},
			{
				ClassName:      aircraft.ClassEconomy,
				RowStart:       7,
				RowEnd:         25,
				WindowLetters:  []string{"A", "F"},
				AisleLetters:   []string{"C", "D"},
				FareMultiplier: 1.0,
			},
		},
	}

	regionalJet := aircraft.AircraftType{
		ID:          uuid.New(),
		Name:        "Regional Jet 60",
		Description: "Short-haul cabin, class layout derived from dimensions",
		TotalSeats:  60,
		Rows:        10,
		SeatsPerRow: 6,
	}

	for _, t := range []*aircraft.AircraftType{&narrowBody, &regionalJet} {
		if err := s.db.PostgreSQL.Create(t).Error; err != nil {
			return nil, fmt.Errorf("failed to create aircraft type %s: %w", t.Name, err)
		}
		typeIDs[t.Name] = t.ID
		fmt.Printf("    ✅ Created aircraft type: %s (%d seats)\n", t.Name, t.TotalSeats)
	}

	return typeIDs, nil
}

// SeedFlights creates scheduled flights over the next weeks, far enough
// out that deferred-slip payment stays selectable on most of them.
func (s *Seeder) SeedFlights(typeIDs map[string]uuid.UUID) error {
	fmt.Println("  🛫 Seeding flights...")

	departureBase := time.Now().Truncate(time.Hour).Add(48 * time.Hour)

	flightsData := []struct {
		number       string
		origin       string
		destination  string
		daysOut      int
		hour         int
		duration     time.Duration
		aircraftName string
		baseFare     float64
	}{
		{"FL101", "GRU", "GIG", 2, 8, 1 * time.Hour, "Regional Jet 60", 350},
		{"FL102", "GIG", "GRU", 2, 18, 1 * time.Hour, "Regional Jet 60", 350},
		{"FL201", "GRU", "REC", 7, 9, 3 * time.Hour, "Narrow Body 150", 500},
		{"FL202", "REC", "GRU", 7, 15, 3 * time.Hour, "Narrow Body 150", 500},
		{"FL301", "GRU", "SSA", 14, 7, 2*time.Hour + 30*time.Minute, "Narrow Body 150", 450},
		{"FL302", "SSA", "GRU", 14, 13, 2*time.Hour + 30*time.Minute, "Narrow Body 150", 450},
		{"FL401", "BSB", "POA", 21, 10, 2 * time.Hour, "Regional Jet 60", 400},
		{"FL402", "POA", "BSB", 21, 16, 2 * time.Hour, "Regional Jet 60", 400},
	}

	for _, f := range flightsData {
		typeID, ok := typeIDs[f.aircraftName]
		if !ok {
			return fmt.Errorf("unknown aircraft type %q for flight %s", f.aircraftName, f.number)
		}

		departure := departureBase.AddDate(0, 0, f.daysOut-2)
		departure = time.Date(departure.Year(), departure.Month(), departure.Day(), f.hour, 0, 0, 0, departure.Location())

		flight := flights.Flight{
			ID:             uuid.New(),
			Number:         f.number,
			Origin:         f.origin,
			Destination:    f.destination,
			DepartureTime:  departure,
			ArrivalTime:    departure.Add(f.duration),
			AircraftTypeID: typeID,
			BaseFare:       f.baseFare,
			Status:         flights.StatusScheduled,
			OccupiedSeats:  []string{},
		}

		if err := s.db.PostgreSQL.Create(&flight).Error; err != nil {
			return fmt.Errorf("failed to create flight %s: %w", f.number, err)
		}
		fmt.Printf("    ✅ Created flight: %s %s→%s departing %s\n",
			flight.Number, flight.Origin, flight.Destination, departure.Format("2006-01-02 15:04"))
	}

	return nil
}
