package constants

import (
	"fmt"
	"time"
)

// Redis Cache Configuration
// Centralizes Redis cache keys and TTL values for the Flightly application.
// Pattern: flightly:{module}:{operation}:{identifier}

// ================== CACHE TTL DURATIONS ==================

// Static Data (Long TTL: rarely changes)
const (
	TTL_AIRCRAFT_TYPE = 12 * time.Hour // seat-class layouts change with fleet updates only
	TTL_FLIGHT_DETAIL = 5 * time.Minute
	TTL_FLIGHT_LIST   = 1 * time.Minute
)

// Highly Dynamic (Micro TTL: real-time sensitive)
const (
	// The seatmap carries the occupied-seat set; keep it barely ahead of
	// the booking path and invalidate on every lock/release.
	TTL_SEATMAP = 30 * time.Second
)

// Reporting (results tolerate short staleness)
const (
	TTL_REPORT_OVERVIEW = 2 * time.Minute
	TTL_REPORT_FLIGHTS  = 2 * time.Minute
)

// ================== CACHE KEY BUILDERS ==================

const keyPrefix = "flightly"

func CacheKeyFlight(flightID string) string {
	return fmt.Sprintf("%s:flights:detail:%s", keyPrefix, flightID)
}

func CacheKeySeatMap(flightID string) string {
	return fmt.Sprintf("%s:flights:seatmap:%s", keyPrefix, flightID)
}

func CacheKeyAircraftType(typeID string) string {
	return fmt.Sprintf("%s:aircraft:type:%s", keyPrefix, typeID)
}

func CacheKeyFlightSearch(date, origin, destination string) string {
	return fmt.Sprintf("%s:flights:search:%s:%s:%s", keyPrefix, date, origin, destination)
}

func CacheKeyReportOverview() string {
	return fmt.Sprintf("%s:reports:overview", keyPrefix)
}

func CacheKeyReportFlights() string {
	return fmt.Sprintf("%s:reports:flights", keyPrefix)
}

// CacheKeyPatternFlight matches every cached projection of one flight, used
// for invalidation after a seat lock or release.
func CacheKeyPatternFlight(flightID string) string {
	return fmt.Sprintf("%s:flights:*:%s", keyPrefix, flightID)
}
