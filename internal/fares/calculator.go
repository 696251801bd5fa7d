// Package fares computes per-seat and total reservation prices from a
// flight's base fare and its aircraft's seat-class layout. Everything here
// is pure: same inputs, same outputs, no storage access.
package fares

import (
	"fmt"

	"flightly/internal/aircraft"
)

// Default multipliers for the synthetic layout derived when an aircraft
// type carries no explicit class configuration.
const (
	syntheticFirstMultiplier     = 3.0
	syntheticExecutiveMultiplier = 1.8
	syntheticEconomyMultiplier   = 1.0
)

// Cabin dimensions assumed when an aircraft type does not specify them.
const (
	DefaultRows        = 25
	DefaultSeatsPerRow = 6
)

// SeatFare returns the price of a single seat: baseFare times the
// multiplier of the first band whose row range contains the seat's row.
// Bands are non-overlapping by construction, so first-match is also the
// only match; rows beyond every band fall back to multiplier 1.0.
func SeatFare(code string, layout []aircraft.SeatClassBand, baseFare float64) (float64, error) {
	row, _, err := ParseSeatCode(code)
	if err != nil {
		return 0, err
	}

	multiplier := 1.0
	for _, band := range layout {
		if band.Contains(row) {
			multiplier = band.FareMultiplier
			break
		}
	}

	return baseFare * multiplier, nil
}

// TotalFare sums the per-seat prices for every code. The result is never
// negative; rounding to two decimals is a presentation concern and does not
// happen here.
func TotalFare(codes []string, layout []aircraft.SeatClassBand, baseFare float64) (float64, error) {
	var total float64
	for _, code := range codes {
		price, err := SeatFare(code, layout, baseFare)
		if err != nil {
			return 0, fmt.Errorf("seat %s: %w", code, err)
		}
		total += price
	}
	if total < 0 {
		total = 0
	}
	return total, nil
}

// SyntheticLayout derives a three-tier class layout when an aircraft type
// has none configured: rows 1-2 first, rows 3-6 executive, the remainder
// economy. With two rows or fewer everything is economy. Window letters are
// the first and last of the row; aisle letters are the two centermost when
// the row is at least four seats wide.
func SyntheticLayout(rows, seatsPerRow int) []aircraft.SeatClassBand {
	if rows <= 0 || seatsPerRow <= 0 {
		return nil
	}
	if seatsPerRow > 26 {
		seatsPerRow = 26
	}

	letters := make([]string, seatsPerRow)
	for i := 0; i < seatsPerRow; i++ {
		letters[i] = string(rune('A' + i))
	}

	window := []string{letters[0], letters[len(letters)-1]}
	var aisle []string
	if seatsPerRow >= 4 {
		aisle = []string{letters[seatsPerRow/2-1], letters[seatsPerRow/2]}
	}

	if rows <= 2 {
		return []aircraft.SeatClassBand{{
			ClassName:      aircraft.ClassEconomy,
			RowStart:       1,
			RowEnd:         rows,
			WindowLetters:  window,
			AisleLetters:   aisle,
			FareMultiplier: syntheticEconomyMultiplier,
		}}
	}

	layout := []aircraft.SeatClassBand{{
		ClassName:      aircraft.ClassFirst,
		RowStart:       1,
		RowEnd:         2,
		WindowLetters:  window,
		AisleLetters:   aisle,
		FareMultiplier: syntheticFirstMultiplier,
	}}

	executiveEnd := 6
	if rows < 6 {
		executiveEnd = rows
	}
	layout = append(layout, aircraft.SeatClassBand{
		ClassName:      aircraft.ClassExecutive,
		RowStart:       3,
		RowEnd:         executiveEnd,
		WindowLetters:  window,
		AisleLetters:   aisle,
		FareMultiplier: syntheticExecutiveMultiplier,
	})

	if rows > 6 {
		layout = append(layout, aircraft.SeatClassBand{
			ClassName:      aircraft.ClassEconomy,
			RowStart:       7,
			RowEnd:         rows,
			WindowLetters:  window,
			AisleLetters:   aisle,
			FareMultiplier: syntheticEconomyMultiplier,
		})
	}

	return layout
}

// LayoutFor returns the aircraft type's configured class bands, or the
// synthetic fallback when none are configured.
func LayoutFor(t *aircraft.AircraftType) []aircraft.SeatClassBand {
	if t != nil && t.HasClassLayout() {
		return t.Classes
	}
	rows, seatsPerRow := DefaultRows, DefaultSeatsPerRow
	if t != nil {
		if t.Rows > 0 {
			rows = t.Rows
		}
		if t.SeatsPerRow > 0 {
			seatsPerRow = t.SeatsPerRow
		}
	}
	return SyntheticLayout(rows, seatsPerRow)
}
