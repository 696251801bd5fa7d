package fares

import (
	"testing"

	"flightly/internal/aircraft"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeTierLayout() []aircraft.SeatClassBand {
	return []aircraft.SeatClassBand{
		{ClassName: aircraft.ClassFirst, RowStart: 1, RowEnd: 2, FareMultiplier: 3.0},
		{ClassName: aircraft.ClassExecutive, RowStart: 3, RowEnd: 6, FareMultiplier: 1.8},
		{ClassName: aircraft.ClassEconomy, RowStart: 7, RowEnd: 25, FareMultiplier: 1.0},
	}
}

func TestSeatFare_BandLookup(t *testing.T) {
	layout := threeTierLayout()

	price, err := SeatFare("1A", layout, 500)
	require.NoError(t, err)
	assert.Equal(t, 1500.0, price)

	price, err = SeatFare("4C", layout, 500)
	require.NoError(t, err)
	assert.Equal(t, 900.0, price)

	price, err = SeatFare("14C", layout, 500)
	require.NoError(t, err)
	assert.Equal(t, 500.0, price)
}

func TestSeatFare_RowBeyondAllBands_DefaultsToBase(t *testing.T) {
	layout := threeTierLayout()

	price, err := SeatFare("30F", layout, 500)
	require.NoError(t, err)
	assert.Equal(t, 500.0, price)
}

func TestSeatFare_EmptyLayout_DefaultsToBase(t *testing.T) {
	price, err := SeatFare("12B", nil, 420)
	require.NoError(t, err)
	assert.Equal(t, 420.0, price)
}

func TestSeatFare_Deterministic(t *testing.T) {
	layout := threeTierLayout()

	first, err := SeatFare("3D", layout, 500)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := SeatFare("3D", layout, 500)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestTotalFare_SumsPerSeatPrices(t *testing.T) {
	layout := threeTierLayout()

	total, err := TotalFare([]string{"1A", "4C", "14C"}, layout, 500)
	require.NoError(t, err)
	assert.Equal(t, 1500.0+900.0+500.0, total)
}

func TestTotalFare_InvalidSeatCode(t *testing.T) {
	_, err := TotalFare([]string{"1A", "banana"}, threeTierLayout(), 500)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "banana")
}

func TestSyntheticLayout_ThreeTiers(t *testing.T) {
	layout := SyntheticLayout(25, 6)
	require.Len(t, layout, 3)

	assert.Equal(t, aircraft.ClassFirst, layout[0].ClassName)
	assert.Equal(t, 1, layout[0].RowStart)
	assert.Equal(t, 2, layout[0].RowEnd)
	assert.Equal(t, 3.0, layout[0].FareMultiplier)

	assert.Equal(t, aircraft.ClassExecutive, layout[1].ClassName)
	assert.Equal(t, 3, layout[1].RowStart)
	assert.Equal(t, 6, layout[1].RowEnd)
	assert.Equal(t, 1.8, layout[1].FareMultiplier)

	assert.Equal(t, aircraft.ClassEconomy, layout[2].ClassName)
	assert.Equal(t, 7, layout[2].RowStart)
	assert.Equal(t, 25, layout[2].RowEnd)
	assert.Equal(t, 1.0, layout[2].FareMultiplier)
}

func TestSyntheticLayout_WindowAndAisleLetters(t *testing.T) {
	layout := SyntheticLayout(25, 6)
	require.NotEmpty(t, layout)

	assert.Equal(t, []string{"A", "F"}, layout[0].WindowLetters)
	assert.Equal(t, []string{"C", "D"}, layout[0].AisleLetters)
}

func TestSyntheticLayout_NarrowRow_NoAisleLetters(t *testing.T) {
	layout := SyntheticLayout(10, 3)
	require.NotEmpty(t, layout)

	assert.Equal(t, []string{"A", "C"}, layout[0].WindowLetters)
	assert.Empty(t, layout[0].AisleLetters)
}

func TestSyntheticLayout_TwoRowsOrFewer_AllEconomy(t *testing.T) {
	layout := SyntheticLayout(2, 4)
	require.Len(t, layout, 1)
	assert.Equal(t, aircraft.ClassEconomy, layout[0].ClassName)
	assert.Equal(t, 1, layout[0].RowStart)
	assert.Equal(t, 2, layout[0].RowEnd)
	assert.Equal(t, 1.0, layout[0].FareMultiplier)
}

func TestLayoutFor_PrefersConfiguredClasses(t *testing.T) {
	typ := &aircraft.AircraftType{
		Rows:        30,
		SeatsPerRow: 6,
		Classes: []aircraft.SeatClassBand{
			{ClassName: aircraft.ClassEconomy, RowStart: 1, RowEnd: 30, FareMultiplier: 1.2},
		},
	}

	layout := LayoutFor(typ)
	require.Len(t, layout, 1)
	assert.Equal(t, 1.2, layout[0].FareMultiplier)
}

func TestLayoutFor_NilType_UsesDefaultDimensions(t *testing.T) {
	layout := LayoutFor(nil)
	require.Len(t, layout, 3)
	assert.Equal(t, 25, layout[2].RowEnd)
}
