package payments

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d, hour int) time.Time {
	return time.Date(y, m, d, hour, 0, 0, 0, time.UTC)
}

func TestBusinessDaysBetween(t *testing.T) {
	// 2026-08-31 is a Monday.
	mon := date(2026, time.August, 31, 9)
	fri := date(2026, time.September, 4, 18)

	// Monday through Thursday count, Friday itself does not.
	assert.Equal(t, 4, BusinessDaysBetween(mon, fri))

	// Wednesday to Friday spans Wednesday and Thursday only.
	wed := date(2026, time.September, 2, 9)
	assert.Equal(t, 2, BusinessDaysBetween(wed, fri))

	// A full week skips the weekend.
	nextMon := date(2026, time.September, 7, 9)
	assert.Equal(t, 5, BusinessDaysBetween(mon, nextMon))

	// Time of day is irrelevant.
	lateMon := date(2026, time.August, 31, 23)
	earlyFri := date(2026, time.September, 4, 0)
	assert.Equal(t, 4, BusinessDaysBetween(lateMon, earlyFri))

	// Same day and inverted ranges yield zero.
	assert.Equal(t, 0, BusinessDaysBetween(mon, mon))
	assert.Equal(t, 0, BusinessDaysBetween(fri, mon))
}

func TestSlipEligible(t *testing.T) {
	assert.False(t, SlipEligible(0))
	assert.False(t, SlipEligible(3))
	assert.True(t, SlipEligible(4))
	assert.True(t, SlipEligible(10))
}

func TestSlipDueDate(t *testing.T) {
	// Departure Friday: due Thursday.
	fri := date(2026, time.September, 4, 10)
	assert.Equal(t, time.Thursday, SlipDueDate(fri).Weekday())

	// Departure Monday: the calendar day before is Sunday, so the
	// due date walks back to Friday.
	mon := date(2026, time.September, 7, 10)
	due := SlipDueDate(mon)
	assert.Equal(t, time.Friday, due.Weekday())
	assert.Equal(t, 4, due.Day())

	// Departure Sunday: Saturday walks back to Friday.
	sun := date(2026, time.September, 6, 10)
	assert.Equal(t, time.Friday, SlipDueDate(sun).Weekday())

	// Departure Wednesday: plain Tuesday, no walk-back.
	wed := date(2026, time.September, 2, 10)
	assert.Equal(t, time.Tuesday, SlipDueDate(wed).Weekday())
}

func TestValidateCard(t *testing.T) {
	rec, err := ValidateCard("4111 1111 1111 1111", "09/28")
	require.NoError(t, err)
	assert.Equal(t, "visa", rec.Brand)
	assert.Equal(t, "1111", rec.Last4)

	rec, err = ValidateCard("5500-0000-0000-0004", "01/30")
	require.NoError(t, err)
	assert.Equal(t, "mastercard", rec.Brand)
	assert.Equal(t, "0004", rec.Last4)

	rec, err = ValidateCard("378282246310005", "12/27")
	require.NoError(t, err)
	assert.Equal(t, "amex", rec.Brand)
}

func TestValidateCard_Invalid(t *testing.T) {
	cases := []struct {
		name   string
		number string
		expiry string
	}{
		{"empty number", "", "09/28"},
		{"too short", "411111", "09/28"},
		{"letters", "4111abcd11111111", "09/28"},
		{"empty expiry", "4111111111111111", ""},
		{"bad month", "4111111111111111", "13/28"},
		{"no slash", "4111111111111111", "0928"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidateCard(tc.number, tc.expiry)
			assert.ErrorIs(t, err, ErrInvalidPaymentData)
		})
	}
}

func TestCancelStatus(t *testing.T) {
	assert.Equal(t, StatusRefunded, CancelStatus(MethodCard))
	assert.Equal(t, StatusCancelled, CancelStatus(MethodDeferredSlip))
}

func TestStubGatewayAuthorize(t *testing.T) {
	g := NewStubGateway()

	ref, err := g.Authorize(context.Background(), CardRecord{Brand: "visa", Last4: "1111"}, 1500)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "auth-"))

	_, err = g.Authorize(context.Background(), CardRecord{}, 1500)
	assert.ErrorIs(t, err, ErrInvalidPaymentData)

	_, err = g.Authorize(context.Background(), CardRecord{Last4: "1111"}, 0)
	assert.ErrorIs(t, err, ErrInvalidPaymentData)
}

func TestNewSlipNumber(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		n := NewSlipNumber()
		assert.Len(t, n, 10)
		assert.True(t, strings.HasPrefix(n, "FC"))
		seen[n] = true
	}
	assert.Greater(t, len(seen), 45, "slip numbers should be effectively unique")
}
