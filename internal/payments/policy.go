package payments

import (
	"regexp"
	"strings"
)

// Method identifies how a reservation is paid for.
type Method string

const (
	MethodCard         Method = "card"
	MethodDeferredSlip Method = "deferred_slip"
)

// Status tracks a payment through its lifecycle.
//
// Card payments move pending -> authorized -> confirmed in a single
// booking call. Deferred slips stay pending until the slip is settled
// or the reservation is swept.
type Status string

const (
	StatusPending    Status = "pending"
	StatusAuthorized Status = "authorized"
	StatusConfirmed  Status = "confirmed"
	StatusRefunded   Status = "refunded"
	StatusCancelled  Status = "cancelled"
)

// MinBusinessDaysForSlip is the smallest business-day lead time that
// still allows paying by deferred slip.
const MinBusinessDaysForSlip = 4

// ValidMethod reports whether m is a supported payment method.
func ValidMethod(m Method) bool {
	return m == MethodCard || m == MethodDeferredSlip
}

// SlipEligible reports whether a booking with the given number of
// business days before departure may use a deferred slip.
func SlipEligible(businessDays int) bool {
	return businessDays >= MinBusinessDaysForSlip
}

// CancelStatus returns the terminal payment status for a cancelled
// reservation. Card money goes back, so the payment reads refunded;
// an unsettled slip is simply cancelled.
func CancelStatus(method Method) Status {
	if method == MethodCard {
		return StatusRefunded
	}
	return StatusCancelled
}

// CardRecord is what survives of a card after validation. The full
// number is never stored.
type CardRecord struct {
	Brand string `json:"brand"`
	Last4 string `json:"last4"`
}

var (
	cardNumberPattern = regexp.MustCompile(`^[0-9]{13,19}$`)
	cardExpiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)
)

// ValidateCard checks the raw card number and MM/YY expiry and returns
// the brand plus last four digits. Spaces and dashes in the number are
// tolerated.
func ValidateCard(number, expiry string) (CardRecord, error) {
	digits := strings.NewReplacer(" ", "", "-", "").Replace(number)
	if !cardNumberPattern.MatchString(digits) {
		return CardRecord{}, ErrInvalidPaymentData
	}
	if !cardExpiryPattern.MatchString(expiry) {
		return CardRecord{}, ErrInvalidPaymentData
	}
	return CardRecord{
		Brand: detectBrand(digits),
		Last4: digits[len(digits)-4:],
	}, nil
}

func detectBrand(digits string) string {
	switch {
	case strings.HasPrefix(digits, "4"):
		return "visa"
	case strings.HasPrefix(digits, "34"), strings.HasPrefix(digits, "37"):
		return "amex"
	case strings.HasPrefix(digits, "5"), strings.HasPrefix(digits, "2"):
		return "mastercard"
	case strings.HasPrefix(digits, "6"):
		return "discover"
	default:
		return "card"
	}
}
