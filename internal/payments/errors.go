package payments

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPaymentData is returned when card details are missing
	// or malformed.
	ErrInvalidPaymentData = errors.New("invalid payment data")

	// ErrAlreadyPaid is returned when settling a slip that has already
	// been confirmed.
	ErrAlreadyPaid = errors.New("payment already confirmed")

	// ErrNotDeferredSlip is returned when a slip operation targets a
	// reservation paid by another method.
	ErrNotDeferredSlip = errors.New("reservation is not paid by deferred slip")
)

// IneligiblePaymentMethodError reports a deferred-slip booking made too
// close to departure.
type IneligiblePaymentMethodError struct {
	BusinessDays int
}

func (e *IneligiblePaymentMethodError) Error() string {
	return fmt.Sprintf("deferred slip requires at least %d business days before departure, got %d",
		MinBusinessDaysForSlip, e.BusinessDays)
}
