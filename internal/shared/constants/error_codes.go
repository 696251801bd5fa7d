package constants

// Machine-readable error kinds used in the response envelope. Clients
// branch on these instead of parsing message text.
const (
	CodeInvalidRequest           = "INVALID_REQUEST"
	CodeFlightNotFound           = "FLIGHT_NOT_FOUND"
	CodeNotFound                 = "NOT_FOUND"
	CodeSeatConflict             = "SEAT_CONFLICT"
	CodeIneligiblePaymentMethod  = "INELIGIBLE_PAYMENT_METHOD"
	CodeInvalidPaymentData       = "INVALID_PAYMENT_DATA"
	CodeCancellationWindowClosed = "CANCELLATION_WINDOW_CLOSED"
	CodeAlreadyCancelled         = "ALREADY_CANCELLED"
	CodeAlreadyPaid              = "ALREADY_PAID"
	CodeNotDeferredSlip          = "NOT_DEFERRED_SLIP"
	CodeInternal                 = "INTERNAL"
)
