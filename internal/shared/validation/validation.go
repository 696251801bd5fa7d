package validation

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// seatCodePattern accepts a row number followed by a single column letter
// ("14C"). Double-letter columns are not supported by the seat-code scheme.
var seatCodePattern = regexp.MustCompile(`^[1-9][0-9]{0,2}[A-Z]$`)

// cardExpiryPattern accepts MM/YY card expiry values.
var cardExpiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)

// RegisterCustomValidators wires domain validators into gin's binding
// engine. Call once at startup, before the router handles traffic.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	if err := v.RegisterValidation("seatcode", validateSeatCode); err != nil {
		return err
	}
	return v.RegisterValidation("cardexpiry", validateCardExpiry)
}

func validateSeatCode(fl validator.FieldLevel) bool {
	return seatCodePattern.MatchString(fl.Field().String())
}

func validateCardExpiry(fl validator.FieldLevel) bool {
	return cardExpiryPattern.MatchString(fl.Field().String())
}
