package fares

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidSeatCode is wrapped by every seat-code parse failure.
var ErrInvalidSeatCode = errors.New("invalid seat code")

// ParseSeatCode splits a seat code like "14C" into its row number and
// column letter. The scheme is a 1-based row number followed by exactly one
// uppercase letter; double-letter columns are not supported.
func ParseSeatCode(code string) (row int, letter byte, err error) {
	if len(code) < 2 {
		return 0, 0, fmt.Errorf("%w %q", ErrInvalidSeatCode, code)
	}

	letter = code[len(code)-1]
	if letter < 'A' || letter > 'Z' {
		return 0, 0, fmt.Errorf("%w %q: column must be a single letter A-Z", ErrInvalidSeatCode, code)
	}

	row, err = strconv.Atoi(code[:len(code)-1])
	if err != nil || row < 1 {
		return 0, 0, fmt.Errorf("%w %q: bad row number", ErrInvalidSeatCode, code)
	}

	return row, letter, nil
}
