package fares

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeatCode(t *testing.T) {
	row, letter, err := ParseSeatCode("14C")
	require.NoError(t, err)
	assert.Equal(t, 14, row)
	assert.Equal(t, byte('C'), letter)

	row, letter, err = ParseSeatCode("1A")
	require.NoError(t, err)
	assert.Equal(t, 1, row)
	assert.Equal(t, byte('A'), letter)

	row, _, err = ParseSeatCode("999Z")
	require.NoError(t, err)
	assert.Equal(t, 999, row)
}

func TestParseSeatCode_Invalid(t *testing.T) {
	cases := []string{"", "A", "14", "C14", "0A", "-1B", "12c", "12AB"}
	for _, code := range cases {
		_, _, err := ParseSeatCode(code)
		assert.Error(t, err, "expected %q to be rejected", code)
	}
}
