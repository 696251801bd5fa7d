package payments

import (
	"crypto/rand"
	"math/big"
)

const slipNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewSlipNumber generates a deferred-slip reference of the form
// "FC" followed by eight random alphanumeric characters.
func NewSlipNumber() string {
	return "FC" + randomRef(8)
}

func randomRef(n int) string {
	buf := make([]byte, n)
	max := big.NewInt(int64(len(slipNumberAlphabet)))
	for i := range buf {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the platform source is
			// broken, in which case nothing else works either.
			panic(err)
		}
		buf[i] = slipNumberAlphabet[idx.Int64()]
	}
	return string(buf)
}
