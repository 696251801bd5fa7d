package payments

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CardGateway authorizes card charges. The booking flow only needs a
// yes/no plus a reference it can keep for reconciliation.
type CardGateway interface {
	Authorize(ctx context.Context, card CardRecord, amount float64) (string, error)
}

// StubGateway approves every charge and mints a local reference. It
// stands in until a real acquirer integration exists.
type StubGateway struct{}

func NewStubGateway() *StubGateway {
	return &StubGateway{}
}

func (g *StubGateway) Authorize(_ context.Context, card CardRecord, amount float64) (string, error) {
	if card.Last4 == "" || amount <= 0 {
		return "", ErrInvalidPaymentData
	}
	return fmt.Sprintf("auth-%s", uuid.NewString()), nil
}
