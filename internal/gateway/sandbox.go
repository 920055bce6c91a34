package gateway

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"bid4service/internal/marketerrors"
	"bid4service/utils"
)

// Sandbox is an in-process PaymentGateway for local runs and tests. Holds are
// tracked in memory; a payment method reference beginning with "declined" is
// rejected, which lets tests exercise the gateway-failure path end to end.
type Sandbox struct {
	mu        sync.Mutex
	holds     map[string]float64 // external ref -> held amount
	captured  map[string]float64
	customers map[string]string
}

// NewSandbox creates an empty sandbox gateway.
func NewSandbox() *Sandbox {
	return &Sandbox{
		holds:     make(map[string]float64),
		captured:  make(map[string]float64),
		customers: make(map[string]string),
	}
}

func (g *Sandbox) CreateCustomer(ctx context.Context, userID string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if ref, ok := g.customers[userID]; ok {
		return ref, nil
	}
	ref := "cus_" + utils.GenerateID()
	g.customers[userID] = ref
	return ref, nil
}

func (g *Sandbox) AuthorizeHold(ctx context.Context, paymentMethodRef string, amount float64) (string, error) {
	if strings.HasPrefix(paymentMethodRef, "declined") {
		return "", fmt.Errorf("%w: card declined", marketerrors.ErrGateway)
	}
	if amount <= 0 {
		return "", fmt.Errorf("%w: non-positive hold amount", marketerrors.ErrGateway)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	ref := "tx_" + utils.GenerateID()
	g.holds[ref] = amount
	return ref, nil
}

func (g *Sandbox) Capture(ctx context.Context, externalRef string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	amount, ok := g.holds[externalRef]
	if !ok {
		return fmt.Errorf("%w: unknown hold %s", marketerrors.ErrGateway, externalRef)
	}
	delete(g.holds, externalRef)
	g.captured[externalRef] = amount
	return nil
}

func (g *Sandbox) Refund(ctx context.Context, externalRef string, amount float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, held := g.holds[externalRef]; held {
		delete(g.holds, externalRef)
		return nil
	}
	if _, ok := g.captured[externalRef]; ok {
		delete(g.captured, externalRef)
		return nil
	}
	return fmt.Errorf("%w: unknown transaction %s", marketerrors.ErrGateway, externalRef)
}

// HeldAmount reports the current hold for a transaction. Test helper.
func (g *Sandbox) HeldAmount(externalRef string) float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.holds[externalRef]
}
