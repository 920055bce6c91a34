package gateway

import (
	"context"
)

//go:generate mockgen -source=gateway.go -destination=mock_gateway.go -package=gateway

// PaymentGateway wraps the external card-processing provider. Implementations
// must be side-effect free on error: a failed call never implies a partial
// hold or transfer.
type PaymentGateway interface {
	// CreateCustomer registers a payer with the processor and returns the
	// processor's customer reference.
	CreateCustomer(ctx context.Context, userID string) (string, error)
	// AuthorizeHold places an authorization hold on the payer's payment
	// method without capturing, returning the processor transaction id.
	AuthorizeHold(ctx context.Context, paymentMethodRef string, amount float64) (string, error)
	// Capture captures a previously authorized hold.
	Capture(ctx context.Context, externalRef string) error
	// Refund reverses a hold or a captured transfer identified by the
	// processor transaction id.
	Refund(ctx context.Context, externalRef string, amount float64) error
}
