package gateway

import "context"

// CheckoutParams describes the one-off payable item a checkout session is
// created for.
type CheckoutParams struct {
	HireID        string
	ReferenceCode string
	CustomerEmail string
	Description   string
	Amount        float64
	Currency      string
}

// CheckoutSession is the gateway's handle for a pending payment attempt.
// It is returned to the caller for redirect and never persisted.
type CheckoutSession struct {
	ID  string
	URL string
}

// CheckoutGateway creates external checkout sessions. Each call creates a
// fresh session; local state is never mutated here.
type CheckoutGateway interface {
	CreateCheckoutSession(ctx context.Context, params *CheckoutParams) (*CheckoutSession, error)
	Name() string
}
