package gateway

import (
	"context"
	"fmt"
	"sync/atomic"
)

// MockGateway implements CheckoutGateway without an external provider. It is
// used in tests and for local runs when no Stripe key is configured.
type MockGateway struct {
	PublicBaseURL string
	// FailWith, when set, makes every call fail with this error
	FailWith error

	counter atomic.Int64
}

// NewMockGateway creates a mock gateway
func NewMockGateway(publicBaseURL string) *MockGateway {
	return &MockGateway{PublicBaseURL: publicBaseURL}
}

// CreateCheckoutSession fabricates a session handle. Each call yields a new
// session id, mirroring the real gateway's side-effect count.
func (g *MockGateway) CreateCheckoutSession(ctx context.Context, req *CheckoutParams) (*CheckoutSession, error) {
	if g.FailWith != nil {
		return nil, g.FailWith
	}
	if req == nil {
		return nil, fmt.Errorf("checkout params are required")
	}

	id := fmt.Sprintf("cs_mock_%s_%d", req.HireID, g.counter.Add(1))
	return &CheckoutSession{
		ID:  id,
		URL: fmt.Sprintf("%s/mock-checkout/%s", g.PublicBaseURL, id),
	}, nil
}

// Name returns the gateway name
func (g *MockGateway) Name() string {
	return "mock"
}
