package gateway

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
)

// StripeGateway implements CheckoutGateway using Stripe Checkout
type StripeGateway struct {
	config *StripeGatewayConfig
}

// StripeGatewayConfig holds configuration for the Stripe gateway
type StripeGatewayConfig struct {
	SecretKey string
	// PublicBaseURL is where Stripe redirects the browser after checkout
	PublicBaseURL string
}

// NewStripeGateway creates a new Stripe gateway
func NewStripeGateway(config *StripeGatewayConfig) (*StripeGateway, error) {
	if config == nil {
		return nil, fmt.Errorf("stripe config is required")
	}
	if config.SecretKey == "" {
		return nil, fmt.Errorf("stripe secret key is required")
	}
	if config.PublicBaseURL == "" {
		return nil, fmt.Errorf("public base URL is required")
	}

	// Set Stripe API key globally
	stripe.Key = config.SecretKey

	return &StripeGateway{config: config}, nil
}

// CreateCheckoutSession registers a one-off payable item with Stripe and
// returns the hosted checkout session. The redirect URLs carry the hire id;
// {CHECKOUT_SESSION_ID} is substituted by Stripe on redirect.
func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, req *CheckoutParams) (*CheckoutSession, error) {
	if req == nil {
		return nil, fmt.Errorf("checkout params are required")
	}

	// Stripe expects the smallest currency unit
	amountInCents := int64(req.Amount * 100)

	successURL := SuccessURL(g.config.PublicBaseURL, req.HireID)
	cancelURL := CancelURL(g.config.PublicBaseURL, req.HireID)

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(req.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.Description),
					},
					UnitAmount: stripe.Int64(amountInCents),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(successURL),
		CancelURL:  stripe.String(cancelURL),
		Metadata: map[string]string{
			"hire_id":        req.HireID,
			"reference_code": req.ReferenceCode,
		},
	}
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}

	sess, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	return &CheckoutSession{ID: sess.ID, URL: sess.URL}, nil
}

// Name returns the gateway name
func (g *StripeGateway) Name() string {
	return "stripe"
}

// SuccessURL builds the redirect target for a completed checkout
func SuccessURL(baseURL, hireID string) string {
	return fmt.Sprintf("%s/hire/payment/success?hireId=%s&session_id={CHECKOUT_SESSION_ID}", baseURL, hireID)
}

// CancelURL builds the redirect target for an abandoned checkout
func CancelURL(baseURL, hireID string) string {
	return fmt.Sprintf("%s/hire/payment/canceled?orderId=%s&reason=checkout_cancelled", baseURL, hireID)
}
