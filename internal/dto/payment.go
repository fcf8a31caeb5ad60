package dto

// CreateCheckoutRequest is the body for POST /payment/checkout
type CreateCheckoutRequest struct {
	HireID string `json:"hire_id" binding:"required,uuid"`
}

// CreateCheckoutResponse carries the gateway session handle back to the
// caller for redirect.
type CreateCheckoutResponse struct {
	SessionID   string `json:"session_id"`
	CheckoutURL string `json:"checkout_url"`
}

// RedirectPageResponse is the JSON body rendered on the gateway's
// success/cancel redirect targets.
type RedirectPageResponse struct {
	Message        string        `json:"message"`
	SupportContact string        `json:"support_contact,omitempty"`
	Hire           *HireResponse `json:"hire,omitempty"`
}
