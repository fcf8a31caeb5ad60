package domain

import (
	"time"

	"github.com/google/uuid"
)

// Hire is a request to book the band for a private engagement. It starts
// pending and is confirmed by the payment gateway's success callback.
type Hire struct {
	ID            uuid.UUID `json:"id"`
	OwnerID       string    `json:"owner_id"`
	ContactName   string    `json:"contact_name"`
	ContactEmail  string    `json:"contact_email"`
	PreferredDate time.Time `json:"preferred_date"`
	Description   string    `json:"description"`
	Status        Status    `json:"status"`
	Payment       bool      `json:"payment"`
	ReferenceCode string    `json:"reference_code"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Validate checks the hire request fields
func (h *Hire) Validate() error {
	if h.ContactName == "" || h.ContactEmail == "" {
		return ErrInvalidContactInfo
	}
	if h.PreferredDate.IsZero() {
		return ErrInvalidDate
	}
	if h.Description == "" {
		return ErrInvalidDescription
	}
	return nil
}
