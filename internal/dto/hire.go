package dto

import (
	"time"

	"github.com/PramudithaWeerakoon/radio-reservation-service/internal/domain"
)

// CreateHireRequest is the body for POST /hire/create
type CreateHireRequest struct {
	ContactName   string    `json:"contact_name" binding:"required"`
	ContactEmail  string    `json:"contact_email" binding:"required,email"`
	PreferredDate time.Time `json:"preferred_date" binding:"required"`
	Description   string    `json:"description" binding:"required"`
}

// UpdateHireRequest is the body for PATCH /hire/:id. All fields optional;
// absent fields leave the record untouched.
type UpdateHireRequest struct {
	Status        *string    `json:"status"`
	ContactName   *string    `json:"contact_name"`
	ContactEmail  *string    `json:"contact_email"`
	PreferredDate *time.Time `json:"preferred_date"`
	Description   *string    `json:"description"`
	Payment       *bool      `json:"payment"`
}

// HireResponse is the wire shape of a hire record
type HireResponse struct {
	ID            string    `json:"id"`
	ContactName   string    `json:"contact_name"`
	ContactEmail  string    `json:"contact_email"`
	PreferredDate time.Time `json:"preferred_date"`
	Description   string    `json:"description"`
	Status        string    `json:"status"`
	Payment       bool      `json:"payment"`
	ReferenceCode string    `json:"reference_code"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateHireResponse is the success body for POST /hire/create
type CreateHireResponse struct {
	ReferenceCode string       `json:"reference_code"`
	HireID        string       `json:"hire_id"`
	HireDetails   HireResponse `json:"hire_details"`
}

// ToHireResponse maps a domain hire to its wire shape
func ToHireResponse(h *domain.Hire) HireResponse {
	return HireResponse{
		ID:            h.ID.String(),
		ContactName:   h.ContactName,
		ContactEmail:  h.ContactEmail,
		PreferredDate: h.PreferredDate,
		Description:   h.Description,
		Status:        string(h.Status),
		Payment:       h.Payment,
		ReferenceCode: h.ReferenceCode,
		CreatedAt:     h.CreatedAt,
	}
}
