package dto

import (
	"time"

	"github.com/PramudithaWeerakoon/radio-reservation-service/internal/domain"
)

// CustomerInfo is the contact block on a booking request
type CustomerInfo struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// CreateBookingRequest is the body for POST /bookings/create
type CreateBookingRequest struct {
	EventID       string       `json:"event_id" binding:"required,uuid"`
	Seats         int          `json:"seats" binding:"required,min=1"`
	CustomerInfo  CustomerInfo `json:"customer_info" binding:"required"`
	PaymentMethod string       `json:"payment_method"`
}

// UpdateBookingStatusRequest is the body for PATCH /bookings/:id
type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// BookingResponse is the wire shape of a booking record
type BookingResponse struct {
	ID            string    `json:"id"`
	EventID       string    `json:"event_id"`
	SeatCount     int       `json:"seat_count"`
	ReferenceCode string    `json:"reference_code"`
	ContactName   string    `json:"contact_name"`
	ContactEmail  string    `json:"contact_email"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateBookingResponse is the success body for POST /bookings/create
type CreateBookingResponse struct {
	ReferenceCode  string          `json:"reference_code"`
	BookingID      string          `json:"booking_id"`
	BookingDetails BookingResponse `json:"booking_details"`
}

// ToBookingResponse maps a domain booking to its wire shape
func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID.String(),
		EventID:       b.EventID.String(),
		SeatCount:     b.SeatCount,
		ReferenceCode: b.ReferenceCode,
		ContactName:   b.ContactName,
		ContactEmail:  b.ContactEmail,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
	}
}
