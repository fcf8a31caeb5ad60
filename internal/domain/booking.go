package domain

import (
	"time"

	"github.com/google/uuid"
)

// Booking is a seat reservation against an event. Bookings are created
// already confirmed: the seat decrement and the record insert commit in the
// same transaction, so there is no intermediate pending state to hold.
type Booking struct {
	ID            uuid.UUID `json:"id"`
	EventID       uuid.UUID `json:"event_id"`
	SeatCount     int       `json:"seat_count"`
	ReferenceCode string    `json:"reference_code"`
	ContactName   string    `json:"contact_name"`
	ContactEmail  string    `json:"contact_email"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Validate checks the booking request fields before any inventory work
func (b *Booking) Validate() error {
	if b.EventID == uuid.Nil {
		return ErrMissingEventID
	}
	if b.SeatCount <= 0 {
		return ErrInvalidSeatCount
	}
	if b.ContactName == "" || b.ContactEmail == "" {
		return ErrInvalidContactInfo
	}
	return nil
}
