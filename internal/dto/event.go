package dto

import (
	"time"

	"github.com/PramudithaWeerakoon/radio-reservation-service/internal/domain"
)

// CreateEventRequest is the body for the admin POST /events endpoint
type CreateEventRequest struct {
	Title          string    `json:"title" binding:"required"`
	Venue          string    `json:"venue" binding:"required"`
	Date           time.Time `json:"date" binding:"required"`
	Price          float64   `json:"price" binding:"min=0"`
	AvailableSeats int       `json:"available_seats" binding:"required,min=0"`
}

// EventResponse is the wire shape of an event
type EventResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Venue          string    `json:"venue"`
	Date           time.Time `json:"date"`
	Price          float64   `json:"price"`
	AvailableSeats int       `json:"available_seats"`
}

// ToEventResponse maps a domain event to its wire shape
func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:             e.ID.String(),
		Title:          e.Title,
		Venue:          e.Venue,
		Date:           e.Date,
		Price:          e.Price,
		AvailableSeats: e.AvailableSeats,
	}
}
