package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event is a bookable inventory item: a dated show with a seat pool.
type Event struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Venue          string    `json:"venue"`
	Date           time.Time `json:"date"`
	Price          float64   `json:"price"`
	AvailableSeats int       `json:"available_seats"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
