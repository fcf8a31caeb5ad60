package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/PramudithaWeerakoon/radio-reservation-service/internal/domain"
)

// BookingRepository persists seat reservations
type BookingRepository interface {
	// CreateWithInventory atomically checks and decrements the event's seat
	// pool and inserts the booking. On success the booking's timestamps are
	// populated. Fails with domain.ErrEventNotFound, a
	// domain.InsufficientSeatsError, or domain.ErrDuplicateReferenceCode;
	// any failure leaves the store untouched.
	CreateWithInventory(ctx context.Context, booking *domain.Booking) error

	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)

	// UpdateStatus applies a guarded status change: the row is only updated
	// when its current status equals from.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.Status) error

	// CancelWithRestock cancels the booking and returns its seats to the
	// event's pool in one transaction.
	CancelWithRestock(ctx context.Context, id uuid.UUID) error
}
