package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/PramudithaWeerakoon/radio-reservation-service/internal/domain"
)

// HireRepository persists hire requests
type HireRepository interface {
	Create(ctx context.Context, hire *domain.Hire) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Hire, error)

	// Update overwrites the mutable fields (contact, date, description,
	// payment flag) of an existing record.
	Update(ctx context.Context, hire *domain.Hire) error

	// UpdateStatus applies a guarded status change, as for bookings.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.Status) error

	// ConfirmPayment flips a pending hire to confirmed/payment=true. It
	// reports whether the transition was applied by this call; false with a
	// nil error means the row was not pending (caller diagnoses).
	ConfirmPayment(ctx context.Context, id uuid.UUID) (bool, error)
}
