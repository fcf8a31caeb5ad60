package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/PramudithaWeerakoon/radio-reservation-service/internal/domain"
)

// EventRepository persists bookable events and their seat inventory
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
}
