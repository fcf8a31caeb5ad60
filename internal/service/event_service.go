package service

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/codes"

	"github.com/PramudithaWeerakoon/radio-reservation-service/internal/domain"
	"github.com/PramudithaWeerakoon/radio-reservation-service/internal/repository"
	"github.com/PramudithaWeerakoon/radio-reservation-service/pkg/telemetry"
)

// EventService handles the bookable event catalogue
type EventService struct {
	events repository.EventRepository
}

// NewEventService creates a new EventService
func NewEventService(events repository.EventRepository) *EventService {
	return &EventService{events: events}
}

// CreateEvent adds a new event to the catalogue
func (s *EventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	ctx, span := telemetry.StartSpan(ctx, "service.event.create")
	defer span.End()

	event.ID = uuid.New()
	if err := s.events.Create(ctx, event); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetStatus(codes.Ok, "")
	return nil
}

// GetEvent returns an event by id
func (s *EventService) GetEvent(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.event.get")
	defer span.End()

	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetStatus(codes.Ok, "")
	return event, nil
}

// ListEvents returns the full catalogue ordered by date
func (s *EventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.event.list")
	defer span.End()

	events, err := s.events.List(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetStatus(codes.Ok, "")
	return events, nil
}
