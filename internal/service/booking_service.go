package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/PramudithaWeerakoon/radio-reservation-service/internal/domain"
	"github.com/PramudithaWeerakoon/radio-reservation-service/internal/repository"
	"github.com/PramudithaWeerakoon/radio-reservation-service/pkg/logger"
	"github.com/PramudithaWeerakoon/radio-reservation-service/pkg/telemetry"
)

// BookingService handles seat reservations
type BookingService struct {
	bookings repository.BookingRepository
	notifier Notifier
}

// NewBookingService creates a new BookingService
func NewBookingService(bookings repository.BookingRepository, notifier Notifier) *BookingService {
	return &BookingService{bookings: bookings, notifier: notifier}
}

// CreateBooking reserves seats on an event. The seat decrement and the
// booking insert commit atomically; the booking comes back confirmed.
// Reference-code collisions are retried with a fresh code.
func (s *BookingService) CreateBooking(ctx context.Context, booking *domain.Booking) error {
	ctx, span := telemetry.StartSpan(ctx, "service.booking.create")
	defer span.End()

	span.SetAttributes(
		attribute.String("event_id", booking.EventID.String()),
		attribute.Int("seat_count", booking.SeatCount),
	)

	if err := booking.Validate(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	booking.Status = domain.StatusConfirmed

	var err error
	for attempt := 1; attempt <= refCodeMaxAttempts; attempt++ {
		booking.ID = uuid.New()
		booking.ReferenceCode, err = generateReferenceCode(BookingRefPrefix)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}

		err = s.bookings.CreateWithInventory(ctx, booking)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrDuplicateReferenceCode) {
			span.SetStatus(codes.Error, err.Error())
			return err
		}
		logger.Get().Warn("reference code collision, retrying",
			zap.String("reference_code", booking.ReferenceCode),
			zap.Int("attempt", attempt),
		)
	}
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to allocate unique reference code: %w", err)
	}

	// Notice dispatch never affects the committed booking.
	if nerr := s.notifier.BookingConfirmed(ctx, booking); nerr != nil {
		logger.Get().Warn("failed to dispatch booking confirmation",
			zap.String("booking_id", booking.ID.String()),
			zap.Error(nerr),
		)
	}

	span.SetAttributes(attribute.String("reference_code", booking.ReferenceCode))
	span.SetStatus(codes.Ok, "")
	return nil
}

// GetBooking returns a booking by id
func (s *BookingService) GetBooking(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.booking.get")
	defer span.End()

	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetStatus(codes.Ok, "")
	return booking, nil
}

// UpdateStatus applies a guarded status change to a booking. Cancelling
// returns the booking's seats to the event's pool.
func (s *BookingService) UpdateStatus(ctx context.Context, id uuid.UUID, rawStatus string) (*domain.Booking, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.booking.update_status")
	defer span.End()

	span.SetAttributes(
		attribute.String("booking_id", id.String()),
		attribute.String("target_status", rawStatus),
	)

	target, err := domain.ParseStatus(rawStatus)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if err := booking.Status.ValidateTransition(target); err != nil {
		span.SetStatus(codes.Error, "invalid transition")
		return nil, err
	}

	if target == domain.StatusCancelled {
		err = s.bookings.CancelWithRestock(ctx, id)
	} else {
		err = s.bookings.UpdateStatus(ctx, id, booking.Status, target)
	}
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	updated, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetStatus(codes.Ok, "")
	return updated, nil
}
