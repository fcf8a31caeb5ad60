package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/PramudithaWeerakoon/radio-reservation-service/internal/domain"
	"github.com/PramudithaWeerakoon/radio-reservation-service/internal/repository"
	"github.com/PramudithaWeerakoon/radio-reservation-service/pkg/logger"
	"github.com/PramudithaWeerakoon/radio-reservation-service/pkg/telemetry"
)

// HireService handles hire-request intake and payment reconciliation
type HireService struct {
	hires    repository.HireRepository
	notifier Notifier
}

// NewHireService creates a new HireService
func NewHireService(hires repository.HireRepository, notifier Notifier) *HireService {
	return &HireService{hires: hires, notifier: notifier}
}

// CreateHire records a new hire request for an authenticated owner. The
// record starts pending with no payment; confirmation arrives later through
// the gateway callback.
func (s *HireService) CreateHire(ctx context.Context, ownerID string, hire *domain.Hire) error {
	ctx, span := telemetry.StartSpan(ctx, "service.hire.create")
	defer span.End()

	if ownerID == "" {
		span.SetStatus(codes.Error, "unauthenticated")
		return domain.ErrAuthenticationRequired
	}
	if err := hire.Validate(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	hire.OwnerID = ownerID
	hire.Status = domain.StatusPending
	hire.Payment = false

	var err error
	for attempt := 1; attempt <= refCodeMaxAttempts; attempt++ {
		hire.ID = uuid.New()
		hire.ReferenceCode, err = generateReferenceCode(HireRefPrefix)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}

		err = s.hires.Create(ctx, hire)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrDuplicateReferenceCode) {
			span.SetStatus(codes.Error, err.Error())
			return err
		}
		logger.Get().Warn("reference code collision, retrying",
			zap.String("reference_code", hire.ReferenceCode),
			zap.Int("attempt", attempt),
		)
	}
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to allocate unique reference code: %w", err)
	}

	span.SetAttributes(
		attribute.String("hire_id", hire.ID.String()),
		attribute.String("reference_code", hire.ReferenceCode),
	)
	span.SetStatus(codes.Ok, "")
	return nil
}

// GetHire returns a hire request by id
func (s *HireService) GetHire(ctx context.Context, id uuid.UUID) (*domain.Hire, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.hire.get")
	defer span.End()

	hire, err := s.hires.GetByID(ctx, id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetStatus(codes.Ok, "")
	return hire, nil
}

// ConfirmPayment applies the gateway's success signal: pending hires become
// confirmed with payment recorded. Repeated calls are no-ops returning the
// already-confirmed record; a cancelled hire cannot be resurrected.
func (s *HireService) ConfirmPayment(ctx context.Context, id uuid.UUID, gatewaySessionID string) (*domain.Hire, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.hire.confirm_payment")
	defer span.End()

	span.SetAttributes(attribute.String("hire_id", id.String()))

	applied, err := s.hires.ConfirmPayment(ctx, id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	hire, err := s.hires.GetByID(ctx, id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if !applied {
		if hire.Status == domain.StatusCancelled {
			span.SetStatus(codes.Error, "cancelled hire")
			return nil, domain.ErrInvalidTransition
		}
		// Already confirmed by an earlier callback; nothing to re-apply.
		logger.Get().Info("duplicate payment confirmation ignored",
			zap.String("hire_id", id.String()),
			zap.String("gateway_session_id", gatewaySessionID),
		)
		span.SetStatus(codes.Ok, "")
		return hire, nil
	}

	logger.Get().Info("hire payment confirmed",
		zap.String("hire_id", id.String()),
		zap.String("reference_code", hire.ReferenceCode),
		zap.String("gateway_session_id", gatewaySessionID),
	)

	if nerr := s.notifier.HirePaymentConfirmed(ctx, hire); nerr != nil {
		logger.Get().Warn("failed to dispatch hire confirmation",
			zap.String("hire_id", id.String()),
			zap.Error(nerr),
		)
	}

	span.SetStatus(codes.Ok, "")
	return hire, nil
}

// RecordCancelledCheckout notes an abandoned checkout. The hire keeps its
// pending status so the user can retry payment later.
func (s *HireService) RecordCancelledCheckout(ctx context.Context, id uuid.UUID, reason string) (*domain.Hire, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.hire.cancelled_checkout")
	defer span.End()

	hire, err := s.hires.GetByID(ctx, id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	logger.Get().Info("checkout cancelled by user",
		zap.String("hire_id", id.String()),
		zap.String("reason", reason),
		zap.String("status", string(hire.Status)),
	)

	span.SetStatus(codes.Ok, "")
	return hire, nil
}

// UpdateHireInput carries the optional fields of a hire patch
type UpdateHireInput struct {
	Status        *string
	ContactName   *string
	ContactEmail  *string
	PreferredDate *time.Time
	Description   *string
	Payment       *bool
}

// UpdateHire applies a partial update. A status change goes through the
// transition guard; the remaining fields are merged onto the record.
func (s *HireService) UpdateHire(ctx context.Context, id uuid.UUID, input *UpdateHireInput) (*domain.Hire, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.hire.update")
	defer span.End()

	span.SetAttributes(attribute.String("hire_id", id.String()))

	hire, err := s.hires.GetByID(ctx, id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	// Validate everything before the first write so a rejected patch leaves
	// no partial state behind.
	var target domain.Status
	if input.Status != nil {
		target, err = domain.ParseStatus(*input.Status)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		if err := hire.Status.ValidateTransition(target); err != nil {
			span.SetStatus(codes.Error, "invalid transition")
			return nil, err
		}
	}

	if input.ContactName != nil {
		hire.ContactName = *input.ContactName
	}
	if input.ContactEmail != nil {
		hire.ContactEmail = *input.ContactEmail
	}
	if input.PreferredDate != nil {
		hire.PreferredDate = *input.PreferredDate
	}
	if input.Description != nil {
		hire.Description = *input.Description
	}
	if input.Payment != nil {
		hire.Payment = *input.Payment
	}

	if err := hire.Validate(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if input.Status != nil {
		from := hire.Status
		if err := s.hires.UpdateStatus(ctx, id, from, target); err != nil {
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		hire.Status = target
	}

	if err := s.hires.Update(ctx, hire); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	updated, err := s.hires.GetByID(ctx, id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetStatus(codes.Ok, "")
	return updated, nil
}
