package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/PramudithaWeerakoon/radio-reservation-service/internal/domain"
	"github.com/PramudithaWeerakoon/radio-reservation-service/internal/gateway"
	"github.com/PramudithaWeerakoon/radio-reservation-service/internal/repository"
	"github.com/PramudithaWeerakoon/radio-reservation-service/pkg/logger"
	"github.com/PramudithaWeerakoon/radio-reservation-service/pkg/telemetry"
)

// PaymentService drives the checkout round trip for hire deposits
type PaymentService struct {
	hires       repository.HireRepository
	gateway     gateway.CheckoutGateway
	hireDeposit float64
	currency    string
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(hires repository.HireRepository, gw gateway.CheckoutGateway, hireDeposit float64, currency string) *PaymentService {
	return &PaymentService{
		hires:       hires,
		gateway:     gw,
		hireDeposit: hireDeposit,
		currency:    currency,
	}
}

// CreateCheckoutSession registers the hire deposit with the gateway and
// returns the session handle for redirect. Local state is not mutated; the
// hire stays pending until the gateway's success callback lands. Each call
// creates a fresh external session.
func (s *PaymentService) CreateCheckoutSession(ctx context.Context, hireID uuid.UUID) (*gateway.CheckoutSession, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.payment.create_checkout")
	defer span.End()

	span.SetAttributes(
		attribute.String("hire_id", hireID.String()),
		attribute.String("gateway", s.gateway.Name()),
	)

	hire, err := s.hires.GetByID(ctx, hireID)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	session, err := s.gateway.CreateCheckoutSession(ctx, &gateway.CheckoutParams{
		HireID:        hire.ID.String(),
		ReferenceCode: hire.ReferenceCode,
		CustomerEmail: hire.ContactEmail,
		Description:   fmt.Sprintf("Band hire deposit %s", hire.ReferenceCode),
		Amount:        s.hireDeposit,
		Currency:      s.currency,
	})
	if err != nil {
		logger.Get().Error("checkout session creation failed",
			zap.String("hire_id", hireID.String()),
			zap.String("gateway", s.gateway.Name()),
			zap.Error(err),
		)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("%w: %v", domain.ErrGatewayUnavailable, err)
	}

	logger.Get().Info("checkout session created",
		zap.String("hire_id", hireID.String()),
		zap.String("session_id", session.ID),
	)

	span.SetAttributes(attribute.String("session_id", session.ID))
	span.SetStatus(codes.Ok, "")
	return session, nil
}
