package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PramudithaWeerakoon/radio-reservation-service/internal/domain"
	"github.com/PramudithaWeerakoon/radio-reservation-service/internal/gateway"
)

func TestCreateCheckoutSession(t *testing.T) {
	repo := newMemHireRepo()
	hireSvc := NewHireService(repo, &recordingNotifier{})
	hire := newHire()
	require.NoError(t, hireSvc.CreateHire(context.Background(), "user-1", hire))

	gw := gateway.NewMockGateway("http://localhost:8080")
	svc := NewPaymentService(repo, gw, 250, "usd")

	session, err := svc.CreateCheckoutSession(context.Background(), hire.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.NotEmpty(t, session.URL)

	// The hire stays pending until the callback lands.
	after, err := repo.GetByID(context.Background(), hire.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, after.Status)
	assert.False(t, after.Payment)

	// A second call creates a distinct session.
	second, err := svc.CreateCheckoutSession(context.Background(), hire.ID)
	require.NoError(t, err)
	assert.NotEqual(t, session.ID, second.ID)
}

func TestCreateCheckoutSessionUnknownHire(t *testing.T) {
	svc := NewPaymentService(newMemHireRepo(), gateway.NewMockGateway("http://localhost:8080"), 250, "usd")

	_, err := svc.CreateCheckoutSession(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrHireNotFound)
}

func TestCreateCheckoutSessionGatewayFailure(t *testing.T) {
	repo := newMemHireRepo()
	hireSvc := NewHireService(repo, &recordingNotifier{})
	hire := newHire()
	require.NoError(t, hireSvc.CreateHire(context.Background(), "user-1", hire))

	gw := gateway.NewMockGateway("http://localhost:8080")
	gw.FailWith = assert.AnError
	svc := NewPaymentService(repo, gw, 250, "usd")

	_, err := svc.CreateCheckoutSession(context.Background(), hire.ID)
	assert.ErrorIs(t, err, domain.ErrGatewayUnavailable)
}
