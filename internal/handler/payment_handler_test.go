package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PramudithaWeerakoon/radio-reservation-service/internal/dto"
)

func TestCheckoutEndpoint(t *testing.T) {
	env := newTestEnv(t)
	hire := env.addPendingHire(t, "user-1")

	body := fmt.Sprintf(`{"hire_id": %q}`, hire.ID)
	w := env.do(http.MethodPost, "/payment/checkout", body, bearer(t, "user-1", "user"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.CreateCheckoutResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.SessionID)
	assert.NotEmpty(t, resp.CheckoutURL)

	// Checkout does not touch the hire record.
	stored := env.hireRepo.hires[hire.ID]
	assert.Equal(t, "pending", string(stored.Status))
	assert.False(t, stored.Payment)
}

func TestCheckoutRequiresAuth(t *testing.T) {
	env := newTestEnv(t)
	hire := env.addPendingHire(t, "user-1")

	body := fmt.Sprintf(`{"hire_id": %q}`, hire.ID)
	w := env.do(http.MethodPost, "/payment/checkout", body, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCheckoutUnknownHire(t *testing.T) {
	env := newTestEnv(t)

	body := fmt.Sprintf(`{"hire_id": %q}`, uuid.New())
	w := env.do(http.MethodPost, "/payment/checkout", body, bearer(t, "user-1", "user"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCheckoutGatewayFailure(t *testing.T) {
	env := newTestEnv(t)
	hire := env.addPendingHire(t, "user-1")
	env.gateway.FailWith = assert.AnError

	body := fmt.Sprintf(`{"hire_id": %q}`, hire.ID)
	w := env.do(http.MethodPost, "/payment/checkout", body, bearer(t, "user-1", "user"))
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "GATEWAY_ERROR", resp.Code)
	// The provider's failure detail never reaches the client.
	assert.NotContains(t, resp.Message, assert.AnError.Error())
}
