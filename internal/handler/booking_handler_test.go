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

func TestCreateBookingEndpoint(t *testing.T) {
	env := newTestEnv(t)
	eventID := env.addEvent(10)

	body := fmt.Sprintf(`{
		"event_id": %q,
		"seats": 3,
		"customer_info": {"name": "Ann", "email": "ann@example.com"},
		"payment_method": "card"
	}`, eventID)

	w := env.do(http.MethodPost, "/bookings/create", body, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.CreateBookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Regexp(t, `^BK-[A-Z0-9]{8}$`, resp.ReferenceCode)
	assert.NotEmpty(t, resp.BookingID)
	assert.Equal(t, 3, resp.BookingDetails.SeatCount)
	assert.Equal(t, "confirmed", resp.BookingDetails.Status)
	assert.Equal(t, 7, env.bookingRepo.seats[eventID])
}

func TestCreateBookingInsufficientSeatsEndpoint(t *testing.T) {
	env := newTestEnv(t)
	eventID := env.addEvent(2)

	body := fmt.Sprintf(`{
		"event_id": %q,
		"seats": 5,
		"customer_info": {"name": "Ann", "email": "ann@example.com"}
	}`, eventID)

	w := env.do(http.MethodPost, "/bookings/create", body, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INSUFFICIENT_SEATS", resp.Code)
	require.NotNil(t, resp.Remaining)
	assert.Equal(t, 2, *resp.Remaining)

	// Rejection left the inventory untouched.
	assert.Equal(t, 2, env.bookingRepo.seats[eventID])
}

func TestCreateBookingMalformedBody(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/bookings/create", `{"seats": 2}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_REQUEST", resp.Code)
}

func TestCreateBookingUnknownEventEndpoint(t *testing.T) {
	env := newTestEnv(t)

	body := fmt.Sprintf(`{
		"event_id": %q,
		"seats": 1,
		"customer_info": {"name": "Ann", "email": "ann@example.com"}
	}`, uuid.New())

	w := env.do(http.MethodPost, "/bookings/create", body, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPatchBookingStatusEndpoint(t *testing.T) {
	env := newTestEnv(t)
	eventID := env.addEvent(10)

	body := fmt.Sprintf(`{
		"event_id": %q,
		"seats": 4,
		"customer_info": {"name": "Ann", "email": "ann@example.com"}
	}`, eventID)
	w := env.do(http.MethodPost, "/bookings/create", body, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var created dto.CreateBookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	// Anonymous and non-admin callers are rejected.
	w = env.do(http.MethodPatch, "/bookings/"+created.BookingID, `{"status":"cancelled"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(http.MethodPatch, "/bookings/"+created.BookingID, `{"status":"cancelled"}`, bearer(t, "user-1", "user"))
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Admin cancel succeeds and restocks.
	w = env.do(http.MethodPatch, "/bookings/"+created.BookingID, `{"status":"cancelled"}`, bearer(t, "admin-1", "admin"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "cancelled", updated.Status)
	assert.Equal(t, 10, env.bookingRepo.seats[eventID])

	// Cancelled is terminal.
	w = env.do(http.MethodPatch, "/bookings/"+created.BookingID, `{"status":"confirmed"}`, bearer(t, "admin-1", "admin"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Equal(t, "INVALID_TRANSITION", errResp.Code)
}

func TestGetBookingEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/bookings/"+uuid.NewString(), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(http.MethodGet, "/bookings/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
