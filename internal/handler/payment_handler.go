package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/PramudithaWeerakoon/radio-reservation-service/internal/dto"
	"github.com/PramudithaWeerakoon/radio-reservation-service/internal/service"
)

// PaymentHandler serves the checkout endpoint
type PaymentHandler struct {
	payments *service.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(payments *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// Checkout handles POST /payment/checkout
func (h *PaymentHandler) Checkout(c *gin.Context) {
	var req dto.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	hireID, err := uuid.Parse(req.HireID)
	if err != nil {
		invalidID(c, "hire")
		return
	}

	session, err := h.payments.CreateCheckoutSession(c.Request.Context(), hireID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CreateCheckoutResponse{
		SessionID:   session.ID,
		CheckoutURL: session.URL,
	})
}
