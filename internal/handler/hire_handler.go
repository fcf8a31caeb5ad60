package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/PramudithaWeerakoon/radio-reservation-service/internal/domain"
	"github.com/PramudithaWeerakoon/radio-reservation-service/internal/dto"
	"github.com/PramudithaWeerakoon/radio-reservation-service/internal/middleware"
	"github.com/PramudithaWeerakoon/radio-reservation-service/internal/service"
)

const supportContact = "support@radio-band.example"

// HireHandler serves the hire endpoints, including the gateway's
// success/cancel redirect targets.
type HireHandler struct {
	hires *service.HireService
}

// NewHireHandler creates a new HireHandler
func NewHireHandler(hires *service.HireService) *HireHandler {
	return &HireHandler{hires: hires}
}

// Create handles POST /hire/create
func (h *HireHandler) Create(c *gin.Context) {
	ownerID, _ := middleware.GetUserID(c)

	var req dto.CreateHireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	hire := &domain.Hire{
		ContactName:   req.ContactName,
		ContactEmail:  req.ContactEmail,
		PreferredDate: req.PreferredDate,
		Description:   req.Description,
	}

	if err := h.hires.CreateHire(c.Request.Context(), ownerID, hire); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CreateHireResponse{
		ReferenceCode: hire.ReferenceCode,
		HireID:        hire.ID.String(),
		HireDetails:   dto.ToHireResponse(hire),
	})
}

// Get handles GET /hire/:id
func (h *HireHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		invalidID(c, "hire")
		return
	}

	hire, err := h.hires.GetHire(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToHireResponse(hire))
}

// Update handles PATCH /hire/:id
func (h *HireHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		invalidID(c, "hire")
		return
	}

	var req dto.UpdateHireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	hire, err := h.hires.UpdateHire(c.Request.Context(), id, &service.UpdateHireInput{
		Status:        req.Status,
		ContactName:   req.ContactName,
		ContactEmail:  req.ContactEmail,
		PreferredDate: req.PreferredDate,
		Description:   req.Description,
		Payment:       req.Payment,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToHireResponse(hire))
}

// PaymentSuccess handles PATCH /hire/:id/success. This is the callback
// reconciler's entry point; the gateway session id arrives as a query param.
func (h *HireHandler) PaymentSuccess(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		invalidID(c, "hire")
		return
	}

	sessionID := c.Query("session_id")

	hire, err := h.hires.ConfirmPayment(c.Request.Context(), id, sessionID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToHireResponse(hire))
}

// SuccessPage handles GET /hire/payment/success?session_id=&hireId=. The
// browser lands here after checkout; confirm the hire and show the result.
// Errors here must stay friendly, the user just paid.
func (h *HireHandler) SuccessPage(c *gin.Context) {
	rawID := c.Query("hireId")
	id, err := uuid.Parse(rawID)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.RedirectPageResponse{
			Message:        "We could not match your payment to a hire request.",
			SupportContact: supportContact,
		})
		return
	}

	hire, err := h.hires.ConfirmPayment(c.Request.Context(), id, c.Query("session_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, dto.RedirectPageResponse{
			Message:        "We received your payment but could not update your hire request. Please contact support.",
			SupportContact: supportContact,
		})
		return
	}

	resp := dto.ToHireResponse(hire)
	c.JSON(http.StatusOK, dto.RedirectPageResponse{
		Message: "Payment received, your hire request is confirmed. A confirmation has been sent to " + hire.ContactEmail + ".",
		Hire:    &resp,
	})
}

// CancelPage handles GET /hire/payment/canceled?reason=&orderId=. The hire
// keeps its pending status so the user can retry.
func (h *HireHandler) CancelPage(c *gin.Context) {
	reason := c.Query("reason")

	if id, err := uuid.Parse(c.Query("orderId")); err == nil {
		if hire, err := h.hires.RecordCancelledCheckout(c.Request.Context(), id, reason); err == nil {
			resp := dto.ToHireResponse(hire)
			c.JSON(http.StatusOK, dto.RedirectPageResponse{
				Message: "Checkout was cancelled. Your hire request is still open and you can pay any time.",
				Hire:    &resp,
			})
			return
		}
	}

	c.JSON(http.StatusOK, dto.RedirectPageResponse{
		Message:        "Checkout was cancelled. No payment was taken.",
		SupportContact: supportContact,
	})
}
