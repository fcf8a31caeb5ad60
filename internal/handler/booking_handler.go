package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/PramudithaWeerakoon/radio-reservation-service/internal/domain"
	"github.com/PramudithaWeerakoon/radio-reservation-service/internal/dto"
	"github.com/PramudithaWeerakoon/radio-reservation-service/internal/service"
)

// BookingHandler serves the booking endpoints
type BookingHandler struct {
	bookings *service.BookingService
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(bookings *service.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// Create handles POST /bookings/create
func (h *BookingHandler) Create(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		invalidID(c, "event")
		return
	}

	booking := &domain.Booking{
		EventID:      eventID,
		SeatCount:    req.Seats,
		ContactName:  req.CustomerInfo.Name,
		ContactEmail: req.CustomerInfo.Email,
	}

	if err := h.bookings.CreateBooking(c.Request.Context(), booking); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CreateBookingResponse{
		ReferenceCode:  booking.ReferenceCode,
		BookingID:      booking.ID.String(),
		BookingDetails: dto.ToBookingResponse(booking),
	})
}

// Get handles GET /bookings/:id
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		invalidID(c, "booking")
		return
	}

	booking, err := h.bookings.GetBooking(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// UpdateStatus handles PATCH /bookings/:id
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		invalidID(c, "booking")
		return
	}

	var req dto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	booking, err := h.bookings.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}
