package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/PramudithaWeerakoon/radio-reservation-service/internal/domain"
	"github.com/PramudithaWeerakoon/radio-reservation-service/internal/dto"
	"github.com/PramudithaWeerakoon/radio-reservation-service/internal/service"
)

// EventHandler serves the event catalogue endpoints
type EventHandler struct {
	events *service.EventService
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(events *service.EventService) *EventHandler {
	return &EventHandler{events: events}
}

// List handles GET /events
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.events.ListEvents(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	out := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, dto.ToEventResponse(e))
	}
	c.JSON(http.StatusOK, gin.H{"events": out})
}

// Get handles GET /events/:id
func (h *EventHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		invalidID(c, "event")
		return
	}

	event, err := h.events.GetEvent(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// Create handles POST /events (admin only)
func (h *EventHandler) Create(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	event := &domain.Event{
		Title:          req.Title,
		Venue:          req.Venue,
		Date:           req.Date,
		Price:          req.Price,
		AvailableSeats: req.AvailableSeats,
	}

	if err := h.events.CreateEvent(c.Request.Context(), event); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}
