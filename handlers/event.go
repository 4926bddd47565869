package handlers

import (
	"net/http"

	"weddinghub/middleware"
	eventSvc "weddinghub/services/event"

	"github.com/gin-gonic/gin"
)

// EventHandler exposes the wedding timeline endpoints.
type EventHandler struct {
	Svc eventSvc.EventService
}

// NewEventHandler creates an EventHandler.
func NewEventHandler(svc eventSvc.EventService) *EventHandler {
	return &EventHandler{Svc: svc}
}

// Add handles POST /events.
func (h *EventHandler) Add(c *gin.Context) {
	var in eventSvc.EventInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}

	e, err := h.Svc.AddEvent(middleware.CurrentUser(c), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "event": e})
}

// List handles GET /events.
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.Svc.ListEvents(middleware.CurrentUser(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "events": events})
}

// Update handles PUT /events/:id.
func (h *EventHandler) Update(c *gin.Context) {
	var in eventSvc.EventInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}

	e, err := h.Svc.UpdateEvent(middleware.CurrentUser(c), c.Param("id"), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "event": e})
}

// Delete handles DELETE /events/:id.
func (h *EventHandler) Delete(c *gin.Context) {
	if err := h.Svc.RemoveEvent(middleware.CurrentUser(c), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Event removed"})
}
