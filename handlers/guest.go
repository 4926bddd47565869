package handlers

import (
	"net/http"

	"weddinghub/middleware"
	guestSvc "weddinghub/services/guest"

	"github.com/gin-gonic/gin"
)

// GuestHandler exposes the guest list and invitation endpoints.
type GuestHandler struct {
	Svc guestSvc.GuestService
}

// NewGuestHandler creates a GuestHandler.
func NewGuestHandler(svc guestSvc.GuestService) *GuestHandler {
	return &GuestHandler{Svc: svc}
}

// Add handles POST /guests.
func (h *GuestHandler) Add(c *gin.Context) {
	var in guestSvc.GuestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}

	g, err := h.Svc.AddGuest(middleware.CurrentUser(c), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "guest": g})
}

// List handles GET /guests.
func (h *GuestHandler) List(c *gin.Context) {
	guests, err := h.Svc.ListGuests(middleware.CurrentUser(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "guests": guests})
}

// Update handles PUT /guests/:id.
func (h *GuestHandler) Update(c *gin.Context) {
	var in guestSvc.GuestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}

	g, err := h.Svc.UpdateGuest(middleware.CurrentUser(c), c.Param("id"), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "guest": g})
}

// Delete handles DELETE /guests/:id.
func (h *GuestHandler) Delete(c *gin.Context) {
	if err := h.Svc.RemoveGuest(middleware.CurrentUser(c), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Guest removed"})
}

// SendInvitations handles POST /invitations/send, an immediate dispatch of
// the caller's pending invitations.
func (h *GuestHandler) SendInvitations(c *gin.Context) {
	result, err := h.Svc.SendInvitations(middleware.CurrentUser(c).ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": result})
}
