package handlers

import (
	"net/http"

	"weddinghub/middleware"
	notificationSvc "weddinghub/services/notification"

	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes the notification feed.
type NotificationHandler struct {
	Svc notificationSvc.NotificationService
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(svc notificationSvc.NotificationService) *NotificationHandler {
	return &NotificationHandler{Svc: svc}
}

// List handles GET /notifications.
func (h *NotificationHandler) List(c *gin.Context) {
	notifications, err := h.Svc.ListForUser(middleware.CurrentUser(c).ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "notifications": notifications})
}
