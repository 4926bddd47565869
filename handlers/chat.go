package handlers

import (
	"net/http"

	"weddinghub/middleware"
	chatSvc "weddinghub/services/chat"

	"github.com/gin-gonic/gin"
)

// ChatHandler exposes the messaging endpoints.
type ChatHandler struct {
	Svc chatSvc.ChatService
}

// NewChatHandler creates a ChatHandler.
func NewChatHandler(svc chatSvc.ChatService) *ChatHandler {
	return &ChatHandler{Svc: svc}
}

// Send handles POST /chats.
func (h *ChatHandler) Send(c *gin.Context) {
	var in chatSvc.SendMessageInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}

	msg, err := h.Svc.SendMessage(middleware.CurrentUser(c), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": msg})
}

// Conversation handles GET /chats/:userId.
func (h *ChatHandler) Conversation(c *gin.Context) {
	msgs, err := h.Svc.GetConversation(middleware.CurrentUser(c), c.Param("userId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "messages": msgs})
}

// Partners handles GET /chats.
func (h *ChatHandler) Partners(c *gin.Context) {
	partners, err := h.Svc.ListPartners(middleware.CurrentUser(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "partners": partners})
}
