package handlers

import (
	"net/http"

	"weddinghub/middleware"
	paymentSvc "weddinghub/services/payment"

	"github.com/gin-gonic/gin"
)

// PaymentHandler exposes the card payment endpoints.
type PaymentHandler struct {
	Svc paymentSvc.PaymentService
}

// NewPaymentHandler creates a PaymentHandler.
func NewPaymentHandler(svc paymentSvc.PaymentService) *PaymentHandler {
	return &PaymentHandler{Svc: svc}
}

// CreateIntent handles POST /payments/intent.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var in struct {
		BookingID string `json:"bookingId" binding:"required"`
		Amount    int64  `json:"amount" binding:"required"`
		Currency  string `json:"currency,omitempty"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.Svc.CreateIntent(middleware.CurrentUser(c), in.BookingID, in.Amount, in.Currency)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "intent": resp})
}

// Complete handles POST /payments/complete.
func (h *PaymentHandler) Complete(c *gin.Context) {
	var in struct {
		BookingID string `json:"bookingId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}

	b, err := h.Svc.CompletePayment(middleware.CurrentUser(c), in.BookingID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": b})
}
