package handlers

import (
	"net/http"

	"weddinghub/middleware"
	"weddinghub/models"
	bookingSvc "weddinghub/services/booking"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking endpoints.
type BookingHandler struct {
	Svc bookingSvc.BookingService
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc bookingSvc.BookingService) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

// Create handles POST /bookings.
func (h *BookingHandler) Create(c *gin.Context) {
	var in bookingSvc.CreateBookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}

	b, err := h.Svc.CreateBooking(middleware.CurrentUser(c), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "booking": b})
}

// Get handles GET /bookings/:id.
func (h *BookingHandler) Get(c *gin.Context) {
	b, err := h.Svc.GetBookingByID(middleware.CurrentUser(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": b})
}

// ListMine handles GET /bookings.
func (h *BookingHandler) ListMine(c *gin.Context) {
	bookings, err := h.Svc.ListMyBookings(middleware.CurrentUser(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": bookings})
}

// ListForUser handles GET /bookings/user/:userId. The role query selects the
// perspective: a customer's reservations or a vendor's calendar.
func (h *BookingHandler) ListForUser(c *gin.Context) {
	role := models.Role(c.Query("role"))
	bookings, err := h.Svc.ListUserBookings(c.Param("userId"), role)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": bookings})
}

// Update handles PUT /bookings/:id.
func (h *BookingHandler) Update(c *gin.Context) {
	var in bookingSvc.UpdateBookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}

	b, err := h.Svc.UpdateBooking(middleware.CurrentUser(c), c.Param("id"), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": b})
}

// Confirm handles PATCH /bookings/:id/confirm.
func (h *BookingHandler) Confirm(c *gin.Context) {
	b, err := h.Svc.ConfirmBooking(middleware.CurrentUser(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": b})
}

// Reject handles PATCH /bookings/:id/reject.
func (h *BookingHandler) Reject(c *gin.Context) {
	b, err := h.Svc.RejectBooking(middleware.CurrentUser(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": b})
}

// UpdatePaymentStatus handles PATCH /bookings/:id/payment-status.
func (h *BookingHandler) UpdatePaymentStatus(c *gin.Context) {
	var in struct {
		PaymentStatus models.PaymentStatus `json:"paymentStatus" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}

	b, err := h.Svc.UpdatePaymentStatus(c.Param("id"), in.PaymentStatus)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": b})
}

// Delete handles DELETE /bookings/:id.
func (h *BookingHandler) Delete(c *gin.Context) {
	if err := h.Svc.DeleteBooking(middleware.CurrentUser(c), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking deleted"})
}
