package handlers

import (
	"net/http"

	"weddinghub/middleware"
	reviewSvc "weddinghub/services/review"

	"github.com/gin-gonic/gin"
)

// ReviewHandler exposes the review endpoints.
type ReviewHandler struct {
	Svc reviewSvc.ReviewService
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(svc reviewSvc.ReviewService) *ReviewHandler {
	return &ReviewHandler{Svc: svc}
}

// Create handles POST /reviews.
func (h *ReviewHandler) Create(c *gin.Context) {
	var in reviewSvc.CreateReviewInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}

	r, err := h.Svc.CreateReview(middleware.CurrentUser(c), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "review": r})
}

// List handles GET /reviews/:targetId.
func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.Svc.ListReviews(c.Param("targetId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reviews": reviews})
}

// Update handles PUT /reviews/:id.
func (h *ReviewHandler) Update(c *gin.Context) {
	var in reviewSvc.UpdateReviewInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}

	r, err := h.Svc.UpdateReview(middleware.CurrentUser(c), c.Param("id"), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "review": r})
}

// Delete handles DELETE /reviews/:id.
func (h *ReviewHandler) Delete(c *gin.Context) {
	if err := h.Svc.DeleteReview(middleware.CurrentUser(c), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Review deleted"})
}
