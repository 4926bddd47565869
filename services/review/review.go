package review

import (
	"fmt"
	"time"

	reviewRepo "weddinghub/database/repository/review"
	userRepo "weddinghub/database/repository/user"
	"weddinghub/models"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"weddinghub/utils"
)

// ForbiddenError signals editing someone else's review or reviewing a vendor
// whose plan disables reviews.
type ForbiddenError struct {
	Reason string
}

func (e ForbiddenError) Error() string {
	return e.Reason
}

// NotFoundError signals a missing review.
type NotFoundError struct {
	ID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("review %s not found", e.ID)
}

// ValidationError reports a rejected input field.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// CreateReviewInput carries a new review. ServiceID scopes the review to one
// of the vendor's services; empty means the vendor as a whole.
type CreateReviewInput struct {
	VendorID  string `json:"vendorId" binding:"required"`
	ServiceID string `json:"serviceId,omitempty"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment,omitempty"`
}

// UpdateReviewInput carries the mutable review fields.
type UpdateReviewInput struct {
	Rating  int    `json:"rating,omitempty"`
	Comment string `json:"comment,omitempty"`
}

// ReviewService manages vendor reviews and the per-service rating aggregates.
type ReviewService interface {
	CreateReview(actor *models.User, in CreateReviewInput) (*models.Review, error)
	UpdateReview(actor *models.User, reviewID string, in UpdateReviewInput) (*models.Review, error)
	DeleteReview(actor *models.User, reviewID string) error
	ListReviews(targetID string) ([]models.Review, error)
}

// DefaultReviewService implements ReviewService.
type DefaultReviewService struct {
	Repo  reviewRepo.ReviewRepository
	Users userRepo.UserRepository
}

// NewReviewService creates a ReviewService.
func NewReviewService(repo reviewRepo.ReviewRepository, users userRepo.UserRepository) *DefaultReviewService {
	return &DefaultReviewService{Repo: repo, Users: users}
}

func validRating(r int) bool {
	return r >= 1 && r <= 5
}

// CreateReview stores a review after checking the vendor's plan allows them,
// then refreshes the service rating aggregate.
func (s *DefaultReviewService) CreateReview(actor *models.User, in CreateReviewInput) (*models.Review, error) {
	if !validRating(in.Rating) {
		return nil, ValidationError{Message: "rating must be between 1 and 5"}
	}

	vendor, err := s.Users.GetByID(in.VendorID)
	if err != nil {
		return nil, fmt.Errorf("vendor lookup failed: %w", err)
	}
	if vendor == nil || !vendor.IsVendor() {
		return nil, ValidationError{Message: "vendor not found"}
	}
	if !models.TierFeatures(vendor.VendorPackage).AllowReviews {
		return nil, ForbiddenError{Reason: "this vendor's plan does not accept reviews"}
	}

	targetID := in.VendorID
	if in.ServiceID != "" {
		if !ownsService(vendor, in.ServiceID) {
			return nil, ValidationError{Message: "service not found for this vendor"}
		}
		targetID = in.ServiceID
	}

	now := time.Now()
	r := &models.Review{
		ID:        uuid.New().String(),
		UserID:    actor.ID,
		VendorID:  in.VendorID,
		TargetID:  targetID,
		Rating:    in.Rating,
		Comment:   in.Comment,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(r); err != nil {
		return nil, err
	}

	s.refreshAggregate(r.VendorID, r.TargetID)
	return r, nil
}

// UpdateReview edits the caller's own review.
func (s *DefaultReviewService) UpdateReview(actor *models.User, reviewID string, in UpdateReviewInput) (*models.Review, error) {
	r, err := s.Repo.GetByID(reviewID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, NotFoundError{ID: reviewID}
	}
	if r.UserID != actor.ID {
		return nil, ForbiddenError{Reason: "not authorized to edit this review"}
	}

	if in.Rating != 0 {
		if !validRating(in.Rating) {
			return nil, ValidationError{Message: "rating must be between 1 and 5"}
		}
		r.Rating = in.Rating
	}
	if in.Comment != "" {
		r.Comment = in.Comment
	}
	r.UpdatedAt = time.Now()

	if err := s.Repo.Update(r); err != nil {
		return nil, err
	}

	s.refreshAggregate(r.VendorID, r.TargetID)
	return r, nil
}

// DeleteReview removes the caller's own review.
func (s *DefaultReviewService) DeleteReview(actor *models.User, reviewID string) error {
	r, err := s.Repo.GetByID(reviewID)
	if err != nil {
		return err
	}
	if r == nil {
		return NotFoundError{ID: reviewID}
	}
	if r.UserID != actor.ID {
		return ForbiddenError{Reason: "not authorized to delete this review"}
	}

	if err := s.Repo.Delete(reviewID); err != nil {
		return err
	}

	s.refreshAggregate(r.VendorID, r.TargetID)
	return nil
}

// ListReviews lists reviews for a vendor or service target.
func (s *DefaultReviewService) ListReviews(targetID string) ([]models.Review, error) {
	return s.Repo.Find(targetID)
}

func ownsService(vendor *models.User, serviceID string) bool {
	for _, sd := range vendor.ServiceDetails {
		if sd.ID == serviceID {
			return true
		}
	}
	return false
}

// refreshAggregate recomputes a service's average rating and review count on
// the vendor record. Vendor-scoped reviews carry no aggregate. Failures are
// logged; the review write already succeeded.
func (s *DefaultReviewService) refreshAggregate(vendorID, targetID string) {
	if targetID == vendorID {
		return
	}
	logger := utils.GetLogger()

	reviews, err := s.Repo.Find(targetID)
	if err != nil {
		logger.Warn("failed to load reviews for aggregate", zap.String("targetId", targetID), zap.Error(err))
		return
	}

	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := 0.0
	if len(reviews) > 0 {
		avg = float64(sum) / float64(len(reviews))
	}

	vendor, err := s.Users.GetByID(vendorID)
	if err != nil || vendor == nil {
		logger.Warn("failed to load vendor for aggregate", zap.String("vendorId", vendorID), zap.Error(err))
		return
	}
	for i := range vendor.ServiceDetails {
		if vendor.ServiceDetails[i].ID != targetID {
			continue
		}
		vendor.ServiceDetails[i].AverageRating = avg
		vendor.ServiceDetails[i].ReviewCount = len(reviews)
		if err := s.Users.Update(vendor); err != nil {
			logger.Warn("failed to store rating aggregate", zap.String("vendorId", vendorID), zap.Error(err))
		}
		return
	}
}
