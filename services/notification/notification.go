package notification

import (
	"context"
	"time"

	notificationRepo "weddinghub/database/repository/notification"
	userRepo "weddinghub/database/repository/user"
	"weddinghub/models"
	"weddinghub/utils"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// defaultListLimit caps how many notifications a listing returns.
const defaultListLimit = 50

// NotificationService records and lists user-facing notifications.
type NotificationService interface {
	// Notify persists a notification and pushes it best-effort. Failures are
	// logged, never surfaced, so callers can fire and forget.
	Notify(userID, message, bookingID string)
	// ListForUser returns the user's most recent notifications.
	ListForUser(userID string) ([]models.Notification, error)
}

// DefaultNotificationService implements NotificationService.
type DefaultNotificationService struct {
	Repo  notificationRepo.NotificationRepository
	Users userRepo.UserRepository
}

// NewNotificationService creates a NotificationService.
func NewNotificationService(repo notificationRepo.NotificationRepository, users userRepo.UserRepository) *DefaultNotificationService {
	return &DefaultNotificationService{Repo: repo, Users: users}
}

// Notify persists the notification, then attempts an FCM push when the user
// has a registered device token.
func (s *DefaultNotificationService) Notify(userID, message, bookingID string) {
	logger := utils.GetLogger()

	n := &models.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Message:   message,
		BookingID: bookingID,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.Create(n); err != nil {
		logger.Error("failed to persist notification",
			zap.String("userId", userID),
			zap.Error(err),
		)
		return
	}

	s.push(userID, message)
}

// push delivers the message over FCM. Missing client, missing token, and send
// failures all degrade to a log line.
func (s *DefaultNotificationService) push(userID, message string) {
	if utils.FCMClient == nil {
		return
	}
	logger := utils.GetLogger()

	user, err := s.Users.GetByID(userID)
	if err != nil || user == nil || user.FCMToken == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	msg := &messaging.Message{
		Token: user.FCMToken,
		Notification: &messaging.Notification{
			Title: "WeddingHub",
			Body:  message,
		},
	}
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		logger.Warn("push delivery failed",
			zap.String("userId", userID),
			zap.Error(err),
		)
	}
}

// ListForUser returns the user's notifications, newest first.
func (s *DefaultNotificationService) ListForUser(userID string) ([]models.Notification, error) {
	return s.Repo.FindByUser(userID, defaultListLimit)
}
