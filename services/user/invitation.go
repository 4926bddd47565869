package user

import (
	"time"

	"weddinghub/models"
	"weddinghub/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// SetInvitationSetting stores the customer's invitation template and, when a
// wedding date and lead time are set, schedules the automated dispatch.
func (s *DefaultUserService) SetInvitationSetting(actor *models.User, setting models.InvitationSetting) (*models.User, error) {
	if actor.IsVendor() {
		return nil, RoleError{Required: "customer"}
	}

	var sendAt time.Time
	if setting.WeddingDate != "" {
		d, err := time.ParseInLocation(models.DateLayout, setting.WeddingDate, time.Local)
		if err != nil {
			return nil, ValidationError{Message: "weddingDate must use the YYYY-MM-DD format"}
		}
		if setting.SendBeforeDays < 0 {
			return nil, ValidationError{Message: "sendBeforeDays cannot be negative"}
		}
		sendAt = d.AddDate(0, 0, -setting.SendBeforeDays)
	}

	u, err := s.Repo.UpdateFields(actor.ID, bson.M{
		"invitationSetting": setting,
		"updatedAt":         time.Now(),
	})
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, NotFoundError{ID: actor.ID}
	}

	if s.Scheduler != nil && !sendAt.IsZero() && sendAt.After(time.Now()) {
		if err := s.Scheduler.ScheduleInvitations(actor.ID, sendAt); err != nil {
			utils.GetLogger().Error("failed to schedule invitation dispatch",
				zap.String("userId", actor.ID),
				zap.Time("sendAt", sendAt),
				zap.Error(err),
			)
		} else {
			utils.GetLogger().Info("invitation dispatch scheduled",
				zap.String("userId", actor.ID),
				zap.Time("sendAt", sendAt),
			)
		}
	}
	return u, nil
}

// GetInvitationSetting returns the customer's stored invitation template.
func (s *DefaultUserService) GetInvitationSetting(actor *models.User) (*models.InvitationSetting, error) {
	u, err := s.loadCustomer(actor)
	if err != nil {
		return nil, err
	}
	return &u.InvitationSetting, nil
}
