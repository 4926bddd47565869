package user

import (
	"time"

	"weddinghub/models"
	"weddinghub/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// vendorListProjection keeps credential and planning fields out of the public
// vendor directory.
var vendorListProjection = bson.M{
	"passwordHash":      0,
	"tokenHash":         0,
	"fcmToken":          0,
	"tasks":             0,
	"invitationSetting": 0,
}

// GetProfile returns the account for the given ID.
func (s *DefaultUserService) GetProfile(userID string) (*models.User, error) {
	u, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, NotFoundError{ID: userID}
	}
	return u, nil
}

// UpdateProfile applies the supplied profile fields.
func (s *DefaultUserService) UpdateProfile(userID string, in ProfileUpdateInput) (*models.User, error) {
	fields := bson.M{}
	if in.Name != "" {
		fields["name"] = in.Name
	}
	if in.Phone != "" {
		fields["phone"] = in.Phone
	}
	if in.Address != "" {
		fields["address"] = in.Address
	}
	if len(fields) == 0 {
		return s.GetProfile(userID)
	}
	fields["updatedAt"] = time.Now()

	u, err := s.Repo.UpdateFields(userID, fields)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, NotFoundError{ID: userID}
	}
	return u, nil
}

// DeleteAccount removes the account and revokes its cached session.
func (s *DefaultUserService) DeleteAccount(userID string) error {
	if err := s.Repo.Delete(userID); err != nil {
		return err
	}
	invalidateAuthCache(userID)
	utils.GetLogger().Info("account deleted", zap.String("userId", userID))
	return nil
}

// ListVendors returns vendor accounts for the public directory, optionally
// narrowed to vendors offering a given service type.
func (s *DefaultUserService) ListVendors(serviceType string) ([]models.User, error) {
	vendors, err := s.Repo.FindVendors(vendorListProjection)
	if err != nil {
		return nil, err
	}
	if serviceType == "" {
		return vendors, nil
	}

	filtered := make([]models.User, 0, len(vendors))
	for _, v := range vendors {
		for _, sd := range v.ServiceDetails {
			if sd.ServiceType == serviceType {
				filtered = append(filtered, v)
				break
			}
		}
	}
	return filtered, nil
}

// SetupVendor sets the vendor business profile. The tier defaults to basic
// when omitted and rejects unknown values.
func (s *DefaultUserService) SetupVendor(actor *models.User, in VendorSetupInput) (*models.User, error) {
	if !actor.IsVendor() {
		return nil, RoleError{Required: "vendor"}
	}

	tier := in.VendorTier
	if tier == "" {
		tier = models.TierBasic
	}
	if !models.ValidTier(tier) {
		return nil, ValidationError{Message: "unknown vendor tier"}
	}

	fields := bson.M{
		"businessName":  in.BusinessName,
		"vendorPackage": tier,
		"updatedAt":     time.Now(),
	}
	if in.Address != "" {
		fields["address"] = in.Address
	}
	if in.MediaURLs != nil {
		fields["mediaUrls"] = in.MediaURLs
	}
	if in.SocialLinks != (models.SocialLinks{}) {
		fields["socialLinks"] = in.SocialLinks
	}

	u, err := s.Repo.UpdateFields(actor.ID, fields)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, NotFoundError{ID: actor.ID}
	}
	return u, nil
}

// SetUnavailableDates replaces the vendor's blocked-out dates.
func (s *DefaultUserService) SetUnavailableDates(actor *models.User, dates []string) (*models.User, error) {
	if !actor.IsVendor() {
		return nil, RoleError{Required: "vendor"}
	}
	for _, d := range dates {
		if _, err := time.ParseInLocation(models.DateLayout, d, time.Local); err != nil {
			return nil, ValidationError{Message: "dates must use the YYYY-MM-DD format"}
		}
	}

	u, err := s.Repo.UpdateFields(actor.ID, bson.M{
		"unavailableDates": dates,
		"updatedAt":        time.Now(),
	})
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, NotFoundError{ID: actor.ID}
	}
	return u, nil
}
