package user

import (
	"time"

	userRepo "weddinghub/database/repository/user"
	"weddinghub/models"
)

// tokenTTL is the lifetime of issued auth tokens.
const tokenTTL = 72 * time.Hour

// AuthResponse is returned from registration and sign-in.
type AuthResponse struct {
	ID    string      `json:"id"`
	Token string      `json:"token"`
	Name  string      `json:"name,omitempty"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

// SignupInput carries a registration request.
type SignupInput struct {
	Name     string      `json:"name"`
	Email    string      `json:"email" binding:"required,email"`
	Phone    string      `json:"phone" binding:"required"`
	Password string      `json:"password" binding:"required"`
	Role     models.Role `json:"role" binding:"required"`
}

// SigninInput carries a sign-in request.
type SigninInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	FCMToken string `json:"fcmToken,omitempty"`
}

// ProfileUpdateInput carries the mutable profile fields. Empty values mean
// "not supplied".
type ProfileUpdateInput struct {
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// VendorSetupInput carries the vendor business profile.
type VendorSetupInput struct {
	BusinessName string             `json:"businessName" binding:"required"`
	Address      string             `json:"address,omitempty"`
	VendorTier   models.PackageTier `json:"vendorTier,omitempty"`
	MediaURLs    []string           `json:"mediaUrls,omitempty"`
	SocialLinks  models.SocialLinks `json:"socialLinks,omitempty"`
}

// ServiceDetailInput carries a vendor service catalog entry.
type ServiceDetailInput struct {
	ServiceName   string   `json:"serviceName" binding:"required"`
	ServiceType   string   `json:"serviceType" binding:"required"`
	Description   string   `json:"description,omitempty"`
	PaymentPolicy string   `json:"paymentPolicy,omitempty"`
	MediaURLs     []string `json:"mediaUrls,omitempty"`
	BasePrice     float64  `json:"basePrice,omitempty"`
}

// PackageInput carries a vendor package attached to a service.
type PackageInput struct {
	PackageName  string  `json:"packageName" binding:"required"`
	PackagePrice float64 `json:"packagePrice" binding:"required"`
	Description  string  `json:"description,omitempty"`
	ServiceID    string  `json:"serviceId" binding:"required"`
}

// TaskInput carries a planning task.
type TaskInput struct {
	Name     string    `json:"name" binding:"required"`
	Timeline string    `json:"timeline,omitempty"`
	Deadline time.Time `json:"deadline,omitempty"`
}

// InvitationScheduler enqueues the invitation dispatch for a customer at a
// given time. The queue worker performs the actual sending.
type InvitationScheduler interface {
	ScheduleInvitations(userID string, sendAt time.Time) error
}

// UserService manages accounts: authentication, profiles, the vendor catalog,
// planning tasks, and invitation settings.
type UserService interface {
	RegisterUser(in SignupInput) (*AuthResponse, error)
	SignIn(in SigninInput) (*AuthResponse, error)
	SignOut(userID string) error

	GetProfile(userID string) (*models.User, error)
	UpdateProfile(userID string, in ProfileUpdateInput) (*models.User, error)
	DeleteAccount(userID string) error
	ListVendors(serviceType string) ([]models.User, error)

	SetupVendor(actor *models.User, in VendorSetupInput) (*models.User, error)
	SetUnavailableDates(actor *models.User, dates []string) (*models.User, error)

	AddService(actor *models.User, in ServiceDetailInput) (*models.User, error)
	UpdateService(actor *models.User, serviceID string, in ServiceDetailInput) (*models.User, error)
	RemoveService(actor *models.User, serviceID string) (*models.User, error)

	AddPackage(actor *models.User, in PackageInput) (*models.User, error)
	UpdatePackage(actor *models.User, packageID string, in PackageInput) (*models.User, error)
	RemovePackage(actor *models.User, packageID string) (*models.User, error)

	AddTask(actor *models.User, in TaskInput) (*models.User, error)
	UpdateTask(actor *models.User, index int, in TaskInput) (*models.User, error)
	RemoveTask(actor *models.User, index int) (*models.User, error)
	AddSubtask(actor *models.User, taskIndex int, title string) (*models.User, error)
	ToggleSubtask(actor *models.User, taskIndex, subIndex int) (*models.User, error)
	RemoveSubtask(actor *models.User, taskIndex, subIndex int) (*models.User, error)

	SetInvitationSetting(actor *models.User, setting models.InvitationSetting) (*models.User, error)
	GetInvitationSetting(actor *models.User) (*models.InvitationSetting, error)
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo      userRepo.UserRepository
	Scheduler InvitationScheduler
}
