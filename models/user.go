package models

import "time"

// Role distinguishes the two account kinds on the marketplace.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleVendor   Role = "vendor"
)

// InvitationSetting holds a customer's wedding invitation template. Dispatch
// happens SendBeforeDays days before WeddingDate.
type InvitationSetting struct {
	WeddingDate    string `bson:"weddingDate,omitempty" json:"weddingDate,omitempty"` // "YYYY-MM-DD"
	SendBeforeDays int    `bson:"sendBeforeDays,omitempty" json:"sendBeforeDays,omitempty"`
	BrideName      string `bson:"brideName,omitempty" json:"brideName,omitempty"`
	GroomName      string `bson:"groomName,omitempty" json:"groomName,omitempty"`
	Time           string `bson:"time,omitempty" json:"time,omitempty"`
	Venue          string `bson:"venue,omitempty" json:"venue,omitempty"`
	Message        string `bson:"message,omitempty" json:"message,omitempty"`
	Template       string `bson:"template,omitempty" json:"template,omitempty"`
}

// ServiceDetail is a service offered by a vendor, embedded on the account.
type ServiceDetail struct {
	ID            string   `bson:"id" json:"id"`
	ServiceName   string   `bson:"serviceName" json:"serviceName"`
	ServiceType   string   `bson:"serviceType" json:"serviceType"`
	Description   string   `bson:"description,omitempty" json:"description,omitempty"`
	PaymentPolicy string   `bson:"paymentPolicy,omitempty" json:"paymentPolicy,omitempty"`
	MediaURLs     []string `bson:"mediaUrls,omitempty" json:"mediaUrls,omitempty"`
	AverageRating float64  `bson:"averageRating" json:"averageRating"`
	ReviewCount   int      `bson:"reviewCount" json:"reviewCount"`
	BasePrice     float64  `bson:"basePrice" json:"basePrice"`
}

// Package is a priced bundle a vendor attaches to one of its services.
type Package struct {
	ID           string  `bson:"id" json:"id"`
	PackageName  string  `bson:"packageName" json:"packageName"`
	PackagePrice float64 `bson:"packagePrice" json:"packagePrice"`
	Description  string  `bson:"description,omitempty" json:"description,omitempty"`
	ServiceID    string  `bson:"serviceId" json:"serviceId"`
}

// Subtask is a checklist entry under a planning task.
type Subtask struct {
	Title     string `bson:"title" json:"title"`
	Completed bool   `bson:"completed" json:"completed"`
}

// Task is a customer's wedding-planning task. Tasks and subtasks are addressed
// by index, matching the client contract.
type Task struct {
	Name     string    `bson:"name" json:"name"`
	Timeline string    `bson:"timeline,omitempty" json:"timeline,omitempty"`
	Deadline time.Time `bson:"deadline,omitempty" json:"deadline,omitempty"`
	Subtasks []Subtask `bson:"subtasks" json:"subtasks"`
}

// SocialLinks are a vendor's public profiles.
type SocialLinks struct {
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	Facebook  string `bson:"facebook,omitempty" json:"facebook,omitempty"`
	YouTube   string `bson:"youtube,omitempty" json:"youtube,omitempty"`
}

// User is a marketplace account. Vendor-only fields (business profile,
// services, packages) stay empty on customer accounts, and vice versa for the
// planning fields.
type User struct {
	ID           string `bson:"id" json:"id"`
	Name         string `bson:"name,omitempty" json:"name,omitempty"`
	Phone        string `bson:"phone" json:"phone"`
	Email        string `bson:"email" json:"email"`
	Role         Role   `bson:"role" json:"role"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	TokenHash    string `bson:"tokenHash,omitempty" json:"-"`
	FCMToken     string `bson:"fcmToken,omitempty" json:"-"`

	// Customer planning data.
	InvitationSetting InvitationSetting `bson:"invitationSetting,omitempty" json:"invitationSetting,omitempty"`
	Tasks             []Task            `bson:"tasks,omitempty" json:"tasks,omitempty"`

	// Vendor business profile.
	VendorPackage    PackageTier     `bson:"vendorPackage,omitempty" json:"vendorPackage,omitempty"`
	BusinessName     string          `bson:"businessName,omitempty" json:"businessName,omitempty"`
	Address          string          `bson:"address,omitempty" json:"address,omitempty"`
	UnavailableDates []string        `bson:"unavailableDates,omitempty" json:"unavailableDates,omitempty"`
	ServiceDetails   []ServiceDetail `bson:"serviceDetails,omitempty" json:"serviceDetails,omitempty"`
	Packages         []Package       `bson:"packages,omitempty" json:"packages,omitempty"`
	MediaURLs        []string        `bson:"mediaUrls,omitempty" json:"mediaUrls,omitempty"`
	SocialLinks      SocialLinks     `bson:"socialLinks,omitempty" json:"socialLinks,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// IsVendor reports whether the account has the vendor role.
func (u *User) IsVendor() bool {
	return u.Role == RoleVendor
}
