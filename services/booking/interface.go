package booking

import (
	bookingRepo "weddinghub/database/repository/booking"
	userRepo "weddinghub/database/repository/user"
	"weddinghub/models"
)

// maxDailyConfirmed caps confirmed customer bookings per vendor per day.
const maxDailyConfirmed = 2

// Notifier records a user-facing message tied to a booking. The production
// implementation persists the record and pushes it best-effort.
type Notifier interface {
	Notify(userID, message, bookingID string)
}

// CreateBookingInput carries the fields of a booking creation request.
type CreateBookingInput struct {
	VendorID    string             `json:"vendorId" binding:"required"`
	ServiceID   string             `json:"serviceId,omitempty"`
	PackageID   string             `json:"packageId,omitempty"`
	Date        string             `json:"date" binding:"required"`
	Time        []string           `json:"time"`
	Address     string             `json:"address,omitempty"`
	PaymentType string             `json:"paymentType,omitempty"`
	BookingType models.BookingType `json:"bookingType,omitempty"`
}

// UpdateBookingInput carries the mutable fields of a booking. Empty values
// mean "not supplied"; only supplied fields are persisted.
type UpdateBookingInput struct {
	Date        string   `json:"date,omitempty"`
	Time        []string `json:"time,omitempty"`
	Address     string   `json:"address,omitempty"`
	PaymentType string   `json:"paymentType,omitempty"`
}

// BookingService manages booking records: slot-conflict checking, the status
// lifecycle, and owner-scoped visibility.
type BookingService interface {
	CreateBooking(actor *models.User, in CreateBookingInput) (*models.Booking, error)
	UpdateBooking(actor *models.User, bookingID string, in UpdateBookingInput) (*models.Booking, error)
	ConfirmBooking(actor *models.User, bookingID string) (*models.Booking, error)
	RejectBooking(actor *models.User, bookingID string) (*models.Booking, error)
	DeleteBooking(actor *models.User, bookingID string) error
	GetBookingByID(actor *models.User, bookingID string) (*models.Booking, error)
	ListMyBookings(actor *models.User) ([]models.Booking, error)
	ListUserBookings(userID string, role models.Role) ([]models.Booking, error)
	UpdatePaymentStatus(bookingID string, status models.PaymentStatus) (*models.Booking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Users    userRepo.UserRepository
	Notifier Notifier
	Locks    DayLocker
}
