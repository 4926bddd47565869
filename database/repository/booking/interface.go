package bookingRepo

import (
	"weddinghub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// BookingRepository defines data access for booking and availability records.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(b *models.Booking) error
	// GetByID retrieves a booking by its unique ID. Returns nil, nil when absent.
	GetByID(id string) (*models.Booking, error)
	// UpdateFields applies a partial update and returns the updated record.
	UpdateFields(id string, fields bson.M) (*models.Booking, error)
	// UpdateStatus persists a status transition.
	UpdateStatus(id string, status models.BookingStatus) error
	// Delete removes a booking record by its ID.
	Delete(id string) error

	// FindByCustomer lists a customer's booking-type records.
	FindByCustomer(customerID string) ([]models.Booking, error)
	// FindByVendor lists a vendor's records; includeAvailability widens the
	// result to availability blocks.
	FindByVendor(vendorID string, includeAvailability bool) ([]models.Booking, error)

	// FindConfirmedSlotClashes returns confirmed booking-type records for
	// (vendorID, date) whose slot set intersects slots, excluding excludeID
	// when non-empty.
	FindConfirmedSlotClashes(vendorID, date string, slots []string, excludeID string) ([]models.Booking, error)
	// FindAvailabilityClashes returns availability records for (vendorID, date)
	// whose slot set intersects slots, excluding excludeID when non-empty.
	FindAvailabilityClashes(vendorID, date string, slots []string, excludeID string) ([]models.Booking, error)
	// CountConfirmed counts confirmed booking-type records for (vendorID, date).
	CountConfirmed(vendorID, date string) (int64, error)
}
