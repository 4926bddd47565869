package booking

import (
	"weddinghub/models"
	"weddinghub/utils"

	"go.uber.org/zap"
)

// GetBookingByID returns a booking visible to its customer or its vendor.
func (s *DefaultBookingService) GetBookingByID(actor *models.User, bookingID string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, NotFoundError{ID: bookingID}
	}

	isCustomer := actor.Role == models.RoleCustomer && b.CustomerID == actor.ID
	isVendor := actor.IsVendor() && b.VendorID == actor.ID
	if !isCustomer && !isVendor {
		return nil, ForbiddenError{Reason: "not authorized to view this booking"}
	}
	return b, nil
}

// ListMyBookings lists the caller's booking-type records: a customer sees the
// bookings it made, a vendor the bookings made with it.
func (s *DefaultBookingService) ListMyBookings(actor *models.User) ([]models.Booking, error) {
	switch actor.Role {
	case models.RoleCustomer:
		return s.Repo.FindByCustomer(actor.ID)
	case models.RoleVendor:
		return s.Repo.FindByVendor(actor.ID, false)
	default:
		return nil, ForbiddenError{Reason: "only vendors or customers can view bookings"}
	}
}

// ListUserBookings lists records for an arbitrary user by role. Vendor
// listings include availability blocks.
func (s *DefaultBookingService) ListUserBookings(userID string, role models.Role) ([]models.Booking, error) {
	switch role {
	case models.RoleCustomer:
		return s.Repo.FindByCustomer(userID)
	case models.RoleVendor:
		return s.Repo.FindByVendor(userID, true)
	default:
		return nil, ForbiddenError{Reason: "role required (customer or vendor)"}
	}
}

// DeleteBooking removes a record owned by the actor.
func (s *DefaultBookingService) DeleteBooking(actor *models.User, bookingID string) error {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return err
	}
	if b == nil {
		return NotFoundError{ID: bookingID}
	}
	if !canModify(actor, b) {
		return ForbiddenError{Reason: "not authorized to delete this booking"}
	}

	if err := s.Repo.Delete(bookingID); err != nil {
		return err
	}

	utils.GetLogger().Info("booking deleted",
		zap.String("bookingId", bookingID),
		zap.String("type", string(b.BookingType)),
	)
	return nil
}
