package booking

import (
	"fmt"
	"strings"

	"weddinghub/models"
	"weddinghub/utils"

	"go.uber.org/zap"
)

// loadForVendor fetches a booking and checks the actor is its vendor.
func (s *DefaultBookingService) loadForVendor(actor *models.User, bookingID, action string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, NotFoundError{ID: bookingID}
	}
	if !actor.IsVendor() || b.VendorID != actor.ID {
		return nil, ForbiddenError{Reason: "not authorized to " + action + " this booking"}
	}
	return b, nil
}

// ConfirmBooking transitions a pending booking to confirmed. Confirmation is
// blocked purely on the daily confirmed count; the slot labels themselves are
// not re-checked here, so two pending bookings for the same slot can both be
// confirmed while capacity allows. Arbitration between them is the vendor's
// call (reject one manually).
func (s *DefaultBookingService) ConfirmBooking(actor *models.User, bookingID string) (*models.Booking, error) {
	b, err := s.loadForVendor(actor, bookingID, "confirm")
	if err != nil {
		return nil, err
	}

	release, err := s.Locks.Lock(b.VendorID, b.Date)
	if err != nil {
		return nil, err
	}
	defer release()

	if err := b.Confirm(); err != nil {
		return nil, err
	}

	count, err := s.Repo.CountConfirmed(b.VendorID, b.Date)
	if err != nil {
		return nil, fmt.Errorf("capacity check failed: %w", err)
	}
	if count >= maxDailyConfirmed {
		return nil, CapacityError{VendorID: b.VendorID, Date: b.Date}
	}

	if err := s.Repo.UpdateStatus(b.ID, b.Status); err != nil {
		return nil, err
	}

	slots := strings.Join(b.Time, ", ")
	s.Notifier.Notify(b.CustomerID,
		fmt.Sprintf("Your booking for %s at %s has been confirmed by the vendor.", b.Date, slots), b.ID)
	s.Notifier.Notify(b.VendorID,
		fmt.Sprintf("You have confirmed the booking for %s at %s.", b.Date, slots), b.ID)

	utils.GetLogger().Info("booking confirmed",
		zap.String("bookingId", b.ID),
		zap.String("vendorId", b.VendorID),
	)
	return b, nil
}

// RejectBooking transitions a pending booking to rejected, terminal.
func (s *DefaultBookingService) RejectBooking(actor *models.User, bookingID string) (*models.Booking, error) {
	b, err := s.loadForVendor(actor, bookingID, "reject")
	if err != nil {
		return nil, err
	}

	if err := b.Reject(); err != nil {
		return nil, err
	}

	if err := s.Repo.UpdateStatus(b.ID, b.Status); err != nil {
		return nil, err
	}

	s.Notifier.Notify(b.CustomerID,
		fmt.Sprintf("Your booking for %s at %s was not accepted by the vendor. Please find another vendor.",
			b.Date, strings.Join(b.Time, ", ")), b.ID)

	utils.GetLogger().Info("booking rejected",
		zap.String("bookingId", b.ID),
		zap.String("vendorId", b.VendorID),
	)
	return b, nil
}
