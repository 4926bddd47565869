package booking

import (
	"fmt"
	"strings"
	"time"

	"weddinghub/models"
	"weddinghub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// validateDate parses a booking date and requires it to be strictly later
// than the current moment. The date carries no time of day, so today's date
// (midnight) already counts as past.
func validateDate(date string) error {
	d, err := time.ParseInLocation(models.DateLayout, date, time.Local)
	if err != nil {
		return PastDateError{Date: date}
	}
	if !d.After(time.Now()) {
		return PastDateError{Date: date}
	}
	return nil
}

// checkSlotConflicts runs the create-time conflict checks for a candidate.
// The cross-type check against confirmed customer bookings always runs; the
// same-type check only guards availability candidates. excludeID keeps a
// record from clashing with itself on updates.
func (s *DefaultBookingService) checkSlotConflicts(vendorID, date string, slots []string, bookingType models.BookingType, excludeID string) error {
	clashes, err := s.Repo.FindConfirmedSlotClashes(vendorID, date, slots, excludeID)
	if err != nil {
		return fmt.Errorf("conflict check failed: %w", err)
	}
	if len(clashes) > 0 {
		return SlotTakenError{VendorID: vendorID, Date: date}
	}

	if bookingType == models.TypeAvailability {
		clashes, err := s.Repo.FindAvailabilityClashes(vendorID, date, slots, excludeID)
		if err != nil {
			return fmt.Errorf("availability conflict check failed: %w", err)
		}
		if len(clashes) > 0 {
			return SlotTakenError{VendorID: vendorID, Date: date}
		}
	}
	return nil
}

// CreateBooking persists a customer reservation or a vendor availability
// block after the slot-conflict and capacity checks pass.
func (s *DefaultBookingService) CreateBooking(actor *models.User, in CreateBookingInput) (*models.Booking, error) {
	logger := utils.GetLogger()

	vendor, err := s.Users.GetByID(in.VendorID)
	if err != nil {
		return nil, fmt.Errorf("vendor lookup failed: %w", err)
	}
	if vendor == nil || !vendor.IsVendor() {
		return nil, InvalidVendorError{VendorID: in.VendorID}
	}

	bookingType := in.BookingType
	if bookingType == "" {
		bookingType = models.TypeBooking
	}
	if bookingType == models.TypeAvailability && actor.ID != in.VendorID {
		return nil, ForbiddenError{Reason: "only vendors can set their own availability"}
	}

	if err := validateDate(in.Date); err != nil {
		return nil, err
	}
	if len(in.Time) == 0 {
		return nil, EmptySlotSetError{}
	}

	release, err := s.Locks.Lock(in.VendorID, in.Date)
	if err != nil {
		return nil, err
	}
	defer release()

	if err := s.checkSlotConflicts(in.VendorID, in.Date, in.Time, bookingType, ""); err != nil {
		return nil, err
	}

	if bookingType == models.TypeBooking {
		count, err := s.Repo.CountConfirmed(in.VendorID, in.Date)
		if err != nil {
			return nil, fmt.Errorf("capacity check failed: %w", err)
		}
		if count >= maxDailyConfirmed {
			return nil, CapacityError{VendorID: in.VendorID, Date: in.Date}
		}
	}

	status := models.StatusPending
	if bookingType == models.TypeAvailability {
		status = models.StatusConfirmed
	}

	b := &models.Booking{
		ID:            uuid.New().String(),
		CustomerID:    actor.ID,
		VendorID:      in.VendorID,
		ServiceID:     in.ServiceID,
		PackageID:     in.PackageID,
		Date:          in.Date,
		Time:          in.Time,
		Address:       in.Address,
		PaymentType:   in.PaymentType,
		PaymentStatus: models.PaymentPending,
		BookingType:   bookingType,
		Status:        status,
	}
	if err := s.Repo.Create(b); err != nil {
		return nil, err
	}

	if bookingType == models.TypeBooking {
		msg := fmt.Sprintf("New booking request from customer %s for %s at %s", actor.ID, in.Date, strings.Join(in.Time, ", "))
		s.Notifier.Notify(in.VendorID, msg, b.ID)
	}

	logger.Info("booking created",
		zap.String("bookingId", b.ID),
		zap.String("vendorId", b.VendorID),
		zap.String("type", string(bookingType)),
		zap.String("date", b.Date),
	)
	return b, nil
}
