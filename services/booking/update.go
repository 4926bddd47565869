package booking

import (
	"fmt"

	"weddinghub/models"
	"weddinghub/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// canModify reports whether the actor owns the record for its type: the
// customer for booking records, the vendor for availability blocks.
func canModify(actor *models.User, b *models.Booking) bool {
	switch b.BookingType {
	case models.TypeAvailability:
		return actor.ID == b.VendorID
	default:
		return actor.ID == b.CustomerID
	}
}

// UpdateBooking mutates date/time/address/paymentType of an existing record.
// Slot conflicts are re-checked against the effective date and slots when the
// slot set changes, excluding the record itself. Daily capacity is not
// re-evaluated on update.
func (s *DefaultBookingService) UpdateBooking(actor *models.User, bookingID string, in UpdateBookingInput) (*models.Booking, error) {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, NotFoundError{ID: bookingID}
	}
	if !canModify(actor, b) {
		return nil, ForbiddenError{Reason: "not authorized to update this booking"}
	}

	effectiveDate := b.Date
	if in.Date != "" {
		effectiveDate = in.Date
	}
	if err := validateDate(effectiveDate); err != nil {
		return nil, err
	}

	if in.Time != nil {
		if len(in.Time) == 0 {
			return nil, EmptySlotSetError{}
		}

		release, err := s.Locks.Lock(b.VendorID, effectiveDate)
		if err != nil {
			return nil, err
		}
		defer release()

		if err := s.checkSlotConflicts(b.VendorID, effectiveDate, in.Time, b.BookingType, b.ID); err != nil {
			return nil, err
		}
	}

	fields := bson.M{}
	if in.Date != "" {
		fields["date"] = in.Date
	}
	if in.Time != nil {
		fields["time"] = in.Time
	}
	if in.Address != "" {
		fields["address"] = in.Address
	}
	if in.PaymentType != "" {
		fields["paymentType"] = in.PaymentType
	}
	if len(fields) == 0 {
		return b, nil
	}

	updated, err := s.Repo.UpdateFields(bookingID, fields)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, NotFoundError{ID: bookingID}
	}

	utils.GetLogger().Info("booking updated",
		zap.String("bookingId", bookingID),
		zap.String("vendorId", b.VendorID),
	)
	return updated, nil
}

// UpdatePaymentStatus sets the payment status independent of the booking
// lifecycle.
func (s *DefaultBookingService) UpdatePaymentStatus(bookingID string, status models.PaymentStatus) (*models.Booking, error) {
	if status != models.PaymentPending && status != models.PaymentCompleted {
		return nil, fmt.Errorf("invalid payment status %q", status)
	}

	updated, err := s.Repo.UpdateFields(bookingID, bson.M{"paymentStatus": status})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, NotFoundError{ID: bookingID}
	}
	return updated, nil
}
