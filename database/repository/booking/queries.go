package bookingRepo

import (
	"fmt"
	"time"

	"weddinghub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoBookingRepo) findAll(filter bson.M, opts ...*options.FindOptions) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// FindByCustomer lists a customer's booking-type records.
func (r *MongoBookingRepo) FindByCustomer(customerID string) ([]models.Booking, error) {
	return r.findAll(bson.M{
		"customerId":  customerID,
		"bookingType": models.TypeBooking,
	})
}

// FindByVendor lists a vendor's records, optionally including availability blocks.
func (r *MongoBookingRepo) FindByVendor(vendorID string, includeAvailability bool) ([]models.Booking, error) {
	filter := bson.M{"vendorId": vendorID}
	if !includeAvailability {
		filter["bookingType"] = models.TypeBooking
	}
	return r.findAll(filter)
}

// slotClashFilter matches records for (vendorID, date) whose slot array
// intersects slots. excludeID keeps a record from clashing with itself on
// updates.
func slotClashFilter(vendorID, date string, slots []string, excludeID string) bson.M {
	filter := bson.M{
		"vendorId": vendorID,
		"date":     date,
		"time":     bson.M{"$in": slots},
	}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}
	return filter
}

// FindConfirmedSlotClashes returns confirmed booking-type records holding any
// of the candidate slots.
func (r *MongoBookingRepo) FindConfirmedSlotClashes(vendorID, date string, slots []string, excludeID string) ([]models.Booking, error) {
	filter := slotClashFilter(vendorID, date, slots, excludeID)
	filter["bookingType"] = models.TypeBooking
	filter["status"] = models.StatusConfirmed
	return r.findAll(filter)
}

// FindAvailabilityClashes returns availability records holding any of the
// candidate slots.
func (r *MongoBookingRepo) FindAvailabilityClashes(vendorID, date string, slots []string, excludeID string) ([]models.Booking, error) {
	filter := slotClashFilter(vendorID, date, slots, excludeID)
	filter["bookingType"] = models.TypeAvailability
	return r.findAll(filter)
}

// CountConfirmed counts confirmed booking-type records for a vendor's day.
func (r *MongoBookingRepo) CountConfirmed(vendorID, date string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{
		"vendorId":    vendorID,
		"date":        date,
		"bookingType": models.TypeBooking,
		"status":      models.StatusConfirmed,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count confirmed bookings: %w", err)
	}
	return count, nil
}
