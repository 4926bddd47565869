package booking

import "fmt"

// InvalidVendorError indicates the target account does not exist or is not a vendor.
type InvalidVendorError struct {
	VendorID string
}

func (e InvalidVendorError) Error() string {
	return fmt.Sprintf("vendor %s not found or not a valid vendor", e.VendorID)
}

// ForbiddenError indicates the acting user may not perform the operation.
type ForbiddenError struct {
	Reason string
}

func (e ForbiddenError) Error() string {
	return e.Reason
}

// PastDateError indicates the booking date is not strictly in the future.
type PastDateError struct {
	Date string
}

func (e PastDateError) Error() string {
	return fmt.Sprintf("booking date %s must be in the future", e.Date)
}

// EmptySlotSetError indicates no time slots were supplied.
type EmptySlotSetError struct{}

func (e EmptySlotSetError) Error() string {
	return "at least one time slot is required"
}

// SlotTakenError indicates one or more requested slots clash with an existing record.
type SlotTakenError struct {
	VendorID string
	Date     string
}

func (e SlotTakenError) Error() string {
	return fmt.Sprintf("one or more time slots are already taken for vendor %s on %s", e.VendorID, e.Date)
}

// CapacityError indicates the vendor already holds the maximum number of
// confirmed bookings for the day.
type CapacityError struct {
	VendorID string
	Date     string
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("vendor %s has reached the maximum number of bookings (%d) for %s", e.VendorID, maxDailyConfirmed, e.Date)
}

// NotFoundError indicates no booking exists with the given ID.
type NotFoundError struct {
	ID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("booking %s not found", e.ID)
}
