package models

import (
	"fmt"
	"time"
)

// BookingType distinguishes customer reservations from vendor availability blocks.
type BookingType string

const (
	TypeBooking      BookingType = "booking"
	TypeAvailability BookingType = "availability"
)

// BookingStatus is the lifecycle state of a booking-type record. Availability
// records are created confirmed and never transition.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusRejected  BookingStatus = "rejected"
)

// PaymentStatus tracks payment independently of the booking lifecycle.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
)

// FinalizedError is returned when a transition is attempted on a booking that
// already left the pending state. It carries the current status so callers can
// report it.
type FinalizedError struct {
	Status BookingStatus
}

func (e FinalizedError) Error() string {
	return fmt.Sprintf("booking is already %s", e.Status)
}

// Booking represents either a customer's reservation request or a vendor's
// self-declared availability block for a date and a set of time slots.
type Booking struct {
	ID            string        `bson:"id" json:"id"`
	CustomerID    string        `bson:"customerId" json:"customerId"`
	VendorID      string        `bson:"vendorId" json:"vendorId"`
	ServiceID     string        `bson:"serviceId,omitempty" json:"serviceId,omitempty"`
	PackageID     string        `bson:"packageId,omitempty" json:"packageId,omitempty"`
	Date          string        `bson:"date" json:"date"` // "YYYY-MM-DD"; time of day is ignored for conflicts
	Time          []string      `bson:"time" json:"time"` // slot labels, e.g. "10:00-12:00"
	Address       string        `bson:"address,omitempty" json:"address,omitempty"`
	PaymentType   string        `bson:"paymentType,omitempty" json:"paymentType,omitempty"`
	PaymentStatus PaymentStatus `bson:"paymentStatus" json:"paymentStatus"`
	BookingType   BookingType   `bson:"bookingType" json:"bookingType"`
	Status        BookingStatus `bson:"status" json:"status"`
	CreatedAt     time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// Confirm transitions pending → confirmed. Any other starting state fails with
// FinalizedError; confirmed and rejected are terminal.
func (b *Booking) Confirm() error {
	if b.Status != StatusPending {
		return FinalizedError{Status: b.Status}
	}
	b.Status = StatusConfirmed
	return nil
}

// Reject transitions pending → rejected, terminal.
func (b *Booking) Reject() error {
	if b.Status != StatusPending {
		return FinalizedError{Status: b.Status}
	}
	b.Status = StatusRejected
	return nil
}

// DateLayout is the wire and storage format for booking dates.
const DateLayout = "2006-01-02"
