package models

import "time"

// Notification is a persisted user-facing message, written as a side effect of
// booking creation and status transitions.
type Notification struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	Message   string    `bson:"message" json:"message"`
	BookingID string    `bson:"bookingId,omitempty" json:"bookingId,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
