package models

import "time"

// Review is a 1-5 star rating left by a user on a vendor or one of its
// services. TargetID is the service ID when the review is service-scoped,
// otherwise the vendor ID.
type Review struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	VendorID  string    `bson:"vendorId" json:"vendorId"`
	TargetID  string    `bson:"targetId" json:"targetId"`
	Rating    int       `bson:"rating" json:"rating"`
	Comment   string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
