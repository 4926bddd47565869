package models

import "time"

// Event is a dated milestone on a customer's wedding timeline.
type Event struct {
	ID        string    `bson:"id" json:"id"`
	OwnerID   string    `bson:"ownerId" json:"ownerId"`
	Name      string    `bson:"name" json:"name"`
	Date      time.Time `bson:"date" json:"date"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
