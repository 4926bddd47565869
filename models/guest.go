package models

import "time"

// Guest is an invitee on a customer's wedding guest list.
type Guest struct {
	ID             string    `bson:"id" json:"id"`
	OwnerID        string    `bson:"ownerId" json:"ownerId"`
	Name           string    `bson:"name" json:"name"`
	Email          string    `bson:"email,omitempty" json:"email,omitempty"`
	Phone          string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Side           string    `bson:"side,omitempty" json:"side,omitempty"` // bride | groom
	Category       string    `bson:"category,omitempty" json:"category,omitempty"`
	InvitationSent bool      `bson:"invitationSent" json:"invitationSent"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}
