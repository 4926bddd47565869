package models

import "time"

// ChatMessage is a direct message between a customer and a vendor.
type ChatMessage struct {
	ID         string    `bson:"id" json:"id"`
	SenderID   string    `bson:"senderId" json:"senderId"`
	ReceiverID string    `bson:"receiverId" json:"receiverId"`
	Message    string    `bson:"message" json:"message"`
	Timestamp  time.Time `bson:"timestamp" json:"timestamp"`
}

// ChatPartner summarizes a user the caller has exchanged messages with,
// together with the latest message between them.
type ChatPartner struct {
	UserID          string    `json:"userId"`
	Name            string    `json:"name"`
	Role            Role      `json:"role"`
	LastMessage     string    `json:"lastMessage"`
	LastMessageTime time.Time `json:"lastMessageTime"`
}
