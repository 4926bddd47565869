package chatRepo

import (
	"context"
	"fmt"
	"time"

	"weddinghub/database"
	"weddinghub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ChatRepository defines data access for chat messages.
type ChatRepository interface {
	// Create inserts a chat message.
	Create(msg *models.ChatMessage) error
	// FindConversation lists messages between two users, oldest first.
	FindConversation(userID, otherUserID string) ([]models.ChatMessage, error)
	// FindByParticipant lists all messages a user sent or received, newest first.
	FindByParticipant(userID string) ([]models.ChatMessage, error)
}

// MongoChatRepo implements ChatRepository using MongoDB.
type MongoChatRepo struct {
	coll *mongo.Collection
}

// NewMongoChatRepo creates a new ChatRepository backed by MongoDB.
func NewMongoChatRepo() ChatRepository {
	coll := database.DB().Collection("chat_messages")
	repo := &MongoChatRepo{coll: coll}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "senderId", Value: 1}, {Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "receiverId", Value: 1}, {Key: "timestamp", Value: -1}}},
	})
	if err != nil {
		fmt.Printf("failed to create chat indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a chat message document.
func (r *MongoChatRepo) Create(msg *models.ChatMessage) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("failed to create chat message: %w", err)
	}
	return nil
}

func (r *MongoChatRepo) find(filter bson.M, sort bson.D) ([]models.ChatMessage, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve chat messages: %w", err)
	}
	defer cursor.Close(ctx)

	var messages []models.ChatMessage
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode chat messages: %w", err)
	}
	return messages, nil
}

// FindConversation lists messages between two users, oldest first.
func (r *MongoChatRepo) FindConversation(userID, otherUserID string) ([]models.ChatMessage, error) {
	filter := bson.M{"$or": []bson.M{
		{"senderId": userID, "receiverId": otherUserID},
		{"senderId": otherUserID, "receiverId": userID},
	}}
	return r.find(filter, bson.D{{Key: "timestamp", Value: 1}})
}

// FindByParticipant lists all messages a user sent or received, newest first.
func (r *MongoChatRepo) FindByParticipant(userID string) ([]models.ChatMessage, error) {
	filter := bson.M{"$or": []bson.M{
		{"senderId": userID},
		{"receiverId": userID},
	}}
	return r.find(filter, bson.D{{Key: "timestamp", Value: -1}})
}
