package guestRepo

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

// GuestRepository defines data access for guest-list entries.
type GuestRepository interface {
	// Create inserts a guest.
	Create(guest *models.Guest) error
	// GetByID retrieves a guest by ID. Returns nil, nil when absent.
	GetByID(id string) (*models.Guest, error)
	// FindByOwner lists a customer's guests, newest first.
	FindByOwner(ownerID string) ([]models.Guest, error)
	// Update replaces an existing guest.
	Update(guest *models.Guest) error
	// Delete removes a guest by its ID.
	Delete(id string) error
	// MarkInvited flags a guest's invitation as sent.
	MarkInvited(id string) error
}

// MongoGuestRepo implements GuestRepository using MongoDB.
type MongoGuestRepo struct {
	coll *mongo.Collection
}

// NewMongoGuestRepo creates a new GuestRepository backed by MongoDB.
func NewMongoGuestRepo() GuestRepository {
	coll := database.DB().Collection("guests")
	repo := &MongoGuestRepo{coll: coll}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "ownerId", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	if err != nil {
		fmt.Printf("failed to create guest indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a guest document.
func (r *MongoGuestRepo) Create(guest *models.Guest) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	guest.CreatedAt = now
	guest.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, guest); err != nil {
		return fmt.Errorf("failed to create guest: %w", err)
	}
	return nil
}

// GetByID retrieves a guest by its ID.
func (r *MongoGuestRepo) GetByID(id string) (*models.Guest, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var guest models.Guest
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&guest); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch guest with id %s: %w", id, err)
	}
	return &guest, nil
}

// FindByOwner lists a customer's guests, newest first.
func (r *MongoGuestRepo) FindByOwner(ownerID string) ([]models.Guest, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"ownerId": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve guests for owner %s: %w", ownerID, err)
	}
	defer cursor.Close(ctx)

	var guests []models.Guest
	if err := cursor.All(ctx, &guests); err != nil {
		return nil, fmt.Errorf("failed to decode guests: %w", err)
	}
	return guests, nil
}

// Update replaces an existing guest document.
func (r *MongoGuestRepo) Update(guest *models.Guest) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	guest.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": guest.ID}, bson.M{"$set": guest})
	if err != nil {
		return fmt.Errorf("failed to update guest with id %s: %w", guest.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("guest with id %s not found", guest.ID)
	}
	return nil
}

// Delete removes a guest document by its ID.
func (r *MongoGuestRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete guest with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("guest with id %s not found", id)
	}
	return nil
}

// MarkInvited flags a guest's invitation as sent.
func (r *MongoGuestRepo) MarkInvited(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"invitationSent": true, "updatedAt": time.Now()}}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update); err != nil {
		return fmt.Errorf("failed to mark guest %s invited: %w", id, err)
	}
	return nil
}
