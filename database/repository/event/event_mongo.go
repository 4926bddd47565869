package eventRepo

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

// EventRepository defines data access for timeline events.
type EventRepository interface {
	// Create inserts an event.
	Create(event *models.Event) error
	// GetByID retrieves an event by ID. Returns nil, nil when absent.
	GetByID(id string) (*models.Event, error)
	// FindByOwner lists a customer's events ordered by date.
	FindByOwner(ownerID string) ([]models.Event, error)
	// Update replaces an existing event.
	Update(event *models.Event) error
	// Delete removes an event by its ID.
	Delete(id string) error
}

// MongoEventRepo implements EventRepository using MongoDB.
type MongoEventRepo struct {
	coll *mongo.Collection
}

// NewMongoEventRepo creates a new EventRepository backed by MongoDB.
func NewMongoEventRepo() EventRepository {
	coll := database.DB().Collection("events")
	repo := &MongoEventRepo{coll: coll}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "ownerId", Value: 1}, {Key: "date", Value: 1}},
	})
	if err != nil {
		fmt.Printf("failed to create event indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts an event document.
func (r *MongoEventRepo) Create(event *models.Event) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

// GetByID retrieves an event by its ID.
func (r *MongoEventRepo) GetByID(id string) (*models.Event, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var event models.Event
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&event); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch event with id %s: %w", id, err)
	}
	return &event, nil
}

// FindByOwner lists a customer's events ordered by date.
func (r *MongoEventRepo) FindByOwner(ownerID string) ([]models.Event, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"ownerId": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve events for owner %s: %w", ownerID, err)
	}
	defer cursor.Close(ctx)

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}
	return events, nil
}

// Update replaces an existing event document.
func (r *MongoEventRepo) Update(event *models.Event) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	event.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": event.ID}, bson.M{"$set": event})
	if err != nil {
		return fmt.Errorf("failed to update event with id %s: %w", event.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("event with id %s not found", event.ID)
	}
	return nil
}

// Delete removes an event document by its ID.
func (r *MongoEventRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete event with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("event with id %s not found", id)
	}
	return nil
}
