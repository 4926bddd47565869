package reviewRepo

import (
	"context"
	"fmt"
	"time"

	"weddinghub/database"
	"weddinghub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ReviewRepository defines data access for reviews.
type ReviewRepository interface {
	// Create inserts a review.
	Create(review *models.Review) error
	// GetByID retrieves a review by its ID. Returns nil, nil when absent.
	GetByID(id string) (*models.Review, error)
	// Find lists reviews, filtered to a target when targetID is non-empty.
	Find(targetID string) ([]models.Review, error)
	// Update replaces an existing review.
	Update(review *models.Review) error
	// Delete removes a review by its ID.
	Delete(id string) error
}

// MongoReviewRepo implements ReviewRepository using MongoDB.
type MongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo creates a new ReviewRepository backed by MongoDB.
func NewMongoReviewRepo() ReviewRepository {
	coll := database.DB().Collection("reviews")
	repo := &MongoReviewRepo{coll: coll}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "targetId", Value: 1}},
	})
	if err != nil {
		fmt.Printf("failed to create review indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a review document.
func (r *MongoReviewRepo) Create(review *models.Review) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	review.CreatedAt = now
	review.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, review); err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// GetByID retrieves a review by its ID.
func (r *MongoReviewRepo) GetByID(id string) (*models.Review, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var review models.Review
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&review); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch review with id %s: %w", id, err)
	}
	return &review, nil
}

// Find lists reviews, optionally filtered by target.
func (r *MongoReviewRepo) Find(targetID string) ([]models.Review, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if targetID != "" {
		filter["targetId"] = targetID
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	return reviews, nil
}

// Update replaces an existing review document.
func (r *MongoReviewRepo) Update(review *models.Review) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	review.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": review.ID}, bson.M{"$set": review})
	if err != nil {
		return fmt.Errorf("failed to update review with id %s: %w", review.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("review with id %s not found", review.ID)
	}
	return nil
}

// Delete removes a review document by its ID.
func (r *MongoReviewRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete review with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("review with id %s not found", id)
	}
	return nil
}
