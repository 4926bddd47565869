package userRepo

import (
	"weddinghub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for account data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID. Returns nil, nil when absent.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address. Returns nil, nil when absent.
	GetByEmail(email string) (*models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// Update replaces an existing user record.
	Update(user *models.User) error
	// UpdateFields applies a partial update and returns the updated record.
	UpdateFields(id string, fields bson.M) (*models.User, error)
	// Delete removes a user record by its ID.
	Delete(id string) error
	// FindVendors retrieves all vendor accounts, optionally projected.
	FindVendors(projection bson.M) ([]models.User, error)
}
