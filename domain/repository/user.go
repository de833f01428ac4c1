package repository

import (
	"context"

	"travel-crm-service/domain/model"
)

// User interface defines the contract for user-related database operations
type User interface {
	// Create adds a new user to the database
	Create(ctx context.Context, user *model.User) error
	// GetByID retrieves a user by their unique identifier
	GetByID(ctx context.Context, id string) (*model.User, error)
	// GetByEmail retrieves a user by their email address
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	// Update modifies an existing user in the database
	Update(ctx context.Context, user *model.User) error
	// ConfirmEmail stamps the user's email-confirmation time
	ConfirmEmail(ctx context.Context, id string) error
	// Delete removes a user from the database (soft delete)
	Delete(ctx context.Context, id string) error
}
