// Package repository defines the interfaces for data access layer
package repository

import (
	"context"

	"travel-crm-service/domain/model"
)

// Client interface defines the contract for client-related database operations
type Client interface {
	// Create adds a new client to the database
	Create(ctx context.Context, client *model.Client) error
	// GetByID retrieves a client by their unique identifier
	GetByID(ctx context.Context, id string) (*model.Client, error)
	// GetByEmail retrieves a client by email address
	GetByEmail(ctx context.Context, email string) (*model.Client, error)
	// Update modifies an existing client in the database
	Update(ctx context.Context, client *model.Client) error
	// Delete removes a client from the database (soft delete)
	Delete(ctx context.Context, id string) error
	// List retrieves a paginated list of clients and the total count
	List(ctx context.Context, offset, limit int) ([]*model.Client, int, error)
	// Search retrieves clients whose name or email matches the query
	Search(ctx context.Context, query string, limit int) ([]*model.Client, error)
}
