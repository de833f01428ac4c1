package repository

import (
	"context"

	"travel-crm-service/domain/model"
)

// Lead interface defines the contract for lead-related database operations.
// Conversion into a quote is a usecase concern; the repository only provides
// the primitives and the transaction boundary.
type Lead interface {
	// Create adds a new lead to the database
	Create(ctx context.Context, lead *model.Lead) error
	// GetByID retrieves a lead by its unique identifier, preloading the client
	GetByID(ctx context.Context, id string) (*model.Lead, error)
	// Update modifies an existing lead in the database
	Update(ctx context.Context, lead *model.Lead) error
	// Delete removes a lead from the database
	Delete(ctx context.Context, id string) error
	// List retrieves all leads ordered by creation time, preloading clients
	List(ctx context.Context) ([]*model.Lead, error)
	// ExecuteInTransaction executes a function within a database transaction
	// The function receives a transaction context that should be used for all operations
	ExecuteInTransaction(ctx context.Context, fn func(txCtx context.Context) error) error
}
