package repository

import (
	"context"
	"time"

	"travel-crm-service/domain/model"
)

// Quote interface defines the contract for quote-related database operations
type Quote interface {
	// Create adds a new quote to the database
	Create(ctx context.Context, quote *model.Quote) error
	// GetByID retrieves a quote by its unique identifier
	GetByID(ctx context.Context, id string) (*model.Quote, error)
	// GetByIDFull retrieves a quote preloading client, flights, passengers and sale items
	GetByIDFull(ctx context.Context, id string) (*model.Quote, error)
	// GetByCode retrieves a quote by its 6-character reference code
	GetByCode(ctx context.Context, code string) (*model.Quote, error)
	// CodeExists reports whether a quote already carries the given code
	CodeExists(ctx context.Context, code string) (bool, error)
	// Update modifies an existing quote in the database
	Update(ctx context.Context, quote *model.Quote) error
	// UpdateStatus changes only the status column of a quote
	UpdateStatus(ctx context.Context, id string, status string) error
	// SetSaleState atomically writes value, status and the launch timestamp.
	// Used by the launch and un-launch flows where zero values are meaningful.
	SetSaleState(ctx context.Context, id string, value float64, status string, confirmedAt *time.Time) error
	// SetTotals writes the value and cost columns, including zeroes
	SetTotals(ctx context.Context, id string, value, cost float64) error
	// Delete removes a quote from the database (soft delete)
	Delete(ctx context.Context, id string) error
	// List retrieves a paginated list of quotes and the total count
	List(ctx context.Context, offset, limit int) ([]*model.Quote, int, error)
	// ListByStatus retrieves every quote carrying one of the given statuses
	ListByStatus(ctx context.Context, statuses ...string) ([]*model.Quote, error)
	// ExecuteInTransaction executes a function within a database transaction
	// The function receives a transaction context that should be used for all operations
	ExecuteInTransaction(ctx context.Context, fn func(txCtx context.Context) error) error
}
