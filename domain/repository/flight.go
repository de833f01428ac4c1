package repository

import (
	"context"

	"travel-crm-service/domain/model"
)

// Flight interface defines the contract for flight-leg database operations
type Flight interface {
	Create(ctx context.Context, flight *model.Flight) error
	GetByID(ctx context.Context, id string) (*model.Flight, error)
	Update(ctx context.Context, flight *model.Flight) error
	Delete(ctx context.Context, id string) error
	// ListByQuote retrieves the legs of a quote ordered by travel date
	ListByQuote(ctx context.Context, quoteID string) ([]*model.Flight, error)
}
