package repository

import (
	"context"

	"travel-crm-service/domain/model"
)

// Passenger interface defines the contract for quote-passenger database operations
type Passenger interface {
	Create(ctx context.Context, passenger *model.QuotePassenger) error
	GetByID(ctx context.Context, id string) (*model.QuotePassenger, error)
	Delete(ctx context.Context, id string) error
	// ListByQuote retrieves the passengers of a quote preloading their clients
	ListByQuote(ctx context.Context, quoteID string) ([]*model.QuotePassenger, error)
	// ExistsOnQuote reports whether the client is already a passenger of the quote
	ExistsOnQuote(ctx context.Context, quoteID, clientID string) (bool, error)
}
