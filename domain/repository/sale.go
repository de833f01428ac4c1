package repository

import (
	"context"

	"travel-crm-service/domain/model"
)

// SaleItem interface defines the contract for drafted sale-line database operations
type SaleItem interface {
	Create(ctx context.Context, item *model.SaleItem) error
	GetByID(ctx context.Context, id string) (*model.SaleItem, error)
	Update(ctx context.Context, item *model.SaleItem) error
	Delete(ctx context.Context, id string) error
	// ListByQuote retrieves the drafted lines of a quote, optionally filtered by kind
	ListByQuote(ctx context.Context, quoteID string, kind string) ([]*model.SaleItem, error)
}
