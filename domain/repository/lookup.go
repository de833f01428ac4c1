package repository

import (
	"context"

	"travel-crm-service/domain/model"
)

// Supplier interface defines the contract for supplier database operations
type Supplier interface {
	Create(ctx context.Context, supplier *model.Supplier) error
	GetByID(ctx context.Context, id string) (*model.Supplier, error)
	Update(ctx context.Context, supplier *model.Supplier) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*model.Supplier, error)
}

// Category interface defines the contract for category database operations
type Category interface {
	Create(ctx context.Context, category *model.Category) error
	GetByID(ctx context.Context, id string) (*model.Category, error)
	Delete(ctx context.Context, id string) error
	// List retrieves categories, optionally filtered by kind (CUSTO or VENDA)
	List(ctx context.Context, kind string) ([]*model.Category, error)
}

// PaymentMethod interface defines the contract for payment-method database operations
type PaymentMethod interface {
	Create(ctx context.Context, method *model.PaymentMethod) error
	GetByID(ctx context.Context, id string) (*model.PaymentMethod, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*model.PaymentMethod, error)
}

// Airline interface defines the contract for airline database operations
type Airline interface {
	Create(ctx context.Context, airline *model.Airline) error
	GetByID(ctx context.Context, id string) (*model.Airline, error)
	GetByIATACode(ctx context.Context, code string) (*model.Airline, error)
	List(ctx context.Context) ([]*model.Airline, error)
}
