package repository

import (
	"context"

	"travel-crm-service/domain/model"
)

// Company interface defines the contract for company database operations
type Company interface {
	Create(ctx context.Context, company *model.Company) error
	GetByID(ctx context.Context, id string) (*model.Company, error)
	Update(ctx context.Context, company *model.Company) error
	List(ctx context.Context) ([]*model.Company, error)
}
