package repository

import (
	"context"

	"travel-crm-service/domain/model"
)

// AccountPayable interface defines the contract for the payable side of the ledger
type AccountPayable interface {
	Create(ctx context.Context, account *model.AccountPayable) error
	GetByID(ctx context.Context, id string) (*model.AccountPayable, error)
	Update(ctx context.Context, account *model.AccountPayable) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, offset, limit int) ([]*model.AccountPayable, int, error)
	// ListByOrigin retrieves the rows launched by a given record
	ListByOrigin(ctx context.Context, origin, originID string) ([]*model.AccountPayable, error)
	// DeleteByOrigin removes every row launched by a given record
	DeleteByOrigin(ctx context.Context, origin, originID string) error
}

// AccountReceivable interface defines the contract for the receivable side of the ledger
type AccountReceivable interface {
	Create(ctx context.Context, account *model.AccountReceivable) error
	GetByID(ctx context.Context, id string) (*model.AccountReceivable, error)
	Update(ctx context.Context, account *model.AccountReceivable) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, offset, limit int) ([]*model.AccountReceivable, int, error)
	// ListByOrigin retrieves the rows launched by a given record
	ListByOrigin(ctx context.Context, origin, originID string) ([]*model.AccountReceivable, error)
	// DeleteByOrigin removes every row launched by a given record
	DeleteByOrigin(ctx context.Context, origin, originID string) error
}
