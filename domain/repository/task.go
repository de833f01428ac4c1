package repository

import (
	"context"

	"travel-crm-service/domain/model"
)

// Task interface defines the contract for task database operations
type Task interface {
	Create(ctx context.Context, task *model.Task) error
	GetByID(ctx context.Context, id string) (*model.Task, error)
	Update(ctx context.Context, task *model.Task) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, offset, limit int) ([]*model.Task, int, error)
	// ListByLead retrieves every task bound to a lead
	ListByLead(ctx context.Context, leadID string) ([]*model.Task, error)
	// DeleteByLead removes every task bound to a lead
	DeleteByLead(ctx context.Context, leadID string) error
}

// Appointment interface defines the contract for appointment database operations
type Appointment interface {
	Create(ctx context.Context, appointment *model.Appointment) error
	GetByID(ctx context.Context, id string) (*model.Appointment, error)
	Update(ctx context.Context, appointment *model.Appointment) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, offset, limit int) ([]*model.Appointment, int, error)
}
