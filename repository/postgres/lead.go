package postgres

import (
	"context"
	"fmt"

	"travel-crm-service/domain"
	"travel-crm-service/domain/model"
	"travel-crm-service/domain/repository"
	"travel-crm-service/pkg/logger"

	"gorm.io/gorm"
)

// leadRepository implements the Lead repository interface using PostgreSQL
type leadRepository struct {
	db     *gorm.DB
	logger logger.LoggerInterface
}

// NewLeadRepository creates a new instance of leadRepository
func NewLeadRepository(db *gorm.DB, logger logger.LoggerInterface) repository.Lead {
	return &leadRepository{
		db:     db,
		logger: logger,
	}
}

// Create adds a new lead to the database
func (r *leadRepository) Create(ctx context.Context, lead *model.Lead) error {
	r.logger.InfoContext(ctx, "Creating lead", "clientID", lead.ClientID)

	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Create(lead).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to create lead", "clientID", lead.ClientID, "error", err)
		return fmt.Errorf("failed to create lead: %w", err)
	}
	r.logger.InfoContext(ctx, "Lead created successfully", "id", lead.ID)
	return nil
}

// GetByID retrieves a lead by its unique identifier, preloading the client
func (r *leadRepository) GetByID(ctx context.Context, id string) (*model.Lead, error) {
	r.logger.InfoContext(ctx, "Getting lead by ID", "id", id)
	var lead model.Lead
	if err := r.db.WithContext(ctx).Preload("Client").Where("id = ?", id).First(&lead).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			r.logger.WarnContext(ctx, "Lead not found by ID", "id", id)
			return nil, domain.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to get lead by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}
	return &lead, nil
}

// Update modifies an existing lead. A map update is used on purpose: a
// cleared note must still persist.
func (r *leadRepository) Update(ctx context.Context, lead *model.Lead) error {
	r.logger.InfoContext(ctx, "Updating lead", "id", lead.ID)
	db := dbFromContext(ctx, r.db)
	updates := map[string]interface{}{
		"notes": lead.Notes,
	}
	if lead.ClientID != "" {
		updates["client_id"] = lead.ClientID
	}
	if err := db.WithContext(ctx).Model(&model.Lead{}).Where("id = ?", lead.ID).Updates(updates).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to update lead", "id", lead.ID, "error", err)
		return fmt.Errorf("failed to update lead: %w", err)
	}
	return nil
}

// Delete removes a lead from the database. Leads are deleted for real:
// a converted lead must disappear from the pipeline permanently.
func (r *leadRepository) Delete(ctx context.Context, id string) error {
	r.logger.InfoContext(ctx, "Deleting lead", "id", id)
	db := dbFromContext(ctx, r.db)
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&model.Lead{})
	if result.Error != nil {
		r.logger.ErrorContext(ctx, "Failed to delete lead", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete lead: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		r.logger.WarnContext(ctx, "Lead not found for deletion", "id", id)
		return domain.ErrNotFound
	}
	r.logger.InfoContext(ctx, "Lead deleted successfully", "id", id)
	return nil
}

// List retrieves all leads ordered by creation time, preloading clients
func (r *leadRepository) List(ctx context.Context) ([]*model.Lead, error) {
	r.logger.InfoContext(ctx, "Listing leads")
	var leads []*model.Lead
	if err := r.db.WithContext(ctx).Preload("Client").Order("created_at DESC").Find(&leads).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to list leads", "error", err)
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	r.logger.InfoContext(ctx, "Leads listed successfully", "count", len(leads))
	return leads, nil
}

// ExecuteInTransaction executes a function within a database transaction
// The function receives a transaction context that should be used for all operations
func (r *leadRepository) ExecuteInTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	r.logger.InfoContext(ctx, "Executing operation in transaction")
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Create a context that carries the transaction
		txCtx := context.WithValue(ctx, "tx", tx)
		return fn(txCtx)
	})
}
