package postgres

import (
	"context"
	"fmt"
	"time"

	"travel-crm-service/domain"
	"travel-crm-service/domain/model"
	"travel-crm-service/domain/repository"
	"travel-crm-service/pkg/logger"

	"gorm.io/gorm"
)

// quoteRepository implements the Quote repository interface using PostgreSQL
type quoteRepository struct {
	db     *gorm.DB
	logger logger.LoggerInterface
}

// NewQuoteRepository creates a new instance of quoteRepository
func NewQuoteRepository(db *gorm.DB, logger logger.LoggerInterface) repository.Quote {
	return &quoteRepository{
		db:     db,
		logger: logger,
	}
}

// Create adds a new quote to the database
func (r *quoteRepository) Create(ctx context.Context, quote *model.Quote) error {
	r.logger.InfoContext(ctx, "Creating quote", "code", quote.Code)

	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Create(quote).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to create quote", "code", quote.Code, "error", err)
		return fmt.Errorf("failed to create quote: %w", err)
	}
	r.logger.InfoContext(ctx, "Quote created successfully", "id", quote.ID, "code", quote.Code)
	return nil
}

// GetByID retrieves a quote by its unique identifier
func (r *quoteRepository) GetByID(ctx context.Context, id string) (*model.Quote, error) {
	r.logger.InfoContext(ctx, "Getting quote by ID", "id", id)
	var quote model.Quote
	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ? AND deleted_at IS NULL", id).First(&quote).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			r.logger.WarnContext(ctx, "Quote not found by ID", "id", id)
			return nil, domain.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to get quote by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get quote: %w", err)
	}
	return &quote, nil
}

// GetByIDFull retrieves a quote preloading client, flights, passengers and sale items
func (r *quoteRepository) GetByIDFull(ctx context.Context, id string) (*model.Quote, error) {
	r.logger.InfoContext(ctx, "Getting full quote by ID", "id", id)
	var quote model.Quote
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Flights").
		Preload("Passengers.Client").
		Preload("SaleItems").
		Where("id = ? AND deleted_at IS NULL", id).First(&quote).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			r.logger.WarnContext(ctx, "Quote not found by ID", "id", id)
			return nil, domain.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to get full quote", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get quote: %w", err)
	}
	return &quote, nil
}

// GetByCode retrieves a quote by its 6-character reference code
func (r *quoteRepository) GetByCode(ctx context.Context, code string) (*model.Quote, error) {
	r.logger.InfoContext(ctx, "Getting quote by code", "code", code)
	var quote model.Quote
	if err := r.db.WithContext(ctx).Where("code = ? AND deleted_at IS NULL", code).First(&quote).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to get quote by code", "code", code, "error", err)
		return nil, fmt.Errorf("failed to get quote: %w", err)
	}
	return &quote, nil
}

// CodeExists reports whether a quote already carries the given code.
// Soft-deleted quotes keep their codes reserved so references stay unambiguous.
func (r *quoteRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Unscoped().Model(&model.Quote{}).Where("code = ?", code).Count(&count).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to check quote code", "code", code, "error", err)
		return false, fmt.Errorf("failed to check quote code: %w", err)
	}
	return count > 0, nil
}

// Update rewrites the header columns of a quote. A map update is used on
// purpose: a passenger counter lowered to zero or a cleared note must still
// persist. Code, status, value and cost have their own dedicated writers.
func (r *quoteRepository) Update(ctx context.Context, quote *model.Quote) error {
	r.logger.InfoContext(ctx, "Updating quote", "id", quote.ID)
	db := dbFromContext(ctx, r.db)
	updates := map[string]interface{}{
		"title":        quote.Title,
		"destination":  quote.Destination,
		"travel_date":  quote.TravelDate,
		"notes":        quote.Notes,
		"adult_count":  quote.AdultCount,
		"child_count":  quote.ChildCount,
		"infant_count": quote.InfantCount,
	}
	// The client binding only moves when a resolved client comes in; an
	// empty one would otherwise wipe the cached display name
	if quote.ClientID != nil {
		updates["client_id"] = quote.ClientID
	}
	if quote.ClientName != "" {
		updates["client_name"] = quote.ClientName
	}
	if err := db.WithContext(ctx).Model(&model.Quote{}).Where("id = ?", quote.ID).Updates(updates).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to update quote", "id", quote.ID, "error", err)
		return fmt.Errorf("failed to update quote: %w", err)
	}
	r.logger.InfoContext(ctx, "Quote updated successfully", "id", quote.ID)
	return nil
}

// UpdateStatus changes only the status column of a quote
func (r *quoteRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	r.logger.InfoContext(ctx, "Updating quote status", "id", id, "status", status)
	db := dbFromContext(ctx, r.db)
	result := db.WithContext(ctx).Model(&model.Quote{}).Where("id = ? AND deleted_at IS NULL", id).Update("status", status)
	if result.Error != nil {
		r.logger.ErrorContext(ctx, "Failed to update quote status", "id", id, "error", result.Error)
		return fmt.Errorf("failed to update quote status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		r.logger.WarnContext(ctx, "Quote not found for status update", "id", id)
		return domain.ErrNotFound
	}
	return nil
}

// SetSaleState atomically writes value, status and the launch timestamp.
// A map update is used on purpose: zero is a meaningful value here.
func (r *quoteRepository) SetSaleState(ctx context.Context, id string, value float64, status string, confirmedAt *time.Time) error {
	r.logger.InfoContext(ctx, "Setting quote sale state", "id", id, "value", value, "status", status)
	db := dbFromContext(ctx, r.db)
	result := db.WithContext(ctx).Model(&model.Quote{}).Where("id = ? AND deleted_at IS NULL", id).Updates(map[string]interface{}{
		"value":             value,
		"status":            status,
		"sale_confirmed_at": confirmedAt,
	})
	if result.Error != nil {
		r.logger.ErrorContext(ctx, "Failed to set quote sale state", "id", id, "error", result.Error)
		return fmt.Errorf("failed to set quote sale state: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetTotals writes the value and cost columns, including zeroes
func (r *quoteRepository) SetTotals(ctx context.Context, id string, value, cost float64) error {
	r.logger.InfoContext(ctx, "Setting quote totals", "id", id, "value", value, "cost", cost)
	db := dbFromContext(ctx, r.db)
	result := db.WithContext(ctx).Model(&model.Quote{}).Where("id = ? AND deleted_at IS NULL", id).Updates(map[string]interface{}{
		"value": value,
		"cost":  cost,
	})
	if result.Error != nil {
		r.logger.ErrorContext(ctx, "Failed to set quote totals", "id", id, "error", result.Error)
		return fmt.Errorf("failed to set quote totals: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a quote from the database (soft delete)
func (r *quoteRepository) Delete(ctx context.Context, id string) error {
	r.logger.InfoContext(ctx, "Deleting quote", "id", id)
	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Delete(&model.Quote{ID: id}).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to delete quote", "id", id, "error", err)
		return fmt.Errorf("failed to delete quote: %w", err)
	}

	var count int64
	db.WithContext(ctx).Model(&model.Quote{}).Where("id = ? AND deleted_at IS NULL", id).Count(&count)
	if count > 0 {
		r.logger.WarnContext(ctx, "Quote not found for deletion", "id", id)
		return domain.ErrNotFound
	}

	r.logger.InfoContext(ctx, "Quote deleted successfully", "id", id)
	return nil
}

// List retrieves a paginated list of quotes and the total count
func (r *quoteRepository) List(ctx context.Context, offset, limit int) ([]*model.Quote, int, error) {
	r.logger.InfoContext(ctx, "Listing quotes", "offset", offset, "limit", limit)
	var quotes []*model.Quote
	var total int64

	if err := r.db.WithContext(ctx).Model(&model.Quote{}).Where("deleted_at IS NULL").Count(&total).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to count quotes", "error", err)
		return nil, 0, fmt.Errorf("failed to count quotes: %w", err)
	}

	if err := r.db.WithContext(ctx).Preload("Client").Where("deleted_at IS NULL").
		Offset(offset).Limit(limit).Order("created_at DESC").Find(&quotes).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to list quotes", "error", err)
		return nil, 0, fmt.Errorf("failed to list quotes: %w", err)
	}

	r.logger.InfoContext(ctx, "Quotes listed successfully", "count", len(quotes), "total", total)
	return quotes, int(total), nil
}

// ListByStatus retrieves every quote carrying one of the given statuses
func (r *quoteRepository) ListByStatus(ctx context.Context, statuses ...string) ([]*model.Quote, error) {
	r.logger.InfoContext(ctx, "Listing quotes by status", "statuses", statuses)
	var quotes []*model.Quote
	if err := r.db.WithContext(ctx).Preload("Client").
		Where("status IN ? AND deleted_at IS NULL", statuses).
		Order("created_at DESC").Find(&quotes).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to list quotes by status", "error", err)
		return nil, fmt.Errorf("failed to list quotes by status: %w", err)
	}
	return quotes, nil
}

// ExecuteInTransaction executes a function within a database transaction
// The function receives a transaction context that should be used for all operations
func (r *quoteRepository) ExecuteInTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	r.logger.InfoContext(ctx, "Executing operation in transaction")
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Create a context that carries the transaction
		txCtx := context.WithValue(ctx, "tx", tx)
		return fn(txCtx)
	})
}
