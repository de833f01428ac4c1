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

// saleItemRepository implements the SaleItem repository interface using PostgreSQL
type saleItemRepository struct {
	db     *gorm.DB
	logger logger.LoggerInterface
}

// NewSaleItemRepository creates a new instance of saleItemRepository
func NewSaleItemRepository(db *gorm.DB, logger logger.LoggerInterface) repository.SaleItem {
	return &saleItemRepository{
		db:     db,
		logger: logger,
	}
}

func (r *saleItemRepository) Create(ctx context.Context, item *model.SaleItem) error {
	r.logger.InfoContext(ctx, "Creating sale item", "quoteID", item.QuoteID, "kind", item.Kind)
	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Create(item).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to create sale item", "quoteID", item.QuoteID, "error", err)
		return fmt.Errorf("failed to create sale item: %w", err)
	}
	return nil
}

func (r *saleItemRepository) GetByID(ctx context.Context, id string) (*model.SaleItem, error) {
	var item model.SaleItem
	if err := r.db.WithContext(ctx).Where("id = ? AND deleted_at IS NULL", id).First(&item).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			r.logger.WarnContext(ctx, "Sale item not found by ID", "id", id)
			return nil, domain.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to get sale item", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get sale item: %w", err)
	}
	return &item, nil
}

// Update rewrites the editable columns of a drafted line. A map update is
// used on purpose: a cleared due date or association must still persist.
func (r *saleItemRepository) Update(ctx context.Context, item *model.SaleItem) error {
	r.logger.InfoContext(ctx, "Updating sale item", "id", item.ID)
	db := dbFromContext(ctx, r.db)
	updates := map[string]interface{}{
		"kind":              item.Kind,
		"description":       item.Description,
		"value":             item.Value,
		"due_date":          item.DueDate,
		"installments":      item.Installments,
		"supplier_id":       item.SupplierID,
		"client_id":         item.ClientID,
		"category_id":       item.CategoryID,
		"payment_method_id": item.PaymentMethodID,
	}
	if err := db.WithContext(ctx).Model(&model.SaleItem{}).Where("id = ?", item.ID).Updates(updates).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to update sale item", "id", item.ID, "error", err)
		return fmt.Errorf("failed to update sale item: %w", err)
	}
	return nil
}

func (r *saleItemRepository) Delete(ctx context.Context, id string) error {
	r.logger.InfoContext(ctx, "Deleting sale item", "id", id)
	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Delete(&model.SaleItem{ID: id}).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to delete sale item", "id", id, "error", err)
		return fmt.Errorf("failed to delete sale item: %w", err)
	}

	var count int64
	db.WithContext(ctx).Model(&model.SaleItem{}).Where("id = ? AND deleted_at IS NULL", id).Count(&count)
	if count > 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByQuote retrieves the drafted lines of a quote, optionally filtered by kind
func (r *saleItemRepository) ListByQuote(ctx context.Context, quoteID string, kind string) ([]*model.SaleItem, error) {
	var items []*model.SaleItem
	db := dbFromContext(ctx, r.db)
	query := db.WithContext(ctx).Where("quote_id = ? AND deleted_at IS NULL", quoteID)
	if kind != "" {
		query = query.Where("kind = ?", kind)
	}
	if err := query.Order("created_at ASC").Find(&items).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to list sale items", "quoteID", quoteID, "error", err)
		return nil, fmt.Errorf("failed to list sale items: %w", err)
	}
	return items, nil
}
