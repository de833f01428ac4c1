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

// payableRepository implements the AccountPayable repository interface using PostgreSQL
type payableRepository struct {
	db     *gorm.DB
	logger logger.LoggerInterface
}

// NewPayableRepository creates a new instance of payableRepository
func NewPayableRepository(db *gorm.DB, logger logger.LoggerInterface) repository.AccountPayable {
	return &payableRepository{
		db:     db,
		logger: logger,
	}
}

func (r *payableRepository) Create(ctx context.Context, account *model.AccountPayable) error {
	r.logger.InfoContext(ctx, "Creating account payable", "description", account.Description, "origin", account.Origin)
	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Create(account).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to create account payable", "error", err)
		return fmt.Errorf("failed to create account payable: %w", err)
	}
	return nil
}

func (r *payableRepository) GetByID(ctx context.Context, id string) (*model.AccountPayable, error) {
	var account model.AccountPayable
	if err := r.db.WithContext(ctx).Preload("Supplier").Where("id = ? AND deleted_at IS NULL", id).First(&account).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			r.logger.WarnContext(ctx, "Account payable not found", "id", id)
			return nil, domain.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to get account payable", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get account payable: %w", err)
	}
	return &account, nil
}

// Update rewrites the editable columns of a payable. A map update is used on
// purpose: a cleared due date or association must still persist. An empty
// status means "keep the current one".
func (r *payableRepository) Update(ctx context.Context, account *model.AccountPayable) error {
	r.logger.InfoContext(ctx, "Updating account payable", "id", account.ID)
	db := dbFromContext(ctx, r.db)
	updates := map[string]interface{}{
		"description":       account.Description,
		"value":             account.Value,
		"due_date":          account.DueDate,
		"installments":      account.Installments,
		"supplier_id":       account.SupplierID,
		"category_id":       account.CategoryID,
		"payment_method_id": account.PaymentMethodID,
	}
	if account.Status != "" {
		updates["status"] = account.Status
	}
	if err := db.WithContext(ctx).Model(&model.AccountPayable{}).Where("id = ?", account.ID).Updates(updates).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to update account payable", "id", account.ID, "error", err)
		return fmt.Errorf("failed to update account payable: %w", err)
	}
	return nil
}

func (r *payableRepository) Delete(ctx context.Context, id string) error {
	r.logger.InfoContext(ctx, "Deleting account payable", "id", id)
	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Delete(&model.AccountPayable{ID: id}).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to delete account payable", "id", id, "error", err)
		return fmt.Errorf("failed to delete account payable: %w", err)
	}

	var count int64
	db.WithContext(ctx).Model(&model.AccountPayable{}).Where("id = ? AND deleted_at IS NULL", id).Count(&count)
	if count > 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *payableRepository) List(ctx context.Context, offset, limit int) ([]*model.AccountPayable, int, error) {
	r.logger.InfoContext(ctx, "Listing accounts payable", "offset", offset, "limit", limit)
	var accounts []*model.AccountPayable
	var total int64

	if err := r.db.WithContext(ctx).Model(&model.AccountPayable{}).Where("deleted_at IS NULL").Count(&total).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to count accounts payable", "error", err)
		return nil, 0, fmt.Errorf("failed to count accounts payable: %w", err)
	}

	if err := r.db.WithContext(ctx).Preload("Supplier").Where("deleted_at IS NULL").
		Offset(offset).Limit(limit).Order("due_date ASC NULLS LAST").Find(&accounts).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to list accounts payable", "error", err)
		return nil, 0, fmt.Errorf("failed to list accounts payable: %w", err)
	}

	return accounts, int(total), nil
}

// ListByOrigin retrieves the rows launched by a given record
func (r *payableRepository) ListByOrigin(ctx context.Context, origin, originID string) ([]*model.AccountPayable, error) {
	var accounts []*model.AccountPayable
	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Preload("Supplier").
		Where("origin = ? AND origin_id = ? AND deleted_at IS NULL", origin, originID).
		Order("created_at ASC").Find(&accounts).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to list accounts payable by origin", "origin", origin, "originID", originID, "error", err)
		return nil, fmt.Errorf("failed to list accounts payable by origin: %w", err)
	}
	return accounts, nil
}

// DeleteByOrigin removes every row launched by a given record
func (r *payableRepository) DeleteByOrigin(ctx context.Context, origin, originID string) error {
	r.logger.InfoContext(ctx, "Deleting accounts payable by origin", "origin", origin, "originID", originID)
	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Where("origin = ? AND origin_id = ?", origin, originID).
		Delete(&model.AccountPayable{}).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to delete accounts payable by origin", "origin", origin, "originID", originID, "error", err)
		return fmt.Errorf("failed to delete accounts payable by origin: %w", err)
	}
	return nil
}

// receivableRepository implements the AccountReceivable repository interface using PostgreSQL
type receivableRepository struct {
	db     *gorm.DB
	logger logger.LoggerInterface
}

// NewReceivableRepository creates a new instance of receivableRepository
func NewReceivableRepository(db *gorm.DB, logger logger.LoggerInterface) repository.AccountReceivable {
	return &receivableRepository{
		db:     db,
		logger: logger,
	}
}

func (r *receivableRepository) Create(ctx context.Context, account *model.AccountReceivable) error {
	r.logger.InfoContext(ctx, "Creating account receivable", "description", account.Description, "origin", account.Origin)
	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Create(account).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to create account receivable", "error", err)
		return fmt.Errorf("failed to create account receivable: %w", err)
	}
	return nil
}

func (r *receivableRepository) GetByID(ctx context.Context, id string) (*model.AccountReceivable, error) {
	var account model.AccountReceivable
	if err := r.db.WithContext(ctx).Preload("Client").Where("id = ? AND deleted_at IS NULL", id).First(&account).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			r.logger.WarnContext(ctx, "Account receivable not found", "id", id)
			return nil, domain.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to get account receivable", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get account receivable: %w", err)
	}
	return &account, nil
}

// Update rewrites the editable columns of a receivable. Same map semantics
// as the payable side: zero values persist, an empty status keeps the
// current one.
func (r *receivableRepository) Update(ctx context.Context, account *model.AccountReceivable) error {
	r.logger.InfoContext(ctx, "Updating account receivable", "id", account.ID)
	db := dbFromContext(ctx, r.db)
	updates := map[string]interface{}{
		"description":       account.Description,
		"value":             account.Value,
		"due_date":          account.DueDate,
		"installments":      account.Installments,
		"client_id":         account.ClientID,
		"category_id":       account.CategoryID,
		"payment_method_id": account.PaymentMethodID,
	}
	if account.Status != "" {
		updates["status"] = account.Status
	}
	if err := db.WithContext(ctx).Model(&model.AccountReceivable{}).Where("id = ?", account.ID).Updates(updates).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to update account receivable", "id", account.ID, "error", err)
		return fmt.Errorf("failed to update account receivable: %w", err)
	}
	return nil
}

func (r *receivableRepository) Delete(ctx context.Context, id string) error {
	r.logger.InfoContext(ctx, "Deleting account receivable", "id", id)
	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Delete(&model.AccountReceivable{ID: id}).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to delete account receivable", "id", id, "error", err)
		return fmt.Errorf("failed to delete account receivable: %w", err)
	}

	var count int64
	db.WithContext(ctx).Model(&model.AccountReceivable{}).Where("id = ? AND deleted_at IS NULL", id).Count(&count)
	if count > 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *receivableRepository) List(ctx context.Context, offset, limit int) ([]*model.AccountReceivable, int, error) {
	r.logger.InfoContext(ctx, "Listing accounts receivable", "offset", offset, "limit", limit)
	var accounts []*model.AccountReceivable
	var total int64

	if err := r.db.WithContext(ctx).Model(&model.AccountReceivable{}).Where("deleted_at IS NULL").Count(&total).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to count accounts receivable", "error", err)
		return nil, 0, fmt.Errorf("failed to count accounts receivable: %w", err)
	}

	if err := r.db.WithContext(ctx).Preload("Client").Where("deleted_at IS NULL").
		Offset(offset).Limit(limit).Order("due_date ASC NULLS LAST").Find(&accounts).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to list accounts receivable", "error", err)
		return nil, 0, fmt.Errorf("failed to list accounts receivable: %w", err)
	}

	return accounts, int(total), nil
}

// ListByOrigin retrieves the rows launched by a given record
func (r *receivableRepository) ListByOrigin(ctx context.Context, origin, originID string) ([]*model.AccountReceivable, error) {
	var accounts []*model.AccountReceivable
	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Preload("Client").
		Where("origin = ? AND origin_id = ? AND deleted_at IS NULL", origin, originID).
		Order("created_at ASC").Find(&accounts).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to list accounts receivable by origin", "origin", origin, "originID", originID, "error", err)
		return nil, fmt.Errorf("failed to list accounts receivable by origin: %w", err)
	}
	return accounts, nil
}

// DeleteByOrigin removes every row launched by a given record
func (r *receivableRepository) DeleteByOrigin(ctx context.Context, origin, originID string) error {
	r.logger.InfoContext(ctx, "Deleting accounts receivable by origin", "origin", origin, "originID", originID)
	db := dbFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Where("origin = ? AND origin_id = ?", origin, originID).
		Delete(&model.AccountReceivable{}).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to delete accounts receivable by origin", "origin", origin, "originID", originID, "error", err)
		return fmt.Errorf("failed to delete accounts receivable by origin: %w", err)
	}
	return nil
}
