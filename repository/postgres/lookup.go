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

// supplierRepository implements the Supplier repository interface using PostgreSQL
type supplierRepository struct {
	db     *gorm.DB
	logger logger.LoggerInterface
}

// NewSupplierRepository creates a new instance of supplierRepository
func NewSupplierRepository(db *gorm.DB, logger logger.LoggerInterface) repository.Supplier {
	return &supplierRepository{db: db, logger: logger}
}

func (r *supplierRepository) Create(ctx context.Context, supplier *model.Supplier) error {
	r.logger.InfoContext(ctx, "Creating supplier", "name", supplier.Name)
	if err := r.db.WithContext(ctx).Create(supplier).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to create supplier", "name", supplier.Name, "error", err)
		return fmt.Errorf("failed to create supplier: %w", err)
	}
	return nil
}

func (r *supplierRepository) GetByID(ctx context.Context, id string) (*model.Supplier, error) {
	var supplier model.Supplier
	if err := r.db.WithContext(ctx).Where("id = ? AND deleted_at IS NULL", id).First(&supplier).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to get supplier", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get supplier: %w", err)
	}
	return &supplier, nil
}

func (r *supplierRepository) Update(ctx context.Context, supplier *model.Supplier) error {
	r.logger.InfoContext(ctx, "Updating supplier", "id", supplier.ID)
	if err := r.db.WithContext(ctx).Model(&model.Supplier{}).Where("id = ?", supplier.ID).Updates(supplier).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to update supplier", "id", supplier.ID, "error", err)
		return fmt.Errorf("failed to update supplier: %w", err)
	}
	return nil
}

func (r *supplierRepository) Delete(ctx context.Context, id string) error {
	r.logger.InfoContext(ctx, "Deleting supplier", "id", id)
	if err := r.db.WithContext(ctx).Delete(&model.Supplier{ID: id}).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to delete supplier", "id", id, "error", err)
		return fmt.Errorf("failed to delete supplier: %w", err)
	}
	return nil
}

func (r *supplierRepository) List(ctx context.Context) ([]*model.Supplier, error) {
	var suppliers []*model.Supplier
	if err := r.db.WithContext(ctx).Where("deleted_at IS NULL").Order("name ASC").Find(&suppliers).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to list suppliers", "error", err)
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	return suppliers, nil
}

// categoryRepository implements the Category repository interface using PostgreSQL
type categoryRepository struct {
	db     *gorm.DB
	logger logger.LoggerInterface
}

// NewCategoryRepository creates a new instance of categoryRepository
func NewCategoryRepository(db *gorm.DB, logger logger.LoggerInterface) repository.Category {
	return &categoryRepository{db: db, logger: logger}
}

func (r *categoryRepository) Create(ctx context.Context, category *model.Category) error {
	r.logger.InfoContext(ctx, "Creating category", "name", category.Name, "kind", category.Kind)
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to create category", "name", category.Name, "error", err)
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).Where("id = ? AND deleted_at IS NULL", id).First(&category).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to get category", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &category, nil
}

func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	r.logger.InfoContext(ctx, "Deleting category", "id", id)
	if err := r.db.WithContext(ctx).Delete(&model.Category{ID: id}).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to delete category", "id", id, "error", err)
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

// List retrieves categories, optionally filtered by kind (CUSTO or VENDA)
func (r *categoryRepository) List(ctx context.Context, kind string) ([]*model.Category, error) {
	var categories []*model.Category
	query := r.db.WithContext(ctx).Where("deleted_at IS NULL")
	if kind != "" {
		query = query.Where("kind = ?", kind)
	}
	if err := query.Order("name ASC").Find(&categories).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to list categories", "error", err)
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// paymentMethodRepository implements the PaymentMethod repository interface using PostgreSQL
type paymentMethodRepository struct {
	db     *gorm.DB
	logger logger.LoggerInterface
}

// NewPaymentMethodRepository creates a new instance of paymentMethodRepository
func NewPaymentMethodRepository(db *gorm.DB, logger logger.LoggerInterface) repository.PaymentMethod {
	return &paymentMethodRepository{db: db, logger: logger}
}

func (r *paymentMethodRepository) Create(ctx context.Context, method *model.PaymentMethod) error {
	r.logger.InfoContext(ctx, "Creating payment method", "name", method.Name)
	if err := r.db.WithContext(ctx).Create(method).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to create payment method", "name", method.Name, "error", err)
		return fmt.Errorf("failed to create payment method: %w", err)
	}
	return nil
}

func (r *paymentMethodRepository) GetByID(ctx context.Context, id string) (*model.PaymentMethod, error) {
	var method model.PaymentMethod
	if err := r.db.WithContext(ctx).Where("id = ? AND deleted_at IS NULL", id).First(&method).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to get payment method", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get payment method: %w", err)
	}
	return &method, nil
}

func (r *paymentMethodRepository) Delete(ctx context.Context, id string) error {
	r.logger.InfoContext(ctx, "Deleting payment method", "id", id)
	if err := r.db.WithContext(ctx).Delete(&model.PaymentMethod{ID: id}).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to delete payment method", "id", id, "error", err)
		return fmt.Errorf("failed to delete payment method: %w", err)
	}
	return nil
}

func (r *paymentMethodRepository) List(ctx context.Context) ([]*model.PaymentMethod, error) {
	var methods []*model.PaymentMethod
	if err := r.db.WithContext(ctx).Where("deleted_at IS NULL").Order("name ASC").Find(&methods).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to list payment methods", "error", err)
		return nil, fmt.Errorf("failed to list payment methods: %w", err)
	}
	return methods, nil
}

// airlineRepository implements the Airline repository interface using PostgreSQL
type airlineRepository struct {
	db     *gorm.DB
	logger logger.LoggerInterface
}

// NewAirlineRepository creates a new instance of airlineRepository
func NewAirlineRepository(db *gorm.DB, logger logger.LoggerInterface) repository.Airline {
	return &airlineRepository{db: db, logger: logger}
}

func (r *airlineRepository) Create(ctx context.Context, airline *model.Airline) error {
	r.logger.InfoContext(ctx, "Creating airline", "name", airline.Name, "iata", airline.IATACode)
	if err := r.db.WithContext(ctx).Create(airline).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to create airline", "name", airline.Name, "error", err)
		return fmt.Errorf("failed to create airline: %w", err)
	}
	return nil
}

func (r *airlineRepository) GetByID(ctx context.Context, id string) (*model.Airline, error) {
	var airline model.Airline
	if err := r.db.WithContext(ctx).Where("id = ? AND deleted_at IS NULL", id).First(&airline).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to get airline", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get airline: %w", err)
	}
	return &airline, nil
}

func (r *airlineRepository) GetByIATACode(ctx context.Context, code string) (*model.Airline, error) {
	var airline model.Airline
	if err := r.db.WithContext(ctx).Where("iata_code = ? AND deleted_at IS NULL", code).First(&airline).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to get airline by IATA code", "code", code, "error", err)
		return nil, fmt.Errorf("failed to get airline by IATA code: %w", err)
	}
	return &airline, nil
}

func (r *airlineRepository) List(ctx context.Context) ([]*model.Airline, error) {
	var airlines []*model.Airline
	if err := r.db.WithContext(ctx).Where("deleted_at IS NULL").Order("name ASC").Find(&airlines).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to list airlines", "error", err)
		return nil, fmt.Errorf("failed to list airlines: %w", err)
	}
	return airlines, nil
}
