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

// companyRepository implements the Company repository interface using PostgreSQL
type companyRepository struct {
	db     *gorm.DB
	logger logger.LoggerInterface
}

// NewCompanyRepository creates a new instance of companyRepository
func NewCompanyRepository(db *gorm.DB, logger logger.LoggerInterface) repository.Company {
	return &companyRepository{db: db, logger: logger}
}

func (r *companyRepository) Create(ctx context.Context, company *model.Company) error {
	r.logger.InfoContext(ctx, "Creating company", "name", company.Name)
	if err := r.db.WithContext(ctx).Create(company).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to create company", "name", company.Name, "error", err)
		return fmt.Errorf("failed to create company: %w", err)
	}
	return nil
}

func (r *companyRepository) GetByID(ctx context.Context, id string) (*model.Company, error) {
	r.logger.InfoContext(ctx, "Getting company by ID", "id", id)
	var company model.Company
	if err := r.db.WithContext(ctx).Where("id = ? AND deleted_at IS NULL", id).First(&company).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			r.logger.WarnContext(ctx, "Company not found by ID", "id", id)
			return nil, domain.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to get company", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return &company, nil
}

func (r *companyRepository) Update(ctx context.Context, company *model.Company) error {
	r.logger.InfoContext(ctx, "Updating company", "id", company.ID)
	if err := r.db.WithContext(ctx).Model(&model.Company{}).Where("id = ?", company.ID).Updates(company).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to update company", "id", company.ID, "error", err)
		return fmt.Errorf("failed to update company: %w", err)
	}
	return nil
}

func (r *companyRepository) List(ctx context.Context) ([]*model.Company, error) {
	var companies []*model.Company
	if err := r.db.WithContext(ctx).Where("deleted_at IS NULL").Order("name ASC").Find(&companies).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to list companies", "error", err)
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, nil
}
