package usecase

import (
	"context"

	"travel-crm-service/domain"
	"travel-crm-service/domain/model"
	"travel-crm-service/domain/repository"
	"travel-crm-service/pkg/logger"
)

// LookupUseCase serves the reference data the quote wizard selects from
type LookupUseCase interface {
	CreateSupplier(ctx context.Context, supplier *model.Supplier) error
	ListSuppliers(ctx context.Context) ([]*model.Supplier, error)
	DeleteSupplier(ctx context.Context, id string) error

	CreateCategory(ctx context.Context, category *model.Category) error
	ListCategories(ctx context.Context, kind string) ([]*model.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	CreatePaymentMethod(ctx context.Context, method *model.PaymentMethod) error
	ListPaymentMethods(ctx context.Context) ([]*model.PaymentMethod, error)
	DeletePaymentMethod(ctx context.Context, id string) error

	ListAirlines(ctx context.Context) ([]*model.Airline, error)

	CreateCompany(ctx context.Context, company *model.Company) error
	UpdateCompany(ctx context.Context, company *model.Company) error
	ListCompanies(ctx context.Context) ([]*model.Company, error)
}

// lookupUseCase implements the LookupUseCase interface
type lookupUseCase struct {
	supplierRepo repository.Supplier
	categoryRepo repository.Category
	methodRepo   repository.PaymentMethod
	airlineRepo  repository.Airline
	companyRepo  repository.Company
	logger       logger.LoggerInterface
}

// NewLookupUseCase creates a new instance of lookupUseCase
func NewLookupUseCase(
	supplierRepo repository.Supplier,
	categoryRepo repository.Category,
	methodRepo repository.PaymentMethod,
	airlineRepo repository.Airline,
	companyRepo repository.Company,
	appLogger logger.LoggerInterface,
) LookupUseCase {
	return &lookupUseCase{
		supplierRepo: supplierRepo,
		categoryRepo: categoryRepo,
		methodRepo:   methodRepo,
		airlineRepo:  airlineRepo,
		companyRepo:  companyRepo,
		logger:       appLogger,
	}
}

func (uc *lookupUseCase) CreateSupplier(ctx context.Context, supplier *model.Supplier) error {
	if supplier.Name == "" {
		return &domain.AppError{Message: "supplier name is required", Code: 400}
	}
	return uc.supplierRepo.Create(ctx, supplier)
}

func (uc *lookupUseCase) ListSuppliers(ctx context.Context) ([]*model.Supplier, error) {
	return uc.supplierRepo.List(ctx)
}

func (uc *lookupUseCase) DeleteSupplier(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidID
	}
	return uc.supplierRepo.Delete(ctx, id)
}

func (uc *lookupUseCase) CreateCategory(ctx context.Context, category *model.Category) error {
	if category.Name == "" {
		return &domain.AppError{Message: "category name is required", Code: 400}
	}
	if category.Kind != model.SaleItemCost && category.Kind != model.SaleItemRevenue {
		return &domain.AppError{Message: "category kind must be CUSTO or VENDA", Code: 400}
	}
	return uc.categoryRepo.Create(ctx, category)
}

func (uc *lookupUseCase) ListCategories(ctx context.Context, kind string) ([]*model.Category, error) {
	return uc.categoryRepo.List(ctx, kind)
}

func (uc *lookupUseCase) DeleteCategory(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidID
	}
	return uc.categoryRepo.Delete(ctx, id)
}

func (uc *lookupUseCase) CreatePaymentMethod(ctx context.Context, method *model.PaymentMethod) error {
	if method.Name == "" {
		return &domain.AppError{Message: "payment method name is required", Code: 400}
	}
	return uc.methodRepo.Create(ctx, method)
}

func (uc *lookupUseCase) ListPaymentMethods(ctx context.Context) ([]*model.PaymentMethod, error) {
	return uc.methodRepo.List(ctx)
}

func (uc *lookupUseCase) DeletePaymentMethod(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidID
	}
	return uc.methodRepo.Delete(ctx, id)
}

func (uc *lookupUseCase) ListAirlines(ctx context.Context) ([]*model.Airline, error) {
	return uc.airlineRepo.List(ctx)
}

func (uc *lookupUseCase) CreateCompany(ctx context.Context, company *model.Company) error {
	if company.Name == "" {
		return &domain.AppError{Message: "company name is required", Code: 400}
	}
	return uc.companyRepo.Create(ctx, company)
}

func (uc *lookupUseCase) UpdateCompany(ctx context.Context, company *model.Company) error {
	if company.ID == "" {
		return domain.ErrInvalidID
	}
	if company.Name == "" {
		return &domain.AppError{Message: "company name is required", Code: 400}
	}
	if _, err := uc.companyRepo.GetByID(ctx, company.ID); err != nil {
		return &domain.AppError{Message: "company not found", Code: 404}
	}
	return uc.companyRepo.Update(ctx, company)
}

func (uc *lookupUseCase) ListCompanies(ctx context.Context) ([]*model.Company, error) {
	return uc.companyRepo.List(ctx)
}
