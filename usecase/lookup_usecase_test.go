package usecase

import (
	"context"
	"fmt"
	"testing"

	"travel-crm-service/domain"
	"travel-crm-service/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSupplierRepo struct {
	suppliers map[string]*model.Supplier
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{suppliers: make(map[string]*model.Supplier)}
}

func (f *fakeSupplierRepo) Create(_ context.Context, supplier *model.Supplier) error {
	if supplier.ID == "" {
		supplier.ID = fmt.Sprintf("supplier-%d", len(f.suppliers)+1)
	}
	f.suppliers[supplier.ID] = supplier
	return nil
}

func (f *fakeSupplierRepo) GetByID(_ context.Context, id string) (*model.Supplier, error) {
	supplier, ok := f.suppliers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return supplier, nil
}

func (f *fakeSupplierRepo) Update(_ context.Context, supplier *model.Supplier) error {
	f.suppliers[supplier.ID] = supplier
	return nil
}

func (f *fakeSupplierRepo) Delete(_ context.Context, id string) error {
	delete(f.suppliers, id)
	return nil
}

func (f *fakeSupplierRepo) List(_ context.Context) ([]*model.Supplier, error) {
	var suppliers []*model.Supplier
	for _, supplier := range f.suppliers {
		suppliers = append(suppliers, supplier)
	}
	return suppliers, nil
}

type fakeCategoryRepo struct {
	categories map[string]*model.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[string]*model.Category)}
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *model.Category) error {
	if category.ID == "" {
		category.ID = fmt.Sprintf("category-%d", len(f.categories)+1)
	}
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id string) (*model.Category, error) {
	category, ok := f.categories[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return category, nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	delete(f.categories, id)
	return nil
}

func (f *fakeCategoryRepo) List(_ context.Context, kind string) ([]*model.Category, error) {
	var categories []*model.Category
	for _, category := range f.categories {
		if kind == "" || category.Kind == kind {
			categories = append(categories, category)
		}
	}
	return categories, nil
}

func newLookupFixture(companies ...*model.Company) (*fakeCategoryRepo, *fakeCompanyRepo, LookupUseCase) {
	categoryRepo := newFakeCategoryRepo()
	companyRepo := newFakeCompanyRepo(companies...)
	uc := NewLookupUseCase(newFakeSupplierRepo(), categoryRepo, nil, nil, companyRepo, newTestLogger())
	return categoryRepo, companyRepo, uc
}

func TestCreateSupplier_RequiresName(t *testing.T) {
	_, _, uc := newLookupFixture()

	err := uc.CreateSupplier(context.Background(), &model.Supplier{CNPJ: "12.345.678/0001-00"})

	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
}

func TestCreateCategory_RejectsUnknownKind(t *testing.T) {
	categoryRepo, _, uc := newLookupFixture()

	err := uc.CreateCategory(context.Background(), &model.Category{Name: "Hotelaria", Kind: "OUTRO"})

	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
	assert.Empty(t, categoryRepo.categories)
}

func TestListCategories_FiltersByKind(t *testing.T) {
	categoryRepo, _, uc := newLookupFixture()
	require.NoError(t, categoryRepo.Create(context.Background(), &model.Category{Name: "Aéreo", Kind: model.SaleItemCost}))
	require.NoError(t, categoryRepo.Create(context.Background(), &model.Category{Name: "Pacote", Kind: model.SaleItemRevenue}))

	costs, err := uc.ListCategories(context.Background(), model.SaleItemCost)
	require.NoError(t, err)
	require.Len(t, costs, 1)
	assert.Equal(t, "Aéreo", costs[0].Name)
}

func TestCreateCompany_RequiresName(t *testing.T) {
	_, companyRepo, uc := newLookupFixture()

	err := uc.CreateCompany(context.Background(), &model.Company{PixKey: "agencia@example.com"})

	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
	assert.Empty(t, companyRepo.companies)
}

func TestUpdateCompany_UnknownCompany(t *testing.T) {
	_, _, uc := newLookupFixture()

	err := uc.UpdateCompany(context.Background(), &model.Company{ID: "company-missing", Name: "Agência Sol"})

	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Code)
}

func TestUpdateCompany_PersistsBranding(t *testing.T) {
	existing := &model.Company{ID: "company-1", Name: "Agência Sol"}
	_, companyRepo, uc := newLookupFixture(existing)

	err := uc.UpdateCompany(context.Background(), &model.Company{
		ID:           "company-1",
		Name:         "Agência Sol Viagens",
		PrimaryColor: "#0B5ED7",
		PixKey:       "financeiro@agenciasol.com.br",
	})

	require.NoError(t, err)
	assert.Equal(t, "Agência Sol Viagens", companyRepo.companies["company-1"].Name)
	assert.Equal(t, "#0B5ED7", companyRepo.companies["company-1"].PrimaryColor)
	assert.Equal(t, "financeiro@agenciasol.com.br", companyRepo.companies["company-1"].PixKey)
}
