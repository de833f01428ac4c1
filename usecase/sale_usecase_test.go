package usecase

import (
	"context"
	"testing"
	"time"

	"travel-crm-service/domain"
	"travel-crm-service/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type saleFixture struct {
	quoteRepo      *fakeQuoteRepo
	saleItemRepo   *fakeSaleItemRepo
	payableRepo    *fakePayableRepo
	receivableRepo *fakeReceivableRepo
	uc             SaleUseCase
}

func newSaleFixture(quote *model.Quote, items ...*model.SaleItem) *saleFixture {
	f := &saleFixture{
		quoteRepo:      newFakeQuoteRepo(),
		saleItemRepo:   newFakeSaleItemRepo(items...),
		payableRepo:    newFakePayableRepo(),
		receivableRepo: newFakeReceivableRepo(),
	}
	f.quoteRepo.quotes[quote.ID] = quote
	f.uc = NewSaleUseCase(f.quoteRepo, f.saleItemRepo, f.payableRepo, f.receivableRepo, newTestLogger())
	return f
}

func TestAddItem_RefreshesQuoteTotals(t *testing.T) {
	f := newSaleFixture(&model.Quote{ID: "quote-1", Status: model.StatusAprovado, ClientID: strPtr("client-1")})

	require.NoError(t, f.uc.AddItem(context.Background(), &model.SaleItem{
		QuoteID: "quote-1", Kind: model.SaleItemRevenue, Description: "Aéreo GRU-SCL", Value: 4200,
	}))
	require.NoError(t, f.uc.AddItem(context.Background(), &model.SaleItem{
		QuoteID: "quote-1", Kind: model.SaleItemCost, Description: "Consolidadora", Value: 3500,
	}))

	quote := f.quoteRepo.quotes["quote-1"]
	assert.Equal(t, 4200.0, quote.Value)
	assert.Equal(t, 3500.0, quote.Cost)
}

func TestAddItem_RejectsUnknownKind(t *testing.T) {
	f := newSaleFixture(&model.Quote{ID: "quote-1", Status: model.StatusAprovado})

	err := f.uc.AddItem(context.Background(), &model.SaleItem{QuoteID: "quote-1", Kind: "DESCONTO", Value: 10})
	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
	assert.Empty(t, f.saleItemRepo.items)
}

func TestSetSimplifiedFigures_PersistsValueAndCost(t *testing.T) {
	f := newSaleFixture(&model.Quote{ID: "quote-1", Status: model.StatusCotar})

	require.NoError(t, f.uc.SetSimplifiedFigures(context.Background(), "quote-1", 5200, 3900))

	quote := f.quoteRepo.quotes["quote-1"]
	assert.Equal(t, 5200.0, quote.Value)
	assert.Equal(t, 3900.0, quote.Cost)
}

func TestSetSimplifiedFigures_AllowsZeroingOut(t *testing.T) {
	f := newSaleFixture(&model.Quote{ID: "quote-1", Status: model.StatusAguardandoCliente, Value: 5200, Cost: 3900})

	require.NoError(t, f.uc.SetSimplifiedFigures(context.Background(), "quote-1", 0, 0))

	quote := f.quoteRepo.quotes["quote-1"]
	assert.Zero(t, quote.Value)
	assert.Zero(t, quote.Cost)
}

func TestSetSimplifiedFigures_RejectedOnceItemized(t *testing.T) {
	f := newSaleFixture(&model.Quote{ID: "quote-1", Status: model.StatusAprovado, Value: 4200})

	err := f.uc.SetSimplifiedFigures(context.Background(), "quote-1", 9000, 100)
	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
	assert.Equal(t, 4200.0, f.quoteRepo.quotes["quote-1"].Value)
}

func TestSetSimplifiedFigures_RejectsNegative(t *testing.T) {
	f := newSaleFixture(&model.Quote{ID: "quote-1", Status: model.StatusCotar})

	err := f.uc.SetSimplifiedFigures(context.Background(), "quote-1", -1, 0)
	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
}

func TestLaunchSale_CopiesItemsToLedger(t *testing.T) {
	f := newSaleFixture(
		&model.Quote{ID: "quote-1", Code: "ABC234", Status: model.StatusAprovado, ClientID: strPtr("client-1")},
		&model.SaleItem{ID: "item-1", QuoteID: "quote-1", Kind: model.SaleItemRevenue, Description: "Aéreo", Value: 4200, Installments: 3},
		&model.SaleItem{ID: "item-2", QuoteID: "quote-1", Kind: model.SaleItemCost, Description: "Consolidadora", Value: 3500, Installments: 1},
	)

	require.NoError(t, f.uc.LaunchSale(context.Background(), "quote-1"))

	quote := f.quoteRepo.quotes["quote-1"]
	assert.Equal(t, model.StatusLancado, quote.Status)
	assert.Equal(t, 4200.0, quote.Value)
	require.NotNil(t, quote.SaleConfirmedAt)

	payables, _ := f.payableRepo.ListByOrigin(context.Background(), model.OriginQuote, "quote-1")
	require.Len(t, payables, 1)
	assert.Equal(t, 3500.0, payables[0].Value)

	receivables, _ := f.receivableRepo.ListByOrigin(context.Background(), model.OriginQuote, "quote-1")
	require.Len(t, receivables, 1)
	assert.Equal(t, 4200.0, receivables[0].Value)
	assert.Equal(t, 3, receivables[0].Installments)
	require.NotNil(t, receivables[0].ClientID)
	assert.Equal(t, "client-1", *receivables[0].ClientID)
}

func TestLaunchSale_NoItemsUsesHeaderValue(t *testing.T) {
	f := newSaleFixture(&model.Quote{ID: "quote-1", Code: "ABC234", Status: model.StatusAprovado, Value: 5000, ClientID: strPtr("client-1")})

	require.NoError(t, f.uc.LaunchSale(context.Background(), "quote-1"))

	receivables, _ := f.receivableRepo.ListByOrigin(context.Background(), model.OriginQuote, "quote-1")
	require.Len(t, receivables, 1)
	assert.Equal(t, 5000.0, receivables[0].Value)
	assert.Contains(t, receivables[0].Description, "ABC234")
	assert.Empty(t, f.payableRepo.accounts)
}

func TestLaunchSale_NoItemsNoValueRejected(t *testing.T) {
	f := newSaleFixture(&model.Quote{ID: "quote-1", Status: model.StatusAprovado})

	err := f.uc.LaunchSale(context.Background(), "quote-1")
	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
	assert.Equal(t, model.StatusAprovado, f.quoteRepo.quotes["quote-1"].Status)
}

func TestLaunchSale_AlreadyLaunchedRejected(t *testing.T) {
	f := newSaleFixture(&model.Quote{ID: "quote-1", Status: model.StatusLancado, Value: 100})

	err := f.uc.LaunchSale(context.Background(), "quote-1")
	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
}

func TestUnlaunchSale_ClearsLedgerKeepsDraftedItems(t *testing.T) {
	now := time.Now()
	f := newSaleFixture(
		&model.Quote{ID: "quote-1", Status: model.StatusLancado, Value: 4200, SaleConfirmedAt: &now},
		&model.SaleItem{ID: "item-1", QuoteID: "quote-1", Kind: model.SaleItemRevenue, Value: 4200},
	)
	originID := "quote-1"
	f.payableRepo.accounts["payable-1"] = &model.AccountPayable{ID: "payable-1", Origin: model.OriginQuote, OriginID: &originID, Value: 3500}
	f.receivableRepo.accounts["receivable-1"] = &model.AccountReceivable{ID: "receivable-1", Origin: model.OriginQuote, OriginID: &originID, Value: 4200}

	require.NoError(t, f.uc.UnlaunchSale(context.Background(), "quote-1", model.StatusCotar))

	quote := f.quoteRepo.quotes["quote-1"]
	assert.Equal(t, model.StatusCotar, quote.Status)
	assert.Zero(t, quote.Value)
	assert.Nil(t, quote.SaleConfirmedAt)
	assert.Empty(t, f.payableRepo.accounts)
	assert.Empty(t, f.receivableRepo.accounts)
	// Drafted lines survive so the sale can be launched again
	assert.Len(t, f.saleItemRepo.items, 1)
}

func TestUnlaunchSale_NotLaunchedRejected(t *testing.T) {
	f := newSaleFixture(&model.Quote{ID: "quote-1", Status: model.StatusAprovado})

	err := f.uc.UnlaunchSale(context.Background(), "quote-1", model.StatusCotar)
	assert.ErrorIs(t, err, domain.ErrQuoteNotLaunched)
}

func TestUnlaunchSale_CannotTargetLancado(t *testing.T) {
	now := time.Now()
	f := newSaleFixture(&model.Quote{ID: "quote-1", Status: model.StatusLancado, SaleConfirmedAt: &now})

	err := f.uc.UnlaunchSale(context.Background(), "quote-1", model.StatusLancado)
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestGetSale_ModeFollowsStatus(t *testing.T) {
	f := newSaleFixture(
		&model.Quote{ID: "quote-1", Status: model.StatusCotar, Value: 1000},
		&model.SaleItem{ID: "item-1", QuoteID: "quote-1", Kind: model.SaleItemRevenue, Value: 1000},
	)

	sale, err := f.uc.GetSale(context.Background(), "quote-1")
	require.NoError(t, err)
	assert.Equal(t, SaleModeSimplified, sale.Mode)
	assert.Empty(t, sale.Items)

	f.quoteRepo.quotes["quote-1"].Status = model.StatusAprovado
	sale, err = f.uc.GetSale(context.Background(), "quote-1")
	require.NoError(t, err)
	assert.Equal(t, SaleModeItemized, sale.Mode)
	assert.Len(t, sale.Items, 1)
}
