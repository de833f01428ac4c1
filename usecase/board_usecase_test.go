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

type boardFixture struct {
	quoteRepo      *fakeQuoteRepo
	leadRepo       *fakeLeadRepo
	payableRepo    *fakePayableRepo
	receivableRepo *fakeReceivableRepo
	uc             BoardUseCase
}

func newBoardFixture() *boardFixture {
	f := &boardFixture{
		quoteRepo:      newFakeQuoteRepo(),
		leadRepo:       newFakeLeadRepo(&model.Lead{ID: "lead-1", ClientID: "client-1", Client: model.Client{ID: "client-1", Name: "Maria", Surname: "Silva"}}),
		payableRepo:    newFakePayableRepo(),
		receivableRepo: newFakeReceivableRepo(),
	}
	clientRepo := newFakeClientRepo(&model.Client{ID: "client-1", Name: "Maria", Surname: "Silva"})
	quoteUC := NewQuoteUseCase(f.quoteRepo, clientRepo, newTestLogger())
	leadUC := NewLeadUseCase(f.leadRepo, newFakeTaskRepo(), quoteUC, nil, nil, "", 0, newTestLogger())
	saleUC := NewSaleUseCase(f.quoteRepo, newFakeSaleItemRepo(), f.payableRepo, f.receivableRepo, newTestLogger())
	f.uc = NewBoardUseCase(f.quoteRepo, leadUC, saleUC, newTestLogger())
	return f
}

func (f *boardFixture) addQuote(id, status string, value float64) *model.Quote {
	quote := &model.Quote{ID: id, Code: "Q" + id, Status: status, Value: value, ClientID: strPtr("client-1"), ClientName: "Maria Silva"}
	f.quoteRepo.quotes[id] = quote
	return quote
}

func TestGetBoard_FiveColumnsLaunchedUnderAprovado(t *testing.T) {
	f := newBoardFixture()
	f.addQuote("quote-1", model.StatusCotar, 1000)
	f.addQuote("quote-2", model.StatusAprovado, 2000)
	launched := f.addQuote("quote-3", model.StatusLancado, 3000)
	now := time.Now()
	launched.SaleConfirmedAt = &now

	board, err := f.uc.GetBoard(context.Background())
	require.NoError(t, err)
	require.Len(t, board.Columns, 5)

	keys := make([]string, 0, len(board.Columns))
	for _, column := range board.Columns {
		keys = append(keys, column.Key)
	}
	assert.Equal(t, BoardColumns, keys)

	byKey := make(map[string]BoardColumn)
	for _, column := range board.Columns {
		byKey[column.Key] = column
	}

	// Lead cards never carry a value
	require.Len(t, byKey[ColumnLead].Cards, 1)
	assert.Equal(t, "Maria Silva", byKey[ColumnLead].Cards[0].ClientName)
	assert.Zero(t, byKey[ColumnLead].TotalValue)

	// LANÇADO has no column of its own: it renders under APROVADO flagged
	require.Len(t, byKey[ColumnAprovado].Cards, 2)
	assert.Equal(t, 5000.0, byKey[ColumnAprovado].TotalValue)
	launchedCount := 0
	for _, card := range byKey[ColumnAprovado].Cards {
		if card.Launched {
			launchedCount++
			assert.Equal(t, "quote-3", card.ID)
		}
	}
	assert.Equal(t, 1, launchedCount)
}

func TestMoveCard_LeadToCotarConverts(t *testing.T) {
	f := newBoardFixture()

	result, err := f.uc.MoveCard(context.Background(), MoveCardInput{CardID: "lead-1", Kind: CardKindLead, Target: ColumnCotar})
	require.NoError(t, err)

	assert.Equal(t, model.StatusCotar, result.Status)
	assert.NotEmpty(t, result.QuoteID)
	assert.Empty(t, f.leadRepo.leads)
	assert.Len(t, f.quoteRepo.quotes, 1)
}

func TestMoveCard_LeadSkippingCotarRejected(t *testing.T) {
	f := newBoardFixture()

	_, err := f.uc.MoveCard(context.Background(), MoveCardInput{CardID: "lead-1", Kind: CardKindLead, Target: ColumnAprovado})
	assert.ErrorIs(t, err, domain.ErrLeadOnlyConvertsToQuote)
	assert.Len(t, f.leadRepo.leads, 1)
}

func TestMoveCard_QuoteCannotRegressToLead(t *testing.T) {
	f := newBoardFixture()
	f.addQuote("quote-1", model.StatusCotar, 0)

	_, err := f.uc.MoveCard(context.Background(), MoveCardInput{CardID: "quote-1", Kind: CardKindQuote, Target: ColumnLead})
	assert.ErrorIs(t, err, domain.ErrQuoteCannotRegressToLead)
	assert.Equal(t, model.StatusCotar, f.quoteRepo.quotes["quote-1"].Status)
}

func TestMoveCard_PlainStatusMove(t *testing.T) {
	f := newBoardFixture()
	f.addQuote("quote-1", model.StatusCotar, 0)

	result, err := f.uc.MoveCard(context.Background(), MoveCardInput{CardID: "quote-1", Kind: CardKindQuote, Target: ColumnAguardandoCliente})
	require.NoError(t, err)
	assert.Equal(t, model.StatusAguardandoCliente, result.Status)
	assert.Equal(t, model.StatusAguardandoCliente, f.quoteRepo.quotes["quote-1"].Status)
}

func floatPtr(v float64) *float64 { return &v }

func TestMoveCard_AprovadoDropCapturesSimplifiedFigures(t *testing.T) {
	f := newBoardFixture()
	f.addQuote("quote-1", model.StatusCotar, 0)

	result, err := f.uc.MoveCard(context.Background(), MoveCardInput{
		CardID: "quote-1",
		Kind:   CardKindQuote,
		Target: ColumnAprovado,
		Value:  floatPtr(5200),
		Cost:   floatPtr(3900),
	})
	require.NoError(t, err)

	assert.Equal(t, model.StatusAprovado, result.Status)
	stored := f.quoteRepo.quotes["quote-1"]
	assert.Equal(t, model.StatusAprovado, stored.Status)
	assert.Equal(t, 5200.0, stored.Value)
	assert.Equal(t, 3900.0, stored.Cost)
}

func TestMoveCard_AprovadoDropWithoutFiguresKeepsStoredOnes(t *testing.T) {
	f := newBoardFixture()
	quote := f.addQuote("quote-1", model.StatusAguardandoCliente, 1800)
	quote.Cost = 1200

	result, err := f.uc.MoveCard(context.Background(), MoveCardInput{CardID: "quote-1", Kind: CardKindQuote, Target: ColumnAprovado})
	require.NoError(t, err)

	assert.Equal(t, model.StatusAprovado, result.Status)
	stored := f.quoteRepo.quotes["quote-1"]
	assert.Equal(t, 1800.0, stored.Value)
	assert.Equal(t, 1200.0, stored.Cost)
}

func TestMoveCard_FiguresOnlyApplyOnAprovado(t *testing.T) {
	f := newBoardFixture()
	f.addQuote("quote-1", model.StatusCotar, 900)

	result, err := f.uc.MoveCard(context.Background(), MoveCardInput{
		CardID: "quote-1",
		Kind:   CardKindQuote,
		Target: ColumnAguardandoCliente,
		Value:  floatPtr(7000),
	})
	require.NoError(t, err)

	assert.Equal(t, model.StatusAguardandoCliente, result.Status)
	assert.Equal(t, 900.0, f.quoteRepo.quotes["quote-1"].Value)
}

func TestMoveCard_LaunchedNeedsConfirmation(t *testing.T) {
	f := newBoardFixture()
	now := time.Now()
	quote := f.addQuote("quote-1", model.StatusLancado, 4200)
	quote.SaleConfirmedAt = &now
	originID := "quote-1"
	f.receivableRepo.accounts["receivable-1"] = &model.AccountReceivable{ID: "receivable-1", Origin: model.OriginQuote, OriginID: &originID, Value: 4200}

	_, err := f.uc.MoveCard(context.Background(), MoveCardInput{CardID: "quote-1", Kind: CardKindQuote, Target: ColumnCotar})
	assert.ErrorIs(t, err, domain.ErrLaunchedMoveNeedsConfirmation)

	// Nothing changed without the confirmation
	assert.Equal(t, model.StatusLancado, f.quoteRepo.quotes["quote-1"].Status)
	assert.Equal(t, 4200.0, f.quoteRepo.quotes["quote-1"].Value)
	assert.Len(t, f.receivableRepo.accounts, 1)
}

func TestMoveCard_ConfirmedMoveUnlaunches(t *testing.T) {
	f := newBoardFixture()
	now := time.Now()
	quote := f.addQuote("quote-1", model.StatusLancado, 4200)
	quote.SaleConfirmedAt = &now
	originID := "quote-1"
	f.receivableRepo.accounts["receivable-1"] = &model.AccountReceivable{ID: "receivable-1", Origin: model.OriginQuote, OriginID: &originID, Value: 4200}
	f.payableRepo.accounts["payable-1"] = &model.AccountPayable{ID: "payable-1", Origin: model.OriginQuote, OriginID: &originID, Value: 3500}

	result, err := f.uc.MoveCard(context.Background(), MoveCardInput{CardID: "quote-1", Kind: CardKindQuote, Target: ColumnCotar, Confirmed: true})
	require.NoError(t, err)

	assert.Equal(t, model.StatusCotar, result.Status)
	stored := f.quoteRepo.quotes["quote-1"]
	assert.Equal(t, model.StatusCotar, stored.Status)
	assert.Zero(t, stored.Value)
	assert.Empty(t, f.receivableRepo.accounts)
	assert.Empty(t, f.payableRepo.accounts)
}

func TestMoveCard_LaunchedToAprovadoIsNoOp(t *testing.T) {
	f := newBoardFixture()
	now := time.Now()
	quote := f.addQuote("quote-1", model.StatusLancado, 4200)
	quote.SaleConfirmedAt = &now

	result, err := f.uc.MoveCard(context.Background(), MoveCardInput{CardID: "quote-1", Kind: CardKindQuote, Target: ColumnAprovado})
	require.NoError(t, err)
	assert.Equal(t, model.StatusLancado, result.Status)
	assert.Equal(t, model.StatusLancado, f.quoteRepo.quotes["quote-1"].Status)
}

func TestMoveCard_InvalidTargetColumn(t *testing.T) {
	f := newBoardFixture()

	_, err := f.uc.MoveCard(context.Background(), MoveCardInput{CardID: "lead-1", Kind: CardKindLead, Target: "ARQUIVADO"})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}
