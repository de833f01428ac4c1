package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"travel-crm-service/domain"
	"travel-crm-service/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuoteFixture() (*fakeQuoteRepo, *fakeClientRepo, QuoteUseCase) {
	quoteRepo := newFakeQuoteRepo()
	clientRepo := newFakeClientRepo(&model.Client{ID: "client-1", Name: "Maria", Surname: "Silva"})
	uc := NewQuoteUseCase(quoteRepo, clientRepo, newTestLogger())
	return quoteRepo, clientRepo, uc
}

func strPtr(s string) *string { return &s }

func TestCreateQuote_GeneratesReferenceCode(t *testing.T) {
	quoteRepo, _, uc := newQuoteFixture()

	quote := &model.Quote{ClientID: strPtr("client-1")}
	require.NoError(t, uc.CreateQuote(context.Background(), quote))

	assert.Len(t, quote.Code, quoteCodeLength)
	for _, r := range quote.Code {
		assert.Contains(t, quoteCodeAlphabet, string(r))
	}
	assert.Equal(t, model.StatusCotar, quote.Status)
	assert.Equal(t, "Maria Silva", quote.ClientName)
	assert.Len(t, quoteRepo.quotes, 1)
}

func TestCreateQuote_RerollsOnCodeCollision(t *testing.T) {
	quoteRepo, _, uc := newQuoteFixture()
	quoteRepo.failFirstChecks = 3

	quote := &model.Quote{ClientID: strPtr("client-1")}
	require.NoError(t, uc.CreateQuote(context.Background(), quote))

	assert.Equal(t, 4, quoteRepo.codeChecks)
	assert.Len(t, quote.Code, quoteCodeLength)
}

func TestCreateQuote_FallsBackWhenCollisionsPersist(t *testing.T) {
	quoteRepo, _, uc := newQuoteFixture()
	quoteRepo.failFirstChecks = quoteCodeMaxAttempts

	quote := &model.Quote{ClientID: strPtr("client-1")}
	require.NoError(t, uc.CreateQuote(context.Background(), quote))

	// The re-roll loop gives up after the cap and the quote still gets a code
	assert.Equal(t, quoteCodeMaxAttempts, quoteRepo.codeChecks)
	assert.Len(t, quote.Code, quoteCodeLength)
	assert.Equal(t, strings.ToUpper(quote.Code), quote.Code)
}

func TestCreateQuote_RequiresClient(t *testing.T) {
	_, _, uc := newQuoteFixture()

	err := uc.CreateQuote(context.Background(), &model.Quote{})
	assert.ErrorIs(t, err, domain.ErrClientRequired)
}

func TestCreateQuote_UnknownClientRejected(t *testing.T) {
	_, _, uc := newQuoteFixture()

	err := uc.CreateQuote(context.Background(), &model.Quote{ClientID: strPtr("ghost")})
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}

func TestCreateQuote_PassengerCountersCapped(t *testing.T) {
	_, _, uc := newQuoteFixture()

	quote := &model.Quote{ClientID: strPtr("client-1"), AdultCount: 5, ChildCount: 3, InfantCount: 2}
	err := uc.CreateQuote(context.Background(), quote)
	assert.ErrorIs(t, err, domain.ErrPassengerLimitExceeded)
}

func TestUpdateQuote_KeepsCodeAndStatus(t *testing.T) {
	quoteRepo, _, uc := newQuoteFixture()

	quote := &model.Quote{ClientID: strPtr("client-1"), Title: "Lua de mel"}
	require.NoError(t, uc.CreateQuote(context.Background(), quote))
	originalCode := quote.Code

	update := &model.Quote{ID: quote.ID, Title: "Lua de mel em Paris", Code: "HACKED", Status: model.StatusAprovado}
	require.NoError(t, uc.UpdateQuote(context.Background(), update))

	stored := quoteRepo.quotes[quote.ID]
	assert.Equal(t, originalCode, stored.Code)
	assert.Equal(t, model.StatusCotar, stored.Status)
	assert.Equal(t, "Lua de mel em Paris", stored.Title)
}

func TestUpdateQuote_LowersPassengerCountersToZero(t *testing.T) {
	quoteRepo, _, uc := newQuoteFixture()

	quote := &model.Quote{ClientID: strPtr("client-1"), AdultCount: 2, ChildCount: 2, InfantCount: 1}
	require.NoError(t, uc.CreateQuote(context.Background(), quote))

	update := &model.Quote{ID: quote.ID, AdultCount: 2}
	require.NoError(t, uc.UpdateQuote(context.Background(), update))

	stored := quoteRepo.quotes[quote.ID]
	assert.Equal(t, 2, stored.AdultCount)
	assert.Zero(t, stored.ChildCount)
	assert.Zero(t, stored.InfantCount)
}

func TestFallbackQuoteCode(t *testing.T) {
	first := fallbackQuoteCode(time.UnixMilli(1700000000000))
	second := fallbackQuoteCode(time.UnixMilli(1700000000001))

	assert.Len(t, first, quoteCodeLength)
	assert.NotEqual(t, first, second)
	assert.Equal(t, strings.ToUpper(first), first)
}

func TestDeleteQuote_NotFound(t *testing.T) {
	_, _, uc := newQuoteFixture()

	err := uc.DeleteQuote(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrQuoteNotFound)
}
