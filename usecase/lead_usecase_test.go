package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"travel-crm-service/domain"
	"travel-crm-service/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type leadFixture struct {
	leadRepo  *fakeLeadRepo
	taskRepo  *fakeTaskRepo
	quoteRepo *fakeQuoteRepo
	cache     *fakeCache
	producer  *fakeProducer
	uc        LeadUseCase
}

func newLeadFixture() *leadFixture {
	leadID := "lead-1"
	f := &leadFixture{
		leadRepo: newFakeLeadRepo(&model.Lead{
			ID:       leadID,
			ClientID: "client-1",
			Client:   model.Client{ID: "client-1", Name: "Maria", Surname: "Silva"},
			Notes:    "quer conhecer o Chile",
		}),
		taskRepo: newFakeTaskRepo(
			&model.Task{ID: "task-1", LeadID: &leadID, Title: "ligar de volta"},
			&model.Task{ID: "task-2", LeadID: &leadID, Title: "enviar roteiro"},
		),
		quoteRepo: newFakeQuoteRepo(),
		cache:     newFakeCache(),
		producer:  newFakeProducer(),
	}
	clientRepo := newFakeClientRepo(&model.Client{ID: "client-1", Name: "Maria", Surname: "Silva"})
	quoteUC := NewQuoteUseCase(f.quoteRepo, clientRepo, newTestLogger())
	f.uc = NewLeadUseCase(f.leadRepo, f.taskRepo, quoteUC, f.cache, f.producer, "crm.leads.changed", time.Minute, newTestLogger())
	return f
}

func (f *leadFixture) lastEvent(t *testing.T) LeadChangedEvent {
	t.Helper()
	require.NotEmpty(t, f.producer.messages)
	var event LeadChangedEvent
	require.NoError(t, json.Unmarshal(f.producer.messages[len(f.producer.messages)-1], &event))
	return event
}

func TestConvertToQuote(t *testing.T) {
	f := newLeadFixture()

	quote, err := f.uc.ConvertToQuote(context.Background(), "lead-1")
	require.NoError(t, err)

	assert.Equal(t, model.StatusCotar, quote.Status)
	assert.Len(t, quote.Code, quoteCodeLength)
	require.NotNil(t, quote.ClientID)
	assert.Equal(t, "client-1", *quote.ClientID)
	assert.Equal(t, "quer conhecer o Chile", quote.Notes)

	// The lead and its tasks are gone, the quote exists
	assert.Empty(t, f.leadRepo.leads)
	assert.Empty(t, f.taskRepo.tasks)
	assert.Len(t, f.quoteRepo.quotes, 1)

	event := f.lastEvent(t)
	assert.Equal(t, LeadEventConverted, event.Event)
	assert.Equal(t, "lead-1", event.LeadID)
	assert.Equal(t, quote.ID, event.QuoteID)
	assert.Equal(t, "crm.leads.changed", f.producer.topics[len(f.producer.topics)-1])
}

func TestConvertToQuote_UnknownLead(t *testing.T) {
	f := newLeadFixture()

	_, err := f.uc.ConvertToQuote(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrLeadNotFound)
	assert.Empty(t, f.quoteRepo.quotes)
}

func TestCreateLead_RequiresClient(t *testing.T) {
	f := newLeadFixture()

	err := f.uc.CreateLead(context.Background(), &model.Lead{})
	assert.ErrorIs(t, err, domain.ErrClientRequired)
	assert.Empty(t, f.producer.messages)
}

func TestCreateLead_InvalidatesCacheAndPublishes(t *testing.T) {
	f := newLeadFixture()
	f.cache.entries[leadCacheKey] = "stale"

	err := f.uc.CreateLead(context.Background(), &model.Lead{ClientID: "client-1"})
	require.NoError(t, err)

	_, cached := f.cache.entries[leadCacheKey]
	assert.False(t, cached)
	assert.Equal(t, LeadEventCreated, f.lastEvent(t).Event)
}

func TestDeleteLead_RemovesTasks(t *testing.T) {
	f := newLeadFixture()

	require.NoError(t, f.uc.DeleteLead(context.Background(), "lead-1"))

	assert.Empty(t, f.leadRepo.leads)
	assert.Empty(t, f.taskRepo.tasks)
	assert.Equal(t, LeadEventDeleted, f.lastEvent(t).Event)
}

func TestListLeads_ServesFromCacheWhenWarm(t *testing.T) {
	f := newLeadFixture()

	first, err := f.uc.ListLeads(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 1, f.cache.sets)

	// A direct repository write does not reach the warm cache
	f.leadRepo.leads["lead-2"] = &model.Lead{ID: "lead-2", ClientID: "client-1"}

	second, err := f.uc.ListLeads(context.Background())
	require.NoError(t, err)
	assert.Len(t, second, 1)
}

func TestListLeads_DropsUnreadableCacheEntry(t *testing.T) {
	f := newLeadFixture()
	f.cache.entries[leadCacheKey] = "{not json"

	leads, err := f.uc.ListLeads(context.Background())
	require.NoError(t, err)
	assert.Len(t, leads, 1)
}
