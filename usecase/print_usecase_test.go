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

func newPrintFixture(t *testing.T, quote *model.Quote, company *model.Company) PrintUseCase {
	t.Helper()
	quoteRepo := newFakeQuoteRepo()
	quoteRepo.quotes[quote.ID] = quote
	var companies []*model.Company
	if company != nil {
		companies = append(companies, company)
	}
	uc, err := NewPrintUseCase(quoteRepo, newFakeCompanyRepo(companies...), newTestLogger())
	require.NoError(t, err)
	return uc
}

func TestRenderQuote_Document(t *testing.T) {
	companyID := "company-1"
	travel := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	quote := &model.Quote{
		ID:          "quote-1",
		Code:        "ABC234",
		CompanyID:   &companyID,
		ClientName:  "Maria Silva",
		Status:      model.StatusAprovado,
		Title:       "Lua de mel",
		Destination: "Santiago",
		TravelDate:  &travel,
		Value:       4200.50,
		Cost:        3500,
		Flights: []model.Flight{
			{Direction: model.DirectionReturn, Origin: "SCL", Dest: "GRU", FlightNumber: "LA8085", DepartureTime: "21:10"},
			{Direction: model.DirectionOutbound, Origin: "GRU", Dest: "SCL", FlightNumber: "LA8084", DepartureTime: "08:30"},
		},
	}
	company := &model.Company{
		ID:           "company-1",
		Name:         "Agência Azul",
		CNPJ:         "12.345.678/0001-90",
		PrimaryColor: "#0ea5e9",
		PixKey:       "pagamentos@agenciaazul.com.br",
		City:         "São Paulo",
	}
	uc := newPrintFixture(t, quote, company)

	document, err := uc.RenderQuote(context.Background(), "quote-1")
	require.NoError(t, err)
	html := string(document)

	assert.Contains(t, html, "ABC234")
	assert.Contains(t, html, "Maria Silva")
	assert.Contains(t, html, "Agência Azul")
	assert.Contains(t, html, "#0ea5e9")
	assert.Contains(t, html, "R$ 4200,50")
	assert.Contains(t, html, "Voos de Ida")
	assert.Contains(t, html, "Voos de Volta")
	assert.Contains(t, html, "LA8084")
	// The PIX block is present because the company has a key and the quote a value
	assert.Contains(t, html, "br.gov.bcb.pix")
	// Internal cost never reaches the customer document
	assert.NotContains(t, html, "3500")
}

func TestRenderQuote_NoCompanyStillRenders(t *testing.T) {
	quote := &model.Quote{ID: "quote-1", Code: "ABC234", ClientName: "Maria Silva", Status: model.StatusCotar, Value: 100}
	uc := newPrintFixture(t, quote, nil)

	document, err := uc.RenderQuote(context.Background(), "quote-1")
	require.NoError(t, err)
	html := string(document)

	assert.Contains(t, html, "ABC234")
	// Without a PIX key no payment block is rendered
	assert.NotContains(t, html, "br.gov.bcb.pix")
}

func TestBuildPixPayload(t *testing.T) {
	companyID := "company-1"
	quote := &model.Quote{ID: "quote-1", Code: "ABC234", CompanyID: &companyID, Value: 4200.50}
	company := &model.Company{ID: "company-1", Name: "Agência Azul", PixKey: "pagamentos@agenciaazul.com.br", City: "São Paulo"}
	uc := newPrintFixture(t, quote, company)

	payload, err := uc.BuildPixPayload(context.Background(), "quote-1")
	require.NoError(t, err)

	assert.Contains(t, payload, "br.gov.bcb.pix")
	assert.Contains(t, payload, "pagamentos@agenciaazul.com.br")
	assert.Contains(t, payload, "4200.50")
	assert.Contains(t, payload, "ABC234")
}

func TestBuildPixPayload_NoValue(t *testing.T) {
	companyID := "company-1"
	quote := &model.Quote{ID: "quote-1", Code: "ABC234", CompanyID: &companyID}
	company := &model.Company{ID: "company-1", Name: "Agência Azul", PixKey: "chave"}
	uc := newPrintFixture(t, quote, company)

	_, err := uc.BuildPixPayload(context.Background(), "quote-1")
	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
}

func TestBuildPixPayload_NoKeyConfigured(t *testing.T) {
	companyID := "company-1"
	quote := &model.Quote{ID: "quote-1", Code: "ABC234", CompanyID: &companyID, Value: 100}
	company := &model.Company{ID: "company-1", Name: "Agência Azul"}
	uc := newPrintFixture(t, quote, company)

	_, err := uc.BuildPixPayload(context.Background(), "quote-1")
	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
}
