package crm_service

import (
	"time"

	"travel-crm-service/domain/model"
)

// CreateQuoteRequest represents the request payload for creating a new quote
type CreateQuoteRequest struct {
	ClientID    string     `json:"cliente_id" validate:"required,ulid"`
	Title       string     `json:"titulo,omitempty" validate:"omitempty,max=255"`
	Destination string     `json:"destino,omitempty" validate:"omitempty,max=255"`
	TravelDate  *time.Time `json:"data_viagem,omitempty"`
	Notes       string     `json:"observacoes,omitempty"`
	AdultCount  int        `json:"qtd_adultos,omitempty" validate:"omitempty,min=0,max=9"`
	ChildCount  int        `json:"qtd_criancas,omitempty" validate:"omitempty,min=0,max=9"`
	InfantCount int        `json:"qtd_bebes,omitempty" validate:"omitempty,min=0,max=9"`
}

// UpdateQuoteRequest represents the request payload for updating a quote header.
// The reference code and the pipeline status are not part of this payload:
// the code is immutable and status moves go through the board.
type UpdateQuoteRequest struct {
	ID          string     `json:"id" validate:"required,ulid"`
	ClientID    string     `json:"cliente_id,omitempty" validate:"omitempty,ulid"`
	Title       string     `json:"titulo,omitempty" validate:"omitempty,max=255"`
	Destination string     `json:"destino,omitempty" validate:"omitempty,max=255"`
	TravelDate  *time.Time `json:"data_viagem,omitempty"`
	Notes       string     `json:"observacoes,omitempty"`
	AdultCount  int        `json:"qtd_adultos,omitempty" validate:"omitempty,min=0,max=9"`
	ChildCount  int        `json:"qtd_criancas,omitempty" validate:"omitempty,min=0,max=9"`
	InfantCount int        `json:"qtd_bebes,omitempty" validate:"omitempty,min=0,max=9"`
}

// QuoteResponse represents the response payload for a quote header
type QuoteResponse struct {
	ID              string  `json:"id"`
	Code            string  `json:"codigo"`
	ClientID        *string `json:"cliente_id,omitempty"`
	ClientName      string  `json:"cliente_nome"`
	Title           string  `json:"titulo,omitempty"`
	Status          string  `json:"status"`
	Value           float64 `json:"valor"`
	Cost            float64 `json:"custo"`
	Destination     string  `json:"destino,omitempty"`
	TravelDate      string  `json:"data_viagem,omitempty"`
	Notes           string  `json:"observacoes,omitempty"`
	AdultCount      int     `json:"qtd_adultos"`
	ChildCount      int     `json:"qtd_criancas"`
	InfantCount     int     `json:"qtd_bebes"`
	Launched        bool    `json:"lancada"`
	SaleConfirmedAt string  `json:"venda_confirmada_em,omitempty"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

// QuoteFullResponse is the quote with its flights, passengers and sale items
type QuoteFullResponse struct {
	QuoteResponse
	Flights    []FlightResponse    `json:"voos"`
	Passengers []PassengerResponse `json:"passageiros"`
	SaleItems  []SaleItemResponse  `json:"itens_venda"`
}

// QuotesListResponse wraps a page of quotes
type QuotesListResponse struct {
	Quotes []QuoteResponse `json:"cotacoes"`
}

// PixPayloadResponse carries the copy-and-paste PIX charge string
type PixPayloadResponse struct {
	Payload string `json:"payload"`
}

// CreateQuoteRequestToModel converts CreateQuoteRequest to model.Quote
func CreateQuoteRequestToModel(req *CreateQuoteRequest) *model.Quote {
	clientID := req.ClientID
	adults := req.AdultCount
	if adults == 0 {
		adults = 1
	}
	return &model.Quote{
		ClientID:    &clientID,
		Title:       req.Title,
		Destination: req.Destination,
		TravelDate:  req.TravelDate,
		Notes:       req.Notes,
		AdultCount:  adults,
		ChildCount:  req.ChildCount,
		InfantCount: req.InfantCount,
	}
}

// UpdateQuoteRequestToModel converts UpdateQuoteRequest to model.Quote
func UpdateQuoteRequestToModel(req *UpdateQuoteRequest) *model.Quote {
	quote := &model.Quote{
		ID:          req.ID,
		Title:       req.Title,
		Destination: req.Destination,
		TravelDate:  req.TravelDate,
		Notes:       req.Notes,
		AdultCount:  req.AdultCount,
		ChildCount:  req.ChildCount,
		InfantCount: req.InfantCount,
	}
	if req.ClientID != "" {
		clientID := req.ClientID
		quote.ClientID = &clientID
	}
	return quote
}

// QuoteModelToResponse converts model.Quote to QuoteResponse
func QuoteModelToResponse(quote *model.Quote) *QuoteResponse {
	return &QuoteResponse{
		ID:              quote.ID,
		Code:            quote.Code,
		ClientID:        quote.ClientID,
		ClientName:      quote.ClientName,
		Title:           quote.Title,
		Status:          quote.Status,
		Value:           quote.Value,
		Cost:            quote.Cost,
		Destination:     quote.Destination,
		TravelDate:      formatDate(quote.TravelDate),
		Notes:           quote.Notes,
		AdultCount:      quote.AdultCount,
		ChildCount:      quote.ChildCount,
		InfantCount:     quote.InfantCount,
		Launched:        quote.IsLaunched(),
		SaleConfirmedAt: formatTimestamp(quote.SaleConfirmedAt),
		CreatedAt:       quote.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       quote.UpdatedAt.Format(time.RFC3339),
	}
}

// QuoteModelToFullResponse converts a preloaded model.Quote to QuoteFullResponse
func QuoteModelToFullResponse(quote *model.Quote) *QuoteFullResponse {
	full := &QuoteFullResponse{
		QuoteResponse: *QuoteModelToResponse(quote),
		Flights:       make([]FlightResponse, 0, len(quote.Flights)),
		Passengers:    make([]PassengerResponse, 0, len(quote.Passengers)),
		SaleItems:     make([]SaleItemResponse, 0, len(quote.SaleItems)),
	}
	for i := range quote.Flights {
		full.Flights = append(full.Flights, *FlightModelToResponse(&quote.Flights[i]))
	}
	for i := range quote.Passengers {
		full.Passengers = append(full.Passengers, *PassengerModelToResponse(&quote.Passengers[i], nil))
	}
	for i := range quote.SaleItems {
		full.SaleItems = append(full.SaleItems, *SaleItemModelToResponse(&quote.SaleItems[i]))
	}
	return full
}

// QuoteModelsToResponses converts slice of model.Quote to slice of QuoteResponse
func QuoteModelsToResponses(quotes []*model.Quote) []QuoteResponse {
	responses := make([]QuoteResponse, len(quotes))
	for i, quote := range quotes {
		responses[i] = *QuoteModelToResponse(quote)
	}
	return responses
}
