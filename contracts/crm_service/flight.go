package crm_service

import (
	"time"

	"travel-crm-service/domain/model"
)

// CreateFlightRequest represents the request payload for adding a leg to a quote
type CreateFlightRequest struct {
	QuoteID       string     `json:"cotacao_id" validate:"required,ulid"`
	Direction     string     `json:"direcao" validate:"required,oneof=IDA VOLTA INTERNO"`
	Origin        string     `json:"origem" validate:"required,max=255"`
	Dest          string     `json:"destino" validate:"required,max=255"`
	DepartureDate *time.Time `json:"data_ida,omitempty"`
	ReturnDate    *time.Time `json:"data_volta,omitempty"`
	Airline       string     `json:"companhia" validate:"required,max=100"`
	FlightNumber  string     `json:"numero_voo" validate:"required,max=10"`
	Class         string     `json:"classe" validate:"required,max=30"`
	DepartureTime string     `json:"horario_partida" validate:"required,len=5"`
	ArrivalTime   string     `json:"horario_chegada" validate:"required,len=5"`
	CheckedBags   int        `json:"bagagens_despachadas,omitempty"`
	CarryOnBags   int        `json:"bagagens_mao,omitempty"`
	International bool       `json:"internacional,omitempty"`
	Notes         string     `json:"observacoes,omitempty"`
}

// UpdateFlightRequest represents the request payload for updating a leg
type UpdateFlightRequest struct {
	ID            string     `json:"id" validate:"required,ulid"`
	Direction     string     `json:"direcao" validate:"required,oneof=IDA VOLTA INTERNO"`
	Origin        string     `json:"origem" validate:"required,max=255"`
	Dest          string     `json:"destino" validate:"required,max=255"`
	DepartureDate *time.Time `json:"data_ida,omitempty"`
	ReturnDate    *time.Time `json:"data_volta,omitempty"`
	Airline       string     `json:"companhia" validate:"required,max=100"`
	FlightNumber  string     `json:"numero_voo" validate:"required,max=10"`
	Class         string     `json:"classe" validate:"required,max=30"`
	DepartureTime string     `json:"horario_partida" validate:"required,len=5"`
	ArrivalTime   string     `json:"horario_chegada" validate:"required,len=5"`
	CheckedBags   int        `json:"bagagens_despachadas,omitempty"`
	CarryOnBags   int        `json:"bagagens_mao,omitempty"`
	International bool       `json:"internacional,omitempty"`
	Notes         string     `json:"observacoes,omitempty"`
}

// FlightResponse represents the response payload for a flight leg
type FlightResponse struct {
	ID             string `json:"id"`
	QuoteID        string `json:"cotacao_id"`
	Direction      string `json:"direcao"`
	Origin         string `json:"origem"`
	Dest           string `json:"destino"`
	DepartureDate  string `json:"data_ida,omitempty"`
	ReturnDate     string `json:"data_volta,omitempty"`
	Airline        string `json:"companhia,omitempty"`
	FlightNumber   string `json:"numero_voo,omitempty"`
	Class          string `json:"classe,omitempty"`
	DepartureTime  string `json:"horario_partida,omitempty"`
	ArrivalTime    string `json:"horario_chegada,omitempty"`
	CheckedBags    int    `json:"bagagens_despachadas"`
	CarryOnBags    int    `json:"bagagens_mao"`
	International  bool   `json:"internacional"`
	CheckInOpensAt string `json:"checkin_abre_em,omitempty"`
	Notes          string `json:"observacoes,omitempty"`
	CreatedAt      string `json:"created_at"`
}

// FlightsListResponse wraps the legs of a quote
type FlightsListResponse struct {
	Flights []FlightResponse `json:"voos"`
}

// CreateFlightRequestToModel converts CreateFlightRequest to model.Flight
func CreateFlightRequestToModel(req *CreateFlightRequest) *model.Flight {
	return &model.Flight{
		QuoteID:       req.QuoteID,
		Direction:     req.Direction,
		Origin:        req.Origin,
		Dest:          req.Dest,
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
		Airline:       req.Airline,
		FlightNumber:  req.FlightNumber,
		Class:         req.Class,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		CheckedBags:   req.CheckedBags,
		CarryOnBags:   req.CarryOnBags,
		International: req.International,
		Notes:         req.Notes,
	}
}

// UpdateFlightRequestToModel converts UpdateFlightRequest to model.Flight
func UpdateFlightRequestToModel(req *UpdateFlightRequest) *model.Flight {
	return &model.Flight{
		ID:            req.ID,
		Direction:     req.Direction,
		Origin:        req.Origin,
		Dest:          req.Dest,
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
		Airline:       req.Airline,
		FlightNumber:  req.FlightNumber,
		Class:         req.Class,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		CheckedBags:   req.CheckedBags,
		CarryOnBags:   req.CarryOnBags,
		International: req.International,
		Notes:         req.Notes,
	}
}

// FlightModelToResponse converts model.Flight to FlightResponse
func FlightModelToResponse(flight *model.Flight) *FlightResponse {
	return &FlightResponse{
		ID:             flight.ID,
		QuoteID:        flight.QuoteID,
		Direction:      flight.Direction,
		Origin:         flight.Origin,
		Dest:           flight.Dest,
		DepartureDate:  formatDate(flight.DepartureDate),
		ReturnDate:     formatDate(flight.ReturnDate),
		Airline:        flight.Airline,
		FlightNumber:   flight.FlightNumber,
		Class:          flight.Class,
		DepartureTime:  flight.DepartureTime,
		ArrivalTime:    flight.ArrivalTime,
		CheckedBags:    flight.CheckedBags,
		CarryOnBags:    flight.CarryOnBags,
		International:  flight.International,
		CheckInOpensAt: formatTimestamp(flight.CheckInOpensAt),
		Notes:          flight.Notes,
		CreatedAt:      flight.CreatedAt.Format(time.RFC3339),
	}
}

// FlightModelsToResponses converts slice of model.Flight to slice of FlightResponse
func FlightModelsToResponses(flights []*model.Flight) []FlightResponse {
	responses := make([]FlightResponse, len(flights))
	for i, flight := range flights {
		responses[i] = *FlightModelToResponse(flight)
	}
	return responses
}
