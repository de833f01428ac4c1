package crm_service

import (
	"travel-crm-service/domain/model"
	"travel-crm-service/usecase"
)

// AddPassengerRequest represents the request payload for attaching a traveler.
// Either an existing client ID or an inline new-client payload must be sent.
type AddPassengerRequest struct {
	QuoteID   string               `json:"cotacao_id" validate:"required,ulid"`
	ClientID  string               `json:"cliente_id,omitempty" validate:"omitempty,ulid"`
	NewClient *CreateClientRequest `json:"novo_cliente,omitempty"`
	Type      string               `json:"tipo,omitempty" validate:"omitempty,oneof=adulto crianca bebe"`
}

// PassengerResponse represents the response payload for a quote passenger
type PassengerResponse struct {
	ID               string          `json:"id"`
	QuoteID          string          `json:"cotacao_id"`
	ClientID         string          `json:"cliente_id"`
	Client           *ClientResponse `json:"cliente,omitempty"`
	Type             string          `json:"tipo"`
	MissingDocuments []string        `json:"documentos_pendentes"`
}

// PassengersListResponse wraps the travelers of a quote
type PassengersListResponse struct {
	Passengers []PassengerResponse `json:"passageiros"`
}

// AddPassengerRequestToModel converts AddPassengerRequest to model.QuotePassenger
func AddPassengerRequestToModel(req *AddPassengerRequest) *model.QuotePassenger {
	return &model.QuotePassenger{
		QuoteID:  req.QuoteID,
		ClientID: req.ClientID,
		Type:     req.Type,
	}
}

// PassengerModelToResponse converts model.QuotePassenger to PassengerResponse.
// missing may be nil when document gaps were not computed for this view.
func PassengerModelToResponse(passenger *model.QuotePassenger, missing []string) *PassengerResponse {
	if missing == nil {
		missing = []string{}
	}
	resp := &PassengerResponse{
		ID:               passenger.ID,
		QuoteID:          passenger.QuoteID,
		ClientID:         passenger.ClientID,
		Type:             passenger.Type,
		MissingDocuments: missing,
	}
	if passenger.Client.ID != "" {
		resp.Client = ClientModelToResponse(&passenger.Client)
	}
	return resp
}

// PassengerInfosToResponses converts usecase passenger views to responses
func PassengerInfosToResponses(infos []*usecase.PassengerInfo) []PassengerResponse {
	responses := make([]PassengerResponse, len(infos))
	for i, info := range infos {
		responses[i] = *PassengerModelToResponse(info.Passenger, info.MissingDocuments)
	}
	return responses
}
