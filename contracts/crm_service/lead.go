package crm_service

import (
	"time"

	"travel-crm-service/domain/model"
)

// CreateLeadRequest represents the request payload for creating a new lead
type CreateLeadRequest struct {
	ClientID string `json:"cliente_id" validate:"required,ulid"`
	Notes    string `json:"observacoes,omitempty"`
}

// UpdateLeadRequest represents the request payload for updating an existing lead
type UpdateLeadRequest struct {
	ID       string `json:"id" validate:"required,ulid"`
	ClientID string `json:"cliente_id" validate:"required,ulid"`
	Notes    string `json:"observacoes,omitempty"`
}

// LeadResponse represents the response payload for a lead
type LeadResponse struct {
	ID         string          `json:"id"`
	ClientID   string          `json:"cliente_id"`
	Client     *ClientResponse `json:"cliente,omitempty"`
	ClientName string          `json:"cliente_nome"`
	Notes      string          `json:"observacoes,omitempty"`
	CreatedAt  string          `json:"created_at"`
	UpdatedAt  string          `json:"updated_at"`
}

// LeadsListResponse wraps the full lead list
type LeadsListResponse struct {
	Leads []LeadResponse `json:"leads"`
}

// ConvertLeadResponse reports the quote produced by a lead conversion
type ConvertLeadResponse struct {
	QuoteID string `json:"cotacao_id"`
	Code    string `json:"codigo"`
	Status  string `json:"status"`
}

// CreateLeadRequestToModel converts CreateLeadRequest to model.Lead
func CreateLeadRequestToModel(req *CreateLeadRequest) *model.Lead {
	return &model.Lead{
		ClientID: req.ClientID,
		Notes:    req.Notes,
	}
}

// UpdateLeadRequestToModel converts UpdateLeadRequest to model.Lead
func UpdateLeadRequestToModel(req *UpdateLeadRequest) *model.Lead {
	return &model.Lead{
		ID:       req.ID,
		ClientID: req.ClientID,
		Notes:    req.Notes,
	}
}

// LeadModelToResponse converts model.Lead to LeadResponse
func LeadModelToResponse(lead *model.Lead) *LeadResponse {
	resp := &LeadResponse{
		ID:         lead.ID,
		ClientID:   lead.ClientID,
		ClientName: lead.Client.FullName(),
		Notes:      lead.Notes,
		CreatedAt:  lead.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  lead.UpdatedAt.Format(time.RFC3339),
	}
	if lead.Client.ID != "" {
		resp.Client = ClientModelToResponse(&lead.Client)
	}
	return resp
}

// LeadModelsToResponses converts slice of model.Lead to slice of LeadResponse
func LeadModelsToResponses(leads []*model.Lead) []LeadResponse {
	responses := make([]LeadResponse, len(leads))
	for i, lead := range leads {
		responses[i] = *LeadModelToResponse(lead)
	}
	return responses
}

// ConvertLeadModelToResponse builds the conversion result from the new quote
func ConvertLeadModelToResponse(quote *model.Quote) *ConvertLeadResponse {
	return &ConvertLeadResponse{
		QuoteID: quote.ID,
		Code:    quote.Code,
		Status:  quote.Status,
	}
}
