// Package crm_service contains request and response contracts for the CRM service
package crm_service

import (
	"time"

	"travel-crm-service/domain/model"
)

const dateLayout = "2006-01-02"

// formatDate renders an optional date-only field, empty when absent
func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

// formatTimestamp renders an optional timestamp field, empty when absent
func formatTimestamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

// ResourceIDRequest validates a ULID taken from a URL parameter
type ResourceIDRequest struct {
	ID string `validate:"required,ulid"`
}

// CreateClientRequest represents the request payload for creating a new client
type CreateClientRequest struct {
	Name           string     `json:"nome" validate:"required,min=1,max=255"`
	Surname        string     `json:"sobrenome,omitempty" validate:"omitempty,max=255"`
	Email          string     `json:"email,omitempty" validate:"omitempty,email"`
	Phone          string     `json:"telefone,omitempty" validate:"omitempty,max=30"`
	CPF            string     `json:"cpf,omitempty" validate:"omitempty,max=14"`
	PassportNumber string     `json:"passaporte,omitempty" validate:"omitempty,max=20"`
	PassportIssue  *time.Time `json:"passaporte_emissao,omitempty"`
	PassportExpiry *time.Time `json:"passaporte_validade,omitempty"`
	BirthDate      *time.Time `json:"data_nascimento,omitempty"`
	Nationality    string     `json:"nacionalidade,omitempty" validate:"omitempty,max=60"`
	SocialNetwork  string     `json:"rede_social,omitempty" validate:"omitempty,max=255"`
	Notes          string     `json:"observacoes,omitempty"`
}

// UpdateClientRequest represents the request payload for updating an existing client
type UpdateClientRequest struct {
	ID             string     `json:"id" validate:"required,ulid"`
	Name           string     `json:"nome" validate:"required,min=1,max=255"`
	Surname        string     `json:"sobrenome,omitempty" validate:"omitempty,max=255"`
	Email          string     `json:"email,omitempty" validate:"omitempty,email"`
	Phone          string     `json:"telefone,omitempty" validate:"omitempty,max=30"`
	CPF            string     `json:"cpf,omitempty" validate:"omitempty,max=14"`
	PassportNumber string     `json:"passaporte,omitempty" validate:"omitempty,max=20"`
	PassportIssue  *time.Time `json:"passaporte_emissao,omitempty"`
	PassportExpiry *time.Time `json:"passaporte_validade,omitempty"`
	BirthDate      *time.Time `json:"data_nascimento,omitempty"`
	Nationality    string     `json:"nacionalidade,omitempty" validate:"omitempty,max=60"`
	SocialNetwork  string     `json:"rede_social,omitempty" validate:"omitempty,max=255"`
	Notes          string     `json:"observacoes,omitempty"`
}

// ClientResponse represents the response payload for a client
type ClientResponse struct {
	ID             string `json:"id"`
	Name           string `json:"nome"`
	Surname        string `json:"sobrenome,omitempty"`
	FullName       string `json:"nome_completo"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"telefone,omitempty"`
	CPF            string `json:"cpf,omitempty"`
	PassportNumber string `json:"passaporte,omitempty"`
	PassportIssue  string `json:"passaporte_emissao,omitempty"`
	PassportExpiry string `json:"passaporte_validade,omitempty"`
	BirthDate      string `json:"data_nascimento,omitempty"`
	Nationality    string `json:"nacionalidade,omitempty"`
	SocialNetwork  string `json:"rede_social,omitempty"`
	Notes          string `json:"observacoes,omitempty"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

// ClientsListResponse wraps a page of clients
type ClientsListResponse struct {
	Clients []ClientResponse `json:"clientes"`
}

// CreateClientRequestToModel converts CreateClientRequest to model.Client
func CreateClientRequestToModel(req *CreateClientRequest) *model.Client {
	return &model.Client{
		Name:           req.Name,
		Surname:        req.Surname,
		Email:          req.Email,
		Phone:          req.Phone,
		CPF:            req.CPF,
		PassportNumber: req.PassportNumber,
		PassportIssue:  req.PassportIssue,
		PassportExpiry: req.PassportExpiry,
		BirthDate:      req.BirthDate,
		Nationality:    req.Nationality,
		SocialNetwork:  req.SocialNetwork,
		Notes:          req.Notes,
	}
}

// UpdateClientRequestToModel converts UpdateClientRequest to model.Client
func UpdateClientRequestToModel(req *UpdateClientRequest) *model.Client {
	return &model.Client{
		ID:             req.ID,
		Name:           req.Name,
		Surname:        req.Surname,
		Email:          req.Email,
		Phone:          req.Phone,
		CPF:            req.CPF,
		PassportNumber: req.PassportNumber,
		PassportIssue:  req.PassportIssue,
		PassportExpiry: req.PassportExpiry,
		BirthDate:      req.BirthDate,
		Nationality:    req.Nationality,
		SocialNetwork:  req.SocialNetwork,
		Notes:          req.Notes,
	}
}

// ClientModelToResponse converts model.Client to ClientResponse
func ClientModelToResponse(client *model.Client) *ClientResponse {
	return &ClientResponse{
		ID:             client.ID,
		Name:           client.Name,
		Surname:        client.Surname,
		FullName:       client.FullName(),
		Email:          client.Email,
		Phone:          client.Phone,
		CPF:            client.CPF,
		PassportNumber: client.PassportNumber,
		PassportIssue:  formatDate(client.PassportIssue),
		PassportExpiry: formatDate(client.PassportExpiry),
		BirthDate:      formatDate(client.BirthDate),
		Nationality:    client.Nationality,
		SocialNetwork:  client.SocialNetwork,
		Notes:          client.Notes,
		CreatedAt:      client.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      client.UpdatedAt.Format(time.RFC3339),
	}
}

// ClientModelsToResponses converts slice of model.Client to slice of ClientResponse
func ClientModelsToResponses(clients []*model.Client) []ClientResponse {
	responses := make([]ClientResponse, len(clients))
	for i, client := range clients {
		responses[i] = *ClientModelToResponse(client)
	}
	return responses
}
