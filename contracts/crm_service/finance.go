package crm_service

import (
	"time"

	"travel-crm-service/domain/model"
)

// CreatePayableRequest represents the request payload for a new account payable
type CreatePayableRequest struct {
	Description     string     `json:"descricao" validate:"required,min=1,max=255"`
	Value           float64    `json:"valor" validate:"required,gt=0"`
	DueDate         *time.Time `json:"vencimento,omitempty"`
	Installments    int        `json:"parcelas,omitempty" validate:"omitempty,min=1,max=48"`
	SupplierID      *string    `json:"fornecedor_id,omitempty" validate:"omitempty,ulid"`
	CategoryID      *string    `json:"categoria_id,omitempty" validate:"omitempty,ulid"`
	PaymentMethodID *string    `json:"forma_pagamento_id,omitempty" validate:"omitempty,ulid"`
}

// UpdatePayableRequest represents the request payload for updating an account payable
type UpdatePayableRequest struct {
	ID              string     `json:"id" validate:"required,ulid"`
	Description     string     `json:"descricao" validate:"required,min=1,max=255"`
	Value           float64    `json:"valor" validate:"required,gt=0"`
	DueDate         *time.Time `json:"vencimento,omitempty"`
	Installments    int        `json:"parcelas,omitempty" validate:"omitempty,min=1,max=48"`
	Status          string     `json:"status,omitempty" validate:"omitempty,oneof=PENDENTE PAGA"`
	SupplierID      *string    `json:"fornecedor_id,omitempty" validate:"omitempty,ulid"`
	CategoryID      *string    `json:"categoria_id,omitempty" validate:"omitempty,ulid"`
	PaymentMethodID *string    `json:"forma_pagamento_id,omitempty" validate:"omitempty,ulid"`
}

// PayableResponse represents the response payload for an account payable
type PayableResponse struct {
	ID              string  `json:"id"`
	Description     string  `json:"descricao"`
	Value           float64 `json:"valor"`
	DueDate         string  `json:"vencimento,omitempty"`
	Installments    int     `json:"parcelas"`
	Status          string  `json:"status"`
	SupplierID      *string `json:"fornecedor_id,omitempty"`
	CategoryID      *string `json:"categoria_id,omitempty"`
	PaymentMethodID *string `json:"forma_pagamento_id,omitempty"`
	Origin          string  `json:"origem,omitempty"`
	OriginID        *string `json:"origem_id,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

// PayablesListResponse wraps a page of accounts payable
type PayablesListResponse struct {
	Payables []PayableResponse `json:"contas_pagar"`
}

// CreateReceivableRequest represents the request payload for a new account receivable
type CreateReceivableRequest struct {
	Description     string     `json:"descricao" validate:"required,min=1,max=255"`
	Value           float64    `json:"valor" validate:"required,gt=0"`
	DueDate         *time.Time `json:"vencimento,omitempty"`
	Installments    int        `json:"parcelas,omitempty" validate:"omitempty,min=1,max=48"`
	ClientID        *string    `json:"cliente_id,omitempty" validate:"omitempty,ulid"`
	CategoryID      *string    `json:"categoria_id,omitempty" validate:"omitempty,ulid"`
	PaymentMethodID *string    `json:"forma_pagamento_id,omitempty" validate:"omitempty,ulid"`
}

// UpdateReceivableRequest represents the request payload for updating an account receivable
type UpdateReceivableRequest struct {
	ID              string     `json:"id" validate:"required,ulid"`
	Description     string     `json:"descricao" validate:"required,min=1,max=255"`
	Value           float64    `json:"valor" validate:"required,gt=0"`
	DueDate         *time.Time `json:"vencimento,omitempty"`
	Installments    int        `json:"parcelas,omitempty" validate:"omitempty,min=1,max=48"`
	Status          string     `json:"status,omitempty" validate:"omitempty,oneof=PENDENTE PAGA"`
	ClientID        *string    `json:"cliente_id,omitempty" validate:"omitempty,ulid"`
	CategoryID      *string    `json:"categoria_id,omitempty" validate:"omitempty,ulid"`
	PaymentMethodID *string    `json:"forma_pagamento_id,omitempty" validate:"omitempty,ulid"`
}

// ReceivableResponse represents the response payload for an account receivable
type ReceivableResponse struct {
	ID              string  `json:"id"`
	Description     string  `json:"descricao"`
	Value           float64 `json:"valor"`
	DueDate         string  `json:"vencimento,omitempty"`
	Installments    int     `json:"parcelas"`
	Status          string  `json:"status"`
	ClientID        *string `json:"cliente_id,omitempty"`
	CategoryID      *string `json:"categoria_id,omitempty"`
	PaymentMethodID *string `json:"forma_pagamento_id,omitempty"`
	Origin          string  `json:"origem,omitempty"`
	OriginID        *string `json:"origem_id,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

// ReceivablesListResponse wraps a page of accounts receivable
type ReceivablesListResponse struct {
	Receivables []ReceivableResponse `json:"contas_receber"`
}

// CreatePayableRequestToModel converts CreatePayableRequest to model.AccountPayable
func CreatePayableRequestToModel(req *CreatePayableRequest) *model.AccountPayable {
	return &model.AccountPayable{
		Description:     req.Description,
		Value:           req.Value,
		DueDate:         req.DueDate,
		Installments:    req.Installments,
		SupplierID:      req.SupplierID,
		CategoryID:      req.CategoryID,
		PaymentMethodID: req.PaymentMethodID,
	}
}

// UpdatePayableRequestToModel converts UpdatePayableRequest to model.AccountPayable
func UpdatePayableRequestToModel(req *UpdatePayableRequest) *model.AccountPayable {
	return &model.AccountPayable{
		ID:              req.ID,
		Description:     req.Description,
		Value:           req.Value,
		DueDate:         req.DueDate,
		Installments:    req.Installments,
		Status:          req.Status,
		SupplierID:      req.SupplierID,
		CategoryID:      req.CategoryID,
		PaymentMethodID: req.PaymentMethodID,
	}
}

// PayableModelToResponse converts model.AccountPayable to PayableResponse
func PayableModelToResponse(account *model.AccountPayable) *PayableResponse {
	return &PayableResponse{
		ID:              account.ID,
		Description:     account.Description,
		Value:           account.Value,
		DueDate:         formatDate(account.DueDate),
		Installments:    account.Installments,
		Status:          account.Status,
		SupplierID:      account.SupplierID,
		CategoryID:      account.CategoryID,
		PaymentMethodID: account.PaymentMethodID,
		Origin:          account.Origin,
		OriginID:        account.OriginID,
		CreatedAt:       account.CreatedAt.Format(time.RFC3339),
	}
}

// PayableModelsToResponses converts slice of model.AccountPayable to responses
func PayableModelsToResponses(accounts []*model.AccountPayable) []PayableResponse {
	responses := make([]PayableResponse, len(accounts))
	for i, account := range accounts {
		responses[i] = *PayableModelToResponse(account)
	}
	return responses
}

// CreateReceivableRequestToModel converts CreateReceivableRequest to model.AccountReceivable
func CreateReceivableRequestToModel(req *CreateReceivableRequest) *model.AccountReceivable {
	return &model.AccountReceivable{
		Description:     req.Description,
		Value:           req.Value,
		DueDate:         req.DueDate,
		Installments:    req.Installments,
		ClientID:        req.ClientID,
		CategoryID:      req.CategoryID,
		PaymentMethodID: req.PaymentMethodID,
	}
}

// UpdateReceivableRequestToModel converts UpdateReceivableRequest to model.AccountReceivable
func UpdateReceivableRequestToModel(req *UpdateReceivableRequest) *model.AccountReceivable {
	return &model.AccountReceivable{
		ID:              req.ID,
		Description:     req.Description,
		Value:           req.Value,
		DueDate:         req.DueDate,
		Installments:    req.Installments,
		Status:          req.Status,
		ClientID:        req.ClientID,
		CategoryID:      req.CategoryID,
		PaymentMethodID: req.PaymentMethodID,
	}
}

// ReceivableModelToResponse converts model.AccountReceivable to ReceivableResponse
func ReceivableModelToResponse(account *model.AccountReceivable) *ReceivableResponse {
	return &ReceivableResponse{
		ID:              account.ID,
		Description:     account.Description,
		Value:           account.Value,
		DueDate:         formatDate(account.DueDate),
		Installments:    account.Installments,
		Status:          account.Status,
		ClientID:        account.ClientID,
		CategoryID:      account.CategoryID,
		PaymentMethodID: account.PaymentMethodID,
		Origin:          account.Origin,
		OriginID:        account.OriginID,
		CreatedAt:       account.CreatedAt.Format(time.RFC3339),
	}
}

// ReceivableModelsToResponses converts slice of model.AccountReceivable to responses
func ReceivableModelsToResponses(accounts []*model.AccountReceivable) []ReceivableResponse {
	responses := make([]ReceivableResponse, len(accounts))
	for i, account := range accounts {
		responses[i] = *ReceivableModelToResponse(account)
	}
	return responses
}
