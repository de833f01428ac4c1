package crm_service

import (
	"time"

	"travel-crm-service/domain/model"
	"travel-crm-service/usecase"
)

// CreateSaleItemRequest represents the request payload for drafting a sale line
type CreateSaleItemRequest struct {
	QuoteID         string     `json:"cotacao_id" validate:"required,ulid"`
	Kind            string     `json:"tipo" validate:"required,oneof=CUSTO VENDA"`
	Description     string     `json:"descricao" validate:"required,min=1,max=255"`
	Value           float64    `json:"valor" validate:"required,gt=0"`
	DueDate         *time.Time `json:"vencimento,omitempty"`
	Installments    int        `json:"parcelas,omitempty" validate:"omitempty,min=1,max=48"`
	SupplierID      *string    `json:"fornecedor_id,omitempty" validate:"omitempty,ulid"`
	ClientID        *string    `json:"cliente_id,omitempty" validate:"omitempty,ulid"`
	CategoryID      *string    `json:"categoria_id,omitempty" validate:"omitempty,ulid"`
	PaymentMethodID *string    `json:"forma_pagamento_id,omitempty" validate:"omitempty,ulid"`
}

// UpdateSaleItemRequest represents the request payload for updating a sale line
type UpdateSaleItemRequest struct {
	ID              string     `json:"id" validate:"required,ulid"`
	Kind            string     `json:"tipo" validate:"required,oneof=CUSTO VENDA"`
	Description     string     `json:"descricao" validate:"required,min=1,max=255"`
	Value           float64    `json:"valor" validate:"required,gt=0"`
	DueDate         *time.Time `json:"vencimento,omitempty"`
	Installments    int        `json:"parcelas,omitempty" validate:"omitempty,min=1,max=48"`
	SupplierID      *string    `json:"fornecedor_id,omitempty" validate:"omitempty,ulid"`
	ClientID        *string    `json:"cliente_id,omitempty" validate:"omitempty,ulid"`
	CategoryID      *string    `json:"categoria_id,omitempty" validate:"omitempty,ulid"`
	PaymentMethodID *string    `json:"forma_pagamento_id,omitempty" validate:"omitempty,ulid"`
}

// SaleItemResponse represents the response payload for a drafted sale line
type SaleItemResponse struct {
	ID              string  `json:"id"`
	QuoteID         string  `json:"cotacao_id"`
	Kind            string  `json:"tipo"`
	Description     string  `json:"descricao"`
	Value           float64 `json:"valor"`
	DueDate         string  `json:"vencimento,omitempty"`
	Installments    int     `json:"parcelas"`
	SupplierID      *string `json:"fornecedor_id,omitempty"`
	ClientID        *string `json:"cliente_id,omitempty"`
	CategoryID      *string `json:"categoria_id,omitempty"`
	PaymentMethodID *string `json:"forma_pagamento_id,omitempty"`
}

// SaleResponse represents the sale tab of a quote
type SaleResponse struct {
	QuoteID  string             `json:"cotacao_id"`
	Mode     string             `json:"modo"`
	Value    float64            `json:"valor"`
	Cost     float64            `json:"custo"`
	Launched bool               `json:"lancada"`
	Items    []SaleItemResponse `json:"itens"`
}

// UpdateSaleRequest carries the simplified figures of a quote still being
// negotiated
type UpdateSaleRequest struct {
	QuoteID string  `json:"-" validate:"required,ulid"`
	Value   float64 `json:"valor" validate:"min=0"`
	Cost    float64 `json:"custo" validate:"min=0"`
}

// UnlaunchSaleRequest asks for a launched sale to be rolled back
type UnlaunchSaleRequest struct {
	TargetStatus string `json:"status_destino,omitempty" validate:"omitempty,oneof=COTAR AGUARDANDO_CLIENTE APROVADO REPROVADO"`
}

// CreateSaleItemRequestToModel converts CreateSaleItemRequest to model.SaleItem
func CreateSaleItemRequestToModel(req *CreateSaleItemRequest) *model.SaleItem {
	installments := req.Installments
	if installments == 0 {
		installments = 1
	}
	return &model.SaleItem{
		QuoteID:         req.QuoteID,
		Kind:            req.Kind,
		Description:     req.Description,
		Value:           req.Value,
		DueDate:         req.DueDate,
		Installments:    installments,
		SupplierID:      req.SupplierID,
		ClientID:        req.ClientID,
		CategoryID:      req.CategoryID,
		PaymentMethodID: req.PaymentMethodID,
	}
}

// UpdateSaleItemRequestToModel converts UpdateSaleItemRequest to model.SaleItem
func UpdateSaleItemRequestToModel(req *UpdateSaleItemRequest) *model.SaleItem {
	installments := req.Installments
	if installments == 0 {
		installments = 1
	}
	return &model.SaleItem{
		ID:              req.ID,
		Kind:            req.Kind,
		Description:     req.Description,
		Value:           req.Value,
		DueDate:         req.DueDate,
		Installments:    installments,
		SupplierID:      req.SupplierID,
		ClientID:        req.ClientID,
		CategoryID:      req.CategoryID,
		PaymentMethodID: req.PaymentMethodID,
	}
}

// SaleItemModelToResponse converts model.SaleItem to SaleItemResponse
func SaleItemModelToResponse(item *model.SaleItem) *SaleItemResponse {
	return &SaleItemResponse{
		ID:              item.ID,
		QuoteID:         item.QuoteID,
		Kind:            item.Kind,
		Description:     item.Description,
		Value:           item.Value,
		DueDate:         formatDate(item.DueDate),
		Installments:    item.Installments,
		SupplierID:      item.SupplierID,
		ClientID:        item.ClientID,
		CategoryID:      item.CategoryID,
		PaymentMethodID: item.PaymentMethodID,
	}
}

// SaleToResponse converts the usecase sale view to SaleResponse
func SaleToResponse(sale *usecase.Sale) *SaleResponse {
	resp := &SaleResponse{
		QuoteID:  sale.QuoteID,
		Mode:     sale.Mode,
		Value:    sale.Value,
		Cost:     sale.Cost,
		Launched: sale.Launched,
		Items:    make([]SaleItemResponse, 0, len(sale.Items)),
	}
	for _, item := range sale.Items {
		resp.Items = append(resp.Items, *SaleItemModelToResponse(item))
	}
	return resp
}
