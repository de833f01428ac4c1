package http

import (
	"encoding/json"
	"io"
	"net/http"

	"travel-crm-service/contracts/crm_service"
	"travel-crm-service/pkg/api"
	"travel-crm-service/pkg/logger"
	"travel-crm-service/pkg/validator"
	"travel-crm-service/usecase"

	"github.com/go-chi/chi/v5"
)

// SaleHandler handles HTTP requests for the sale tab of a quote
type SaleHandler struct {
	SaleUseCase usecase.SaleUseCase
	Logger      logger.LoggerInterface
	API         api.Api
}

// NewSaleHandler creates a new instance of SaleHandler
func NewSaleHandler(saleUseCase usecase.SaleUseCase, appLogger logger.LoggerInterface) *SaleHandler {
	return &SaleHandler{
		SaleUseCase: saleUseCase,
		Logger:      appLogger,
		API:         api.New(),
	}
}

// GetHandler handles HTTP requests to read the sale tab of a quote.
// Quotes in COTAR or AGUARDANDO_CLIENTE render in simplified mode.
func (h *SaleHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Get sale handler called")

	req := crm_service.ResourceIDRequest{ID: chi.URLParam(r, "quoteID")}
	if err := validator.ValidateStruct(&req); err != nil {
		h.Logger.WarnContext(ctx, "Validation failed for get sale", "errors", err)
		h.API.ValidationError(ctx, w, convertValidationErrors(err))
		return
	}

	sale, err := h.SaleUseCase.GetSale(ctx, req.ID)
	if err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to get sale")
		return
	}

	h.API.Success(ctx, w, crm_service.SaleToResponse(sale))
}

// UpdateFiguresHandler handles HTTP requests to store the simplified value
// and cost of a quote still being negotiated
func (h *SaleHandler) UpdateFiguresHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Update sale figures handler called")

	var req crm_service.UpdateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.ErrorContext(ctx, "Invalid request body for sale figures", "error", err)
		h.API.BadRequest(ctx, w, "Invalid request body")
		return
	}

	req.QuoteID = chi.URLParam(r, "quoteID")

	validationErrors := validator.ValidateStruct(&req)
	if validationErrors != nil {
		h.Logger.WarnContext(ctx, "Validation failed for sale figures", "quote_id", req.QuoteID, "errors", validationErrors)
		h.API.ValidationError(ctx, w, convertValidationErrors(validationErrors))
		return
	}

	if err := h.SaleUseCase.SetSimplifiedFigures(ctx, req.QuoteID, req.Value, req.Cost); err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to update sale figures")
		return
	}

	sale, err := h.SaleUseCase.GetSale(ctx, req.QuoteID)
	if err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to get sale")
		return
	}

	h.Logger.InfoContext(ctx, "Sale figures updated successfully in handler", "quote_id", req.QuoteID)
	h.API.Success(ctx, w, crm_service.SaleToResponse(sale))
}

// AddItemHandler handles HTTP requests to draft a sale line on a quote
func (h *SaleHandler) AddItemHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Add sale item handler called")

	var req crm_service.CreateSaleItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.ErrorContext(ctx, "Invalid request body for sale item", "error", err)
		h.API.BadRequest(ctx, w, "Invalid request body")
		return
	}

	if quoteID := chi.URLParam(r, "quoteID"); quoteID != "" {
		req.QuoteID = quoteID
	}

	validationErrors := validator.ValidateStruct(&req)
	if validationErrors != nil {
		h.Logger.WarnContext(ctx, "Validation failed for sale item", "errors", validationErrors)
		h.API.ValidationError(ctx, w, convertValidationErrors(validationErrors))
		return
	}

	item := crm_service.CreateSaleItemRequestToModel(&req)
	if err := h.SaleUseCase.AddItem(ctx, item); err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to add sale item")
		return
	}

	h.Logger.InfoContext(ctx, "Sale item added successfully in handler", "id", item.ID, "quote_id", item.QuoteID, "kind", item.Kind)
	h.API.Created(ctx, w, crm_service.SaleItemModelToResponse(item))
}

// UpdateItemHandler handles HTTP requests to update a drafted sale line
func (h *SaleHandler) UpdateItemHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Update sale item handler called")

	var req crm_service.UpdateSaleItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.ErrorContext(ctx, "Invalid request body for sale item update", "error", err)
		h.API.BadRequest(ctx, w, "Invalid request body")
		return
	}

	req.ID = chi.URLParam(r, "id")

	validationErrors := validator.ValidateStruct(&req)
	if validationErrors != nil {
		h.Logger.WarnContext(ctx, "Validation failed for sale item update", "id", req.ID, "errors", validationErrors)
		h.API.ValidationError(ctx, w, convertValidationErrors(validationErrors))
		return
	}

	item := crm_service.UpdateSaleItemRequestToModel(&req)
	if err := h.SaleUseCase.UpdateItem(ctx, item); err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to update sale item")
		return
	}

	h.Logger.InfoContext(ctx, "Sale item updated successfully in handler", "id", req.ID)
	h.API.Success(ctx, w, crm_service.SaleItemModelToResponse(item))
}

// RemoveItemHandler handles HTTP requests to delete a drafted sale line
func (h *SaleHandler) RemoveItemHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Remove sale item handler called")

	req := crm_service.ResourceIDRequest{ID: chi.URLParam(r, "id")}
	if err := validator.ValidateStruct(&req); err != nil {
		h.Logger.WarnContext(ctx, "Validation failed for remove sale item", "errors", err)
		h.API.ValidationError(ctx, w, convertValidationErrors(err))
		return
	}

	if err := h.SaleUseCase.RemoveItem(ctx, req.ID); err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to remove sale item")
		return
	}

	h.Logger.InfoContext(ctx, "Sale item removed successfully in handler", "id", req.ID)
	h.API.Success(ctx, w, map[string]string{"message": "Sale item removed successfully"})
}

// LaunchHandler handles HTTP requests to launch a sale, copying the drafted
// lines into the payable and receivable ledgers
func (h *SaleHandler) LaunchHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Launch sale handler called")

	req := crm_service.ResourceIDRequest{ID: chi.URLParam(r, "quoteID")}
	if err := validator.ValidateStruct(&req); err != nil {
		h.Logger.WarnContext(ctx, "Validation failed for launch sale", "errors", err)
		h.API.ValidationError(ctx, w, convertValidationErrors(err))
		return
	}

	if err := h.SaleUseCase.LaunchSale(ctx, req.ID); err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to launch sale")
		return
	}

	sale, err := h.SaleUseCase.GetSale(ctx, req.ID)
	if err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to get sale")
		return
	}

	h.Logger.InfoContext(ctx, "Sale launched successfully in handler", "quote_id", req.ID)
	h.API.Success(ctx, w, crm_service.SaleToResponse(sale))
}

// UnlaunchHandler handles HTTP requests to roll a launched sale back.
// Ledger rows created by the launch are removed and the quote returns to
// the requested status, COTAR when none is given.
func (h *SaleHandler) UnlaunchHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Unlaunch sale handler called")

	idReq := crm_service.ResourceIDRequest{ID: chi.URLParam(r, "quoteID")}
	if err := validator.ValidateStruct(&idReq); err != nil {
		h.Logger.WarnContext(ctx, "Validation failed for unlaunch sale", "errors", err)
		h.API.ValidationError(ctx, w, convertValidationErrors(err))
		return
	}

	// The body is optional, an empty one means "back to COTAR"
	var req crm_service.UnlaunchSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		h.Logger.ErrorContext(ctx, "Invalid request body for unlaunch sale", "error", err)
		h.API.BadRequest(ctx, w, "Invalid request body")
		return
	}

	validationErrors := validator.ValidateStruct(&req)
	if validationErrors != nil {
		h.Logger.WarnContext(ctx, "Validation failed for unlaunch sale", "errors", validationErrors)
		h.API.ValidationError(ctx, w, convertValidationErrors(validationErrors))
		return
	}

	if err := h.SaleUseCase.UnlaunchSale(ctx, idReq.ID, req.TargetStatus); err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to unlaunch sale")
		return
	}

	sale, err := h.SaleUseCase.GetSale(ctx, idReq.ID)
	if err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to get sale")
		return
	}

	h.Logger.InfoContext(ctx, "Sale unlaunched successfully in handler", "quote_id", idReq.ID, "target_status", req.TargetStatus)
	h.API.Success(ctx, w, crm_service.SaleToResponse(sale))
}
