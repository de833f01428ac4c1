package http

import (
	"encoding/json"
	"net/http"

	"travel-crm-service/contracts/crm_service"
	"travel-crm-service/pkg/api"
	"travel-crm-service/pkg/logger"
	"travel-crm-service/pkg/validator"
	"travel-crm-service/usecase"

	"github.com/go-chi/chi/v5"
)

// QuoteHandler handles HTTP requests for quote operations
type QuoteHandler struct {
	QuoteUseCase usecase.QuoteUseCase
	Logger       logger.LoggerInterface
	API          api.Api
}

// NewQuoteHandler creates a new instance of QuoteHandler
func NewQuoteHandler(quoteUseCase usecase.QuoteUseCase, appLogger logger.LoggerInterface) *QuoteHandler {
	return &QuoteHandler{
		QuoteUseCase: quoteUseCase,
		Logger:       appLogger,
		API:          api.New(),
	}
}

// CreateHandler handles HTTP requests to open a new quote.
// The reference code and the COTAR status are assigned server side.
func (h *QuoteHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Create quote handler called")

	var req crm_service.CreateQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.ErrorContext(ctx, "Invalid request body for quote creation", "error", err)
		h.API.BadRequest(ctx, w, "Invalid request body")
		return
	}

	validationErrors := validator.ValidateStruct(&req)
	if validationErrors != nil {
		h.Logger.WarnContext(ctx, "Validation failed for quote creation", "errors", validationErrors)
		h.API.ValidationError(ctx, w, convertValidationErrors(validationErrors))
		return
	}

	quote := crm_service.CreateQuoteRequestToModel(&req)
	if err := h.QuoteUseCase.CreateQuote(ctx, quote); err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to create quote")
		return
	}

	h.Logger.InfoContext(ctx, "Quote created successfully in handler", "id", quote.ID, "code", quote.Code)
	h.API.Created(ctx, w, crm_service.QuoteModelToResponse(quote))
}

// GetByIDHandler handles HTTP requests to retrieve a quote by ID
func (h *QuoteHandler) GetByIDHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Get quote by ID handler called")

	req := crm_service.ResourceIDRequest{ID: chi.URLParam(r, "quoteID")}
	if err := validator.ValidateStruct(&req); err != nil {
		h.Logger.WarnContext(ctx, "Validation failed for get quote by ID", "errors", err)
		h.API.ValidationError(ctx, w, convertValidationErrors(err))
		return
	}

	quote, err := h.QuoteUseCase.GetQuoteByID(ctx, req.ID)
	if err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to get quote")
		return
	}

	h.API.Success(ctx, w, crm_service.QuoteModelToResponse(quote))
}

// GetFullHandler handles HTTP requests to retrieve a quote with its
// flights, passengers and sale items preloaded
func (h *QuoteHandler) GetFullHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Get full quote handler called")

	req := crm_service.ResourceIDRequest{ID: chi.URLParam(r, "quoteID")}
	if err := validator.ValidateStruct(&req); err != nil {
		h.Logger.WarnContext(ctx, "Validation failed for get full quote", "errors", err)
		h.API.ValidationError(ctx, w, convertValidationErrors(err))
		return
	}

	quote, err := h.QuoteUseCase.GetQuoteFull(ctx, req.ID)
	if err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to get quote")
		return
	}

	h.API.Success(ctx, w, crm_service.QuoteModelToFullResponse(quote))
}

// UpdateHandler handles HTTP requests to update an existing quote.
// The code and status fields are not updatable through this endpoint.
func (h *QuoteHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Update quote handler called")

	var req crm_service.UpdateQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.ErrorContext(ctx, "Invalid request body for quote update", "error", err)
		h.API.BadRequest(ctx, w, "Invalid request body")
		return
	}

	req.ID = chi.URLParam(r, "quoteID")

	validationErrors := validator.ValidateStruct(&req)
	if validationErrors != nil {
		h.Logger.WarnContext(ctx, "Validation failed for quote update", "id", req.ID, "errors", validationErrors)
		h.API.ValidationError(ctx, w, convertValidationErrors(validationErrors))
		return
	}

	quote := crm_service.UpdateQuoteRequestToModel(&req)
	if err := h.QuoteUseCase.UpdateQuote(ctx, quote); err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to update quote")
		return
	}

	updated, err := h.QuoteUseCase.GetQuoteByID(ctx, req.ID)
	if err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to get quote")
		return
	}

	h.Logger.InfoContext(ctx, "Quote updated successfully in handler", "id", req.ID)
	h.API.Success(ctx, w, crm_service.QuoteModelToResponse(updated))
}

// DeleteHandler handles HTTP requests to delete a quote
func (h *QuoteHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Delete quote handler called")

	req := crm_service.ResourceIDRequest{ID: chi.URLParam(r, "quoteID")}
	if err := validator.ValidateStruct(&req); err != nil {
		h.Logger.WarnContext(ctx, "Validation failed for delete quote", "errors", err)
		h.API.ValidationError(ctx, w, convertValidationErrors(err))
		return
	}

	if err := h.QuoteUseCase.DeleteQuote(ctx, req.ID); err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to delete quote")
		return
	}

	h.Logger.InfoContext(ctx, "Quote deleted successfully in handler", "id", req.ID)
	h.API.Success(ctx, w, map[string]string{"message": "Quote deleted successfully"})
}

// ListHandler handles HTTP requests to list quotes with pagination
func (h *QuoteHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "List quotes handler called")

	offset, limit := parsePagination(r)
	quotes, total, err := h.QuoteUseCase.ListQuotes(ctx, offset, limit)
	if err != nil {
		h.Logger.ErrorContext(ctx, "Error listing quotes", "offset", offset, "limit", limit, "error", err)
		h.API.InternalServerError(ctx, w, "Failed to list quotes")
		return
	}

	h.Logger.InfoContext(ctx, "Quotes listed successfully in handler", "count", len(quotes), "total", total)
	h.API.SuccessWithMeta(ctx, w, crm_service.QuotesListResponse{Quotes: crm_service.QuoteModelsToResponses(quotes)}, paginationMeta(offset, limit, total))
}
