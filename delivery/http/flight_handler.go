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

// FlightHandler handles HTTP requests for flight leg operations
type FlightHandler struct {
	FlightUseCase usecase.FlightUseCase
	Logger        logger.LoggerInterface
	API           api.Api
}

// NewFlightHandler creates a new instance of FlightHandler
func NewFlightHandler(flightUseCase usecase.FlightUseCase, appLogger logger.LoggerInterface) *FlightHandler {
	return &FlightHandler{
		FlightUseCase: flightUseCase,
		Logger:        appLogger,
		API:           api.New(),
	}
}

// CreateHandler handles HTTP requests to add a flight leg to a quote.
// The check-in opening instant is computed on the way in.
func (h *FlightHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Create flight handler called")

	var req crm_service.CreateFlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.ErrorContext(ctx, "Invalid request body for flight creation", "error", err)
		h.API.BadRequest(ctx, w, "Invalid request body")
		return
	}

	if quoteID := chi.URLParam(r, "quoteID"); quoteID != "" {
		req.QuoteID = quoteID
	}

	validationErrors := validator.ValidateStruct(&req)
	if validationErrors != nil {
		h.Logger.WarnContext(ctx, "Validation failed for flight creation", "errors", validationErrors)
		h.API.ValidationError(ctx, w, convertValidationErrors(validationErrors))
		return
	}

	flight := crm_service.CreateFlightRequestToModel(&req)
	if err := h.FlightUseCase.AddFlight(ctx, flight); err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to add flight")
		return
	}

	h.Logger.InfoContext(ctx, "Flight added successfully in handler", "id", flight.ID, "quote_id", flight.QuoteID, "direction", flight.Direction)
	h.API.Created(ctx, w, crm_service.FlightModelToResponse(flight))
}

// UpdateHandler handles HTTP requests to update a flight leg
func (h *FlightHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Update flight handler called")

	var req crm_service.UpdateFlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.ErrorContext(ctx, "Invalid request body for flight update", "error", err)
		h.API.BadRequest(ctx, w, "Invalid request body")
		return
	}

	req.ID = chi.URLParam(r, "id")

	validationErrors := validator.ValidateStruct(&req)
	if validationErrors != nil {
		h.Logger.WarnContext(ctx, "Validation failed for flight update", "id", req.ID, "errors", validationErrors)
		h.API.ValidationError(ctx, w, convertValidationErrors(validationErrors))
		return
	}

	flight := crm_service.UpdateFlightRequestToModel(&req)
	if err := h.FlightUseCase.UpdateFlight(ctx, flight); err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to update flight")
		return
	}

	updated, err := h.FlightUseCase.GetFlightByID(ctx, req.ID)
	if err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to get flight")
		return
	}

	h.Logger.InfoContext(ctx, "Flight updated successfully in handler", "id", req.ID)
	h.API.Success(ctx, w, crm_service.FlightModelToResponse(updated))
}

// DeleteHandler handles HTTP requests to remove a flight leg
func (h *FlightHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Delete flight handler called")

	req := crm_service.ResourceIDRequest{ID: chi.URLParam(r, "id")}
	if err := validator.ValidateStruct(&req); err != nil {
		h.Logger.WarnContext(ctx, "Validation failed for delete flight", "errors", err)
		h.API.ValidationError(ctx, w, convertValidationErrors(err))
		return
	}

	if err := h.FlightUseCase.DeleteFlight(ctx, req.ID); err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to delete flight")
		return
	}

	h.Logger.InfoContext(ctx, "Flight deleted successfully in handler", "id", req.ID)
	h.API.Success(ctx, w, map[string]string{"message": "Flight deleted successfully"})
}

// ListByQuoteHandler handles HTTP requests to list the legs of a quote
func (h *FlightHandler) ListByQuoteHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "List flights by quote handler called")

	req := crm_service.ResourceIDRequest{ID: chi.URLParam(r, "quoteID")}
	if err := validator.ValidateStruct(&req); err != nil {
		h.Logger.WarnContext(ctx, "Validation failed for list flights", "errors", err)
		h.API.ValidationError(ctx, w, convertValidationErrors(err))
		return
	}

	flights, err := h.FlightUseCase.ListByQuote(ctx, req.ID)
	if err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to list flights")
		return
	}

	h.API.Success(ctx, w, crm_service.FlightsListResponse{Flights: crm_service.FlightModelsToResponses(flights)})
}
