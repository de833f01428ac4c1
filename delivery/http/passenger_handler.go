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

// PassengerHandler handles HTTP requests for quote passenger operations
type PassengerHandler struct {
	PassengerUseCase usecase.PassengerUseCase
	ClientUseCase    usecase.ClientUseCase
	Logger           logger.LoggerInterface
	API              api.Api
}

// NewPassengerHandler creates a new instance of PassengerHandler.
// The client usecase backs inline client creation on passenger attach.
func NewPassengerHandler(passengerUseCase usecase.PassengerUseCase, clientUseCase usecase.ClientUseCase, appLogger logger.LoggerInterface) *PassengerHandler {
	return &PassengerHandler{
		PassengerUseCase: passengerUseCase,
		ClientUseCase:    clientUseCase,
		Logger:           appLogger,
		API:              api.New(),
	}
}

// AddHandler handles HTTP requests to attach a traveler to a quote
func (h *PassengerHandler) AddHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Add passenger handler called")

	var req crm_service.AddPassengerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.ErrorContext(ctx, "Invalid request body for passenger", "error", err)
		h.API.BadRequest(ctx, w, "Invalid request body")
		return
	}

	if quoteID := chi.URLParam(r, "quoteID"); quoteID != "" {
		req.QuoteID = quoteID
	}

	validationErrors := validator.ValidateStruct(&req)
	if validationErrors != nil {
		h.Logger.WarnContext(ctx, "Validation failed for passenger", "errors", validationErrors)
		h.API.ValidationError(ctx, w, convertValidationErrors(validationErrors))
		return
	}

	// A traveler is either an existing client or one created inline
	if req.ClientID == "" {
		if req.NewClient == nil {
			h.API.BadRequest(ctx, w, "Either cliente_id or novo_cliente is required")
			return
		}
		client := crm_service.CreateClientRequestToModel(req.NewClient)
		if err := h.ClientUseCase.CreateClient(ctx, client); err != nil {
			respondAppError(ctx, w, h.API, h.Logger, err, "Failed to create client")
			return
		}
		h.Logger.InfoContext(ctx, "Client created inline for passenger", "client_id", client.ID)
		req.ClientID = client.ID
	}

	passenger := crm_service.AddPassengerRequestToModel(&req)
	if err := h.PassengerUseCase.AddPassenger(ctx, passenger); err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to add passenger")
		return
	}

	h.Logger.InfoContext(ctx, "Passenger added successfully in handler", "id", passenger.ID, "quote_id", passenger.QuoteID)
	h.API.Created(ctx, w, crm_service.PassengerModelToResponse(passenger, nil))
}

// RemoveHandler handles HTTP requests to detach a traveler from a quote
func (h *PassengerHandler) RemoveHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Remove passenger handler called")

	req := crm_service.ResourceIDRequest{ID: chi.URLParam(r, "id")}
	if err := validator.ValidateStruct(&req); err != nil {
		h.Logger.WarnContext(ctx, "Validation failed for remove passenger", "errors", err)
		h.API.ValidationError(ctx, w, convertValidationErrors(err))
		return
	}

	if err := h.PassengerUseCase.RemovePassenger(ctx, req.ID); err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to remove passenger")
		return
	}

	h.Logger.InfoContext(ctx, "Passenger removed successfully in handler", "id", req.ID)
	h.API.Success(ctx, w, map[string]string{"message": "Passenger removed successfully"})
}

// ListByQuoteHandler handles HTTP requests to list the travelers of a quote.
// Each entry carries the documents still missing for the quote's itinerary.
func (h *PassengerHandler) ListByQuoteHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "List passengers by quote handler called")

	req := crm_service.ResourceIDRequest{ID: chi.URLParam(r, "quoteID")}
	if err := validator.ValidateStruct(&req); err != nil {
		h.Logger.WarnContext(ctx, "Validation failed for list passengers", "errors", err)
		h.API.ValidationError(ctx, w, convertValidationErrors(err))
		return
	}

	infos, err := h.PassengerUseCase.ListByQuote(ctx, req.ID)
	if err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to list passengers")
		return
	}

	h.API.Success(ctx, w, crm_service.PassengersListResponse{Passengers: crm_service.PassengerInfosToResponses(infos)})
}
