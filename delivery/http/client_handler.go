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

// ClientHandler handles HTTP requests for client (traveler) operations
type ClientHandler struct {
	ClientUseCase usecase.ClientUseCase
	Logger        logger.LoggerInterface
	API           api.Api
}

// NewClientHandler creates a new instance of ClientHandler
func NewClientHandler(clientUseCase usecase.ClientUseCase, appLogger logger.LoggerInterface) *ClientHandler {
	return &ClientHandler{
		ClientUseCase: clientUseCase,
		Logger:        appLogger,
		API:           api.New(),
	}
}

// CreateHandler handles HTTP requests to register a new client
// It expects a JSON payload with client data in the request body
// Returns a 201 status code with the created client on success
func (h *ClientHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Create client handler called")

	var req crm_service.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.ErrorContext(ctx, "Invalid request body for client creation", "error", err)
		h.API.BadRequest(ctx, w, "Invalid request body")
		return
	}

	validationErrors := validator.ValidateStruct(&req)
	if validationErrors != nil {
		h.Logger.WarnContext(ctx, "Validation failed for client creation", "errors", validationErrors)
		h.API.ValidationError(ctx, w, convertValidationErrors(validationErrors))
		return
	}

	client := crm_service.CreateClientRequestToModel(&req)
	if err := h.ClientUseCase.CreateClient(ctx, client); err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to create client")
		return
	}

	h.Logger.InfoContext(ctx, "Client created successfully in handler", "id", client.ID)
	h.API.Created(ctx, w, crm_service.ClientModelToResponse(client))
}

// GetByIDHandler handles HTTP requests to retrieve a client by ID
func (h *ClientHandler) GetByIDHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Get client by ID handler called")

	req := crm_service.ResourceIDRequest{ID: chi.URLParam(r, "id")}
	if err := validator.ValidateStruct(&req); err != nil {
		h.Logger.WarnContext(ctx, "Validation failed for get client by ID", "errors", err)
		h.API.ValidationError(ctx, w, convertValidationErrors(err))
		return
	}

	client, err := h.ClientUseCase.GetClientByID(ctx, req.ID)
	if err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to get client")
		return
	}

	h.API.Success(ctx, w, crm_service.ClientModelToResponse(client))
}

// UpdateHandler handles HTTP requests to update an existing client
func (h *ClientHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Update client handler called")

	var req crm_service.UpdateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.ErrorContext(ctx, "Invalid request body for client update", "error", err)
		h.API.BadRequest(ctx, w, "Invalid request body")
		return
	}

	req.ID = chi.URLParam(r, "id")

	validationErrors := validator.ValidateStruct(&req)
	if validationErrors != nil {
		h.Logger.WarnContext(ctx, "Validation failed for client update", "id", req.ID, "errors", validationErrors)
		h.API.ValidationError(ctx, w, convertValidationErrors(validationErrors))
		return
	}

	client := crm_service.UpdateClientRequestToModel(&req)
	if err := h.ClientUseCase.UpdateClient(ctx, client); err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to update client")
		return
	}

	updated, err := h.ClientUseCase.GetClientByID(ctx, req.ID)
	if err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to get client")
		return
	}

	h.Logger.InfoContext(ctx, "Client updated successfully in handler", "id", req.ID)
	h.API.Success(ctx, w, crm_service.ClientModelToResponse(updated))
}

// DeleteHandler handles HTTP requests to delete a client
func (h *ClientHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Delete client handler called")

	req := crm_service.ResourceIDRequest{ID: chi.URLParam(r, "id")}
	if err := validator.ValidateStruct(&req); err != nil {
		h.Logger.WarnContext(ctx, "Validation failed for delete client", "errors", err)
		h.API.ValidationError(ctx, w, convertValidationErrors(err))
		return
	}

	if err := h.ClientUseCase.DeleteClient(ctx, req.ID); err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to delete client")
		return
	}

	h.Logger.InfoContext(ctx, "Client deleted successfully in handler", "id", req.ID)
	h.API.Success(ctx, w, map[string]string{"message": "Client deleted successfully"})
}

// ListHandler handles HTTP requests to list clients with pagination.
// When a 'q' query parameter is present it switches to name/email/phone search.
func (h *ClientHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "List clients handler called")

	if query := r.URL.Query().Get("q"); query != "" {
		clients, err := h.ClientUseCase.SearchClients(ctx, query)
		if err != nil {
			respondAppError(ctx, w, h.API, h.Logger, err, "Failed to search clients")
			return
		}
		h.API.Success(ctx, w, crm_service.ClientsListResponse{Clients: crm_service.ClientModelsToResponses(clients)})
		return
	}

	offset, limit := parsePagination(r)
	clients, total, err := h.ClientUseCase.ListClients(ctx, offset, limit)
	if err != nil {
		h.Logger.ErrorContext(ctx, "Error listing clients", "offset", offset, "limit", limit, "error", err)
		h.API.InternalServerError(ctx, w, "Failed to list clients")
		return
	}

	h.Logger.InfoContext(ctx, "Clients listed successfully in handler", "count", len(clients), "total", total)
	h.API.SuccessWithMeta(ctx, w, crm_service.ClientsListResponse{Clients: crm_service.ClientModelsToResponses(clients)}, paginationMeta(offset, limit, total))
}
