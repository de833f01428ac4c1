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

// LeadHandler handles HTTP requests for lead operations
type LeadHandler struct {
	LeadUseCase usecase.LeadUseCase
	Logger      logger.LoggerInterface
	API         api.Api
}

// NewLeadHandler creates a new instance of LeadHandler
func NewLeadHandler(leadUseCase usecase.LeadUseCase, appLogger logger.LoggerInterface) *LeadHandler {
	return &LeadHandler{
		LeadUseCase: leadUseCase,
		Logger:      appLogger,
		API:         api.New(),
	}
}

// CreateHandler handles HTTP requests to capture a new lead
func (h *LeadHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Create lead handler called")

	var req crm_service.CreateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.ErrorContext(ctx, "Invalid request body for lead creation", "error", err)
		h.API.BadRequest(ctx, w, "Invalid request body")
		return
	}

	validationErrors := validator.ValidateStruct(&req)
	if validationErrors != nil {
		h.Logger.WarnContext(ctx, "Validation failed for lead creation", "errors", validationErrors)
		h.API.ValidationError(ctx, w, convertValidationErrors(validationErrors))
		return
	}

	lead := crm_service.CreateLeadRequestToModel(&req)
	if err := h.LeadUseCase.CreateLead(ctx, lead); err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to create lead")
		return
	}

	created, err := h.LeadUseCase.GetLeadByID(ctx, lead.ID)
	if err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to get lead")
		return
	}

	h.Logger.InfoContext(ctx, "Lead created successfully in handler", "id", lead.ID, "client_id", lead.ClientID)
	h.API.Created(ctx, w, crm_service.LeadModelToResponse(created))
}

// GetByIDHandler handles HTTP requests to retrieve a lead by ID
func (h *LeadHandler) GetByIDHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Get lead by ID handler called")

	req := crm_service.ResourceIDRequest{ID: chi.URLParam(r, "id")}
	if err := validator.ValidateStruct(&req); err != nil {
		h.Logger.WarnContext(ctx, "Validation failed for get lead by ID", "errors", err)
		h.API.ValidationError(ctx, w, convertValidationErrors(err))
		return
	}

	lead, err := h.LeadUseCase.GetLeadByID(ctx, req.ID)
	if err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to get lead")
		return
	}

	h.API.Success(ctx, w, crm_service.LeadModelToResponse(lead))
}

// UpdateHandler handles HTTP requests to update an existing lead
func (h *LeadHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Update lead handler called")

	var req crm_service.UpdateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.ErrorContext(ctx, "Invalid request body for lead update", "error", err)
		h.API.BadRequest(ctx, w, "Invalid request body")
		return
	}

	req.ID = chi.URLParam(r, "id")

	validationErrors := validator.ValidateStruct(&req)
	if validationErrors != nil {
		h.Logger.WarnContext(ctx, "Validation failed for lead update", "id", req.ID, "errors", validationErrors)
		h.API.ValidationError(ctx, w, convertValidationErrors(validationErrors))
		return
	}

	lead := crm_service.UpdateLeadRequestToModel(&req)
	if err := h.LeadUseCase.UpdateLead(ctx, lead); err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to update lead")
		return
	}

	updated, err := h.LeadUseCase.GetLeadByID(ctx, req.ID)
	if err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to get lead")
		return
	}

	h.Logger.InfoContext(ctx, "Lead updated successfully in handler", "id", req.ID)
	h.API.Success(ctx, w, crm_service.LeadModelToResponse(updated))
}

// DeleteHandler handles HTTP requests to delete a lead and its open tasks
func (h *LeadHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Delete lead handler called")

	req := crm_service.ResourceIDRequest{ID: chi.URLParam(r, "id")}
	if err := validator.ValidateStruct(&req); err != nil {
		h.Logger.WarnContext(ctx, "Validation failed for delete lead", "errors", err)
		h.API.ValidationError(ctx, w, convertValidationErrors(err))
		return
	}

	if err := h.LeadUseCase.DeleteLead(ctx, req.ID); err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to delete lead")
		return
	}

	h.Logger.InfoContext(ctx, "Lead deleted successfully in handler", "id", req.ID)
	h.API.Success(ctx, w, map[string]string{"message": "Lead deleted successfully"})
}

// ListHandler handles HTTP requests to list all open leads
func (h *LeadHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "List leads handler called")

	leads, err := h.LeadUseCase.ListLeads(ctx)
	if err != nil {
		h.Logger.ErrorContext(ctx, "Error listing leads", "error", err)
		h.API.InternalServerError(ctx, w, "Failed to list leads")
		return
	}

	h.Logger.InfoContext(ctx, "Leads listed successfully in handler", "count", len(leads))
	h.API.Success(ctx, w, crm_service.LeadsListResponse{Leads: crm_service.LeadModelsToResponses(leads)})
}

// ConvertHandler handles HTTP requests to convert a lead into a quote.
// The lead and its tasks are removed and a quote in COTAR is returned.
func (h *LeadHandler) ConvertHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Convert lead handler called")

	req := crm_service.ResourceIDRequest{ID: chi.URLParam(r, "id")}
	if err := validator.ValidateStruct(&req); err != nil {
		h.Logger.WarnContext(ctx, "Validation failed for lead conversion", "errors", err)
		h.API.ValidationError(ctx, w, convertValidationErrors(err))
		return
	}

	quote, err := h.LeadUseCase.ConvertToQuote(ctx, req.ID)
	if err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to convert lead")
		return
	}

	h.Logger.InfoContext(ctx, "Lead converted successfully in handler", "lead_id", req.ID, "quote_id", quote.ID, "code", quote.Code)
	h.API.Created(ctx, w, crm_service.ConvertLeadModelToResponse(quote))
}
