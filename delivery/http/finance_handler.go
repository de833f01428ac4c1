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

// FinanceHandler handles HTTP requests for the payable and receivable ledgers
type FinanceHandler struct {
	FinanceUseCase usecase.FinanceUseCase
	Logger         logger.LoggerInterface
	API            api.Api
}

// NewFinanceHandler creates a new instance of FinanceHandler
func NewFinanceHandler(financeUseCase usecase.FinanceUseCase, appLogger logger.LoggerInterface) *FinanceHandler {
	return &FinanceHandler{
		FinanceUseCase: financeUseCase,
		Logger:         appLogger,
		API:            api.New(),
	}
}

// CreatePayableHandler handles HTTP requests to record a standalone account payable
func (h *FinanceHandler) CreatePayableHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Create payable handler called")

	var req crm_service.CreatePayableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.ErrorContext(ctx, "Invalid request body for payable", "error", err)
		h.API.BadRequest(ctx, w, "Invalid request body")
		return
	}

	validationErrors := validator.ValidateStruct(&req)
	if validationErrors != nil {
		h.Logger.WarnContext(ctx, "Validation failed for payable", "errors", validationErrors)
		h.API.ValidationError(ctx, w, convertValidationErrors(validationErrors))
		return
	}

	account := crm_service.CreatePayableRequestToModel(&req)
	if err := h.FinanceUseCase.CreatePayable(ctx, account); err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to create payable")
		return
	}

	h.Logger.InfoContext(ctx, "Payable created successfully in handler", "id", account.ID)
	h.API.Created(ctx, w, crm_service.PayableModelToResponse(account))
}

// UpdatePayableHandler handles HTTP requests to update an account payable
func (h *FinanceHandler) UpdatePayableHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Update payable handler called")

	var req crm_service.UpdatePayableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.ErrorContext(ctx, "Invalid request body for payable update", "error", err)
		h.API.BadRequest(ctx, w, "Invalid request body")
		return
	}

	req.ID = chi.URLParam(r, "id")

	validationErrors := validator.ValidateStruct(&req)
	if validationErrors != nil {
		h.Logger.WarnContext(ctx, "Validation failed for payable update", "id", req.ID, "errors", validationErrors)
		h.API.ValidationError(ctx, w, convertValidationErrors(validationErrors))
		return
	}

	account := crm_service.UpdatePayableRequestToModel(&req)
	if err := h.FinanceUseCase.UpdatePayable(ctx, account); err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to update payable")
		return
	}

	h.Logger.InfoContext(ctx, "Payable updated successfully in handler", "id", req.ID)
	h.API.Success(ctx, w, crm_service.PayableModelToResponse(account))
}

// DeletePayableHandler handles HTTP requests to delete an account payable
func (h *FinanceHandler) DeletePayableHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Delete payable handler called")

	req := crm_service.ResourceIDRequest{ID: chi.URLParam(r, "id")}
	if err := validator.ValidateStruct(&req); err != nil {
		h.Logger.WarnContext(ctx, "Validation failed for delete payable", "errors", err)
		h.API.ValidationError(ctx, w, convertValidationErrors(err))
		return
	}

	if err := h.FinanceUseCase.DeletePayable(ctx, req.ID); err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to delete payable")
		return
	}

	h.Logger.InfoContext(ctx, "Payable deleted successfully in handler", "id", req.ID)
	h.API.Success(ctx, w, map[string]string{"message": "Payable deleted successfully"})
}

// ListPayablesHandler handles HTTP requests to list accounts payable with pagination
func (h *FinanceHandler) ListPayablesHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "List payables handler called")

	offset, limit := parsePagination(r)
	accounts, total, err := h.FinanceUseCase.ListPayables(ctx, offset, limit)
	if err != nil {
		h.Logger.ErrorContext(ctx, "Error listing payables", "offset", offset, "limit", limit, "error", err)
		h.API.InternalServerError(ctx, w, "Failed to list payables")
		return
	}

	h.API.SuccessWithMeta(ctx, w, crm_service.PayablesListResponse{Payables: crm_service.PayableModelsToResponses(accounts)}, paginationMeta(offset, limit, total))
}

// CreateReceivableHandler handles HTTP requests to record a standalone account receivable
func (h *FinanceHandler) CreateReceivableHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Create receivable handler called")

	var req crm_service.CreateReceivableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.ErrorContext(ctx, "Invalid request body for receivable", "error", err)
		h.API.BadRequest(ctx, w, "Invalid request body")
		return
	}

	validationErrors := validator.ValidateStruct(&req)
	if validationErrors != nil {
		h.Logger.WarnContext(ctx, "Validation failed for receivable", "errors", validationErrors)
		h.API.ValidationError(ctx, w, convertValidationErrors(validationErrors))
		return
	}

	account := crm_service.CreateReceivableRequestToModel(&req)
	if err := h.FinanceUseCase.CreateReceivable(ctx, account); err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to create receivable")
		return
	}

	h.Logger.InfoContext(ctx, "Receivable created successfully in handler", "id", account.ID)
	h.API.Created(ctx, w, crm_service.ReceivableModelToResponse(account))
}

// UpdateReceivableHandler handles HTTP requests to update an account receivable
func (h *FinanceHandler) UpdateReceivableHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Update receivable handler called")

	var req crm_service.UpdateReceivableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.ErrorContext(ctx, "Invalid request body for receivable update", "error", err)
		h.API.BadRequest(ctx, w, "Invalid request body")
		return
	}

	req.ID = chi.URLParam(r, "id")

	validationErrors := validator.ValidateStruct(&req)
	if validationErrors != nil {
		h.Logger.WarnContext(ctx, "Validation failed for receivable update", "id", req.ID, "errors", validationErrors)
		h.API.ValidationError(ctx, w, convertValidationErrors(validationErrors))
		return
	}

	account := crm_service.UpdateReceivableRequestToModel(&req)
	if err := h.FinanceUseCase.UpdateReceivable(ctx, account); err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to update receivable")
		return
	}

	h.Logger.InfoContext(ctx, "Receivable updated successfully in handler", "id", req.ID)
	h.API.Success(ctx, w, crm_service.ReceivableModelToResponse(account))
}

// DeleteReceivableHandler handles HTTP requests to delete an account receivable
func (h *FinanceHandler) DeleteReceivableHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Delete receivable handler called")

	req := crm_service.ResourceIDRequest{ID: chi.URLParam(r, "id")}
	if err := validator.ValidateStruct(&req); err != nil {
		h.Logger.WarnContext(ctx, "Validation failed for delete receivable", "errors", err)
		h.API.ValidationError(ctx, w, convertValidationErrors(err))
		return
	}

	if err := h.FinanceUseCase.DeleteReceivable(ctx, req.ID); err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to delete receivable")
		return
	}

	h.Logger.InfoContext(ctx, "Receivable deleted successfully in handler", "id", req.ID)
	h.API.Success(ctx, w, map[string]string{"message": "Receivable deleted successfully"})
}

// ListReceivablesHandler handles HTTP requests to list accounts receivable with pagination
func (h *FinanceHandler) ListReceivablesHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "List receivables handler called")

	offset, limit := parsePagination(r)
	accounts, total, err := h.FinanceUseCase.ListReceivables(ctx, offset, limit)
	if err != nil {
		h.Logger.ErrorContext(ctx, "Error listing receivables", "offset", offset, "limit", limit, "error", err)
		h.API.InternalServerError(ctx, w, "Failed to list receivables")
		return
	}

	h.API.SuccessWithMeta(ctx, w, crm_service.ReceivablesListResponse{Receivables: crm_service.ReceivableModelsToResponses(accounts)}, paginationMeta(offset, limit, total))
}
