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

// LookupHandler handles HTTP requests for suppliers, categories,
// payment methods and the airline reference table
type LookupHandler struct {
	LookupUseCase usecase.LookupUseCase
	Logger        logger.LoggerInterface
	API           api.Api
}

// NewLookupHandler creates a new instance of LookupHandler
func NewLookupHandler(lookupUseCase usecase.LookupUseCase, appLogger logger.LoggerInterface) *LookupHandler {
	return &LookupHandler{
		LookupUseCase: lookupUseCase,
		Logger:        appLogger,
		API:           api.New(),
	}
}

// CreateSupplierHandler handles HTTP requests to register a supplier
func (h *LookupHandler) CreateSupplierHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Create supplier handler called")

	var req crm_service.CreateSupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.ErrorContext(ctx, "Invalid request body for supplier", "error", err)
		h.API.BadRequest(ctx, w, "Invalid request body")
		return
	}

	validationErrors := validator.ValidateStruct(&req)
	if validationErrors != nil {
		h.Logger.WarnContext(ctx, "Validation failed for supplier", "errors", validationErrors)
		h.API.ValidationError(ctx, w, convertValidationErrors(validationErrors))
		return
	}

	supplier := crm_service.CreateSupplierRequestToModel(&req)
	if err := h.LookupUseCase.CreateSupplier(ctx, supplier); err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to create supplier")
		return
	}

	h.API.Created(ctx, w, crm_service.SupplierModelToResponse(supplier))
}

// ListSuppliersHandler handles HTTP requests to list suppliers
func (h *LookupHandler) ListSuppliersHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	suppliers, err := h.LookupUseCase.ListSuppliers(ctx)
	if err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to list suppliers")
		return
	}
	h.API.Success(ctx, w, crm_service.SupplierModelsToResponses(suppliers))
}

// DeleteSupplierHandler handles HTTP requests to remove a supplier
func (h *LookupHandler) DeleteSupplierHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req := crm_service.ResourceIDRequest{ID: chi.URLParam(r, "id")}
	if err := validator.ValidateStruct(&req); err != nil {
		h.API.ValidationError(ctx, w, convertValidationErrors(err))
		return
	}

	if err := h.LookupUseCase.DeleteSupplier(ctx, req.ID); err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to delete supplier")
		return
	}
	h.API.Success(ctx, w, map[string]string{"message": "Supplier deleted successfully"})
}

// CreateCategoryHandler handles HTTP requests to register a cost or sale category
func (h *LookupHandler) CreateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Create category handler called")

	var req crm_service.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.ErrorContext(ctx, "Invalid request body for category", "error", err)
		h.API.BadRequest(ctx, w, "Invalid request body")
		return
	}

	validationErrors := validator.ValidateStruct(&req)
	if validationErrors != nil {
		h.Logger.WarnContext(ctx, "Validation failed for category", "errors", validationErrors)
		h.API.ValidationError(ctx, w, convertValidationErrors(validationErrors))
		return
	}

	category := crm_service.CreateCategoryRequestToModel(&req)
	if err := h.LookupUseCase.CreateCategory(ctx, category); err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to create category")
		return
	}

	h.API.Created(ctx, w, crm_service.CategoryModelToResponse(category))
}

// ListCategoriesHandler handles HTTP requests to list categories.
// A 'tipo' query parameter narrows to CUSTO or VENDA categories.
func (h *LookupHandler) ListCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	categories, err := h.LookupUseCase.ListCategories(ctx, r.URL.Query().Get("tipo"))
	if err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to list categories")
		return
	}
	h.API.Success(ctx, w, crm_service.CategoryModelsToResponses(categories))
}

// DeleteCategoryHandler handles HTTP requests to remove a category
func (h *LookupHandler) DeleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req := crm_service.ResourceIDRequest{ID: chi.URLParam(r, "id")}
	if err := validator.ValidateStruct(&req); err != nil {
		h.API.ValidationError(ctx, w, convertValidationErrors(err))
		return
	}

	if err := h.LookupUseCase.DeleteCategory(ctx, req.ID); err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to delete category")
		return
	}
	h.API.Success(ctx, w, map[string]string{"message": "Category deleted successfully"})
}

// CreatePaymentMethodHandler handles HTTP requests to register a payment method
func (h *LookupHandler) CreatePaymentMethodHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Create payment method handler called")

	var req crm_service.CreatePaymentMethodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.ErrorContext(ctx, "Invalid request body for payment method", "error", err)
		h.API.BadRequest(ctx, w, "Invalid request body")
		return
	}

	validationErrors := validator.ValidateStruct(&req)
	if validationErrors != nil {
		h.Logger.WarnContext(ctx, "Validation failed for payment method", "errors", validationErrors)
		h.API.ValidationError(ctx, w, convertValidationErrors(validationErrors))
		return
	}

	method := crm_service.CreatePaymentMethodRequestToModel(&req)
	if err := h.LookupUseCase.CreatePaymentMethod(ctx, method); err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to create payment method")
		return
	}

	h.API.Created(ctx, w, crm_service.PaymentMethodModelToResponse(method))
}

// ListPaymentMethodsHandler handles HTTP requests to list payment methods
func (h *LookupHandler) ListPaymentMethodsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	methods, err := h.LookupUseCase.ListPaymentMethods(ctx)
	if err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to list payment methods")
		return
	}
	h.API.Success(ctx, w, crm_service.PaymentMethodModelsToResponses(methods))
}

// DeletePaymentMethodHandler handles HTTP requests to remove a payment method
func (h *LookupHandler) DeletePaymentMethodHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req := crm_service.ResourceIDRequest{ID: chi.URLParam(r, "id")}
	if err := validator.ValidateStruct(&req); err != nil {
		h.API.ValidationError(ctx, w, convertValidationErrors(err))
		return
	}

	if err := h.LookupUseCase.DeletePaymentMethod(ctx, req.ID); err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to delete payment method")
		return
	}
	h.API.Success(ctx, w, map[string]string{"message": "Payment method deleted successfully"})
}

// CreateCompanyHandler handles HTTP requests to register the agency company
// whose branding and PIX key feed the printable quote
func (h *LookupHandler) CreateCompanyHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Create company handler called")

	var req crm_service.CreateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.ErrorContext(ctx, "Invalid request body for company", "error", err)
		h.API.BadRequest(ctx, w, "Invalid request body")
		return
	}

	validationErrors := validator.ValidateStruct(&req)
	if validationErrors != nil {
		h.Logger.WarnContext(ctx, "Validation failed for company", "errors", validationErrors)
		h.API.ValidationError(ctx, w, convertValidationErrors(validationErrors))
		return
	}

	company := crm_service.CreateCompanyRequestToModel(&req)
	if err := h.LookupUseCase.CreateCompany(ctx, company); err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to create company")
		return
	}

	h.API.Created(ctx, w, crm_service.CompanyModelToResponse(company))
}

// UpdateCompanyHandler handles HTTP requests to update the agency company
func (h *LookupHandler) UpdateCompanyHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Update company handler called")

	var req crm_service.UpdateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.ErrorContext(ctx, "Invalid request body for company update", "error", err)
		h.API.BadRequest(ctx, w, "Invalid request body")
		return
	}

	req.ID = chi.URLParam(r, "id")

	validationErrors := validator.ValidateStruct(&req)
	if validationErrors != nil {
		h.Logger.WarnContext(ctx, "Validation failed for company update", "id", req.ID, "errors", validationErrors)
		h.API.ValidationError(ctx, w, convertValidationErrors(validationErrors))
		return
	}

	company := crm_service.UpdateCompanyRequestToModel(&req)
	if err := h.LookupUseCase.UpdateCompany(ctx, company); err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to update company")
		return
	}

	h.API.Success(ctx, w, crm_service.CompanyModelToResponse(company))
}

// ListCompaniesHandler handles HTTP requests to list agency companies
func (h *LookupHandler) ListCompaniesHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	companies, err := h.LookupUseCase.ListCompanies(ctx)
	if err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to list companies")
		return
	}
	h.API.Success(ctx, w, crm_service.CompanyModelsToResponses(companies))
}

// ListAirlinesHandler handles HTTP requests to list the airline reference table
func (h *LookupHandler) ListAirlinesHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	airlines, err := h.LookupUseCase.ListAirlines(ctx)
	if err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to list airlines")
		return
	}
	h.API.Success(ctx, w, crm_service.AirlineModelsToResponses(airlines))
}
