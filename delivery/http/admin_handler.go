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

// AdminHandler handles the service-key gated operator provisioning endpoints
type AdminHandler struct {
	AdminUseCase usecase.AdminUseCase
	Logger       logger.LoggerInterface
	API          api.Api
}

// NewAdminHandler creates a new instance of AdminHandler
func NewAdminHandler(adminUseCase usecase.AdminUseCase, appLogger logger.LoggerInterface) *AdminHandler {
	return &AdminHandler{
		AdminUseCase: adminUseCase,
		Logger:       appLogger,
		API:          api.New(),
	}
}

// CreateUserHandler handles HTTP requests to provision an operator account
func (h *AdminHandler) CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Create user handler called")

	var req crm_service.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.ErrorContext(ctx, "Invalid request body for user creation", "error", err)
		h.API.BadRequest(ctx, w, "Invalid request body")
		return
	}

	validationErrors := validator.ValidateStruct(&req)
	if validationErrors != nil {
		h.Logger.WarnContext(ctx, "Validation failed for user creation", "errors", validationErrors)
		h.API.ValidationError(ctx, w, convertValidationErrors(validationErrors))
		return
	}

	user, err := h.AdminUseCase.CreateUser(ctx, crm_service.CreateUserRequestToInput(&req))
	if err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to create user")
		return
	}

	h.Logger.InfoContext(ctx, "User created successfully in handler", "id", user.ID, "email", user.Email)
	h.API.Created(ctx, w, crm_service.UserModelToResponse(user))
}

// ConfirmUserHandler handles HTTP requests to confirm an operator's email.
// Confirming an already confirmed user is a no-op.
func (h *AdminHandler) ConfirmUserHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Confirm user handler called")

	var req crm_service.ConfirmUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.ErrorContext(ctx, "Invalid request body for user confirmation", "error", err)
		h.API.BadRequest(ctx, w, "Invalid request body")
		return
	}

	validationErrors := validator.ValidateStruct(&req)
	if validationErrors != nil {
		h.Logger.WarnContext(ctx, "Validation failed for user confirmation", "errors", validationErrors)
		h.API.ValidationError(ctx, w, convertValidationErrors(validationErrors))
		return
	}

	if err := h.AdminUseCase.ConfirmUser(ctx, req.UserID); err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to confirm user")
		return
	}

	h.Logger.InfoContext(ctx, "User confirmed successfully in handler", "user_id", req.UserID)
	h.API.Success(ctx, w, map[string]string{"message": "User confirmed successfully"})
}

// SignInLinkHandler handles HTTP requests to build a signed sign-in link
// for an operator. With redirect=true the response is a 302 straight to
// the CRM instead of the JSON payload.
func (h *AdminHandler) SignInLinkHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Sign-in link handler called")

	req := crm_service.ResourceIDRequest{ID: chi.URLParam(r, "id")}
	if err := validator.ValidateStruct(&req); err != nil {
		h.Logger.WarnContext(ctx, "Validation failed for sign-in link", "errors", err)
		h.API.ValidationError(ctx, w, convertValidationErrors(err))
		return
	}

	link, err := h.AdminUseCase.BuildSignInLink(ctx, req.ID)
	if err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to build sign-in link")
		return
	}

	if r.URL.Query().Get("redirect") == "true" {
		http.Redirect(w, r, link, http.StatusFound)
		return
	}

	h.Logger.InfoContext(ctx, "Sign-in link built successfully in handler", "user_id", req.ID)
	h.API.Success(ctx, w, crm_service.SignInLinkResponse{Link: link})
}
