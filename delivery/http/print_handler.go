package http

import (
	"net/http"

	"travel-crm-service/contracts/crm_service"
	"travel-crm-service/pkg/api"
	"travel-crm-service/pkg/logger"
	"travel-crm-service/pkg/validator"
	"travel-crm-service/usecase"

	"github.com/go-chi/chi/v5"
)

// PrintHandler handles HTTP requests for the printable quote document
// and the PIX charge payload
type PrintHandler struct {
	PrintUseCase usecase.PrintUseCase
	Logger       logger.LoggerInterface
	API          api.Api
}

// NewPrintHandler creates a new instance of PrintHandler
func NewPrintHandler(printUseCase usecase.PrintUseCase, appLogger logger.LoggerInterface) *PrintHandler {
	return &PrintHandler{
		PrintUseCase: printUseCase,
		Logger:       appLogger,
		API:          api.New(),
	}
}

// RenderHandler handles HTTP requests to render a quote as a printable
// HTML document. The document is written raw, outside the JSON envelope.
func (h *PrintHandler) RenderHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Render quote handler called")

	req := crm_service.ResourceIDRequest{ID: chi.URLParam(r, "quoteID")}
	if err := validator.ValidateStruct(&req); err != nil {
		h.Logger.WarnContext(ctx, "Validation failed for render quote", "errors", err)
		h.API.ValidationError(ctx, w, convertValidationErrors(err))
		return
	}

	document, err := h.PrintUseCase.RenderQuote(ctx, req.ID)
	if err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to render quote")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(document); err != nil {
		h.Logger.ErrorContext(ctx, "Error writing quote document", "quote_id", req.ID, "error", err)
	}
}

// PixHandler handles HTTP requests for the copy-and-paste PIX payload
// of an approved quote
func (h *PrintHandler) PixHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Pix payload handler called")

	req := crm_service.ResourceIDRequest{ID: chi.URLParam(r, "quoteID")}
	if err := validator.ValidateStruct(&req); err != nil {
		h.Logger.WarnContext(ctx, "Validation failed for pix payload", "errors", err)
		h.API.ValidationError(ctx, w, convertValidationErrors(err))
		return
	}

	payload, err := h.PrintUseCase.BuildPixPayload(ctx, req.ID)
	if err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to build pix payload")
		return
	}

	h.API.Success(ctx, w, crm_service.PixPayloadResponse{Payload: payload})
}
