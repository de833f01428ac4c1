package http

import (
	"encoding/json"
	"net/http"

	"travel-crm-service/contracts/crm_service"
	"travel-crm-service/pkg/api"
	"travel-crm-service/pkg/logger"
	"travel-crm-service/pkg/validator"
	"travel-crm-service/usecase"
)

// BoardHandler handles HTTP requests for the pipeline Kanban view
type BoardHandler struct {
	BoardUseCase usecase.BoardUseCase
	Logger       logger.LoggerInterface
	API          api.Api
}

// NewBoardHandler creates a new instance of BoardHandler
func NewBoardHandler(boardUseCase usecase.BoardUseCase, appLogger logger.LoggerInterface) *BoardHandler {
	return &BoardHandler{
		BoardUseCase: boardUseCase,
		Logger:       appLogger,
		API:          api.New(),
	}
}

// GetHandler handles HTTP requests to render the whole pipeline.
// Launched quotes appear inside the APROVADO column.
func (h *BoardHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Get board handler called")

	board, err := h.BoardUseCase.GetBoard(ctx)
	if err != nil {
		h.Logger.ErrorContext(ctx, "Error building board", "error", err)
		h.API.InternalServerError(ctx, w, "Failed to build board")
		return
	}

	h.API.Success(ctx, w, crm_service.BoardToResponse(board))
}

// MoveCardHandler handles HTTP requests to drag a card between columns.
// Moving a launched sale away from APROVADO requires the confirmed flag
// and answers 409 otherwise.
func (h *BoardHandler) MoveCardHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Move card handler called")

	var req crm_service.MoveCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.ErrorContext(ctx, "Invalid request body for card move", "error", err)
		h.API.BadRequest(ctx, w, "Invalid request body")
		return
	}

	validationErrors := validator.ValidateStruct(&req)
	if validationErrors != nil {
		h.Logger.WarnContext(ctx, "Validation failed for card move", "errors", validationErrors)
		h.API.ValidationError(ctx, w, convertValidationErrors(validationErrors))
		return
	}

	result, err := h.BoardUseCase.MoveCard(ctx, crm_service.MoveCardRequestToInput(&req))
	if err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to move card")
		return
	}

	h.Logger.InfoContext(ctx, "Card moved successfully in handler", "card_id", req.CardID, "kind", req.Kind, "target", req.Target)
	h.API.Success(ctx, w, crm_service.MoveCardResultToResponse(result))
}
