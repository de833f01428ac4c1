// Package http contains HTTP delivery implementations for the application
package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"travel-crm-service/domain"
	"travel-crm-service/pkg/api"
	"travel-crm-service/pkg/logger"
)

// respondAppError maps a usecase error onto the standard response envelope.
// Domain errors carry their HTTP status; anything else is a 500.
func respondAppError(ctx context.Context, w http.ResponseWriter, apiClient api.Api, appLogger logger.LoggerInterface, err error, fallback string) {
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case http.StatusBadRequest:
			apiClient.BadRequest(ctx, w, appErr.Message)
		case http.StatusNotFound:
			apiClient.NotFound(ctx, w, appErr.Message)
		case http.StatusConflict:
			apiClient.Conflict(ctx, w, appErr.Message)
		default:
			appLogger.ErrorContext(ctx, "Unmapped domain error", "code", appErr.Code, "error", err)
			apiClient.InternalServerError(ctx, w, fallback)
		}
		return
	}

	appLogger.ErrorContext(ctx, "Unexpected error", "error", err)
	apiClient.InternalServerError(ctx, w, fallback)
}

// convertValidationErrors turns the validator's field map into response details
func convertValidationErrors(validationErrors map[string]string) []api.ErrorDetail {
	details := make([]api.ErrorDetail, 0, len(validationErrors))
	for field, message := range validationErrors {
		details = append(details, api.ErrorDetail{
			Field:   field,
			Message: message,
		})
	}
	return details
}

// parsePagination reads offset/limit query parameters with sane bounds
func parsePagination(r *http.Request) (int, int) {
	offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return offset, limit
}

// paginationMeta builds the response metadata for a paginated listing
func paginationMeta(offset, limit, total int) *api.Meta {
	if total < 0 {
		total = 0
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	page := 1
	if total > 0 && offset < total {
		page = offset/limit + 1
	}

	return &api.Meta{
		Pagination: &api.Pagination{
			Page:        page,
			Limit:       limit,
			Total:       total,
			TotalPages:  totalPages,
			HasNextPage: offset+limit < total,
			HasPrevPage: offset > 0,
		},
	}
}
