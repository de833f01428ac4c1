package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	api := New()
	require.NotNil(t, api, "New() should not return nil")
}

func decode(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var response Response
	err := json.NewDecoder(w.Body).Decode(&response)
	require.NoError(t, err, "Failed to decode response")
	return response
}

func TestApi_Success(t *testing.T) {
	api := New()
	w := httptest.NewRecorder()
	ctx := context.Background()

	api.Success(ctx, w, map[string]string{"codigo": "A1B2C3"})

	assert.Equal(t, http.StatusOK, w.Code, "Expected status OK")
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	response := decode(t, w)
	assert.Equal(t, StatusSuccess, response.Status)
	assert.NotNil(t, response.Data)
}

func TestApi_Created(t *testing.T) {
	api := New()
	w := httptest.NewRecorder()

	api.Created(context.Background(), w, map[string]string{"id": "01ARZ3"})

	assert.Equal(t, http.StatusCreated, w.Code)
	response := decode(t, w)
	assert.Equal(t, StatusSuccess, response.Status)
}

func TestApi_SuccessWithMeta(t *testing.T) {
	api := New()
	w := httptest.NewRecorder()
	meta := &Meta{Pagination: &Pagination{Page: 2, Limit: 10, Total: 35, TotalPages: 4, HasNextPage: true, HasPrevPage: true}}

	api.SuccessWithMeta(context.Background(), w, []string{"a"}, meta)

	response := decode(t, w)
	require.NotNil(t, response.Meta)
	require.NotNil(t, response.Meta.Pagination)
	assert.Equal(t, 35, response.Meta.Pagination.Total)
}

func TestApi_ErrorResponses(t *testing.T) {
	tests := []struct {
		name     string
		call     func(a Api, w http.ResponseWriter)
		wantCode int
		wantErr  string
	}{
		{"bad request", func(a Api, w http.ResponseWriter) { a.BadRequest(context.Background(), w, "bad") }, http.StatusBadRequest, "BAD_REQUEST"},
		{"unauthorized", func(a Api, w http.ResponseWriter) { a.Unauthorized(context.Background(), w, "no") }, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", func(a Api, w http.ResponseWriter) { a.Forbidden(context.Background(), w, "no") }, http.StatusForbidden, "FORBIDDEN"},
		{"not found", func(a Api, w http.ResponseWriter) { a.NotFound(context.Background(), w, "gone") }, http.StatusNotFound, "NOT_FOUND"},
		{"conflict", func(a Api, w http.ResponseWriter) { a.Conflict(context.Background(), w, "confirm first") }, http.StatusConflict, "CONFLICT"},
		{"internal", func(a Api, w http.ResponseWriter) { a.InternalServerError(context.Background(), w, "boom") }, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := New()
			w := httptest.NewRecorder()
			tt.call(api, w)

			assert.Equal(t, tt.wantCode, w.Code)
			response := decode(t, w)
			assert.Equal(t, StatusError, response.Status)
			require.NotNil(t, response.Error)
			assert.Equal(t, tt.wantErr, response.Error.Code)
		})
	}
}

func TestApi_ValidationError(t *testing.T) {
	api := New()
	w := httptest.NewRecorder()
	details := []ErrorDetail{{Field: "DataVolta", Message: "Data Volta is required"}}

	api.ValidationError(context.Background(), w, details)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	response := decode(t, w)
	require.NotNil(t, response.Error)
	assert.Equal(t, "VALIDATION_ERROR", response.Error.Code)
	require.Len(t, response.Error.Details, 1)
	assert.Equal(t, "DataVolta", response.Error.Details[0].Field)
}

func TestApi_RequestIDFromContext(t *testing.T) {
	api := New()
	w := httptest.NewRecorder()
	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-123")

	api.Success(ctx, w, nil)

	response := decode(t, w)
	assert.Equal(t, "req-123", response.RequestID)
}
