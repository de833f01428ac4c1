package http

import (
	"net/http"

	"travel-crm-service/pkg/api"
	"travel-crm-service/pkg/logger"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	Logger logger.LoggerInterface
	API    api.Api
}

// NewHealthHandler creates a new instance of HealthHandler
func NewHealthHandler(appLogger logger.LoggerInterface) *HealthHandler {
	return &HealthHandler{
		Logger: appLogger,
		API:    api.New(),
	}
}

// HealthCheckHandler handles HTTP requests for service health checks
// Returns a JSON response indicating the service status
func (h *HealthHandler) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	response := map[string]string{
		"status":  "healthy",
		"message": "Service is running",
	}

	h.API.Success(ctx, w, response)
}
