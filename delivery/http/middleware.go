package http

import (
	"crypto/subtle"
	"net/http"
	"time"

	"travel-crm-service/pkg/api"
	"travel-crm-service/pkg/logger"

	"github.com/go-chi/chi/v5/middleware"
)

// adminKeyHeader carries the shared service key for admin endpoints
const adminKeyHeader = "X-Admin-Key"

// LoggingMiddleware adds detailed request logging
// It takes a logger instance and returns a middleware function
// The middleware logs information about each HTTP request including method, path, status, duration, and client information
func LoggingMiddleware(appLogger logger.LoggerInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			appLogger.InfoContext(r.Context(), "HTTP request completed",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start).String(),
				"remote_addr", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		})
	}
}

// ServiceKeyMiddleware gates admin routes behind a shared service key.
// Requests must carry the key in the X-Admin-Key header; when no key is
// configured the routes are disabled entirely.
func ServiceKeyMiddleware(serviceKey string, appLogger logger.LoggerInterface, apiClient api.Api) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if serviceKey == "" {
				appLogger.WarnContext(ctx, "Admin route called without a configured service key")
				apiClient.Unauthorized(ctx, w, "Admin endpoints are disabled")
				return
			}

			provided := r.Header.Get(adminKeyHeader)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(serviceKey)) != 1 {
				appLogger.WarnContext(ctx, "Admin route called with an invalid service key", "path", r.URL.Path)
				apiClient.Unauthorized(ctx, w, "Invalid service key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
