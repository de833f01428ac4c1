package http

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"travel-crm-service/domain"
	"travel-crm-service/domain/model"
	"travel-crm-service/pkg/api"
	"travel-crm-service/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Log(ctx context.Context, level slog.Level, msg string, args ...any) {}
func (noopLogger) Info(msg string, args ...any)                                       {}
func (noopLogger) Error(msg string, args ...any)                                      {}
func (noopLogger) Warn(msg string, args ...any)                                       {}
func (noopLogger) Debug(msg string, args ...any)                                      {}
func (noopLogger) InfoContext(ctx context.Context, msg string, args ...any)           {}
func (noopLogger) ErrorContext(ctx context.Context, msg string, args ...any)          {}
func (noopLogger) WarnContext(ctx context.Context, msg string, args ...any)           {}
func (noopLogger) DebugContext(ctx context.Context, msg string, args ...any)          {}

type fakeAdminUseCase struct {
	confirmed []string
	link      string
	err       error
}

func (f *fakeAdminUseCase) ConfirmUser(ctx context.Context, userID string) error {
	if f.err != nil {
		return f.err
	}
	f.confirmed = append(f.confirmed, userID)
	return nil
}

func (f *fakeAdminUseCase) CreateUser(ctx context.Context, input usecase.CreateUserInput) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &model.User{ID: "01HZXCVBNM0000000000000000", Name: input.Name, Email: input.Email, Role: input.Role, IsActive: true}, nil
}

func (f *fakeAdminUseCase) BuildSignInLink(ctx context.Context, userID string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.link, nil
}

func newAdminRouter(uc usecase.AdminUseCase, serviceKey string) http.Handler {
	handler := NewAdminHandler(uc, noopLogger{})
	router := chi.NewRouter()
	router.Route("/admin", func(admin chi.Router) {
		admin.Use(ServiceKeyMiddleware(serviceKey, noopLogger{}, api.New()))
		admin.Post("/users/confirm", handler.ConfirmUserHandler)
		admin.Get("/users/{id}/signin-link", handler.SignInLinkHandler)
	})
	return router
}

func TestAdminRoutes_RejectWithoutServiceKey(t *testing.T) {
	uc := &fakeAdminUseCase{}
	router := newAdminRouter(uc, "super-secret")

	req := httptest.NewRequest(http.MethodPost, "/admin/users/confirm", strings.NewReader(`{"usuario_id":"01HZXCVBNM0000000000000000"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, uc.confirmed)
}

func TestAdminRoutes_RejectWrongServiceKey(t *testing.T) {
	uc := &fakeAdminUseCase{}
	router := newAdminRouter(uc, "super-secret")

	req := httptest.NewRequest(http.MethodPost, "/admin/users/confirm", strings.NewReader(`{"usuario_id":"01HZXCVBNM0000000000000000"}`))
	req.Header.Set(adminKeyHeader, "wrong")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, uc.confirmed)
}

func TestAdminRoutes_DisabledWhenKeyUnset(t *testing.T) {
	uc := &fakeAdminUseCase{}
	router := newAdminRouter(uc, "")

	req := httptest.NewRequest(http.MethodPost, "/admin/users/confirm", strings.NewReader(`{"usuario_id":"01HZXCVBNM0000000000000000"}`))
	req.Header.Set(adminKeyHeader, "")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestConfirmUser_WithServiceKey(t *testing.T) {
	uc := &fakeAdminUseCase{}
	router := newAdminRouter(uc, "super-secret")

	req := httptest.NewRequest(http.MethodPost, "/admin/users/confirm", strings.NewReader(`{"usuario_id":"01HZXCVBNM0000000000000000"}`))
	req.Header.Set(adminKeyHeader, "super-secret")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"01HZXCVBNM0000000000000000"}, uc.confirmed)
}

func TestConfirmUser_UnknownUser(t *testing.T) {
	uc := &fakeAdminUseCase{err: domain.ErrUserNotFound}
	router := newAdminRouter(uc, "super-secret")

	req := httptest.NewRequest(http.MethodPost, "/admin/users/confirm", strings.NewReader(`{"usuario_id":"01HZXCVBNM0000000000000000"}`))
	req.Header.Set(adminKeyHeader, "super-secret")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSignInLink_ReturnsJSON(t *testing.T) {
	uc := &fakeAdminUseCase{link: "https://crm.example.com/entrar?token=abc"}
	router := newAdminRouter(uc, "super-secret")

	req := httptest.NewRequest(http.MethodGet, "/admin/users/01HZXCVBNM0000000000000000/signin-link", nil)
	req.Header.Set(adminKeyHeader, "super-secret")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "https://crm.example.com/entrar?token=abc")
}

func TestSignInLink_Redirects(t *testing.T) {
	uc := &fakeAdminUseCase{link: "https://crm.example.com/entrar?token=abc"}
	router := newAdminRouter(uc, "super-secret")

	req := httptest.NewRequest(http.MethodGet, "/admin/users/01HZXCVBNM0000000000000000/signin-link?redirect=true", nil)
	req.Header.Set(adminKeyHeader, "super-secret")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://crm.example.com/entrar?token=abc", rec.Header().Get("Location"))
}
