package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"blog/config"
	apimiddleware "blog/internal/delivery/api/middleware"
	"blog/internal/delivery/api/router"
	"blog/internal/delivery/api/router/handler"
	mockservice "blog/internal/mocks/service"
	mockusecase "blog/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func preflight(allowOrigins []string, origin string) *httptest.ResponseRecorder {
	e := echo.New()
	e.Use(corsMiddleware(allowOrigins))
	e.POST("/auth/login", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/auth/login", nil)
	req.Header.Set(echo.HeaderOrigin, origin)
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestCORSMiddleware(t *testing.T) {
	t.Run("open by default", func(t *testing.T) {
		rec := preflight(nil, "http://anywhere.test")

		assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	})

	t.Run("configured origin allowed", func(t *testing.T) {
		rec := preflight([]string{"http://localhost:4200"}, "http://localhost:4200")

		assert.Equal(t, "http://localhost:4200", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	})

	t.Run("other origin rejected", func(t *testing.T) {
		rec := preflight([]string{"http://localhost:4200"}, "http://evil.test")

		assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	})
}

func TestNewEcho_StackWiring(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokenSvc := mockservice.NewMockTokenService(t)
	e := newEcho(cfg, logger, router.RouterParams{
		AuthHandler:    handler.NewAuthHandler(mockusecase.NewMockAuthUsecase(t), logger, cfg),
		UserHandler:    handler.NewUserHandler(mockusecase.NewMockProfileUsecase(t), logger),
		PostHandler:    handler.NewPostHandler(mockusecase.NewMockPostUsecase(t), logger),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(tokenSvc),
	})

	t.Run("health carries request id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(echo.HeaderXRequestID, "req-health-1")
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "req-health-1", rec.Header().Get(echo.HeaderXRequestID))
		assert.Contains(t, rec.Body.String(), `"request_id":"req-health-1"`)
	})

	t.Run("protected route without token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/posts/list", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "AUTHORIZATION_FAILED")
	})

	t.Run("body limit", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(strings.Repeat("x", 2048)))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})

	t.Run("unknown route uses error envelope", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"HTTP_ERROR"`)
	})
}
