package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hospital/config"
	"hospital/internal/delivery/api/middleware"
	"hospital/internal/delivery/api/router"
	"hospital/internal/delivery/api/router/handler"
	deliverycontext "hospital/internal/delivery/context"
	deliverymiddleware "hospital/internal/delivery/middleware"
	mockService "hospital/internal/mocks/service"
	mockUsecase "hospital/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestServer(t *testing.T) *apiServer {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	cfg.HTTP.CORS.AllowOrigins = []string{"http://localhost:3000"}

	params := ServerParams{
		Lc:     fxtest.NewLifecycle(t),
		Cfg:    cfg,
		Logger: logger,
		RouterParams: router.RouterParams{
			AuthHandler:    handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: mockUsecase.NewMockAuthUsecase(t), Logger: logger}),
			PatientHandler: handler.NewPatientHandler(handler.PatientHandlerParams{PatientUC: mockUsecase.NewMockPatientUsecase(t), Logger: logger}),
			DietChartHandler: handler.NewDietChartHandler(handler.DietChartHandlerParams{
				DietChartUC: mockUsecase.NewMockDietChartUsecase(t),
				MealUC:      mockUsecase.NewMockMealUsecase(t),
				Logger:      logger,
			}),
			MealHandler:      handler.NewMealHandler(handler.MealHandlerParams{MealUC: mockUsecase.NewMockMealUsecase(t), Logger: logger}),
			DeliveryHandler:  handler.NewDeliveryHandler(handler.DeliveryHandlerParams{DeliveryUC: mockUsecase.NewMockDeliveryUsecase(t), Logger: logger}),
			PantryHandler:    handler.NewPantryHandler(handler.PantryHandlerParams{PantryUC: mockUsecase.NewMockPantryUsecase(t), Logger: logger}),
			DashboardHandler: handler.NewDashboardHandler(handler.DashboardHandlerParams{DashboardUC: mockUsecase.NewMockDashboardUsecase(t), Logger: logger}),
			AuthMiddleware:   middleware.NewAuthMiddleware(mockService.NewMockTokenService(t), logger),
			RateLimiter:      deliverymiddleware.NewRateLimitMiddleware(logger, cfg),
		},
	}

	d, err := NewServer(params)
	require.NoError(t, err)

	return d.(*apiServer)
}

func TestServer_MiddlewareChain(t *testing.T) {
	srv := newTestServer(t)

	t.Run("health echoes request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "req-1")
		rec := httptest.NewRecorder()

		srv.server.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "req-1", rec.Header().Get(deliverycontext.HeaderXRequestID))
	})

	t.Run("unauthorized body carries request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
		rec := httptest.NewRecorder()

		srv.server.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		id := rec.Header().Get(deliverycontext.HeaderXRequestID)
		require.NotEmpty(t, id)
		assert.Contains(t, rec.Body.String(), id)
	})

	t.Run("unknown route is 404", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("oversized body is rejected", func(t *testing.T) {
		body := strings.NewReader(`{"email":"` + strings.Repeat("a", 2048) + `"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/login", body)
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		srv.server.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})

	t.Run("cors preflight allows configured origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/patients", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		rec := httptest.NewRecorder()

		srv.server.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
