package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hospital/config"
	domainerrors "hospital/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRateLimitContext(e *echo.Echo) echo.Context {
	req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	req.RemoteAddr = "203.0.113.7:51000"

	return e.NewContext(req, httptest.NewRecorder())
}

func TestRateLimitMiddleware_DeniesAfterBurst(t *testing.T) {
	cfg := &config.Config{RateLimit: &config.RateLimitConfig{
		Enabled:   true,
		Rate:      0.001,
		Burst:     2,
		ExpiresIn: time.Minute,
	}}
	m := NewRateLimitMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)), cfg)
	handler := m.Handle()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e := echo.New()

	require.NoError(t, handler(newRateLimitContext(e)))
	require.NoError(t, handler(newRateLimitContext(e)))

	err := handler(newRateLimitContext(e))
	assert.ErrorIs(t, err, domainerrors.ErrTooManyRequests)
}

func TestRateLimitMiddleware_Disabled(t *testing.T) {
	m := NewRateLimitMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)), &config.Config{})
	handler := m.Handle()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e := echo.New()

	for range 20 {
		require.NoError(t, handler(newRateLimitContext(e)))
	}
}
