package middleware

import (
	"log/slog"

	"hospital/config"
	deliverycontext "hospital/internal/delivery/context"
	domainerrors "hospital/internal/domain/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware throttles requests per client IP with an in-memory token bucket.
type RateLimitMiddleware struct {
	logger  *slog.Logger
	enabled bool
	store   echomiddleware.RateLimiterStore
}

// NewRateLimitMiddleware builds the limiter from the rateLimit config section.
func NewRateLimitMiddleware(logger *slog.Logger, cfg *config.Config) *RateLimitMiddleware {
	m := &RateLimitMiddleware{logger: logger}
	if cfg.RateLimit == nil || !cfg.RateLimit.Enabled {
		return m
	}

	m.enabled = true
	m.store = echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.RateLimit.Rate),
		Burst:     cfg.RateLimit.Burst,
		ExpiresIn: cfg.RateLimit.ExpiresIn,
	})

	return m
}

// Handle returns the echo middleware. A disabled limiter passes every request through.
func (m *RateLimitMiddleware) Handle() echo.MiddlewareFunc {
	if !m.enabled {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: m.store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return domainerrors.ErrForbidden.WrapMessage("rate limiter identifier")
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Warn("Rate limit exceeded", slog.String("identifier", identifier), slog.String("path", c.Path()))

			return domainerrors.ErrTooManyRequests
		},
	})
}
