package middleware

import (
	"log/slog"
	"time"

	"hospital/config"
	deliverycontext "hospital/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// AccessLogMiddleware writes one access log line per API call through the request-scoped logger.
type AccessLogMiddleware struct {
	logger  *slog.Logger
	verbose bool
	skip    map[string]struct{}
}

// NewAccessLogMiddleware builds the access logger. Debug mode adds client and query details.
func NewAccessLogMiddleware(logger *slog.Logger, cfg *config.Config) *AccessLogMiddleware {
	return &AccessLogMiddleware{
		logger:  logger,
		verbose: cfg.Env.Debug,
		skip:    map[string]struct{}{"/health": {}},
	}
}

// Handle logs the call after the handler chain has produced a status.
func (m *AccessLogMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := m.skip[c.Request().URL.Path]; ok {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		if err != nil {
			// resolve the final status before logging
			c.Error(err)
		}
		m.log(c, time.Since(start), err)

		return nil
	}
}

func (m *AccessLogMiddleware) log(c echo.Context, latency time.Duration, err error) {
	req := c.Request()
	status := c.Response().Status

	attrs := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", latency),
	}
	if m.verbose {
		attrs = append(attrs,
			slog.String("remote_ip", c.RealIP()),
			slog.String("user_agent", req.UserAgent()),
		)
		if req.URL.RawQuery != "" {
			attrs = append(attrs, slog.String("query", req.URL.RawQuery))
		}
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	level := slog.LevelInfo
	switch {
	case status >= 500:
		level = slog.LevelError
	case status >= 400:
		level = slog.LevelWarn
	}

	ctx := req.Context()
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).LogAttrs(ctx, level, "api call", attrs...)
}
