package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessLogMiddleware_Handle(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		debug     bool
		handler   echo.HandlerFunc
		expectLog []string
		expectNo  []string
	}{
		{
			name: "success logs at info",
			path: "/api/patients?limit=5",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			},
			expectLog: []string{"level=INFO", "status=200", "uri=/api/patients"},
			expectNo:  []string{"query="},
		},
		{
			name:  "debug adds query",
			path:  "/api/patients?limit=5",
			debug: true,
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			},
			expectLog: []string{`query="limit=5"`, "remote_ip="},
		},
		{
			name: "handler error resolves status",
			path: "/api/meals",
			handler: func(c echo.Context) error {
				return echo.NewHTTPError(http.StatusNotFound, "missing")
			},
			expectLog: []string{"level=WARN", "status=404"},
		},
		{
			name: "health is skipped",
			path: "/health",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			},
			expectNo: []string{"api call"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			m := NewAccessLogMiddleware(logger, cfg)

			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, tt.path, nil), httptest.NewRecorder())

			require.NoError(t, m.Handle(tt.handler)(c))
			for _, want := range tt.expectLog {
				assert.Contains(t, buf.String(), want)
			}
			for _, unwanted := range tt.expectNo {
				assert.NotContains(t, buf.String(), unwanted)
			}
		})
	}
}
