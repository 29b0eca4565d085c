package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital/internal/domain/entity"
	domainerrors "hospital/internal/domain/errors"
	"hospital/internal/domain/service"
	mockService "hospital/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/get-user", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate_Rejects(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	tokenSvc.EXPECT().ValidateToken("expired").Return(nil, domainerrors.ErrTokenInvalid)

	tests := []struct {
		name     string
		header   string
		wantCode string
	}{
		{name: "missing header", header: "", wantCode: "UNAUTHORIZED"},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantCode: "UNAUTHORIZED"},
		{name: "empty bearer", header: "Bearer ", wantCode: "UNAUTHORIZED"},
		{name: "invalid token", header: "Bearer expired", wantCode: "TOKEN_INVALID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newAuthTestContext(tt.header)

			err := m.Authenticate(okHandler)(c)

			require.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantCode)
		})
	}
}

func TestAuthMiddleware_Authenticate_SetsIdentity(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	userID := uuid.New()

	tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: userID, Role: "pantry"}, nil)

	c, rec := newAuthTestContext("Bearer good")
	var seen entity.Identity
	err := m.Authenticate(func(c echo.Context) error {
		identity, ok := GetIdentity(c)
		require.True(t, ok)
		seen = identity

		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.Identity{UserID: userID, Role: entity.RolePantry}, seen)
}

func TestAuthMiddleware_Authenticate_UnknownRole(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	tokenSvc.EXPECT().ValidateToken("odd").Return(&service.Claims{UserID: uuid.New(), Role: "chef"}, nil)

	c, rec := newAuthTestContext("Bearer odd")

	require.NoError(t, m.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockService.NewMockTokenService(t), slog.New(slog.NewTextHandler(io.Discard, nil)))
	gate := m.RequireRole(entity.RoleAdmin, entity.RoleDelivery)

	tests := []struct {
		name     string
		identity *entity.Identity
		wantCode int
	}{
		{name: "no identity", identity: nil, wantCode: http.StatusUnauthorized},
		{name: "allowed role", identity: &entity.Identity{UserID: uuid.New(), Role: entity.RoleDelivery}, wantCode: http.StatusOK},
		{name: "admin", identity: &entity.Identity{UserID: uuid.New(), Role: entity.RoleAdmin}, wantCode: http.StatusOK},
		{name: "other role", identity: &entity.Identity{UserID: uuid.New(), Role: entity.RoleManager}, wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newAuthTestContext("")
			if tt.identity != nil {
				c.Set(identityKey, *tt.identity)
			}

			require.NoError(t, gate(okHandler)(c))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
