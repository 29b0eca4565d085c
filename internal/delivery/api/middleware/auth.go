// Package middleware holds API-specific echo middleware.
package middleware

import (
	"log/slog"
	"strings"

	"hospital/internal/delivery/api/response"
	deliverycontext "hospital/internal/delivery/context"
	"hospital/internal/domain/entity"
	domainerrors "hospital/internal/domain/errors"
	"hospital/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const identityKey = "identity"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the bearer token and stores the caller's identity on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.AppError(c, domainerrors.ErrUnauthorized)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || strings.TrimSpace(tokenString) == "" {
			return response.AppError(c, domainerrors.ErrUnauthorized)
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected bearer token", slog.Any("error", err))

			return response.AppError(c, domainerrors.ErrTokenInvalid)
		}

		role, ok := entity.ParseRole(claims.Role)
		if !ok {
			return response.AppError(c, domainerrors.ErrTokenInvalid)
		}

		SetIdentity(c, entity.Identity{UserID: claims.UserID, Role: role})

		return next(c)
	}
}

// RequireRole only lets callers holding one of roles through.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	allowed := entity.Roles(roles)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := GetIdentity(c)
			if !ok {
				return response.AppError(c, domainerrors.ErrUnauthorized)
			}

			if !allowed.Contains(identity.Role) {
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
					Debug("Role not allowed",
						slog.String("role", identity.Role.String()),
						slog.Any("allowed", allowed.ToStrings()),
					)

				return response.AppError(c, domainerrors.ErrForbidden)
			}

			return next(c)
		}
	}
}

// SetIdentity stores the authenticated caller on the echo context.
func SetIdentity(c echo.Context, identity entity.Identity) {
	c.Set(identityKey, identity)
}

// GetIdentity returns the identity stored by Authenticate.
func GetIdentity(c echo.Context) (entity.Identity, bool) {
	identity, ok := c.Get(identityKey).(entity.Identity)

	return identity, ok
}
