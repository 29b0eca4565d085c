// Package handler contains the HTTP handlers for the API.
package handler

import (
	"net/http"

	"hospital/internal/delivery/api/response"
	"hospital/internal/domain/entity"
	domainerrors "hospital/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// bindAndValidate decodes the request body into req and runs struct validation.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("malformed request body"))
	}

	return errors.WithStack(c.Validate(req))
}

// pathUUID parses the named path parameter as a UUID.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(name + " must be a valid UUID"))
	}

	return id, nil
}

// pagination reads limit, offset and page from the query string. A page
// number is only used when no explicit offset is given.
func pagination(c echo.Context) (entity.Pagination, error) {
	var (
		limit     int
		offset    int
		pageIndex int
	)
	err := echo.QueryParamsBinder(c).
		Int("limit", &limit).
		Int("offset", &offset).
		Int("page", &pageIndex).
		BindError()
	if err != nil {
		return entity.Pagination{}, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("limit, offset and page must be integers"))
	}

	page := entity.Pagination{Limit: limit, Offset: offset}.Normalize()
	if c.QueryParam("offset") == "" && pageIndex > 1 {
		page.Offset = (pageIndex - 1) * page.Limit
	}

	return page, nil
}
