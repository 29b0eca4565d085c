package handler

import (
	"log/slog"
	"net/http"

	"hospital/internal/delivery/api/response"
	"hospital/internal/domain/entity"
	"hospital/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PantryHandlerParams holds dependencies for PantryHandler, injected by Fx.
type PantryHandlerParams struct {
	fx.In

	PantryUC usecase.PantryUsecase
	Logger   *slog.Logger
}

// PantryHandler holds dependencies for pantry staff handlers
type PantryHandler struct {
	pantryUC usecase.PantryUsecase
	logger   *slog.Logger
}

// NewPantryHandler is the constructor for PantryHandler
func NewPantryHandler(params PantryHandlerParams) *PantryHandler {
	return &PantryHandler{
		pantryUC: params.PantryUC,
		logger:   params.Logger,
	}
}

// CreateStaffRequest represents the request body for adding a staff member.
type CreateStaffRequest struct {
	Name        string `json:"name" validate:"required"`
	ContactInfo string `json:"contact_info" validate:"required"`
	Location    string `json:"location" validate:"required"`
}

// UpdateStaffRequest is a partial update; omitted fields are left unchanged.
type UpdateStaffRequest struct {
	Name        *string `json:"name"`
	ContactInfo *string `json:"contact_info"`
	Location    *string `json:"location"`
}

func (h *PantryHandler) CreateStaff(c echo.Context) error {
	var req CreateStaffRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	staff, err := h.pantryUC.CreateStaff(c.Request().Context(), usecase.CreatePantryStaffInput{
		Name:        req.Name,
		ContactInfo: req.ContactInfo,
		Location:    req.Location,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, staff)
}

// ListStaff supports optional name (contains) and location (exact) filters.
func (h *PantryHandler) ListStaff(c echo.Context) error {
	return h.listStaff(c, entity.PantryStaffFilter{
		Name:     c.QueryParam("name"),
		Location: c.QueryParam("location"),
	})
}

// ListStaffByLocation serves GET /pantry/staff/location/:location.
func (h *PantryHandler) ListStaffByLocation(c echo.Context) error {
	return h.listStaff(c, entity.PantryStaffFilter{Location: c.Param("location")})
}

func (h *PantryHandler) listStaff(c echo.Context, filter entity.PantryStaffFilter) error {
	page, err := pagination(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.pantryUC.ListStaff(c.Request().Context(), filter, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

func (h *PantryHandler) GetStaff(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	staff, err := h.pantryUC.GetStaff(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, staff)
}

func (h *PantryHandler) UpdateStaff(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateStaffRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	staff, err := h.pantryUC.UpdateStaff(c.Request().Context(), id, usecase.UpdatePantryStaffInput{
		Name:        req.Name,
		ContactInfo: req.ContactInfo,
		Location:    req.Location,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, staff)
}

func (h *PantryHandler) DeleteStaff(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.pantryUC.DeleteStaff(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
