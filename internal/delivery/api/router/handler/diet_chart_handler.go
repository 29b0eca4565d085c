package handler

import (
	"log/slog"
	"net/http"

	"hospital/internal/delivery/api/middleware"
	"hospital/internal/delivery/api/response"
	"hospital/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DietChartHandlerParams holds dependencies for DietChartHandler, injected by Fx.
type DietChartHandlerParams struct {
	fx.In

	DietChartUC usecase.DietChartUsecase
	MealUC      usecase.MealUsecase
	Logger      *slog.Logger
}

// DietChartHandler holds dependencies for diet chart handlers
type DietChartHandler struct {
	dietChartUC usecase.DietChartUsecase
	mealUC      usecase.MealUsecase
	logger      *slog.Logger
}

// NewDietChartHandler is the constructor for DietChartHandler
func NewDietChartHandler(params DietChartHandlerParams) *DietChartHandler {
	return &DietChartHandler{
		dietChartUC: params.DietChartUC,
		mealUC:      params.MealUC,
		logger:      params.Logger,
	}
}

// DietChartRequest is used for both create and full update.
type DietChartRequest struct {
	PatientID           uuid.UUID `json:"patient_id" validate:"required"`
	StartDate           string    `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate             string    `json:"end_date" validate:"required,datetime=2006-01-02"`
	SpecialInstructions *string   `json:"special_instructions"`
}

func (r *DietChartRequest) toInput() usecase.DietChartInput {
	return usecase.DietChartInput{
		PatientID:           r.PatientID,
		StartDate:           r.StartDate,
		EndDate:             r.EndDate,
		SpecialInstructions: r.SpecialInstructions,
	}
}

// CreateDietChart records the caller as the chart's author.
func (h *DietChartHandler) CreateDietChart(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "Identity not found in context")
	}

	var req DietChartRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	chart, err := h.dietChartUC.CreateDietChart(c.Request().Context(), identity.UserID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, chart)
}

func (h *DietChartHandler) ListDietCharts(c echo.Context) error {
	page, err := pagination(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.dietChartUC.ListDietCharts(c.Request().Context(), page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// ListPatientDietCharts serves GET /patients/:patientId/diet-charts.
func (h *DietChartHandler) ListPatientDietCharts(c echo.Context) error {
	patientID, err := pathUUID(c, "patientId")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	page, err := pagination(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.dietChartUC.ListPatientDietCharts(c.Request().Context(), patientID, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

func (h *DietChartHandler) GetDietChart(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	chart, err := h.dietChartUC.GetDietChart(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, chart)
}

func (h *DietChartHandler) UpdateDietChart(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req DietChartRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	chart, err := h.dietChartUC.UpdateDietChart(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, chart)
}

func (h *DietChartHandler) DeleteDietChart(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.dietChartUC.DeleteDietChart(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// ListDietChartMeals serves GET /diet-charts/:dietChartId/meals, oldest first.
func (h *DietChartHandler) ListDietChartMeals(c echo.Context) error {
	chartID, err := pathUUID(c, "dietChartId")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	page, err := pagination(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.mealUC.ListDietChartMeals(c.Request().Context(), chartID, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
