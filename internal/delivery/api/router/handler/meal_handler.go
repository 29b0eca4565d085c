package handler

import (
	"log/slog"
	"net/http"

	"hospital/internal/delivery/api/response"
	"hospital/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MealHandlerParams holds dependencies for MealHandler, injected by Fx.
type MealHandlerParams struct {
	fx.In

	MealUC usecase.MealUsecase
	Logger *slog.Logger
}

// MealHandler holds dependencies for meal handlers
type MealHandler struct {
	mealUC usecase.MealUsecase
	logger *slog.Logger
}

// NewMealHandler is the constructor for MealHandler
func NewMealHandler(params MealHandlerParams) *MealHandler {
	return &MealHandler{
		mealUC: params.MealUC,
		logger: params.Logger,
	}
}

// CreateMealRequest represents the request body for adding a meal.
type CreateMealRequest struct {
	DietChartID  uuid.UUID `json:"diet_chart_id" validate:"required"`
	MealType     string    `json:"meal_type" validate:"required"`
	Ingredients  string    `json:"ingredients" validate:"required"`
	Instructions string    `json:"instructions"`
}

// UpdateMealRequest is a partial update; omitted fields are left unchanged.
type UpdateMealRequest struct {
	MealType     *string `json:"meal_type"`
	Ingredients  *string `json:"ingredients"`
	Instructions *string `json:"instructions"`
}

func (h *MealHandler) CreateMeal(c echo.Context) error {
	var req CreateMealRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	meal, err := h.mealUC.CreateMeal(c.Request().Context(), usecase.CreateMealInput{
		DietChartID:  req.DietChartID,
		MealType:     req.MealType,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, meal)
}

func (h *MealHandler) ListMeals(c echo.Context) error {
	page, err := pagination(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.mealUC.ListMeals(c.Request().Context(), page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

func (h *MealHandler) GetMeal(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	meal, err := h.mealUC.GetMeal(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, meal)
}

func (h *MealHandler) UpdateMeal(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateMealRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	meal, err := h.mealUC.UpdateMeal(c.Request().Context(), id, usecase.UpdateMealInput{
		MealType:     req.MealType,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, meal)
}

func (h *MealHandler) DeleteMeal(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.mealUC.DeleteMeal(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
