package handler

import (
	"net/http"
	"testing"

	"hospital/internal/domain/entity"
	domainerrors "hospital/internal/domain/errors"
	mockUsecase "hospital/internal/mocks/usecase"
	"hospital/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMealHandler_UpdateMeal_PartialBody(t *testing.T) {
	mealUC := mockUsecase.NewMockMealUsecase(t)
	h := NewMealHandler(MealHandlerParams{MealUC: mealUC, Logger: newDiscardLogger()})
	e := newTestEcho()
	e.PUT("/api/meals/:id", h.UpdateMeal)
	id := uuid.New()

	mealUC.EXPECT().
		UpdateMeal(mock.Anything, id, mock.MatchedBy(func(in usecase.UpdateMealInput) bool {
			return in.MealType != nil && *in.MealType == "Night" && in.Ingredients == nil && in.Instructions == nil
		})).
		Return(&entity.Meal{ID: id, Type: entity.MealTypeNight}, nil)

	rec := doRequest(e, http.MethodPut, "/api/meals/"+id.String(), `{"meal_type":"Night"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"meal_type":"night"`)
}

func TestMealHandler_CreateMeal_InvalidType(t *testing.T) {
	mealUC := mockUsecase.NewMockMealUsecase(t)
	h := NewMealHandler(MealHandlerParams{MealUC: mealUC, Logger: newDiscardLogger()})
	e := newTestEcho()
	e.POST("/api/meals", h.CreateMeal)
	chartID := uuid.New()

	mealUC.EXPECT().CreateMeal(mock.Anything, mock.AnythingOfType("usecase.CreateMealInput")).
		Return(nil, domainerrors.ErrInvalidMealType)

	rec := doRequest(e, http.MethodPost, "/api/meals",
		`{"diet_chart_id":"`+chartID.String()+`","meal_type":"brunch","ingredients":"eggs"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_MEAL_TYPE")
}
