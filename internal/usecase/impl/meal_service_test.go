package impl

import (
	"context"
	"testing"

	"hospital/internal/domain/entity"
	domainerrors "hospital/internal/domain/errors"
	"hospital/internal/domain/repository"
	mockRepo "hospital/internal/mocks/repository"
	"hospital/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMealService_CreateMeal_LowercasesType(t *testing.T) {
	mealRepo := mockRepo.NewMockMealRepository(t)
	service := NewMealService(mealRepo, mockRepo.NewMockTransactionManager(t), newDiscardLogger())
	ctx := context.Background()
	chartID := uuid.New()

	mealRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(m *entity.Meal) bool {
			return m.DietChartID == chartID && m.Type == entity.MealTypeEvening && m.Ingredients == "rice, dal"
		})).
		Return(nil)

	meal, err := service.CreateMeal(ctx, usecase.CreateMealInput{
		DietChartID: chartID,
		MealType:    "Evening",
		Ingredients: "rice, dal",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.MealTypeEvening, meal.Type)
}

func TestMealService_CreateMeal_InvalidType(t *testing.T) {
	service := NewMealService(mockRepo.NewMockMealRepository(t), mockRepo.NewMockTransactionManager(t), newDiscardLogger())

	_, err := service.CreateMeal(context.Background(), usecase.CreateMealInput{
		DietChartID: uuid.New(),
		MealType:    "brunch",
		Ingredients: "eggs",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidMealType)
}

func TestMealService_CreateMeal_UnknownDietChart(t *testing.T) {
	mealRepo := mockRepo.NewMockMealRepository(t)
	service := NewMealService(mealRepo, mockRepo.NewMockTransactionManager(t), newDiscardLogger())
	ctx := context.Background()

	mealRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Meal")).Return(repository.ErrDietChartNotFound)

	_, err := service.CreateMeal(ctx, usecase.CreateMealInput{
		DietChartID: uuid.New(),
		MealType:    "night",
		Ingredients: "soup",
	})

	assert.ErrorIs(t, err, domainerrors.ErrDietChartNotFound)
}

func TestMealService_UpdateMeal_MergesFields(t *testing.T) {
	mealRepo := mockRepo.NewMockMealRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewMealService(mealRepo, txManager, newDiscardLogger())
	ctx := context.Background()
	id := uuid.New()
	stored := &entity.Meal{ID: id, Type: entity.MealTypeMorning, Ingredients: "oats", Instructions: "warm"}
	reloaded := &entity.Meal{ID: id, Type: entity.MealTypeNight, Ingredients: "oats", Instructions: "warm"}

	factory := expectTransaction(t, txManager)
	txMealRepo := mockRepo.NewMockMealRepository(t)
	factory.EXPECT().MealRepo().Return(txMealRepo)
	txMealRepo.EXPECT().FindByID(ctx, id).Return(stored, nil).Once()
	txMealRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(m *entity.Meal) bool {
			return m.Type == entity.MealTypeNight && m.Ingredients == "oats" && m.Instructions == "warm"
		})).
		Return(nil)
	txMealRepo.EXPECT().FindByID(ctx, id).Return(reloaded, nil).Once()

	meal, err := service.UpdateMeal(ctx, id, usecase.UpdateMealInput{MealType: strPtr("NIGHT")})

	require.NoError(t, err)
	assert.Same(t, reloaded, meal)
}

func TestMealService_UpdateMeal_EmptyInput(t *testing.T) {
	service := NewMealService(mockRepo.NewMockMealRepository(t), mockRepo.NewMockTransactionManager(t), newDiscardLogger())

	_, err := service.UpdateMeal(context.Background(), uuid.New(), usecase.UpdateMealInput{})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestMealService_UpdateMeal_InvalidMergeSkipsWrite(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewMealService(mockRepo.NewMockMealRepository(t), txManager, newDiscardLogger())
	ctx := context.Background()
	id := uuid.New()

	factory := expectTransaction(t, txManager)
	txMealRepo := mockRepo.NewMockMealRepository(t)
	factory.EXPECT().MealRepo().Return(txMealRepo)
	txMealRepo.EXPECT().FindByID(ctx, id).Return(&entity.Meal{ID: id, Type: entity.MealTypeMorning, Ingredients: "oats"}, nil)

	_, err := service.UpdateMeal(ctx, id, usecase.UpdateMealInput{Ingredients: strPtr("   ")})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	txMealRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestMealService_UpdateMeal_NotFound(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewMealService(mockRepo.NewMockMealRepository(t), txManager, newDiscardLogger())
	ctx := context.Background()
	id := uuid.New()

	factory := expectTransaction(t, txManager)
	txMealRepo := mockRepo.NewMockMealRepository(t)
	factory.EXPECT().MealRepo().Return(txMealRepo)
	txMealRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrMealNotFound)

	_, err := service.UpdateMeal(ctx, id, usecase.UpdateMealInput{Instructions: strPtr("serve cold")})

	assert.ErrorIs(t, err, domainerrors.ErrMealNotFound)
}

func TestMealService_ListDietChartMeals(t *testing.T) {
	mealRepo := mockRepo.NewMockMealRepository(t)
	service := NewMealService(mealRepo, mockRepo.NewMockTransactionManager(t), newDiscardLogger())
	ctx := context.Background()
	chartID := uuid.New()

	mealRepo.EXPECT().
		ListByDietChart(ctx, chartID, entity.Pagination{Limit: 5, Offset: 0}).
		Return([]*entity.Meal{{ID: uuid.New()}}, 1, nil)

	page, err := service.ListDietChartMeals(ctx, chartID, entity.Pagination{Limit: 5})

	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, 5, page.Limit)
}
