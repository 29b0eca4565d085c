package usecase

import (
	"context"

	"hospital/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateMealInput defines the data required to add a meal to a diet chart.
type CreateMealInput struct {
	DietChartID  uuid.UUID
	MealType     string
	Ingredients  string
	Instructions string
}

// UpdateMealInput is a partial update; nil fields keep their stored value.
type UpdateMealInput struct {
	MealType     *string
	Ingredients  *string
	Instructions *string
}

// IsEmpty reports whether the update names no field.
func (in UpdateMealInput) IsEmpty() bool {
	return in.MealType == nil && in.Ingredients == nil && in.Instructions == nil
}

// MealUsecase defines meal management operations.
type MealUsecase interface {
	CreateMeal(ctx context.Context, input CreateMealInput) (*entity.Meal, error)
	GetMeal(ctx context.Context, id uuid.UUID) (*entity.Meal, error)
	ListMeals(ctx context.Context, page entity.Pagination) (*entity.Page[*entity.Meal], error)
	ListDietChartMeals(ctx context.Context, dietChartID uuid.UUID, page entity.Pagination) (*entity.Page[*entity.Meal], error)
	UpdateMeal(ctx context.Context, id uuid.UUID, input UpdateMealInput) (*entity.Meal, error)
	DeleteMeal(ctx context.Context, id uuid.UUID) error
}
