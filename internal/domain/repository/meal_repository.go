package repository

import (
	"context"
	"errors"

	"hospital/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMealNotFound is returned when a meal row does not exist.
var ErrMealNotFound = errors.New("meal not found")

// MealRepository defines persistence operations for meals.
type MealRepository interface {
	// Create returns ErrDietChartNotFound when the referenced chart is missing.
	Create(ctx context.Context, meal *entity.Meal) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Meal, error)
	// List returns meals newest first, each joined with the owning patient id.
	List(ctx context.Context, page entity.Pagination) ([]*entity.Meal, int64, error)
	// ListByDietChart returns a chart's meals oldest first.
	ListByDietChart(ctx context.Context, dietChartID uuid.UUID, page entity.Pagination) ([]*entity.Meal, int64, error)
	Update(ctx context.Context, meal *entity.Meal) error
	Delete(ctx context.Context, id uuid.UUID) error
}
