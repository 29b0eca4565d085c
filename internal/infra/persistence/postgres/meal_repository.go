package postgres

import (
	"context"

	"hospital/internal/domain/entity"
	domainerrors "hospital/internal/domain/errors"
	"hospital/internal/domain/repository"
	"hospital/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// mealRepository implements the repository.MealRepository interface.
type mealRepository struct {
	db *gorm.DB
}

// NewMealRepository is the constructor for mealRepository.
func NewMealRepository(db *gorm.DB) repository.MealRepository {
	return &mealRepository{
		db: db,
	}
}

// Create persists a new meal under an existing diet chart.
func (repo *mealRepository) Create(ctx context.Context, meal *entity.Meal) error {
	mealM := fromMealDomain(meal)

	if err := repo.db.WithContext(ctx).Omit("DietChart").Create(mealM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDietChartNotFound
		}
		if isValidationViolation(err) {
			return validationError(err)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create meal")
	}

	meal.ID = mealM.ID
	meal.CreatedAt = mealM.CreatedAt
	meal.UpdatedAt = mealM.UpdatedAt

	return nil
}

// FindByID retrieves a meal with the patient id of its diet chart.
func (repo *mealRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Meal, error) {
	var mealM model.MealModel

	if err := repo.db.WithContext(ctx).
		Joins("DietChart").
		Where("meals.id = ?", id).
		Take(&mealM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMealNotFound
		}

		return nil, errors.Wrap(err, "failed to find meal by ID")
	}

	return toMealDomain(&mealM), nil
}

// List returns meals newest first with the owning patient id.
func (repo *mealRepository) List(ctx context.Context, page entity.Pagination) ([]*entity.Meal, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.MealModel{}).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count meals")
	}
	if total == 0 {
		return []*entity.Meal{}, 0, nil
	}

	var mealModels []*model.MealModel
	if err := repo.db.WithContext(ctx).
		Joins("DietChart").
		Order("meals.created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&mealModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list meals")
	}

	return toMealDomains(mealModels), total, nil
}

// ListByDietChart returns a chart's meals oldest first.
func (repo *mealRepository) ListByDietChart(ctx context.Context, dietChartID uuid.UUID, page entity.Pagination) ([]*entity.Meal, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.MealModel{}).
		Where("diet_chart_id = ?", dietChartID).
		Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count meals by diet chart")
	}
	if total == 0 {
		return []*entity.Meal{}, 0, nil
	}

	var mealModels []*model.MealModel
	if err := query.
		Order("created_at ASC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&mealModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list meals by diet chart")
	}

	return toMealDomains(mealModels), total, nil
}

// Update rewrites the meal's type, ingredients and instructions.
func (repo *mealRepository) Update(ctx context.Context, meal *entity.Meal) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MealModel{}).
		Where("id = ?", meal.ID).
		Updates(map[string]any{
			"meal_type":    string(meal.Type),
			"ingredients":  meal.Ingredients,
			"instructions": meal.Instructions,
		})

	if result.Error != nil {
		if isValidationViolation(result.Error) {
			return validationError(result.Error)
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update meal")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMealNotFound
	}

	return nil
}

// Delete removes a meal by its ID.
func (repo *mealRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.MealModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete meal")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMealNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toMealDomain(data *model.MealModel) *entity.Meal {
	if data == nil {
		return nil
	}

	meal := &entity.Meal{
		ID:           data.ID,
		DietChartID:  data.DietChartID,
		Type:         entity.MealType(data.MealType),
		Ingredients:  data.Ingredients,
		Instructions: data.Instructions,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
	if data.DietChart != nil && data.DietChart.PatientID != uuid.Nil {
		patientID := data.DietChart.PatientID
		meal.PatientID = &patientID
	}

	return meal
}

func toMealDomains(data []*model.MealModel) []*entity.Meal {
	meals := make([]*entity.Meal, 0, len(data))
	for _, mealM := range data {
		meals = append(meals, toMealDomain(mealM))
	}

	return meals
}

func fromMealDomain(data *entity.Meal) *model.MealModel {
	if data == nil {
		return nil
	}

	return &model.MealModel{
		ID:           data.ID,
		DietChartID:  data.DietChartID,
		MealType:     string(data.Type),
		Ingredients:  data.Ingredients,
		Instructions: data.Instructions,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
