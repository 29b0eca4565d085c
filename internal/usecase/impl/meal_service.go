package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "hospital/internal/delivery/context"
	"hospital/internal/domain/entity"
	domainerrors "hospital/internal/domain/errors"
	"hospital/internal/domain/repository"
	"hospital/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// mealService implements the MealUsecase interface.
type mealService struct {
	mealRepo  repository.MealRepository
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewMealService is the constructor for mealService.
func NewMealService(
	mealRepo repository.MealRepository,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.MealUsecase {
	return &mealService{
		mealRepo:  mealRepo,
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *mealService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *mealService) CreateMeal(ctx context.Context, input usecase.CreateMealInput) (*entity.Meal, error) {
	if input.DietChartID == uuid.Nil {
		return nil, validationFailed("diet_chart_id is required")
	}

	meal := &entity.Meal{
		DietChartID:  input.DietChartID,
		Ingredients:  strings.TrimSpace(input.Ingredients),
		Instructions: strings.TrimSpace(input.Instructions),
	}
	mealType, ok := entity.ParseMealType(input.MealType)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrInvalidMealType)
	}
	meal.Type = mealType

	if err := validateMeal(meal); err != nil {
		return nil, err
	}

	if err := srv.mealRepo.Create(ctx, meal); err != nil {
		srv.log(ctx).Error("Failed to create meal", slog.Any("error", err), slog.Any("diet_chart_id", input.DietChartID))

		return nil, translateRepoError(err, "failed to create meal")
	}
	srv.log(ctx).Info("Meal created", slog.Any("meal_id", meal.ID), slog.String("meal_type", string(meal.Type)))

	return meal, nil
}

func (srv *mealService) GetMeal(ctx context.Context, id uuid.UUID) (*entity.Meal, error) {
	meal, err := srv.mealRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "failed to get meal")
	}

	return meal, nil
}

func (srv *mealService) ListMeals(ctx context.Context, page entity.Pagination) (*entity.Page[*entity.Meal], error) {
	page = page.Normalize()

	meals, total, err := srv.mealRepo.List(ctx, page)
	if err != nil {
		return nil, translateRepoError(err, "failed to list meals")
	}

	return entity.NewPage(meals, total, page), nil
}

func (srv *mealService) ListDietChartMeals(ctx context.Context, dietChartID uuid.UUID, page entity.Pagination) (*entity.Page[*entity.Meal], error) {
	page = page.Normalize()

	meals, total, err := srv.mealRepo.ListByDietChart(ctx, dietChartID, page)
	if err != nil {
		return nil, translateRepoError(err, "failed to list diet chart meals")
	}

	return entity.NewPage(meals, total, page), nil
}

// UpdateMeal merges the supplied fields onto the stored meal, re-validates the
// result and persists it, all inside one transaction.
func (srv *mealService) UpdateMeal(ctx context.Context, id uuid.UUID, input usecase.UpdateMealInput) (*entity.Meal, error) {
	if input.IsEmpty() {
		return nil, validationFailed("at least one of meal_type, ingredients, instructions is required")
	}

	var updated *entity.Meal
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		mealRepo := repoFactory.MealRepo()

		meal, err := mealRepo.FindByID(ctx, id)
		if err != nil {
			return translateRepoError(err, "failed to find meal")
		}

		if input.MealType != nil {
			mealType, ok := entity.ParseMealType(*input.MealType)
			if !ok {
				return errors.WithStack(domainerrors.ErrInvalidMealType)
			}
			meal.Type = mealType
		}
		if input.Ingredients != nil {
			meal.Ingredients = strings.TrimSpace(*input.Ingredients)
		}
		if input.Instructions != nil {
			meal.Instructions = strings.TrimSpace(*input.Instructions)
		}

		if err := validateMeal(meal); err != nil {
			return err
		}

		if err := mealRepo.Update(ctx, meal); err != nil {
			return translateRepoError(err, "failed to update meal")
		}

		updated, err = mealRepo.FindByID(ctx, id)
		if err != nil {
			return translateRepoError(err, "failed to reload meal")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update meal", slog.Any("error", err), slog.Any("meal_id", id))

		return nil, err
	}
	srv.log(ctx).Info("Meal updated", slog.Any("meal_id", id))

	return updated, nil
}

func (srv *mealService) DeleteMeal(ctx context.Context, id uuid.UUID) error {
	if err := srv.mealRepo.Delete(ctx, id); err != nil {
		return translateRepoError(err, "failed to delete meal")
	}
	srv.log(ctx).Info("Meal deleted", slog.Any("meal_id", id))

	return nil
}

func validateMeal(meal *entity.Meal) error {
	if !meal.Type.IsValid() {
		return errors.WithStack(domainerrors.ErrInvalidMealType)
	}
	if meal.Ingredients == "" {
		return validationFailed("ingredients is required")
	}

	return nil
}
