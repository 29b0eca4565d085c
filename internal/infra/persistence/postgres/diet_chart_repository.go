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

const dietChartDateRangeConstraint = "diet_charts_date_range"

// dietChartRepository implements the repository.DietChartRepository interface.
type dietChartRepository struct {
	db *gorm.DB
}

// NewDietChartRepository is the constructor for dietChartRepository.
func NewDietChartRepository(db *gorm.DB) repository.DietChartRepository {
	return &dietChartRepository{
		db: db,
	}
}

// Create persists a new diet chart for an existing patient.
func (repo *dietChartRepository) Create(ctx context.Context, chart *entity.DietChart) error {
	chartM := fromDietChartDomain(chart)

	if err := repo.db.WithContext(ctx).Omit("Patient", "Meals").Create(chartM).Error; err != nil {
		return repo.translateWriteError(err, "failed to create diet chart")
	}

	chart.ID = chartM.ID
	chart.CreatedAt = chartM.CreatedAt
	chart.UpdatedAt = chartM.UpdatedAt

	return nil
}

// FindByID loads a chart with its patient name and meals (oldest first).
func (repo *dietChartRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DietChart, error) {
	var chartM model.DietChartModel

	if err := repo.db.WithContext(ctx).
		Joins("Patient").
		Preload("Meals", orderMealsOldestFirst).
		Where("diet_charts.id = ?", id).
		Take(&chartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDietChartNotFound
		}

		return nil, errors.Wrap(err, "failed to find diet chart by ID")
	}

	return toDietChartDomain(&chartM), nil
}

// List returns charts newest first with the patient name, without meals.
func (repo *dietChartRepository) List(ctx context.Context, page entity.Pagination) ([]*entity.DietChart, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.DietChartModel{}).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count diet charts")
	}
	if total == 0 {
		return []*entity.DietChart{}, 0, nil
	}

	var chartModels []*model.DietChartModel
	if err := repo.db.WithContext(ctx).
		Joins("Patient").
		Order("diet_charts.created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&chartModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list diet charts")
	}

	return toDietChartDomains(chartModels), total, nil
}

// ListByPatient returns a patient's charts newest first, each with its meals.
func (repo *dietChartRepository) ListByPatient(ctx context.Context, patientID uuid.UUID, page entity.Pagination) ([]*entity.DietChart, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.DietChartModel{}).
		Where("patient_id = ?", patientID).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count diet charts by patient")
	}
	if total == 0 {
		return []*entity.DietChart{}, 0, nil
	}

	var chartModels []*model.DietChartModel
	if err := repo.db.WithContext(ctx).
		Joins("Patient").
		Preload("Meals", orderMealsOldestFirst).
		Where("diet_charts.patient_id = ?", patientID).
		Order("diet_charts.created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&chartModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list diet charts by patient")
	}

	return toDietChartDomains(chartModels), total, nil
}

// Update rewrites the chart's patient, dates and instructions.
func (repo *dietChartRepository) Update(ctx context.Context, chart *entity.DietChart) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DietChartModel{}).
		Where("id = ?", chart.ID).
		Updates(map[string]any{
			"patient_id":           chart.PatientID,
			"start_date":           chart.StartDate.Time,
			"end_date":             chart.EndDate.Time,
			"special_instructions": chart.SpecialInstructions,
		})

	if result.Error != nil {
		return repo.translateWriteError(result.Error, "failed to update diet chart")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDietChartNotFound
	}

	return nil
}

// Delete removes the chart; its meals are removed by cascade.
func (repo *dietChartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DietChartModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete diet chart")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDietChartNotFound
	}

	return nil
}

func (repo *dietChartRepository) translateWriteError(err error, action string) error {
	switch {
	case isForeignKeyConstraintViolation(err):
		return repository.ErrPatientNotFound
	case isCheckConstraintViolation(err) && constraintName(err) == dietChartDateRangeConstraint:
		return domainerrors.ErrInvalidDateRange
	case isValidationViolation(err):
		return validationError(err)
	default:
		return domainerrors.NewDatabaseExecuteError(err, action)
	}
}

func orderMealsOldestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("meals.created_at ASC")
}

// --- Mapper Functions ---

func toDietChartDomain(data *model.DietChartModel) *entity.DietChart {
	if data == nil {
		return nil
	}

	chart := &entity.DietChart{
		ID:                  data.ID,
		PatientID:           data.PatientID,
		StartDate:           entity.NewDate(data.StartDate),
		EndDate:             entity.NewDate(data.EndDate),
		SpecialInstructions: data.SpecialInstructions,
		CreatedBy:           data.CreatedBy,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
	if data.Patient != nil {
		chart.PatientName = data.Patient.Name
	}
	if data.Meals != nil {
		chart.Meals = make([]*entity.Meal, 0, len(data.Meals))
		for _, mealM := range data.Meals {
			chart.Meals = append(chart.Meals, toMealDomain(mealM))
		}
	}

	return chart
}

func toDietChartDomains(data []*model.DietChartModel) []*entity.DietChart {
	charts := make([]*entity.DietChart, 0, len(data))
	for _, chartM := range data {
		charts = append(charts, toDietChartDomain(chartM))
	}

	return charts
}

func fromDietChartDomain(data *entity.DietChart) *model.DietChartModel {
	if data == nil {
		return nil
	}

	return &model.DietChartModel{
		ID:                  data.ID,
		PatientID:           data.PatientID,
		StartDate:           data.StartDate.Time,
		EndDate:             data.EndDate.Time,
		SpecialInstructions: data.SpecialInstructions,
		CreatedBy:           data.CreatedBy,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}
