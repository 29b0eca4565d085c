package repository

import (
	"context"
	"errors"

	"hospital/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDietChartNotFound is returned when a diet chart row does not exist.
var ErrDietChartNotFound = errors.New("diet chart not found")

// DietChartRepository defines persistence operations for diet charts.
type DietChartRepository interface {
	// Create returns ErrPatientNotFound when the referenced patient is missing.
	Create(ctx context.Context, chart *entity.DietChart) error
	// FindByID loads the chart with its meals and the patient name.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DietChart, error)
	// List returns charts newest first, each joined with the patient name.
	List(ctx context.Context, page entity.Pagination) ([]*entity.DietChart, int64, error)
	// ListByPatient returns the patient's charts newest first, each with its meals.
	ListByPatient(ctx context.Context, patientID uuid.UUID, page entity.Pagination) ([]*entity.DietChart, int64, error)
	Update(ctx context.Context, chart *entity.DietChart) error
	Delete(ctx context.Context, id uuid.UUID) error
}
