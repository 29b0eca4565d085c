package usecase

import (
	"context"

	"hospital/internal/domain/entity"

	"github.com/google/uuid"
)

// DietChartInput defines a diet chart write. Dates are YYYY-MM-DD.
type DietChartInput struct {
	PatientID           uuid.UUID
	StartDate           string
	EndDate             string
	SpecialInstructions *string
}

// DietChartUsecase defines diet chart management operations.
type DietChartUsecase interface {
	CreateDietChart(ctx context.Context, createdBy uuid.UUID, input DietChartInput) (*entity.DietChart, error)
	GetDietChart(ctx context.Context, id uuid.UUID) (*entity.DietChart, error)
	ListDietCharts(ctx context.Context, page entity.Pagination) (*entity.Page[*entity.DietChart], error)
	ListPatientDietCharts(ctx context.Context, patientID uuid.UUID, page entity.Pagination) (*entity.Page[*entity.DietChart], error)
	UpdateDietChart(ctx context.Context, id uuid.UUID, input DietChartInput) (*entity.DietChart, error)
	DeleteDietChart(ctx context.Context, id uuid.UUID) error
}
