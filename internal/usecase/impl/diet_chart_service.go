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

// dietChartService implements the DietChartUsecase interface.
type dietChartService struct {
	dietChartRepo repository.DietChartRepository
	txManager     repository.TransactionManager
	logger        *slog.Logger
}

// NewDietChartService is the constructor for dietChartService.
func NewDietChartService(
	dietChartRepo repository.DietChartRepository,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.DietChartUsecase {
	return &dietChartService{
		dietChartRepo: dietChartRepo,
		txManager:     txManager,
		logger:        logger,
	}
}

func (srv *dietChartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateDietChart records a chart authored by createdBy and returns it with the patient name resolved.
func (srv *dietChartService) CreateDietChart(ctx context.Context, createdBy uuid.UUID, input usecase.DietChartInput) (*entity.DietChart, error) {
	chart, err := newDietChart(input)
	if err != nil {
		return nil, err
	}
	chart.CreatedBy = createdBy

	var created *entity.DietChart
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		chartRepo := repoFactory.DietChartRepo()

		if err := chartRepo.Create(ctx, chart); err != nil {
			return translateRepoError(err, "failed to create diet chart")
		}

		created, err = chartRepo.FindByID(ctx, chart.ID)
		if err != nil {
			return translateRepoError(err, "failed to reload diet chart")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create diet chart", slog.Any("error", err), slog.Any("patient_id", input.PatientID))

		return nil, err
	}
	srv.log(ctx).Info("Diet chart created", slog.Any("diet_chart_id", created.ID), slog.Any("created_by", createdBy))

	return created, nil
}

func (srv *dietChartService) GetDietChart(ctx context.Context, id uuid.UUID) (*entity.DietChart, error) {
	chart, err := srv.dietChartRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "failed to get diet chart")
	}

	return chart, nil
}

func (srv *dietChartService) ListDietCharts(ctx context.Context, page entity.Pagination) (*entity.Page[*entity.DietChart], error) {
	page = page.Normalize()

	charts, total, err := srv.dietChartRepo.List(ctx, page)
	if err != nil {
		return nil, translateRepoError(err, "failed to list diet charts")
	}

	return entity.NewPage(charts, total, page), nil
}

// ListPatientDietCharts returns the patient's charts, each with its meals. An
// unknown patient yields an empty page.
func (srv *dietChartService) ListPatientDietCharts(ctx context.Context, patientID uuid.UUID, page entity.Pagination) (*entity.Page[*entity.DietChart], error) {
	page = page.Normalize()

	charts, total, err := srv.dietChartRepo.ListByPatient(ctx, patientID, page)
	if err != nil {
		return nil, translateRepoError(err, "failed to list patient diet charts")
	}

	return entity.NewPage(charts, total, page), nil
}

// UpdateDietChart replaces the chart fields and reloads it in the same transaction.
func (srv *dietChartService) UpdateDietChart(ctx context.Context, id uuid.UUID, input usecase.DietChartInput) (*entity.DietChart, error) {
	chart, err := newDietChart(input)
	if err != nil {
		return nil, err
	}
	chart.ID = id

	var updated *entity.DietChart
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		chartRepo := repoFactory.DietChartRepo()

		if err := chartRepo.Update(ctx, chart); err != nil {
			return translateRepoError(err, "failed to update diet chart")
		}

		updated, err = chartRepo.FindByID(ctx, id)
		if err != nil {
			return translateRepoError(err, "failed to reload diet chart")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update diet chart", slog.Any("error", err), slog.Any("diet_chart_id", id))

		return nil, err
	}
	srv.log(ctx).Info("Diet chart updated", slog.Any("diet_chart_id", id))

	return updated, nil
}

// DeleteDietChart removes the chart; its meals go with it.
func (srv *dietChartService) DeleteDietChart(ctx context.Context, id uuid.UUID) error {
	if err := srv.dietChartRepo.Delete(ctx, id); err != nil {
		return translateRepoError(err, "failed to delete diet chart")
	}
	srv.log(ctx).Info("Diet chart deleted", slog.Any("diet_chart_id", id))

	return nil
}

func newDietChart(input usecase.DietChartInput) (*entity.DietChart, error) {
	if input.PatientID == uuid.Nil {
		return nil, validationFailed("patient_id is required")
	}

	start, err := entity.ParseDate(input.StartDate)
	if err != nil {
		return nil, validationFailed("start_date must be YYYY-MM-DD")
	}
	end, err := entity.ParseDate(input.EndDate)
	if err != nil {
		return nil, validationFailed("end_date must be YYYY-MM-DD")
	}
	if end.Before(start.Time) {
		return nil, errors.WithStack(domainerrors.ErrInvalidDateRange)
	}

	chart := &entity.DietChart{
		PatientID: input.PatientID,
		StartDate: start,
		EndDate:   end,
	}
	if input.SpecialInstructions != nil {
		chart.SpecialInstructions = strings.TrimSpace(*input.SpecialInstructions)
	}

	return chart, nil
}
