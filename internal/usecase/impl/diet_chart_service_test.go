package impl

import (
	"context"
	"testing"
	"time"

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

func TestDietChartService_CreateDietChart_Success(t *testing.T) {
	chartRepo := mockRepo.NewMockDietChartRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewDietChartService(chartRepo, txManager, newDiscardLogger())

	ctx := context.Background()
	patientID := uuid.New()
	authorID := uuid.New()
	chartID := uuid.New()
	reloaded := &entity.DietChart{ID: chartID, PatientID: patientID, PatientName: "Jane Doe"}

	factory := expectTransaction(t, txManager)
	txChartRepo := mockRepo.NewMockDietChartRepository(t)
	factory.EXPECT().DietChartRepo().Return(txChartRepo)
	txChartRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(c *entity.DietChart) bool {
			return c.PatientID == patientID && c.CreatedBy == authorID &&
				c.StartDate.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) &&
				c.EndDate.Equal(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)) &&
				c.SpecialInstructions == "low sodium"
		})).
		Run(func(_ context.Context, c *entity.DietChart) { c.ID = chartID }).
		Return(nil)
	txChartRepo.EXPECT().FindByID(ctx, chartID).Return(reloaded, nil)

	chart, err := service.CreateDietChart(ctx, authorID, usecase.DietChartInput{
		PatientID:           patientID,
		StartDate:           "2024-01-01",
		EndDate:             "2024-01-31",
		SpecialInstructions: strPtr(" low sodium "),
	})

	require.NoError(t, err)
	assert.Same(t, reloaded, chart)
}

func TestDietChartService_CreateDietChart_InvalidInput(t *testing.T) {
	service := NewDietChartService(
		mockRepo.NewMockDietChartRepository(t),
		mockRepo.NewMockTransactionManager(t),
		newDiscardLogger(),
	)
	patientID := uuid.New()

	tests := []struct {
		name    string
		input   usecase.DietChartInput
		wantErr error
	}{
		{
			name:    "missing patient",
			input:   usecase.DietChartInput{StartDate: "2024-01-01", EndDate: "2024-01-02"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "malformed start date",
			input:   usecase.DietChartInput{PatientID: patientID, StartDate: "01/01/2024", EndDate: "2024-01-02"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "malformed end date",
			input:   usecase.DietChartInput{PatientID: patientID, StartDate: "2024-01-01", EndDate: "2024-02-30"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "end before start",
			input:   usecase.DietChartInput{PatientID: patientID, StartDate: "2024-01-10", EndDate: "2024-01-09"},
			wantErr: domainerrors.ErrInvalidDateRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateDietChart(context.Background(), uuid.New(), tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDietChartService_CreateDietChart_SameDayRange(t *testing.T) {
	chartRepo := mockRepo.NewMockDietChartRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewDietChartService(chartRepo, txManager, newDiscardLogger())
	ctx := context.Background()

	factory := expectTransaction(t, txManager)
	txChartRepo := mockRepo.NewMockDietChartRepository(t)
	factory.EXPECT().DietChartRepo().Return(txChartRepo)
	txChartRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.DietChart")).Return(nil)
	txChartRepo.EXPECT().FindByID(ctx, mock.Anything).Return(&entity.DietChart{}, nil)

	_, err := service.CreateDietChart(ctx, uuid.New(), usecase.DietChartInput{
		PatientID: uuid.New(),
		StartDate: "2024-03-05",
		EndDate:   "2024-03-05",
	})

	require.NoError(t, err)
}

func TestDietChartService_CreateDietChart_UnknownPatient(t *testing.T) {
	chartRepo := mockRepo.NewMockDietChartRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewDietChartService(chartRepo, txManager, newDiscardLogger())
	ctx := context.Background()

	factory := expectTransaction(t, txManager)
	txChartRepo := mockRepo.NewMockDietChartRepository(t)
	factory.EXPECT().DietChartRepo().Return(txChartRepo)
	txChartRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.DietChart")).Return(repository.ErrPatientNotFound)

	_, err := service.CreateDietChart(ctx, uuid.New(), usecase.DietChartInput{
		PatientID: uuid.New(),
		StartDate: "2024-01-01",
		EndDate:   "2024-01-02",
	})

	assert.ErrorIs(t, err, domainerrors.ErrPatientNotFound)
}

func TestDietChartService_UpdateDietChart_NotFound(t *testing.T) {
	chartRepo := mockRepo.NewMockDietChartRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewDietChartService(chartRepo, txManager, newDiscardLogger())
	ctx := context.Background()
	id := uuid.New()

	factory := expectTransaction(t, txManager)
	txChartRepo := mockRepo.NewMockDietChartRepository(t)
	factory.EXPECT().DietChartRepo().Return(txChartRepo)
	txChartRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(c *entity.DietChart) bool { return c.ID == id })).
		Return(repository.ErrDietChartNotFound)

	_, err := service.UpdateDietChart(ctx, id, usecase.DietChartInput{
		PatientID: uuid.New(),
		StartDate: "2024-01-01",
		EndDate:   "2024-01-02",
	})

	assert.ErrorIs(t, err, domainerrors.ErrDietChartNotFound)
}

func TestDietChartService_UpdateDietChart_Success(t *testing.T) {
	chartRepo := mockRepo.NewMockDietChartRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewDietChartService(chartRepo, txManager, newDiscardLogger())
	ctx := context.Background()
	id := uuid.New()
	reloaded := &entity.DietChart{ID: id, Meals: []*entity.Meal{{ID: uuid.New()}}}

	factory := expectTransaction(t, txManager)
	txChartRepo := mockRepo.NewMockDietChartRepository(t)
	factory.EXPECT().DietChartRepo().Return(txChartRepo)
	txChartRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.DietChart")).Return(nil)
	txChartRepo.EXPECT().FindByID(ctx, id).Return(reloaded, nil)

	chart, err := service.UpdateDietChart(ctx, id, usecase.DietChartInput{
		PatientID: uuid.New(),
		StartDate: "2024-01-01",
		EndDate:   "2024-01-02",
	})

	require.NoError(t, err)
	assert.Len(t, chart.Meals, 1)
}

func TestDietChartService_ListPatientDietCharts(t *testing.T) {
	chartRepo := mockRepo.NewMockDietChartRepository(t)
	service := NewDietChartService(chartRepo, mockRepo.NewMockTransactionManager(t), newDiscardLogger())
	ctx := context.Background()
	patientID := uuid.New()
	charts := []*entity.DietChart{{ID: uuid.New()}, {ID: uuid.New()}}

	chartRepo.EXPECT().
		ListByPatient(ctx, patientID, entity.Pagination{Limit: entity.DefaultPageSize, Offset: 20}).
		Return(charts, 22, nil)

	page, err := service.ListPatientDietCharts(ctx, patientID, entity.Pagination{Offset: 20})

	require.NoError(t, err)
	assert.Equal(t, int64(22), page.Total)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 20, page.Offset)
}

func TestDietChartService_GetAndDelete_NotFound(t *testing.T) {
	chartRepo := mockRepo.NewMockDietChartRepository(t)
	service := NewDietChartService(chartRepo, mockRepo.NewMockTransactionManager(t), newDiscardLogger())
	ctx := context.Background()
	id := uuid.New()

	chartRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrDietChartNotFound)
	chartRepo.EXPECT().Delete(ctx, id).Return(repository.ErrDietChartNotFound)

	_, err := service.GetDietChart(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrDietChartNotFound)
	assert.ErrorIs(t, service.DeleteDietChart(ctx, id), domainerrors.ErrDietChartNotFound)
}
