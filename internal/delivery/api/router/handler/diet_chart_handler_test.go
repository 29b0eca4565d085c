package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"hospital/internal/domain/entity"
	domainerrors "hospital/internal/domain/errors"
	mockUsecase "hospital/internal/mocks/usecase"
	"hospital/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDietChartHandler_CreateDietChart_UsesCallerAsAuthor(t *testing.T) {
	dietChartUC := mockUsecase.NewMockDietChartUsecase(t)
	h := NewDietChartHandler(DietChartHandlerParams{
		DietChartUC: dietChartUC,
		MealUC:      mockUsecase.NewMockMealUsecase(t),
		Logger:      newDiscardLogger(),
	})
	identity := entity.Identity{UserID: uuid.New(), Role: entity.RoleManager}
	patientID := uuid.New()
	e := newTestEcho()
	e.POST("/api/diet-charts", h.CreateDietChart, asIdentity(identity))

	dietChartUC.EXPECT().
		CreateDietChart(mock.Anything, identity.UserID, mock.MatchedBy(func(in usecase.DietChartInput) bool {
			return in.PatientID == patientID && in.StartDate == "2024-01-01" && in.EndDate == "2024-01-07" &&
				in.SpecialInstructions == nil
		})).
		Return(&entity.DietChart{ID: uuid.New(), PatientID: patientID, CreatedBy: identity.UserID}, nil)

	rec := doRequest(e, http.MethodPost, "/api/diet-charts",
		`{"patient_id":"`+patientID.String()+`","start_date":"2024-01-01","end_date":"2024-01-07"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), identity.UserID.String())
}

func TestDietChartHandler_CreateDietChart_Errors(t *testing.T) {
	dietChartUC := mockUsecase.NewMockDietChartUsecase(t)
	h := NewDietChartHandler(DietChartHandlerParams{
		DietChartUC: dietChartUC,
		MealUC:      mockUsecase.NewMockMealUsecase(t),
		Logger:      newDiscardLogger(),
	})
	identity := entity.Identity{UserID: uuid.New(), Role: entity.RoleAdmin}
	e := newTestEcho()
	e.POST("/api/diet-charts", h.CreateDietChart, asIdentity(identity))
	patientID := uuid.New()

	dietChartUC.EXPECT().CreateDietChart(mock.Anything, identity.UserID, mock.Anything).Return(nil, domainerrors.ErrPatientNotFound)

	rec := doRequest(e, http.MethodPost, "/api/diet-charts", `{"patient_id":"`+patientID.String()+`","start_date":"2024/01/01","end_date":"2024-01-07"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(e, http.MethodPost, "/api/diet-charts", `{"patient_id":"`+patientID.String()+`","start_date":"2024-01-01","end_date":"2024-01-07"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDietChartHandler_ListDietChartMeals(t *testing.T) {
	mealUC := mockUsecase.NewMockMealUsecase(t)
	h := NewDietChartHandler(DietChartHandlerParams{
		DietChartUC: mockUsecase.NewMockDietChartUsecase(t),
		MealUC:      mealUC,
		Logger:      newDiscardLogger(),
	})
	e := newTestEcho()
	e.GET("/api/diet-charts/:dietChartId/meals", h.ListDietChartMeals)
	chartID := uuid.New()
	page := entity.Pagination{Limit: 10}

	mealUC.EXPECT().ListDietChartMeals(mock.Anything, chartID, page).
		Return(entity.NewPage[*entity.Meal](nil, 0, page), nil)

	rec := doRequest(e, http.MethodGet, "/api/diet-charts/"+chartID.String()+"/meals", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"items":[],"total":0,"limit":10,"offset":0}`, rec.Body.String())
}

func TestDietChartHandler_DatesSurviveCreateGetUpdate(t *testing.T) {
	dietChartUC := mockUsecase.NewMockDietChartUsecase(t)
	h := NewDietChartHandler(DietChartHandlerParams{
		DietChartUC: dietChartUC,
		MealUC:      mockUsecase.NewMockMealUsecase(t),
		Logger:      newDiscardLogger(),
	})
	identity := entity.Identity{UserID: uuid.New(), Role: entity.RoleManager}
	e := newTestEcho()
	e.POST("/api/diet-charts", h.CreateDietChart, asIdentity(identity))
	e.GET("/api/diet-charts/:id", h.GetDietChart)
	e.PUT("/api/diet-charts/:id", h.UpdateDietChart)

	chartID := uuid.New()
	patientID := uuid.New()
	var stored *entity.DietChart
	save := func(in usecase.DietChartInput) (*entity.DietChart, error) {
		start, err := entity.ParseDate(in.StartDate)
		if err != nil {
			return nil, err
		}
		end, err := entity.ParseDate(in.EndDate)
		if err != nil {
			return nil, err
		}
		stored = &entity.DietChart{
			ID:          chartID,
			PatientID:   in.PatientID,
			PatientName: "Jane Doe",
			StartDate:   start,
			EndDate:     end,
			CreatedBy:   identity.UserID,
		}

		return stored, nil
	}

	dietChartUC.EXPECT().CreateDietChart(mock.Anything, identity.UserID, mock.Anything).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, in usecase.DietChartInput) (*entity.DietChart, error) {
			return save(in)
		})
	dietChartUC.EXPECT().GetDietChart(mock.Anything, chartID).
		RunAndReturn(func(context.Context, uuid.UUID) (*entity.DietChart, error) {
			return stored, nil
		})
	dietChartUC.EXPECT().UpdateDietChart(mock.Anything, chartID, mock.Anything).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, in usecase.DietChartInput) (*entity.DietChart, error) {
			return save(in)
		})

	rec := doRequest(e, http.MethodPost, "/api/diet-charts",
		`{"patient_id":"`+patientID.String()+`","start_date":"2025-01-01","end_date":"2025-01-31"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(e, http.MethodGet, "/api/diet-charts/"+chartID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	fetched := rec.Body.String()

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(fetched), &got))
	assert.Equal(t, "2025-01-01", got["start_date"])
	assert.Equal(t, "2025-01-31", got["end_date"])

	rec = doRequest(e, http.MethodPut, "/api/diet-charts/"+chartID.String(), fetched)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, got["start_date"], updated["start_date"])
	assert.Equal(t, got["end_date"], updated["end_date"])
}
