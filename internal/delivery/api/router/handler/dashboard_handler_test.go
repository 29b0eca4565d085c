package handler

import (
	"errors"
	"net/http"
	"testing"

	"hospital/internal/domain/entity"
	mockUsecase "hospital/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDashboardHandler(t *testing.T) {
	dashboardUC := mockUsecase.NewMockDashboardUsecase(t)
	h := NewDashboardHandler(DashboardHandlerParams{DashboardUC: dashboardUC, Logger: newDiscardLogger()})
	e := newTestEcho()
	e.GET("/api/dashboard/stats", h.GetStats)
	e.GET("/api/dashboard/recent-activities", h.GetRecentActivities)

	dashboardUC.EXPECT().GetStats(mock.Anything).Return(&entity.DashboardStats{
		TotalPatients: 3, ActiveDietCharts: 2, MealsToday: 5, PendingDeliveries: 1,
	}, nil)
	dashboardUC.EXPECT().GetRecentActivities(mock.Anything).Return(nil, errors.New("db down"))

	rec := doRequest(e, http.MethodGet, "/api/dashboard/stats", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total_patients":3,"active_diet_charts":2,"meals_today":5,"pending_deliveries":1}`, rec.Body.String())

	rec = doRequest(e, http.MethodGet, "/api/dashboard/recent-activities", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "db down")
}
