package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"hospital/internal/domain/entity"
	mockRepo "hospital/internal/mocks/repository"
	"hospital/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDashboardTestService(t *testing.T, now time.Time) (*dashboardService, *mockRepo.MockDashboardRepository) {
	repo := mockRepo.NewMockDashboardRepository(t)
	srv := NewDashboardService(repo, newDiscardLogger()).(*dashboardService)
	srv.now = func() time.Time { return now }

	return srv, repo
}

func TestDashboardService_GetStats_UsesCurrentDate(t *testing.T) {
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	service, repo := newDashboardTestService(t, now)
	ctx := context.Background()
	want := &entity.DashboardStats{TotalPatients: 4, PendingDeliveries: 2}

	repo.EXPECT().Stats(ctx, now).Return(want, nil)

	stats, err := service.GetStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, want, stats)
}

func TestDashboardService_GetStats_Error(t *testing.T) {
	service, repo := newDashboardTestService(t, time.Now())
	ctx := context.Background()
	dbErr := errors.New("boom")

	repo.EXPECT().Stats(ctx, service.now()).Return(nil, dbErr)

	_, err := service.GetStats(ctx)

	assert.ErrorIs(t, err, dbErr)
}

func TestDashboardService_GetRecentActivities_Window(t *testing.T) {
	now := time.Date(2024, 6, 8, 9, 0, 0, 0, time.UTC)
	service, repo := newDashboardTestService(t, now)
	ctx := context.Background()

	repo.EXPECT().
		RecentActivities(ctx, time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC), usecase.RecentActivityLimit).
		Return(nil, nil)

	activities, err := service.GetRecentActivities(ctx)

	require.NoError(t, err)
	assert.NotNil(t, activities)
	assert.Empty(t, activities)
}
