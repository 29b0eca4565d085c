package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "hospital/internal/delivery/context"
	"hospital/internal/domain/entity"
	"hospital/internal/domain/repository"
	"hospital/internal/usecase"

	"github.com/pkg/errors"
)

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	dashboardRepo repository.DashboardRepository
	logger        *slog.Logger
	now           func() time.Time
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(dashboardRepo repository.DashboardRepository, logger *slog.Logger) usecase.DashboardUsecase {
	return &dashboardService{
		dashboardRepo: dashboardRepo,
		logger:        logger,
		now:           time.Now,
	}
}

func (srv *dashboardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetStats computes the headline counters against the server's current date.
func (srv *dashboardService) GetStats(ctx context.Context) (*entity.DashboardStats, error) {
	stats, err := srv.dashboardRepo.Stats(ctx, srv.now())
	if err != nil {
		srv.log(ctx).Error("Failed to compute dashboard stats", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to compute dashboard stats")
	}

	return stats, nil
}

// GetRecentActivities returns the newest diet chart and delivery events of the last week.
func (srv *dashboardService) GetRecentActivities(ctx context.Context) ([]*entity.Activity, error) {
	since := srv.now().AddDate(0, 0, -usecase.RecentActivityWindowDays)

	activities, err := srv.dashboardRepo.RecentActivities(ctx, since, usecase.RecentActivityLimit)
	if err != nil {
		srv.log(ctx).Error("Failed to load recent activities", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load recent activities")
	}
	if activities == nil {
		activities = []*entity.Activity{}
	}

	return activities, nil
}
