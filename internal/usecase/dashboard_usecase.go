package usecase

import (
	"context"

	"hospital/internal/domain/entity"
)

const (
	// RecentActivityLimit caps the recent-activity feed.
	RecentActivityLimit = 10
	// RecentActivityWindowDays is how far back the feed looks.
	RecentActivityWindowDays = 7
)

// DashboardUsecase exposes read-only aggregates over the live tables.
type DashboardUsecase interface {
	GetStats(ctx context.Context) (*entity.DashboardStats, error)
	GetRecentActivities(ctx context.Context) ([]*entity.Activity, error)
}
