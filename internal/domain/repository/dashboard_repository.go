package repository

import (
	"context"
	"time"

	"hospital/internal/domain/entity"
)

// DashboardRepository runs the read-only aggregate queries behind the dashboard.
type DashboardRepository interface {
	// Stats counts rows relative to the given calendar day.
	Stats(ctx context.Context, today time.Time) (*entity.DashboardStats, error)
	// RecentActivities merges diet chart and delivery creations after since, newest first.
	RecentActivities(ctx context.Context, since time.Time, limit int) ([]*entity.Activity, error)
}
