package postgres

import (
	"context"
	"time"

	"hospital/internal/domain/entity"
	"hospital/internal/domain/repository"
	"hospital/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const dashboardStatsQuery = `
SELECT
	(SELECT COUNT(*) FROM patients) AS total_patients,
	(SELECT COUNT(*) FROM diet_charts WHERE end_date >= ?) AS active_diet_charts,
	(SELECT COUNT(*) FROM meals WHERE created_at >= ? AND created_at < ?) AS meals_today,
	(SELECT COUNT(*) FROM deliveries WHERE delivery_status = ?) AS pending_deliveries`

const recentActivitiesQuery = `
SELECT a.type, a.id, a.patient_id, COALESCE(p.name, '') AS patient_name, a.occurred_at
FROM (
	SELECT 'diet_chart' AS type, id, patient_id, created_at AS occurred_at
	FROM diet_charts
	WHERE created_at >= ?
	UNION ALL
	SELECT 'delivery' AS type, id, patient_id, timestamp AS occurred_at
	FROM deliveries
	WHERE timestamp >= ?
) AS a
LEFT JOIN patients p ON p.id = a.patient_id
ORDER BY a.occurred_at DESC
LIMIT ?`

// dashboardRepository implements repository.DashboardRepository with raw aggregate SQL.
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository is the constructor for dashboardRepository.
func NewDashboardRepository(db *gorm.DB) repository.DashboardRepository {
	return &dashboardRepository{
		db: db,
	}
}

type dashboardStatsRow struct {
	TotalPatients     int64
	ActiveDietCharts  int64
	MealsToday        int64
	PendingDeliveries int64
}

type activityRow struct {
	Type        string
	ID          uuid.UUID
	PatientID   uuid.UUID
	PatientName string
	OccurredAt  time.Time
}

// Stats counts patients, charts still running today, meals created today and pending deliveries.
func (repo *dashboardRepository) Stats(ctx context.Context, today time.Time) (*entity.DashboardStats, error) {
	dayStart := util.StartOfDay(today)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var row dashboardStatsRow
	if err := repo.db.WithContext(ctx).
		Raw(dashboardStatsQuery,
			entity.NewDate(today).String(),
			dayStart,
			dayEnd,
			string(entity.DeliveryStatusPending),
		).
		Scan(&row).Error; err != nil {
		return nil, errors.Wrap(err, "failed to compute dashboard stats")
	}

	return &entity.DashboardStats{
		TotalPatients:     row.TotalPatients,
		ActiveDietCharts:  row.ActiveDietCharts,
		MealsToday:        row.MealsToday,
		PendingDeliveries: row.PendingDeliveries,
	}, nil
}

// RecentActivities merges chart creations and delivery timestamps after since, newest first.
func (repo *dashboardRepository) RecentActivities(ctx context.Context, since time.Time, limit int) ([]*entity.Activity, error) {
	var rows []activityRow
	if err := repo.db.WithContext(ctx).
		Raw(recentActivitiesQuery, since, since, limit).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to fetch recent activities")
	}

	activities := make([]*entity.Activity, 0, len(rows))
	for _, row := range rows {
		activities = append(activities, &entity.Activity{
			Type:        entity.ActivityType(row.Type),
			ID:          row.ID,
			PatientID:   row.PatientID,
			PatientName: row.PatientName,
			OccurredAt:  row.OccurredAt,
		})
	}

	return activities, nil
}
