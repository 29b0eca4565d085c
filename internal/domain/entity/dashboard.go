package entity

import (
	"time"

	"github.com/google/uuid"
)

// DashboardStats are the headline counters shown on the dashboard.
type DashboardStats struct {
	TotalPatients     int64 `json:"total_patients"`
	ActiveDietCharts  int64 `json:"active_diet_charts"`
	MealsToday        int64 `json:"meals_today"`
	PendingDeliveries int64 `json:"pending_deliveries"`
}

// ActivityType names the table an activity entry came from.
type ActivityType string

const (
	ActivityDietChart ActivityType = "diet_chart"
	ActivityDelivery  ActivityType = "delivery"
)

// Activity is one entry of the recent-activity feed.
type Activity struct {
	Type        ActivityType `json:"type"`
	ID          uuid.UUID    `json:"id"`
	PatientID   uuid.UUID    `json:"patient_id"`
	PatientName string       `json:"patient_name,omitempty"`
	OccurredAt  time.Time    `json:"occurred_at"`
}
