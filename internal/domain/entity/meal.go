package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MealType is the time slot a meal is served in.
type MealType string

const (
	MealTypeMorning MealType = "morning"
	MealTypeEvening MealType = "evening"
	MealTypeNight   MealType = "night"
)

// IsValid checks if the MealType is one of the served slots.
func (t MealType) IsValid() bool {
	switch t {
	case MealTypeMorning, MealTypeEvening, MealTypeNight:
		return true
	default:
		return false
	}
}

// ParseMealType lower-cases the input and reports whether it names a slot.
func ParseMealType(s string) (MealType, bool) {
	t := MealType(strings.ToLower(strings.TrimSpace(s)))

	return t, t.IsValid()
}

// Meal belongs to exactly one diet chart.
type Meal struct {
	ID           uuid.UUID  `json:"id"`
	DietChartID  uuid.UUID  `json:"diet_chart_id"`
	PatientID    *uuid.UUID `json:"patient_id,omitempty"` // read-only, joined from diet_charts
	Type         MealType   `json:"meal_type"`
	Ingredients  string     `json:"ingredients"`
	Instructions string     `json:"instructions"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
