package model

import (
	"time"

	"github.com/google/uuid"
)

// DietChartModel mirrors the 'diet_charts' table. Meals are removed by ON DELETE CASCADE.
type DietChartModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PatientID           uuid.UUID `gorm:"type:uuid;not null;index"`
	StartDate           time.Time `gorm:"type:date;not null"`
	EndDate             time.Time `gorm:"type:date;not null"`
	SpecialInstructions string    `gorm:"type:text;not null;default:''"`
	CreatedBy           uuid.UUID `gorm:"type:uuid"`
	CreatedAt           time.Time
	UpdatedAt           time.Time

	Patient *PatientModel `gorm:"foreignKey:PatientID"`
	Meals   []*MealModel  `gorm:"foreignKey:DietChartID"`
}

// TableName explicitly sets the table name for GORM.
func (DietChartModel) TableName() string {
	return "diet_charts"
}
