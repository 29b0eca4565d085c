package model

import (
	"time"

	"github.com/google/uuid"
)

// MealModel mirrors the 'meals' table.
type MealModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DietChartID  uuid.UUID `gorm:"type:uuid;not null;index"`
	MealType     string    `gorm:"type:varchar(20);not null"`
	Ingredients  string    `gorm:"type:text;not null"`
	Instructions string    `gorm:"type:text;not null;default:''"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	DietChart *DietChartModel `gorm:"foreignKey:DietChartID"`
}

// TableName explicitly sets the table name for GORM.
func (MealModel) TableName() string {
	return "meals"
}
