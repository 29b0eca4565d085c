package model

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryModel mirrors the 'deliveries' table.
type DeliveryModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PatientID      uuid.UUID `gorm:"type:uuid;not null;index"`
	MealBoxDetails string    `gorm:"type:text;not null"`
	AssignedTo     string    `gorm:"type:varchar(255);not null"`
	DeliveryStatus string    `gorm:"type:varchar(20);not null;default:'Pending';index"`
	Timestamp      time.Time `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Patient *PatientModel `gorm:"foreignKey:PatientID"`
}

// TableName explicitly sets the table name for GORM.
func (DeliveryModel) TableName() string {
	return "deliveries"
}
