package model

import (
	"time"

	"github.com/google/uuid"
)

// PantryStaffModel mirrors the 'pantry_staff' table.
type PantryStaffModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	ContactInfo string    `gorm:"type:varchar(255);unique;not null"`
	Location    string    `gorm:"type:varchar(255);not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PantryStaffModel) TableName() string {
	return "pantry_staff"
}
