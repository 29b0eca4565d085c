package model

import (
	"time"

	"github.com/google/uuid"
)

// PatientModel mirrors the 'patients' table.
type PatientModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name             string    `gorm:"type:varchar(255);not null"`
	Age              int       `gorm:"not null"`
	Gender           string    `gorm:"type:varchar(50);not null"`
	FloorNumber      string    `gorm:"type:varchar(50);not null"`
	RoomNumber       string    `gorm:"type:varchar(50);not null"`
	BedNumber        string    `gorm:"type:varchar(50);not null"`
	Diseases         string    `gorm:"type:text;not null"`
	Allergies        string    `gorm:"type:text;not null"`
	MedicalHistory   string    `gorm:"type:text;not null"`
	ContactNumber    string    `gorm:"type:varchar(50);not null"`
	EmergencyContact string    `gorm:"type:varchar(255);not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (PatientModel) TableName() string {
	return "patients"
}
