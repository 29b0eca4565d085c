package entity

import (
	"time"

	"github.com/google/uuid"
)

// DietChart is a dated care plan for a single patient.
type DietChart struct {
	ID                  uuid.UUID `json:"id"`
	PatientID           uuid.UUID `json:"patient_id"`
	PatientName         string    `json:"patient_name,omitempty"` // read-only, joined from patients
	StartDate           Date      `json:"start_date"`
	EndDate             Date      `json:"end_date"`
	SpecialInstructions string    `json:"special_instructions"`
	CreatedBy           uuid.UUID `json:"created_by"`
	Meals               []*Meal   `json:"meals,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
