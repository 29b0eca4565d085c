package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient is an admitted person whose meals are planned and delivered.
type Patient struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Age              int       `json:"age"`
	Gender           string    `json:"gender"`
	FloorNumber      string    `json:"floor_number"`
	RoomNumber       string    `json:"room_number"`
	BedNumber        string    `json:"bed_number"`
	Diseases         string    `json:"diseases"`
	Allergies        string    `json:"allergies"`
	MedicalHistory   string    `json:"medical_history"`
	ContactNumber    string    `json:"contact_number"`
	EmergencyContact string    `json:"emergency_contact"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// PatientFilter narrows patient listings.
type PatientFilter struct {
	Name string // case-insensitive substring match
}
