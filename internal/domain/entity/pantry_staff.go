package entity

import (
	"time"

	"github.com/google/uuid"
)

// PantryStaff is a member of the kitchen team.
type PantryStaff struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	ContactInfo string    `json:"contact_info"`
	Location    string    `json:"location"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PantryStaffFilter narrows staff listings.
type PantryStaffFilter struct {
	Name     string // case-insensitive substring match
	Location string // exact match
}
