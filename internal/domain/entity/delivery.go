package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryStatus tracks a meal box from the pantry to the bed.
type DeliveryStatus string

const (
	DeliveryStatusPending   DeliveryStatus = "Pending"
	DeliveryStatusInTransit DeliveryStatus = "InTransit"
	DeliveryStatusDelivered DeliveryStatus = "Delivered"
	DeliveryStatusFailed    DeliveryStatus = "Failed"
)

// IsValid checks if the status belongs to the fixed lifecycle.
func (s DeliveryStatus) IsValid() bool {
	switch s {
	case DeliveryStatusPending, DeliveryStatusInTransit, DeliveryStatusDelivered, DeliveryStatusFailed:
		return true
	default:
		return false
	}
}

// Delivery is the hand-off of a meal box to a patient.
type Delivery struct {
	ID             uuid.UUID      `json:"id"`
	PatientID      uuid.UUID      `json:"patient_id"`
	PatientName    string         `json:"patient_name,omitempty"` // read-only, joined from patients
	MealBoxDetails string         `json:"meal_box_details"`
	AssignedTo     string         `json:"assigned_to"`
	Status         DeliveryStatus `json:"delivery_status"`
	Timestamp      time.Time      `json:"timestamp"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
