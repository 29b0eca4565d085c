package repository

import (
	"context"
	"errors"

	"hospital/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDeliveryNotFound is returned when a delivery row does not exist.
var ErrDeliveryNotFound = errors.New("delivery not found")

// DeliveryFilter narrows delivery listings. Zero fields are ignored.
type DeliveryFilter struct {
	Status     entity.DeliveryStatus
	PatientID  uuid.UUID
	AssignedTo string
}

// DeliveryRepository defines persistence operations for meal deliveries.
type DeliveryRepository interface {
	// Create returns ErrPatientNotFound when the referenced patient is missing.
	Create(ctx context.Context, delivery *entity.Delivery) error
	// FindByID loads the delivery joined with the patient name.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Delivery, error)
	// List returns deliveries by newest timestamp first, joined with the patient name.
	List(ctx context.Context, filter DeliveryFilter, page entity.Pagination) ([]*entity.Delivery, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.DeliveryStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}
