package usecase

import (
	"context"

	"hospital/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateDeliveryInput defines a new delivery. An empty Status means Pending.
type CreateDeliveryInput struct {
	PatientID      uuid.UUID
	MealBoxDetails string
	AssignedTo     string
	Status         string
}

// DeliveryUsecase defines meal delivery operations.
type DeliveryUsecase interface {
	CreateDelivery(ctx context.Context, input CreateDeliveryInput) (*entity.Delivery, error)
	GetDelivery(ctx context.Context, id uuid.UUID) (*entity.Delivery, error)
	ListDeliveries(ctx context.Context, page entity.Pagination) (*entity.Page[*entity.Delivery], error)
	ListDeliveriesByStatus(ctx context.Context, status string, page entity.Pagination) (*entity.Page[*entity.Delivery], error)
	ListPatientDeliveries(ctx context.Context, patientID uuid.UUID, page entity.Pagination) (*entity.Page[*entity.Delivery], error)
	ListAssignedDeliveries(ctx context.Context, assignedTo string, page entity.Pagination) (*entity.Page[*entity.Delivery], error)
	UpdateDeliveryStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Delivery, error)
	DeleteDelivery(ctx context.Context, id uuid.UUID) error
}
