package usecase

import (
	"context"

	"hospital/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePantryStaffInput defines a new pantry staff member.
type CreatePantryStaffInput struct {
	Name        string
	ContactInfo string
	Location    string
}

// UpdatePantryStaffInput is a partial update; nil fields keep their stored value.
type UpdatePantryStaffInput struct {
	Name        *string
	ContactInfo *string
	Location    *string
}

// IsEmpty reports whether the update names no field.
func (in UpdatePantryStaffInput) IsEmpty() bool {
	return in.Name == nil && in.ContactInfo == nil && in.Location == nil
}

// PantryUsecase defines pantry staff management operations.
type PantryUsecase interface {
	CreateStaff(ctx context.Context, input CreatePantryStaffInput) (*entity.PantryStaff, error)
	GetStaff(ctx context.Context, id uuid.UUID) (*entity.PantryStaff, error)
	ListStaff(ctx context.Context, filter entity.PantryStaffFilter, page entity.Pagination) (*entity.Page[*entity.PantryStaff], error)
	UpdateStaff(ctx context.Context, id uuid.UUID, input UpdatePantryStaffInput) (*entity.PantryStaff, error)
	DeleteStaff(ctx context.Context, id uuid.UUID) error
}
