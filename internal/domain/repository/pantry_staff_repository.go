package repository

import (
	"context"
	"errors"

	"hospital/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrPantryStaffNotFound is returned when a staff row does not exist.
	ErrPantryStaffNotFound = errors.New("pantry staff not found")
	// ErrDuplicatePantryStaff is returned when the contact info is already registered.
	ErrDuplicatePantryStaff = errors.New("pantry staff already exists")
)

// PantryStaffRepository defines persistence operations for pantry staff.
type PantryStaffRepository interface {
	Create(ctx context.Context, staff *entity.PantryStaff) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PantryStaff, error)
	List(ctx context.Context, filter entity.PantryStaffFilter, page entity.Pagination) ([]*entity.PantryStaff, int64, error)
	Update(ctx context.Context, staff *entity.PantryStaff) error
	Delete(ctx context.Context, id uuid.UUID) error
}
