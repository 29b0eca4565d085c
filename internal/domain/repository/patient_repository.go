package repository

import (
	"context"
	"errors"

	"hospital/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPatientNotFound is returned when a patient row does not exist.
var ErrPatientNotFound = errors.New("patient not found")

// PatientRepository defines persistence operations for patients.
type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
	// List returns one page of patients, newest first, and the size of the filtered set.
	List(ctx context.Context, filter entity.PatientFilter, page entity.Pagination) ([]*entity.Patient, int64, error)
	// Update replaces every mutable column of the patient.
	Update(ctx context.Context, patient *entity.Patient) error
	// Delete removes the patient; diet charts, meals and deliveries go with it.
	Delete(ctx context.Context, id uuid.UUID) error
}
