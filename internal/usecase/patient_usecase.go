package usecase

import (
	"context"

	"hospital/internal/domain/entity"

	"github.com/google/uuid"
)

// PatientInput carries every field of a patient record; create and update both require all of them.
type PatientInput struct {
	Name             string
	Age              int
	Gender           string
	FloorNumber      string
	RoomNumber       string
	BedNumber        string
	Diseases         string
	Allergies        string
	MedicalHistory   string
	ContactNumber    string
	EmergencyContact string
}

// PatientUsecase defines patient management operations.
type PatientUsecase interface {
	CreatePatient(ctx context.Context, input PatientInput) (*entity.Patient, error)
	GetPatient(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
	ListPatients(ctx context.Context, filter entity.PatientFilter, page entity.Pagination) (*entity.Page[*entity.Patient], error)
	UpdatePatient(ctx context.Context, id uuid.UUID, input PatientInput) (*entity.Patient, error)
	DeletePatient(ctx context.Context, id uuid.UUID) error
}
