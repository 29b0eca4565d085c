package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "hospital/internal/delivery/context"
	"hospital/internal/domain/entity"
	"hospital/internal/domain/repository"
	"hospital/internal/usecase"

	"github.com/google/uuid"
)

// patientService implements the PatientUsecase interface.
type patientService struct {
	patientRepo repository.PatientRepository
	logger      *slog.Logger
}

// NewPatientService is the constructor for patientService.
func NewPatientService(patientRepo repository.PatientRepository, logger *slog.Logger) usecase.PatientUsecase {
	return &patientService{
		patientRepo: patientRepo,
		logger:      logger,
	}
}

func (srv *patientService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *patientService) CreatePatient(ctx context.Context, input usecase.PatientInput) (*entity.Patient, error) {
	if err := validatePatientInput(input); err != nil {
		return nil, err
	}

	patient := &entity.Patient{}
	applyPatientInput(patient, input)

	if err := srv.patientRepo.Create(ctx, patient); err != nil {
		srv.log(ctx).Error("Failed to create patient", slog.Any("error", err))

		return nil, translateRepoError(err, "failed to create patient")
	}
	srv.log(ctx).Info("Patient created", slog.Any("patient_id", patient.ID))

	return patient, nil
}

func (srv *patientService) GetPatient(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	patient, err := srv.patientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "failed to get patient")
	}

	return patient, nil
}

func (srv *patientService) ListPatients(ctx context.Context, filter entity.PatientFilter, page entity.Pagination) (*entity.Page[*entity.Patient], error) {
	page = page.Normalize()
	filter.Name = strings.TrimSpace(filter.Name)

	patients, total, err := srv.patientRepo.List(ctx, filter, page)
	if err != nil {
		return nil, translateRepoError(err, "failed to list patients")
	}

	return entity.NewPage(patients, total, page), nil
}

// UpdatePatient replaces every field of the record.
func (srv *patientService) UpdatePatient(ctx context.Context, id uuid.UUID, input usecase.PatientInput) (*entity.Patient, error) {
	if err := validatePatientInput(input); err != nil {
		return nil, err
	}

	patient := &entity.Patient{ID: id}
	applyPatientInput(patient, input)

	if err := srv.patientRepo.Update(ctx, patient); err != nil {
		return nil, translateRepoError(err, "failed to update patient")
	}

	updated, err := srv.patientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "failed to reload patient")
	}
	srv.log(ctx).Info("Patient updated", slog.Any("patient_id", id))

	return updated, nil
}

func (srv *patientService) DeletePatient(ctx context.Context, id uuid.UUID) error {
	if err := srv.patientRepo.Delete(ctx, id); err != nil {
		return translateRepoError(err, "failed to delete patient")
	}
	srv.log(ctx).Info("Patient deleted", slog.Any("patient_id", id))

	return nil
}

func validatePatientInput(input usecase.PatientInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return validationFailed("name is required")
	}
	if input.Age < 0 {
		return validationFailed("age must be zero or greater")
	}

	return nil
}

func applyPatientInput(patient *entity.Patient, input usecase.PatientInput) {
	patient.Name = strings.TrimSpace(input.Name)
	patient.Age = input.Age
	patient.Gender = input.Gender
	patient.FloorNumber = input.FloorNumber
	patient.RoomNumber = input.RoomNumber
	patient.BedNumber = input.BedNumber
	patient.Diseases = input.Diseases
	patient.Allergies = input.Allergies
	patient.MedicalHistory = input.MedicalHistory
	patient.ContactNumber = input.ContactNumber
	patient.EmergencyContact = input.EmergencyContact
}
