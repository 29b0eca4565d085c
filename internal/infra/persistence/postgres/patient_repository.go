package postgres

import (
	"context"

	"hospital/internal/domain/entity"
	domainerrors "hospital/internal/domain/errors"
	"hospital/internal/domain/repository"
	"hospital/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// patientRepository implements the repository.PatientRepository interface.
type patientRepository struct {
	db *gorm.DB
}

// NewPatientRepository is the constructor for patientRepository.
func NewPatientRepository(db *gorm.DB) repository.PatientRepository {
	return &patientRepository{
		db: db,
	}
}

// Create persists a new patient.
func (repo *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	patientM := fromPatientDomain(patient)

	if err := repo.db.WithContext(ctx).Create(patientM).Error; err != nil {
		if isValidationViolation(err) {
			return validationError(err)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create patient")
	}

	patient.ID = patientM.ID
	patient.CreatedAt = patientM.CreatedAt
	patient.UpdatedAt = patientM.UpdatedAt

	return nil
}

// FindByID retrieves a patient by its unique ID.
func (repo *patientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	var patientM model.PatientModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&patientM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPatientNotFound
		}

		return nil, errors.Wrap(err, "failed to find patient by ID")
	}

	return toPatientDomain(&patientM), nil
}

// List returns one page of patients, newest first.
func (repo *patientRepository) List(ctx context.Context, filter entity.PatientFilter, page entity.Pagination) ([]*entity.Patient, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.PatientModel{})
	if filter.Name != "" {
		query = query.Where("name ILIKE ?", containsPattern(filter.Name))
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count patients")
	}
	if total == 0 {
		return []*entity.Patient{}, 0, nil
	}

	var patientModels []*model.PatientModel
	if err := query.
		Order("created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&patientModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list patients")
	}

	patients := make([]*entity.Patient, 0, len(patientModels))
	for _, patientM := range patientModels {
		patients = append(patients, toPatientDomain(patientM))
	}

	return patients, total, nil
}

// Update replaces every mutable column of the patient.
func (repo *patientRepository) Update(ctx context.Context, patient *entity.Patient) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PatientModel{}).
		Where("id = ?", patient.ID).
		Updates(map[string]any{
			"name":              patient.Name,
			"age":               patient.Age,
			"gender":            patient.Gender,
			"floor_number":      patient.FloorNumber,
			"room_number":       patient.RoomNumber,
			"bed_number":        patient.BedNumber,
			"diseases":          patient.Diseases,
			"allergies":         patient.Allergies,
			"medical_history":   patient.MedicalHistory,
			"contact_number":    patient.ContactNumber,
			"emergency_contact": patient.EmergencyContact,
		})

	if result.Error != nil {
		if isValidationViolation(result.Error) {
			return validationError(result.Error)
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update patient")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPatientNotFound
	}

	return nil
}

// Delete removes a patient; dependent rows are removed by cascade.
func (repo *patientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PatientModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete patient")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPatientNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toPatientDomain(data *model.PatientModel) *entity.Patient {
	if data == nil {
		return nil
	}

	return &entity.Patient{
		ID:               data.ID,
		Name:             data.Name,
		Age:              data.Age,
		Gender:           data.Gender,
		FloorNumber:      data.FloorNumber,
		RoomNumber:       data.RoomNumber,
		BedNumber:        data.BedNumber,
		Diseases:         data.Diseases,
		Allergies:        data.Allergies,
		MedicalHistory:   data.MedicalHistory,
		ContactNumber:    data.ContactNumber,
		EmergencyContact: data.EmergencyContact,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromPatientDomain(data *entity.Patient) *model.PatientModel {
	if data == nil {
		return nil
	}

	return &model.PatientModel{
		ID:               data.ID,
		Name:             data.Name,
		Age:              data.Age,
		Gender:           data.Gender,
		FloorNumber:      data.FloorNumber,
		RoomNumber:       data.RoomNumber,
		BedNumber:        data.BedNumber,
		Diseases:         data.Diseases,
		Allergies:        data.Allergies,
		MedicalHistory:   data.MedicalHistory,
		ContactNumber:    data.ContactNumber,
		EmergencyContact: data.EmergencyContact,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
