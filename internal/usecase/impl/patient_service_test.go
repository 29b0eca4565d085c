package impl

import (
	"context"
	"testing"

	"hospital/internal/domain/entity"
	domainerrors "hospital/internal/domain/errors"
	"hospital/internal/domain/repository"
	mockRepo "hospital/internal/mocks/repository"
	"hospital/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func samplePatientInput() usecase.PatientInput {
	return usecase.PatientInput{
		Name:             "Jane Doe",
		Age:              42,
		Gender:           "female",
		FloorNumber:      "3",
		RoomNumber:       "301",
		BedNumber:        "B",
		Diseases:         "diabetes",
		Allergies:        "peanuts",
		MedicalHistory:   "none",
		ContactNumber:    "555-0100",
		EmergencyContact: "555-0199",
	}
}

func TestPatientService_CreatePatient_Success(t *testing.T) {
	patientRepo := mockRepo.NewMockPatientRepository(t)
	service := NewPatientService(patientRepo, newDiscardLogger())
	ctx := context.Background()
	id := uuid.New()

	patientRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.Patient) bool {
			return p.Name == "Jane Doe" && p.Age == 42 && p.Allergies == "peanuts"
		})).
		Run(func(_ context.Context, p *entity.Patient) { p.ID = id }).
		Return(nil)

	patient, err := service.CreatePatient(ctx, samplePatientInput())

	require.NoError(t, err)
	assert.Equal(t, id, patient.ID)
}

func TestPatientService_CreatePatient_NegativeAge(t *testing.T) {
	service := NewPatientService(mockRepo.NewMockPatientRepository(t), newDiscardLogger())
	input := samplePatientInput()
	input.Age = -1

	_, err := service.CreatePatient(context.Background(), input)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPatientService_ListPatients_NormalizesPagination(t *testing.T) {
	patientRepo := mockRepo.NewMockPatientRepository(t)
	service := NewPatientService(patientRepo, newDiscardLogger())
	ctx := context.Background()

	patientRepo.EXPECT().
		List(ctx, entity.PatientFilter{Name: "jane"}, entity.Pagination{Limit: entity.MaxPageSize, Offset: 0}).
		Return(nil, 0, nil)

	page, err := service.ListPatients(ctx, entity.PatientFilter{Name: "  jane "}, entity.Pagination{Limit: 1000, Offset: -5})

	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, entity.MaxPageSize, page.Limit)
}

func TestPatientService_UpdatePatient_Reloads(t *testing.T) {
	patientRepo := mockRepo.NewMockPatientRepository(t)
	service := NewPatientService(patientRepo, newDiscardLogger())
	ctx := context.Background()
	id := uuid.New()
	stored := &entity.Patient{ID: id, Name: "Jane Doe"}

	patientRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(p *entity.Patient) bool { return p.ID == id })).
		Return(nil)
	patientRepo.EXPECT().FindByID(ctx, id).Return(stored, nil)

	patient, err := service.UpdatePatient(ctx, id, samplePatientInput())

	require.NoError(t, err)
	assert.Same(t, stored, patient)
}

func TestPatientService_UpdatePatient_NotFound(t *testing.T) {
	patientRepo := mockRepo.NewMockPatientRepository(t)
	service := NewPatientService(patientRepo, newDiscardLogger())
	ctx := context.Background()
	id := uuid.New()

	patientRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Patient")).Return(repository.ErrPatientNotFound)

	_, err := service.UpdatePatient(ctx, id, samplePatientInput())

	assert.ErrorIs(t, err, domainerrors.ErrPatientNotFound)
}

func TestPatientService_DeletePatient(t *testing.T) {
	patientRepo := mockRepo.NewMockPatientRepository(t)
	service := NewPatientService(patientRepo, newDiscardLogger())
	ctx := context.Background()
	id := uuid.New()
	missing := uuid.New()

	patientRepo.EXPECT().Delete(ctx, id).Return(nil)
	patientRepo.EXPECT().Delete(ctx, missing).Return(repository.ErrPatientNotFound)

	require.NoError(t, service.DeletePatient(ctx, id))
	assert.ErrorIs(t, service.DeletePatient(ctx, missing), domainerrors.ErrPatientNotFound)
}
