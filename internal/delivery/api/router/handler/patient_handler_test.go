package handler

import (
	"net/http"
	"testing"

	"hospital/internal/domain/entity"
	domainerrors "hospital/internal/domain/errors"
	mockUsecase "hospital/internal/mocks/usecase"
	"hospital/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const patientBody = `{
	"name": "Jane Doe", "age": 0, "gender": "female",
	"floor_number": "3", "room_number": "301", "bed_number": "B",
	"diseases": "none", "allergies": "none", "medical_history": "none",
	"contact_number": "555-0100", "emergency_contact": "555-0199"
}`

func newPatientTestEcho(t *testing.T) (*mockUsecase.MockPatientUsecase, *PatientHandler) {
	patientUC := mockUsecase.NewMockPatientUsecase(t)

	return patientUC, NewPatientHandler(PatientHandlerParams{PatientUC: patientUC, Logger: newDiscardLogger()})
}

func TestPatientHandler_CreatePatient_AcceptsZeroAge(t *testing.T) {
	patientUC, h := newPatientTestEcho(t)
	e := newTestEcho()
	e.POST("/api/patients", h.CreatePatient)

	patientUC.EXPECT().
		CreatePatient(mock.Anything, mock.MatchedBy(func(in usecase.PatientInput) bool {
			return in.Name == "Jane Doe" && in.Age == 0 && in.RoomNumber == "301"
		})).
		Return(&entity.Patient{ID: uuid.New(), Name: "Jane Doe"}, nil)

	rec := doRequest(e, http.MethodPost, "/api/patients", patientBody)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Jane Doe"`)
}

func TestPatientHandler_CreatePatient_MissingFields(t *testing.T) {
	_, h := newPatientTestEcho(t)
	e := newTestEcho()
	e.POST("/api/patients", h.CreatePatient)

	rec := doRequest(e, http.MethodPost, "/api/patients", `{"name":"Jane Doe","gender":"female"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "age is required")
}

func TestPatientHandler_ListPatients_PassesFilter(t *testing.T) {
	patientUC, h := newPatientTestEcho(t)
	e := newTestEcho()
	e.GET("/api/patients", h.ListPatients)

	page := entity.Pagination{Limit: 5, Offset: 5}
	patientUC.EXPECT().
		ListPatients(mock.Anything, entity.PatientFilter{Name: "jan"}, page).
		Return(entity.NewPage([]*entity.Patient{{ID: uuid.New()}}, 6, page), nil)

	rec := doRequest(e, http.MethodGet, "/api/patients?name=jan&limit=5&page=2", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":6`)
	assert.Contains(t, rec.Body.String(), `"offset":5`)
}

func TestPatientHandler_GetPatient(t *testing.T) {
	patientUC, h := newPatientTestEcho(t)
	e := newTestEcho()
	e.GET("/api/patients/:id", h.GetPatient)
	missing := uuid.New()

	patientUC.EXPECT().GetPatient(mock.Anything, missing).Return(nil, domainerrors.ErrPatientNotFound)

	rec := doRequest(e, http.MethodGet, "/api/patients/"+missing.String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "PATIENT_NOT_FOUND")

	rec = doRequest(e, http.MethodGet, "/api/patients/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPatientHandler_UpdateAndDelete(t *testing.T) {
	patientUC, h := newPatientTestEcho(t)
	e := newTestEcho()
	e.PUT("/api/patients/:id", h.UpdatePatient)
	e.DELETE("/api/patients/:id", h.DeletePatient)
	id := uuid.New()

	patientUC.EXPECT().UpdatePatient(mock.Anything, id, mock.AnythingOfType("usecase.PatientInput")).
		Return(&entity.Patient{ID: id}, nil)
	patientUC.EXPECT().DeletePatient(mock.Anything, id).Return(nil)

	rec := doRequest(e, http.MethodPut, "/api/patients/"+id.String(), patientBody)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(e, http.MethodDelete, "/api/patients/"+id.String(), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
