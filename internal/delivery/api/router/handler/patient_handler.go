package handler

import (
	"log/slog"
	"net/http"

	"hospital/internal/delivery/api/response"
	"hospital/internal/domain/entity"
	"hospital/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PatientHandlerParams holds dependencies for PatientHandler, injected by Fx.
type PatientHandlerParams struct {
	fx.In

	PatientUC usecase.PatientUsecase
	Logger    *slog.Logger
}

// PatientHandler holds dependencies for patient-related handlers
type PatientHandler struct {
	patientUC usecase.PatientUsecase
	logger    *slog.Logger
}

// NewPatientHandler is the constructor for PatientHandler
func NewPatientHandler(params PatientHandlerParams) *PatientHandler {
	return &PatientHandler{
		patientUC: params.PatientUC,
		logger:    params.Logger,
	}
}

// PatientRequest is the full patient record, used for both create and replace.
type PatientRequest struct {
	Name             string `json:"name" validate:"required"`
	Age              *int   `json:"age" validate:"required,min=0"`
	Gender           string `json:"gender" validate:"required"`
	FloorNumber      string `json:"floor_number" validate:"required"`
	RoomNumber       string `json:"room_number" validate:"required"`
	BedNumber        string `json:"bed_number" validate:"required"`
	Diseases         string `json:"diseases" validate:"required"`
	Allergies        string `json:"allergies" validate:"required"`
	MedicalHistory   string `json:"medical_history" validate:"required"`
	ContactNumber    string `json:"contact_number" validate:"required"`
	EmergencyContact string `json:"emergency_contact" validate:"required"`
}

func (r *PatientRequest) toInput() usecase.PatientInput {
	return usecase.PatientInput{
		Name:             r.Name,
		Age:              *r.Age,
		Gender:           r.Gender,
		FloorNumber:      r.FloorNumber,
		RoomNumber:       r.RoomNumber,
		BedNumber:        r.BedNumber,
		Diseases:         r.Diseases,
		Allergies:        r.Allergies,
		MedicalHistory:   r.MedicalHistory,
		ContactNumber:    r.ContactNumber,
		EmergencyContact: r.EmergencyContact,
	}
}

func (h *PatientHandler) CreatePatient(c echo.Context) error {
	var req PatientRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	patient, err := h.patientUC.CreatePatient(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, patient)
}

// ListPatients supports an optional case-insensitive name filter.
func (h *PatientHandler) ListPatients(c echo.Context) error {
	page, err := pagination(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.patientUC.ListPatients(c.Request().Context(), entity.PatientFilter{Name: c.QueryParam("name")}, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

func (h *PatientHandler) GetPatient(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	patient, err := h.patientUC.GetPatient(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, patient)
}

func (h *PatientHandler) UpdatePatient(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req PatientRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	patient, err := h.patientUC.UpdatePatient(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, patient)
}

func (h *PatientHandler) DeletePatient(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.patientUC.DeletePatient(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
