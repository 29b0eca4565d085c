package handler

import (
	"log/slog"
	"net/http"

	"hospital/internal/delivery/api/response"
	"hospital/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeliveryHandlerParams holds dependencies for DeliveryHandler, injected by Fx.
type DeliveryHandlerParams struct {
	fx.In

	DeliveryUC usecase.DeliveryUsecase
	Logger     *slog.Logger
}

// DeliveryHandler holds dependencies for meal delivery handlers
type DeliveryHandler struct {
	deliveryUC usecase.DeliveryUsecase
	logger     *slog.Logger
}

// NewDeliveryHandler is the constructor for DeliveryHandler
func NewDeliveryHandler(params DeliveryHandlerParams) *DeliveryHandler {
	return &DeliveryHandler{
		deliveryUC: params.DeliveryUC,
		logger:     params.Logger,
	}
}

// CreateDeliveryRequest represents the request body for scheduling a delivery.
type CreateDeliveryRequest struct {
	PatientID      uuid.UUID `json:"patient_id" validate:"required"`
	MealBoxDetails string    `json:"meal_box_details" validate:"required"`
	AssignedTo     string    `json:"assigned_to" validate:"required"`
	Status         string    `json:"delivery_status"`
}

// UpdateDeliveryStatusRequest represents the request body for a status change.
type UpdateDeliveryStatusRequest struct {
	Status string `json:"delivery_status" validate:"required"`
}

func (h *DeliveryHandler) CreateDelivery(c echo.Context) error {
	var req CreateDeliveryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	delivery, err := h.deliveryUC.CreateDelivery(c.Request().Context(), usecase.CreateDeliveryInput{
		PatientID:      req.PatientID,
		MealBoxDetails: req.MealBoxDetails,
		AssignedTo:     req.AssignedTo,
		Status:         req.Status,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, delivery)
}

func (h *DeliveryHandler) ListDeliveries(c echo.Context) error {
	page, err := pagination(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.deliveryUC.ListDeliveries(c.Request().Context(), page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// ListDeliveriesByStatus serves GET /deliveries/status/:status.
func (h *DeliveryHandler) ListDeliveriesByStatus(c echo.Context) error {
	page, err := pagination(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.deliveryUC.ListDeliveriesByStatus(c.Request().Context(), c.Param("status"), page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// ListPatientDeliveries serves GET /patients/:patientId/deliveries.
func (h *DeliveryHandler) ListPatientDeliveries(c echo.Context) error {
	patientID, err := pathUUID(c, "patientId")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	page, err := pagination(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.deliveryUC.ListPatientDeliveries(c.Request().Context(), patientID, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// ListAssignedDeliveries serves GET /deliveries/assigned/:assignedTo.
func (h *DeliveryHandler) ListAssignedDeliveries(c echo.Context) error {
	page, err := pagination(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.deliveryUC.ListAssignedDeliveries(c.Request().Context(), c.Param("assignedTo"), page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

func (h *DeliveryHandler) GetDelivery(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	delivery, err := h.deliveryUC.GetDelivery(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, delivery)
}

func (h *DeliveryHandler) UpdateDeliveryStatus(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateDeliveryStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	delivery, err := h.deliveryUC.UpdateDeliveryStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, delivery)
}

func (h *DeliveryHandler) DeleteDelivery(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.deliveryUC.DeleteDelivery(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
