package handler

import (
	"net/http"
	"testing"

	"hospital/internal/domain/entity"
	domainerrors "hospital/internal/domain/errors"
	mockUsecase "hospital/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newDeliveryTestHandler(t *testing.T) (*mockUsecase.MockDeliveryUsecase, *DeliveryHandler) {
	deliveryUC := mockUsecase.NewMockDeliveryUsecase(t)

	return deliveryUC, NewDeliveryHandler(DeliveryHandlerParams{DeliveryUC: deliveryUC, Logger: newDiscardLogger()})
}

func TestDeliveryHandler_UpdateDeliveryStatus(t *testing.T) {
	deliveryUC, h := newDeliveryTestHandler(t)
	e := newTestEcho()
	e.PATCH("/api/deliveries/:id/status", h.UpdateDeliveryStatus)
	id := uuid.New()

	deliveryUC.EXPECT().UpdateDeliveryStatus(mock.Anything, id, "Delivered").
		Return(&entity.Delivery{ID: id, Status: entity.DeliveryStatusDelivered}, nil)
	deliveryUC.EXPECT().UpdateDeliveryStatus(mock.Anything, id, "Lost").
		Return(nil, domainerrors.ErrInvalidDeliveryStatus)

	rec := doRequest(e, http.MethodPatch, "/api/deliveries/"+id.String()+"/status", `{"delivery_status":"Delivered"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"delivery_status":"Delivered"`)

	rec = doRequest(e, http.MethodPatch, "/api/deliveries/"+id.String()+"/status", `{"delivery_status":"Lost"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_DELIVERY_STATUS")

	rec = doRequest(e, http.MethodPatch, "/api/deliveries/"+id.String()+"/status", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeliveryHandler_ListByStatusAndAssignee(t *testing.T) {
	deliveryUC, h := newDeliveryTestHandler(t)
	e := newTestEcho()
	e.GET("/api/deliveries/status/:status", h.ListDeliveriesByStatus)
	e.GET("/api/deliveries/assigned/:assignedTo", h.ListAssignedDeliveries)
	page := entity.Pagination{Limit: 10}

	deliveryUC.EXPECT().ListDeliveriesByStatus(mock.Anything, "Pending", page).
		Return(entity.NewPage[*entity.Delivery](nil, 0, page), nil)
	deliveryUC.EXPECT().ListAssignedDeliveries(mock.Anything, "courier-7", page).
		Return(entity.NewPage([]*entity.Delivery{{ID: uuid.New()}}, 1, page), nil)

	rec := doRequest(e, http.MethodGet, "/api/deliveries/status/Pending", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(e, http.MethodGet, "/api/deliveries/assigned/courier-7", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":1`)
}
