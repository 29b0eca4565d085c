package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "hospital/internal/delivery/context"
	"hospital/internal/domain/entity"
	domainerrors "hospital/internal/domain/errors"
	"hospital/internal/domain/repository"
	"hospital/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// deliveryService implements the DeliveryUsecase interface.
type deliveryService struct {
	deliveryRepo repository.DeliveryRepository
	txManager    repository.TransactionManager
	logger       *slog.Logger
	now          func() time.Time
}

// NewDeliveryService is the constructor for deliveryService.
func NewDeliveryService(
	deliveryRepo repository.DeliveryRepository,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.DeliveryUsecase {
	return &deliveryService{
		deliveryRepo: deliveryRepo,
		txManager:    txManager,
		logger:       logger,
		now:          time.Now,
	}
}

func (srv *deliveryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateDelivery stamps the delivery with the server clock and returns it with the patient name resolved.
func (srv *deliveryService) CreateDelivery(ctx context.Context, input usecase.CreateDeliveryInput) (*entity.Delivery, error) {
	if input.PatientID == uuid.Nil {
		return nil, validationFailed("patient_id is required")
	}

	status := entity.DeliveryStatusPending
	if input.Status != "" {
		status = entity.DeliveryStatus(input.Status)
		if !status.IsValid() {
			return nil, errors.WithStack(domainerrors.ErrInvalidDeliveryStatus)
		}
	}

	delivery := &entity.Delivery{
		PatientID:      input.PatientID,
		MealBoxDetails: strings.TrimSpace(input.MealBoxDetails),
		AssignedTo:     strings.TrimSpace(input.AssignedTo),
		Status:         status,
		Timestamp:      srv.now().UTC(),
	}
	if delivery.MealBoxDetails == "" {
		return nil, validationFailed("meal_box_details is required")
	}
	if delivery.AssignedTo == "" {
		return nil, validationFailed("assigned_to is required")
	}

	var created *entity.Delivery
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deliveryRepo := repoFactory.DeliveryRepo()

		if err := deliveryRepo.Create(ctx, delivery); err != nil {
			return translateRepoError(err, "failed to create delivery")
		}

		var err error
		created, err = deliveryRepo.FindByID(ctx, delivery.ID)
		if err != nil {
			return translateRepoError(err, "failed to reload delivery")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create delivery", slog.Any("error", err), slog.Any("patient_id", input.PatientID))

		return nil, err
	}
	srv.log(ctx).Info("Delivery created", slog.Any("delivery_id", created.ID), slog.String("assigned_to", created.AssignedTo))

	return created, nil
}

func (srv *deliveryService) GetDelivery(ctx context.Context, id uuid.UUID) (*entity.Delivery, error) {
	delivery, err := srv.deliveryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "failed to get delivery")
	}

	return delivery, nil
}

func (srv *deliveryService) ListDeliveries(ctx context.Context, page entity.Pagination) (*entity.Page[*entity.Delivery], error) {
	return srv.list(ctx, repository.DeliveryFilter{}, page)
}

// ListDeliveriesByStatus rejects statuses outside the enum before touching storage.
func (srv *deliveryService) ListDeliveriesByStatus(ctx context.Context, status string, page entity.Pagination) (*entity.Page[*entity.Delivery], error) {
	deliveryStatus := entity.DeliveryStatus(status)
	if !deliveryStatus.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrInvalidDeliveryStatus)
	}

	return srv.list(ctx, repository.DeliveryFilter{Status: deliveryStatus}, page)
}

func (srv *deliveryService) ListPatientDeliveries(ctx context.Context, patientID uuid.UUID, page entity.Pagination) (*entity.Page[*entity.Delivery], error) {
	return srv.list(ctx, repository.DeliveryFilter{PatientID: patientID}, page)
}

func (srv *deliveryService) ListAssignedDeliveries(ctx context.Context, assignedTo string, page entity.Pagination) (*entity.Page[*entity.Delivery], error) {
	assignedTo = strings.TrimSpace(assignedTo)
	if assignedTo == "" {
		return nil, validationFailed("assigned_to is required")
	}

	return srv.list(ctx, repository.DeliveryFilter{AssignedTo: assignedTo}, page)
}

func (srv *deliveryService) list(ctx context.Context, filter repository.DeliveryFilter, page entity.Pagination) (*entity.Page[*entity.Delivery], error) {
	page = page.Normalize()

	deliveries, total, err := srv.deliveryRepo.List(ctx, filter, page)
	if err != nil {
		return nil, translateRepoError(err, "failed to list deliveries")
	}

	return entity.NewPage(deliveries, total, page), nil
}

// UpdateDeliveryStatus moves the delivery to status and reloads it in one transaction.
// An invalid status leaves the row untouched.
func (srv *deliveryService) UpdateDeliveryStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Delivery, error) {
	deliveryStatus := entity.DeliveryStatus(status)
	if !deliveryStatus.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrInvalidDeliveryStatus)
	}

	var updated *entity.Delivery
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deliveryRepo := repoFactory.DeliveryRepo()

		if err := deliveryRepo.UpdateStatus(ctx, id, deliveryStatus); err != nil {
			return translateRepoError(err, "failed to update delivery status")
		}

		var err error
		updated, err = deliveryRepo.FindByID(ctx, id)
		if err != nil {
			return translateRepoError(err, "failed to reload delivery")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update delivery status", slog.Any("error", err), slog.Any("delivery_id", id))

		return nil, err
	}
	srv.log(ctx).Info("Delivery status updated", slog.Any("delivery_id", id), slog.String("status", status))

	return updated, nil
}

func (srv *deliveryService) DeleteDelivery(ctx context.Context, id uuid.UUID) error {
	if err := srv.deliveryRepo.Delete(ctx, id); err != nil {
		return translateRepoError(err, "failed to delete delivery")
	}
	srv.log(ctx).Info("Delivery deleted", slog.Any("delivery_id", id))

	return nil
}
