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

// deliveryRepository implements the repository.DeliveryRepository interface.
type deliveryRepository struct {
	db *gorm.DB
}

// NewDeliveryRepository is the constructor for deliveryRepository.
func NewDeliveryRepository(db *gorm.DB) repository.DeliveryRepository {
	return &deliveryRepository{
		db: db,
	}
}

// Create persists a new delivery for an existing patient.
func (repo *deliveryRepository) Create(ctx context.Context, delivery *entity.Delivery) error {
	deliveryM := fromDeliveryDomain(delivery)

	if err := repo.db.WithContext(ctx).Omit("Patient").Create(deliveryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPatientNotFound
		}
		if isValidationViolation(err) {
			return validationError(err)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create delivery")
	}

	delivery.ID = deliveryM.ID
	delivery.CreatedAt = deliveryM.CreatedAt
	delivery.UpdatedAt = deliveryM.UpdatedAt

	return nil
}

// FindByID retrieves a delivery joined with the patient name.
func (repo *deliveryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Delivery, error) {
	var deliveryM model.DeliveryModel

	if err := repo.db.WithContext(ctx).
		Joins("Patient").
		Where("deliveries.id = ?", id).
		Take(&deliveryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeliveryNotFound
		}

		return nil, errors.Wrap(err, "failed to find delivery by ID")
	}

	return toDeliveryDomain(&deliveryM), nil
}

// List returns deliveries matching the filter by newest timestamp first.
func (repo *deliveryRepository) List(ctx context.Context, filter repository.DeliveryFilter, page entity.Pagination) ([]*entity.Delivery, int64, error) {
	var total int64
	if err := applyDeliveryFilter(repo.db.WithContext(ctx).Model(&model.DeliveryModel{}), filter).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count deliveries")
	}
	if total == 0 {
		return []*entity.Delivery{}, 0, nil
	}

	var deliveryModels []*model.DeliveryModel
	if err := applyDeliveryFilter(repo.db.WithContext(ctx).Joins("Patient"), filter).
		Order("deliveries.timestamp DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&deliveryModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list deliveries")
	}

	deliveries := make([]*entity.Delivery, 0, len(deliveryModels))
	for _, deliveryM := range deliveryModels {
		deliveries = append(deliveries, toDeliveryDomain(deliveryM))
	}

	return deliveries, total, nil
}

// UpdateStatus moves the delivery to a new status.
func (repo *deliveryRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.DeliveryStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeliveryModel{}).
		Where("id = ?", id).
		Update("delivery_status", string(status))

	if result.Error != nil {
		if isValidationViolation(result.Error) {
			return domainerrors.ErrInvalidDeliveryStatus
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update delivery status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeliveryNotFound
	}

	return nil
}

// Delete removes a delivery by its ID.
func (repo *deliveryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DeliveryModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete delivery")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeliveryNotFound
	}

	return nil
}

// applyDeliveryFilter qualifies columns so the same conditions work with and without the patient join.
func applyDeliveryFilter(query *gorm.DB, filter repository.DeliveryFilter) *gorm.DB {
	if filter.Status != "" {
		query = query.Where("deliveries.delivery_status = ?", string(filter.Status))
	}
	if filter.PatientID != uuid.Nil {
		query = query.Where("deliveries.patient_id = ?", filter.PatientID)
	}
	if filter.AssignedTo != "" {
		query = query.Where("deliveries.assigned_to = ?", filter.AssignedTo)
	}

	return query
}

// --- Mapper Functions ---

func toDeliveryDomain(data *model.DeliveryModel) *entity.Delivery {
	if data == nil {
		return nil
	}

	delivery := &entity.Delivery{
		ID:             data.ID,
		PatientID:      data.PatientID,
		MealBoxDetails: data.MealBoxDetails,
		AssignedTo:     data.AssignedTo,
		Status:         entity.DeliveryStatus(data.DeliveryStatus),
		Timestamp:      data.Timestamp,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
	if data.Patient != nil {
		delivery.PatientName = data.Patient.Name
	}

	return delivery
}

func fromDeliveryDomain(data *entity.Delivery) *model.DeliveryModel {
	if data == nil {
		return nil
	}

	return &model.DeliveryModel{
		ID:             data.ID,
		PatientID:      data.PatientID,
		MealBoxDetails: data.MealBoxDetails,
		AssignedTo:     data.AssignedTo,
		DeliveryStatus: string(data.Status),
		Timestamp:      data.Timestamp,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
