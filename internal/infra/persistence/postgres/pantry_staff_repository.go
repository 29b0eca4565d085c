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

// pantryStaffRepository implements the repository.PantryStaffRepository interface.
type pantryStaffRepository struct {
	db *gorm.DB
}

// NewPantryStaffRepository is the constructor for pantryStaffRepository.
func NewPantryStaffRepository(db *gorm.DB) repository.PantryStaffRepository {
	return &pantryStaffRepository{
		db: db,
	}
}

// Create persists a new staff member; contact info is unique.
func (repo *pantryStaffRepository) Create(ctx context.Context, staff *entity.PantryStaff) error {
	staffM := fromPantryStaffDomain(staff)

	if err := repo.db.WithContext(ctx).Create(staffM).Error; err != nil {
		return translatePantryStaffWriteError(err, "failed to create pantry staff")
	}

	staff.ID = staffM.ID
	staff.CreatedAt = staffM.CreatedAt
	staff.UpdatedAt = staffM.UpdatedAt

	return nil
}

// FindByID retrieves a staff member by ID.
func (repo *pantryStaffRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PantryStaff, error) {
	var staffM model.PantryStaffModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&staffM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPantryStaffNotFound
		}

		return nil, errors.Wrap(err, "failed to find pantry staff by ID")
	}

	return toPantryStaffDomain(&staffM), nil
}

// List returns staff newest first, filtered by name substring and exact location.
func (repo *pantryStaffRepository) List(ctx context.Context, filter entity.PantryStaffFilter, page entity.Pagination) ([]*entity.PantryStaff, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.PantryStaffModel{})
	if filter.Name != "" {
		query = query.Where("name ILIKE ?", containsPattern(filter.Name))
	}
	if filter.Location != "" {
		query = query.Where("location = ?", filter.Location)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count pantry staff")
	}
	if total == 0 {
		return []*entity.PantryStaff{}, 0, nil
	}

	var staffModels []*model.PantryStaffModel
	if err := query.
		Order("created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&staffModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list pantry staff")
	}

	staff := make([]*entity.PantryStaff, 0, len(staffModels))
	for _, staffM := range staffModels {
		staff = append(staff, toPantryStaffDomain(staffM))
	}

	return staff, total, nil
}

// Update rewrites the staff member's name, contact info and location.
func (repo *pantryStaffRepository) Update(ctx context.Context, staff *entity.PantryStaff) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PantryStaffModel{}).
		Where("id = ?", staff.ID).
		Updates(map[string]any{
			"name":         staff.Name,
			"contact_info": staff.ContactInfo,
			"location":     staff.Location,
		})

	if result.Error != nil {
		return translatePantryStaffWriteError(result.Error, "failed to update pantry staff")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPantryStaffNotFound
	}

	return nil
}

// Delete removes a staff member by ID.
func (repo *pantryStaffRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PantryStaffModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete pantry staff")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPantryStaffNotFound
	}

	return nil
}

func translatePantryStaffWriteError(err error, action string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return repository.ErrDuplicatePantryStaff
	case isValidationViolation(err):
		return validationError(err)
	default:
		return domainerrors.NewDatabaseExecuteError(err, action)
	}
}

// --- Mapper Functions ---

func toPantryStaffDomain(data *model.PantryStaffModel) *entity.PantryStaff {
	if data == nil {
		return nil
	}

	return &entity.PantryStaff{
		ID:          data.ID,
		Name:        data.Name,
		ContactInfo: data.ContactInfo,
		Location:    data.Location,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromPantryStaffDomain(data *entity.PantryStaff) *model.PantryStaffModel {
	if data == nil {
		return nil
	}

	return &model.PantryStaffModel{
		ID:          data.ID,
		Name:        data.Name,
		ContactInfo: data.ContactInfo,
		Location:    data.Location,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
