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

// pantryService implements the PantryUsecase interface.
type pantryService struct {
	staffRepo repository.PantryStaffRepository
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewPantryService is the constructor for pantryService.
func NewPantryService(
	staffRepo repository.PantryStaffRepository,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.PantryUsecase {
	return &pantryService{
		staffRepo: staffRepo,
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *pantryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *pantryService) CreateStaff(ctx context.Context, input usecase.CreatePantryStaffInput) (*entity.PantryStaff, error) {
	staff := &entity.PantryStaff{
		Name:        strings.TrimSpace(input.Name),
		ContactInfo: strings.TrimSpace(input.ContactInfo),
		Location:    strings.TrimSpace(input.Location),
	}
	if err := validateStaff(staff); err != nil {
		return nil, err
	}

	if err := srv.staffRepo.Create(ctx, staff); err != nil {
		srv.log(ctx).Error("Failed to create pantry staff", slog.Any("error", err))

		return nil, translateRepoError(err, "failed to create pantry staff")
	}
	srv.log(ctx).Info("Pantry staff created", slog.Any("staff_id", staff.ID), slog.String("location", staff.Location))

	return staff, nil
}

func (srv *pantryService) GetStaff(ctx context.Context, id uuid.UUID) (*entity.PantryStaff, error) {
	staff, err := srv.staffRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "failed to get pantry staff")
	}

	return staff, nil
}

func (srv *pantryService) ListStaff(ctx context.Context, filter entity.PantryStaffFilter, page entity.Pagination) (*entity.Page[*entity.PantryStaff], error) {
	page = page.Normalize()
	filter.Name = strings.TrimSpace(filter.Name)
	filter.Location = strings.TrimSpace(filter.Location)

	staff, total, err := srv.staffRepo.List(ctx, filter, page)
	if err != nil {
		return nil, translateRepoError(err, "failed to list pantry staff")
	}

	return entity.NewPage(staff, total, page), nil
}

// UpdateStaff applies a partial update; at least one field must be supplied.
func (srv *pantryService) UpdateStaff(ctx context.Context, id uuid.UUID, input usecase.UpdatePantryStaffInput) (*entity.PantryStaff, error) {
	if input.IsEmpty() {
		return nil, validationFailed("at least one of name, contact_info, location is required")
	}

	var updated *entity.PantryStaff
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		staffRepo := repoFactory.PantryStaffRepo()

		staff, err := staffRepo.FindByID(ctx, id)
		if err != nil {
			return translateRepoError(err, "failed to find pantry staff")
		}

		if input.Name != nil {
			staff.Name = strings.TrimSpace(*input.Name)
		}
		if input.ContactInfo != nil {
			staff.ContactInfo = strings.TrimSpace(*input.ContactInfo)
		}
		if input.Location != nil {
			staff.Location = strings.TrimSpace(*input.Location)
		}
		if err := validateStaff(staff); err != nil {
			return err
		}

		if err := staffRepo.Update(ctx, staff); err != nil {
			return translateRepoError(err, "failed to update pantry staff")
		}

		updated, err = staffRepo.FindByID(ctx, id)
		if err != nil {
			return translateRepoError(err, "failed to reload pantry staff")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update pantry staff", slog.Any("error", err), slog.Any("staff_id", id))

		return nil, err
	}
	srv.log(ctx).Info("Pantry staff updated", slog.Any("staff_id", id))

	return updated, nil
}

func (srv *pantryService) DeleteStaff(ctx context.Context, id uuid.UUID) error {
	if err := srv.staffRepo.Delete(ctx, id); err != nil {
		return translateRepoError(err, "failed to delete pantry staff")
	}
	srv.log(ctx).Info("Pantry staff deleted", slog.Any("staff_id", id))

	return nil
}

func validateStaff(staff *entity.PantryStaff) error {
	switch {
	case staff.Name == "":
		return validationFailed("name is required")
	case staff.ContactInfo == "":
		return validationFailed("contact_info is required")
	case staff.Location == "":
		return validationFailed("location is required")
	}

	return nil
}
