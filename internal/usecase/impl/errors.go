// Package impl contains the application-specific business rules implementations.
package impl

import (
	domainerrors "hospital/internal/domain/errors"
	"hospital/internal/domain/repository"

	"github.com/pkg/errors"
)

// translateRepoError maps repository sentinels onto the application errors the
// delivery layer renders, annotating everything with the failed action.
func translateRepoError(err error, action string) error {
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return errors.Wrap(domainerrors.ErrUserNotFound, action)
	case errors.Is(err, repository.ErrDuplicateUser):
		return errors.Wrap(domainerrors.ErrUserAlreadyExists, action)
	case errors.Is(err, repository.ErrPatientNotFound):
		return errors.Wrap(domainerrors.ErrPatientNotFound, action)
	case errors.Is(err, repository.ErrDietChartNotFound):
		return errors.Wrap(domainerrors.ErrDietChartNotFound, action)
	case errors.Is(err, repository.ErrMealNotFound):
		return errors.Wrap(domainerrors.ErrMealNotFound, action)
	case errors.Is(err, repository.ErrDeliveryNotFound):
		return errors.Wrap(domainerrors.ErrDeliveryNotFound, action)
	case errors.Is(err, repository.ErrPantryStaffNotFound):
		return errors.Wrap(domainerrors.ErrPantryStaffNotFound, action)
	case errors.Is(err, repository.ErrDuplicatePantryStaff):
		return errors.Wrap(domainerrors.ErrPantryStaffAlreadyExists, action)
	default:
		return errors.Wrap(err, action)
	}
}

func validationFailed(details string) error {
	return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(details))
}
