// Package postgres implements the hospital repositories on GORM and PostgreSQL.
package postgres

import (
	"context"

	"hospital/internal/domain/repository"

	"github.com/pkg/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to one open transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

// UserRepo creates a new user repository instance bound to the transaction.
func (f *gormRepositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.tx)
}

// PatientRepo creates a new patient repository instance bound to the transaction.
func (f *gormRepositoryFactory) PatientRepo() repository.PatientRepository {
	return NewPatientRepository(f.tx)
}

// DietChartRepo creates a new diet chart repository instance bound to the transaction.
func (f *gormRepositoryFactory) DietChartRepo() repository.DietChartRepository {
	return NewDietChartRepository(f.tx)
}

// MealRepo creates a new meal repository instance bound to the transaction.
func (f *gormRepositoryFactory) MealRepo() repository.MealRepository {
	return NewMealRepository(f.tx)
}

// DeliveryRepo creates a new delivery repository instance bound to the transaction.
func (f *gormRepositoryFactory) DeliveryRepo() repository.DeliveryRepository {
	return NewDeliveryRepository(f.tx)
}

// PantryStaffRepo creates a new pantry staff repository instance bound to the transaction.
func (f *gormRepositoryFactory) PantryStaffRepo() repository.PantryStaffRepository {
	return NewPantryStaffRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn inside one transaction. Repositories obtained from the factory
// share it; fn returning an error or panicking rolls everything back.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
