package postgres

import (
	"context"
	"testing"
	"time"

	"hospital/internal/domain/entity"
	domainerrors "hospital/internal/domain/errors"
	"hospital/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryRepository_Create_UnknownPatient(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeliveryRepository(db)

	mock.ExpectQuery(`INSERT INTO "deliveries"`).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "deliveries_patient_id_fkey"})

	err := repo.Create(context.Background(), &entity.Delivery{
		PatientID:      uuid.New(),
		MealBoxDetails: "box",
		AssignedTo:     "driver-1",
		Status:         entity.DeliveryStatusPending,
		Timestamp:      time.Now(),
	})
	assert.ErrorIs(t, err, repository.ErrPatientNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeliveryRepository_UpdateStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeliveryRepository(db)

	id := uuid.New()
	mock.ExpectExec(`UPDATE "deliveries" SET "delivery_status"=\$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateStatus(context.Background(), id, entity.DeliveryStatusDelivered))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeliveryRepository_UpdateStatus_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeliveryRepository(db)

	mock.ExpectExec(`UPDATE "deliveries" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), uuid.New(), entity.DeliveryStatusFailed)
	assert.ErrorIs(t, err, repository.ErrDeliveryNotFound)
}

func TestDeliveryRepository_UpdateStatus_CheckViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeliveryRepository(db)

	mock.ExpectExec(`UPDATE "deliveries" SET`).
		WillReturnError(&pgconn.PgError{Code: "23514"})

	err := repo.UpdateStatus(context.Background(), uuid.New(), entity.DeliveryStatus("Lost"))
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidDeliveryStatus))
}

func TestDeliveryRepository_List_ByStatusCountsWithoutJoin(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeliveryRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "deliveries" WHERE deliveries.delivery_status = \$1`).
		WithArgs("Pending").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	deliveries, total, err := repo.List(context.Background(),
		repository.DeliveryFilter{Status: entity.DeliveryStatusPending},
		entity.Pagination{Limit: 10})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, deliveries)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeliveryRepository_Delete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeliveryRepository(db)

	mock.ExpectExec(`DELETE FROM "deliveries"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), uuid.New()), repository.ErrDeliveryNotFound)
}
