package validator

import (
	"testing"

	domainerrors "hospital/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Age       *int   `json:"age" validate:"required,min=0"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()
	age := 3
	negative := -1

	require.NoError(t, v.Validate(&sampleRequest{Email: "a@b.co", Age: &age, StartDate: "2024-01-01"}))

	err := v.Validate(&sampleRequest{Email: "nope", Age: &negative, StartDate: "01/01/2024"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "email must be a valid email address")
	assert.Contains(t, appErr.Details(), "age must be at least 0")
	assert.Contains(t, appErr.Details(), "start_date must match 2006-01-02")
}

func TestCustomValidator_RequiredPointer(t *testing.T) {
	err := New().Validate(&sampleRequest{Email: "a@b.co", StartDate: "2024-01-01"})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "age is required", appErr.Details())
}
