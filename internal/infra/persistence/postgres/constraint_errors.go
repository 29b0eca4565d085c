package postgres

import (
	"strings"

	domainerrors "hospital/internal/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes the repositories translate into domain errors.
const (
	pgCodeUniqueViolation       = "23505"
	pgCodeForeignKeyViolation   = "23503"
	pgCodeNotNullViolation      = "23502"
	pgCodeCheckViolation        = "23514"
	pgCodeInvalidTextRepr       = "22P02"
	pgCodeInvalidDatetimeFormat = "22007"
	pgCodeDatetimeFieldOverflow = "22008"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// constraintName returns the violated constraint, if the driver reported one.
func constraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}

	return ""
}

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || pgErrorCode(err) == pgCodeUniqueViolation
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) || pgErrorCode(err) == pgCodeForeignKeyViolation
}

func isNotNullConstraintViolation(err error) bool {
	return pgErrorCode(err) == pgCodeNotNullViolation
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated) || pgErrorCode(err) == pgCodeCheckViolation
}

// isInvalidInput reports values PostgreSQL could not coerce into the column type.
func isInvalidInput(err error) bool {
	switch pgErrorCode(err) {
	case pgCodeInvalidTextRepr, pgCodeInvalidDatetimeFormat, pgCodeDatetimeFieldOverflow:
		return true
	default:
		return false
	}
}

// isValidationViolation groups every error caused by bad row content rather than by the database.
func isValidationViolation(err error) bool {
	return isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) || isInvalidInput(err)
}

// validationError converts a rejected row into ErrValidationFailed naming the violated constraint.
func validationError(err error) error {
	details := constraintName(err)
	if details == "" {
		details = "invalid field value"
	}

	return domainerrors.ErrValidationFailed.WithDetails(details)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// containsPattern builds an ILIKE pattern matching s anywhere, with wildcards in s taken literally.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
