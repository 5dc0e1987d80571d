package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "fortune/internal/errors"
)

// isUniqueConstraintError reports whether err is a unique index violation.
func isUniqueConstraintError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // SQLite
		strings.Contains(msg, "duplicate key value violates unique constraint") // PostgreSQL
}

// notFoundOr maps gorm.ErrRecordNotFound to notFound and anything else to an
// internal error.
func notFoundOr(err error, notFound *apperrors.AppError) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}
