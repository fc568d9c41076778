package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes surfaced in driver error messages.
const (
	sqlStateNotNullViolation = "23502"
	sqlStateCheckViolation   = "23514"
)

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not-null constraint") ||
		strings.Contains(errMsg, sqlStateNotNullViolation)
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return strings.Contains(err.Error(), sqlStateCheckViolation)
}
