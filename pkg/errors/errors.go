// Package errors classifies driver errors so services can react to
// constraint violations without importing a specific database driver.
package errors

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgExclusionViolation  = "23P01"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsUniqueViolation duplicate key on either driver (gorm TranslateError must be on).
func IsUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || pgCode(err) == pgUniqueViolation
}

// IsForeignKeyViolation referenced row missing or still referenced.
func IsForeignKeyViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) || pgCode(err) == pgForeignKeyViolation
}

// IsCheckViolation a CHECK constraint rejected the row.
func IsCheckViolation(err error) bool {
	if pgCode(err) == pgCheckViolation {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "CHECK constraint failed")
}

// IsExclusionViolation the schedules no-overlap constraint fired. PostgreSQL only.
func IsExclusionViolation(err error) bool {
	return pgCode(err) == pgExclusionViolation
}
