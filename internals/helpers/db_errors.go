package helper

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// pgError extracts the SQLSTATE and constraint from pgx or lib/pq errors.
func pgError(err error) (code, constraint string, ok bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName, true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), pqErr.Constraint, true
	}
	return "", "", false
}

func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	if code, _, ok := pgError(err); ok {
		return code == pgUniqueViolation
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, pgUniqueViolation)
}

func IsForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	code, _, ok := pgError(err)
	return ok && code == pgForeignKeyViolation
}

func IsCheckViolation(err error) bool {
	code, _, ok := pgError(err)
	return ok && code == pgCheckViolation
}

// ConstraintName is empty when the driver did not report one.
func ConstraintName(err error) string {
	_, name, _ := pgError(err)
	return name
}
