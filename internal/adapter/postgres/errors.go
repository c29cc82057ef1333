package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/habits-backend/internal/domain"
)

// PostgreSQL error codes the repositories react to.
const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
	CodeCheckViolation      = "23514"
)

// MapError converts pgx/pgconn errors to domain errors, prefixed with the
// entity name and key. Context errors pass through unmapped.
func MapError(err error, entity string, key any) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %v: %w", entity, key, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", entity, key, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case CodeUniqueViolation:
			return fmt.Errorf("%s %v: %w", entity, key, &ConstraintError{Constraint: pgErr.ConstraintName, Kind: domain.ErrAlreadyExists})
		case CodeForeignKeyViolation:
			return fmt.Errorf("%s %v: %w", entity, key, &ConstraintError{Constraint: pgErr.ConstraintName, Kind: domain.ErrNotFound})
		case CodeCheckViolation:
			return fmt.Errorf("%s %v: %w", entity, key, &ConstraintError{Constraint: pgErr.ConstraintName, Kind: domain.ErrValidation})
		}
	}

	return fmt.Errorf("%s %v: %w", entity, key, err)
}

// ConstraintError reports which constraint a write violated, so callers can
// tell a duplicate username from a duplicate email.
type ConstraintError struct {
	Constraint string
	Kind       error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s (constraint %s)", e.Kind, e.Constraint)
}

func (e *ConstraintError) Unwrap() error { return e.Kind }

// ViolatedConstraint returns the constraint name carried by err, or "".
func ViolatedConstraint(err error) string {
	var ce *ConstraintError
	if errors.As(err, &ce) {
		return ce.Constraint
	}
	return ""
}
