package category

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/habits-backend/internal/domain"
)

const maxNameLength = 100

// CreateInput holds the parameters for creating a category.
type CreateInput struct {
	Name string
	Icon *string // nil or blank = default icon
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if fe := validateName(i.Name); fe != nil {
		errs = append(errs, *fe)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the parameters for updating a category. The name is
// always replaced; a nil icon keeps the current one.
type UpdateInput struct {
	CategoryID uuid.UUID
	Name       string
	Icon       *string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.CategoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "Category id is required"})
	}
	if fe := validateName(i.Name); fe != nil {
		errs = append(errs, *fe)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateName(name string) *domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return &domain.FieldError{Field: "name", Message: "Name cannot be empty"}
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return &domain.FieldError{Field: "name", Message: "Name cannot exceed 100 characters"}
	}
	return nil
}

// iconOrNil trims whitespace. Returns nil if result is empty.
func iconOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
