package habit

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/habits-backend/internal/domain"
)

const (
	maxTitleLength       = 100
	maxDescriptionLength = 500
)

// CreateInput holds the parameters for creating a habit.
type CreateInput struct {
	Title       string
	Description *string
	Icon        *string // nil or blank = default icon
	Color       *string // nil or blank = default color
	Categories  []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if fe := validateTitle(i.Title); fe != nil {
		errs = append(errs, *fe)
	}
	if fe := validateDescription(i.Description); fe != nil {
		errs = append(errs, *fe)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the parameters for updating a habit. Nil fields are left
// unchanged. A non-nil Categories replaces the whole association set.
type UpdateInput struct {
	HabitID     uuid.UUID
	Title       *string
	Description *string
	Icon        *string
	Color       *string
	Categories  *[]uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.HabitID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "Habit id is required"})
	}
	if i.Title != nil {
		if fe := validateTitle(*i.Title); fe != nil {
			errs = append(errs, *fe)
		}
	}
	if fe := validateDescription(i.Description); fe != nil {
		errs = append(errs, *fe)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ReorderInput carries the new positions of some of the caller's habits.
type ReorderInput struct {
	Positions []domain.HabitPosition
}

// Validate checks all fields and collects all errors.
func (i ReorderInput) Validate() error {
	if len(i.Positions) == 0 {
		return domain.NewValidationError("habits", "Habits list cannot be empty")
	}

	seen := make(map[uuid.UUID]struct{}, len(i.Positions))
	for _, p := range i.Positions {
		if p.ID == uuid.Nil {
			return domain.NewValidationError("id", "Habit id is required")
		}
		if p.Position < 1 {
			return domain.NewValidationError("position", "Position must be a positive integer")
		}
		if _, dup := seen[p.ID]; dup {
			return domain.NewValidationError("id", "Duplicate habit id "+p.ID.String())
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}

// ToggleInput identifies the habit and day to flip. A nil Date means the
// caller's current day.
type ToggleInput struct {
	HabitID uuid.UUID
	Date    *time.Time
}

func validateTitle(title string) *domain.FieldError {
	title = strings.TrimSpace(title)
	if title == "" {
		return &domain.FieldError{Field: "title", Message: "Title cannot be empty"}
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return &domain.FieldError{Field: "title", Message: "Title cannot exceed 100 characters"}
	}
	return nil
}

func validateDescription(desc *string) *domain.FieldError {
	if desc != nil && utf8.RuneCountInString(strings.TrimSpace(*desc)) > maxDescriptionLength {
		return &domain.FieldError{Field: "description", Message: "Description cannot exceed 500 characters"}
	}
	return nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
