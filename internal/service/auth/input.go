package auth

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/habits-backend/internal/domain"
)

// Username and password bounds.
const (
	MaxUsernameLength = 20
	MinPasswordLength = 8
	maxPasswordLength = 72 // bcrypt ignores bytes beyond 72
)

// RegisterInput holds parameters for password registration.
type RegisterInput struct {
	Email    string
	Username string
	Password string
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if !validEmail(i.Email) {
		errs = append(errs, domain.FieldError{Field: "email", Message: "Invalid email"})
	}

	if fe := validateUsername(i.Username, "Username is required"); fe != nil {
		errs = append(errs, *fe)
	}

	if len(i.Password) < MinPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "Password must be at least 8 characters"})
	} else if len(i.Password) > maxPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "Password cannot exceed 72 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for password login. Login is either the
// username or the email of the account.
type LoginInput struct {
	Login    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Login == "" {
		errs = append(errs, domain.FieldError{Field: "userId", Message: "Email or username is required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "Password is required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// GrantQuotaInput holds parameters for raising a user's limits.
type GrantQuotaInput struct {
	Email      string
	Habits     int
	Categories int
}

// Validate validates the grant input.
func (i GrantQuotaInput) Validate() error {
	var errs []domain.FieldError

	if !validEmail(i.Email) {
		errs = append(errs, domain.FieldError{Field: "email", Message: "Invalid email"})
	}
	if i.Habits < 0 || i.Categories < 0 {
		errs = append(errs, domain.FieldError{Field: "quota", Message: "Quota increments cannot be negative"})
	} else if i.Habits == 0 && i.Categories == 0 {
		errs = append(errs, domain.FieldError{Field: "quota", Message: "Nothing to grant"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateUsername(username, emptyMessage string) *domain.FieldError {
	switch n := utf8.RuneCountInString(username); {
	case n == 0:
		return &domain.FieldError{Field: "username", Message: emptyMessage}
	case n > MaxUsernameLength:
		return &domain.FieldError{Field: "username", Message: "Username cannot exceed 20 characters"}
	}
	return nil
}

// validEmail accepts a bare address only, rejecting display-name forms.
func validEmail(email string) bool {
	if email == "" || len(email) > 254 {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}
	_, domainPart, _ := strings.Cut(email, "@")
	return strings.Contains(domainPart, ".")
}
