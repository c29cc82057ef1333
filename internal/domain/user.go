package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account owner together with the quota counters and
// reward balance that the habit and category registries maintain.
type User struct {
	ID           uuid.UUID
	Email        string
	Username     string
	PasswordHash *string // nil for Google-only accounts
	GoogleID     *string

	// RefreshTokenHash is the SHA-256 of the single active refresh token.
	RefreshTokenHash      *string
	RefreshTokenExpiresAt *time.Time

	HabitCount    int
	MaxHabit      int
	CategoryCount int
	CategoryMax   int
	Coins         int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasPassword reports whether the account can sign in with a password.
func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

// IsLoggedIn reports whether the user currently holds a refresh token.
func (u *User) IsLoggedIn() bool {
	return u.RefreshTokenHash != nil
}

// CanCreateHabit reports whether the habit quota has room left.
func (u *User) CanCreateHabit() bool {
	return u.HabitCount < u.MaxHabit
}

// CanCreateCategory reports whether the category quota has room left.
func (u *User) CanCreateCategory() bool {
	return u.CategoryCount < u.CategoryMax
}

// Quota holds the per-user limits assigned at account creation.
type Quota struct {
	MaxHabits     int
	MaxCategories int
}
