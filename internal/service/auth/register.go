package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/habits-backend/internal/domain"
)

var (
	errUsernameTaken = domain.WithMessage(domain.ErrConflict, "Username already exists")
	errEmailTaken    = domain.WithMessage(domain.ErrConflict, "Email already exists")
)

// Register creates a password account. No tokens are issued; the client
// logs in afterwards.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	// Normalize input before validation.
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Username = strings.TrimSpace(input.Username)

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Report which identifier is taken
	if err := s.checkAvailable(ctx, input.Username, input.Email); err != nil {
		return nil, err
	}

	// Step 3: Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}
	hashStr := string(hash)

	// Step 4: Insert. A concurrent registration can still hit the unique
	// constraints, which are resolved into the same conflict messages.
	user, err := s.users.Create(ctx, &domain.User{
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: &hashStr,
		MaxHabit:     s.quota.MaxHabits,
		CategoryMax:  s.quota.MaxCategories,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, s.conflictFor(ctx, input.Username)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered via password",
		slog.String("user_id", user.ID.String()))

	return user, nil
}

func (s *Service) checkAvailable(ctx context.Context, username, email string) error {
	taken, err := s.users.UsernameExists(ctx, username)
	if err != nil {
		return fmt.Errorf("auth.Register check username: %w", err)
	}
	if taken {
		return errUsernameTaken
	}

	_, err = s.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return errEmailTaken
	case errors.Is(err, domain.ErrNotFound):
		return nil
	default:
		return fmt.Errorf("auth.Register check email: %w", err)
	}
}

// conflictFor resolves a unique violation lost to a concurrent insert.
func (s *Service) conflictFor(ctx context.Context, username string) error {
	taken, err := s.users.UsernameExists(ctx, username)
	if err == nil && taken {
		return errUsernameTaken
	}
	return errEmailTaken
}
