package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/habits-backend/internal/domain"
	"github.com/heartmarshall/habits-backend/pkg/ctxutil"
)

// GetUserDetails returns the caller's profile. A user who has logged out
// (no stored refresh token) is reported as not found.
func (s *Service) GetUserDetails(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errUserNotFound
		}
		return nil, fmt.Errorf("auth.GetUserDetails: %w", err)
	}
	if !user.IsLoggedIn() {
		return nil, errUserNotFound
	}

	return user, nil
}

// DeleteAccount removes the caller together with all owned data.
func (s *Service) DeleteAccount(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.users.Delete(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errUserNotFound
		}
		return fmt.Errorf("auth.DeleteAccount: %w", err)
	}

	s.log.InfoContext(ctx, "account deleted",
		slog.String("user_id", userID.String()))

	return nil
}

// UpdateUsername renames the caller.
func (s *Service) UpdateUsername(ctx context.Context, username string) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	username = strings.TrimSpace(username)
	if fe := validateUsername(username, "Username cannot be empty"); fe != nil {
		return nil, domain.NewValidationError(fe.Field, fe.Message)
	}

	user, err := s.users.UpdateUsername(ctx, userID, username)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyExists):
			return nil, errUsernameTaken
		case errors.Is(err, domain.ErrNotFound):
			return nil, errUserNotFound
		}
		return nil, fmt.Errorf("auth.UpdateUsername: %w", err)
	}

	s.log.InfoContext(ctx, "username updated",
		slog.String("user_id", userID.String()))

	return user, nil
}

// GrantQuota raises the habit and category limits of the account with the
// given email.
func (s *Service) GrantQuota(ctx context.Context, input GrantQuotaInput) (*domain.User, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GrantQuota(ctx, input.Email, input.Habits, input.Categories)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errUserNotFound
		}
		return nil, fmt.Errorf("auth.GrantQuota: %w", err)
	}

	s.log.InfoContext(ctx, "quota granted",
		slog.String("user_id", user.ID.String()),
		slog.Int("max_habit", user.MaxHabit),
		slog.Int("category_max", user.CategoryMax))

	return user, nil
}
