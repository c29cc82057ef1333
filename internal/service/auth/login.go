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
	errUserNotFound    = domain.WithMessage(domain.ErrNotFound, "User not found")
	errInvalidPassword = domain.WithMessage(domain.ErrUnauthorized, "Invalid password")
)

// Login authenticates with a username or email plus password.
// Google-only accounts have no password and are rejected like a wrong one.
func (s *Service) Login(ctx context.Context, input LoginInput) (*TokenPair, error) {
	input.Login = strings.TrimSpace(input.Login)

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Resolve the account. Emails are stored lower-cased; usernames
	// are matched exactly.
	user, err := s.users.GetByLogin(ctx, input.Login)
	if errors.Is(err, domain.ErrNotFound) && strings.Contains(input.Login, "@") {
		user, err = s.users.GetByLogin(ctx, strings.ToLower(input.Login))
	}
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errUserNotFound
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	// Step 3: Verify password
	if !user.HasPassword() {
		return nil, errInvalidPassword
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, errInvalidPassword
	}

	// Step 4: Issue tokens
	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in via password",
		slog.String("user_id", user.ID.String()))

	return tokens, nil
}
