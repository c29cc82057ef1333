package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/heartmarshall/habits-backend/internal/auth"
	"github.com/heartmarshall/habits-backend/internal/domain"
)

// maxUsernameAttempts bounds the numeric suffix search for a free username.
const maxUsernameAttempts = 1000

// GoogleSignIn verifies a Google ID token and signs the user in, creating an
// account on first use. An existing password account with the same verified
// email is linked to the Google identity instead of duplicated.
func (s *Service) GoogleSignIn(ctx context.Context, idToken string) (*SignInResult, error) {
	idToken = strings.TrimSpace(idToken)
	if idToken == "" {
		return nil, domain.WithMessage(domain.ErrValidation, "Token is required")
	}

	// Step 1: Verify the token with Google's keys
	identity, err := s.google.VerifyIDToken(ctx, idToken)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidIDToken) {
			return nil, domain.WithMessage(domain.ErrValidation, "Invalid Google Token")
		}
		return nil, fmt.Errorf("auth.GoogleSignIn verify: %w", err)
	}

	// Step 2: Resolve or create the account
	var (
		user    *domain.User
		created bool
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		user, created, err = s.resolveGoogleUser(txCtx, identity)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("auth.GoogleSignIn: %w", err)
	}

	// Step 3: Issue tokens
	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.GoogleSignIn issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user signed in via google",
		slog.String("user_id", user.ID.String()),
		slog.Bool("created", created))

	return &SignInResult{Tokens: tokens, Created: created}, nil
}

func (s *Service) resolveGoogleUser(ctx context.Context, identity *auth.GoogleIdentity) (*domain.User, bool, error) {
	user, err := s.users.GetByGoogleID(ctx, identity.Subject)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, fmt.Errorf("get by google id: %w", err)
	}

	email := strings.ToLower(strings.TrimSpace(identity.Email))

	existing, err := s.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if !identity.EmailVerified || existing.GoogleID != nil {
			return nil, false, errEmailTaken
		}
		linked, err := s.users.LinkGoogle(ctx, existing.ID, identity.Subject)
		if err != nil {
			return nil, false, fmt.Errorf("link google: %w", err)
		}
		s.log.InfoContext(ctx, "google identity linked to existing account",
			slog.String("user_id", linked.ID.String()))
		return linked, false, nil
	case !errors.Is(err, domain.ErrNotFound):
		return nil, false, fmt.Errorf("get by email: %w", err)
	}

	username, err := s.freeUsername(ctx, usernameBase(identity.Name, email))
	if err != nil {
		return nil, false, err
	}

	googleID := identity.Subject
	user, err = s.users.Create(ctx, &domain.User{
		Email:       email,
		Username:    username,
		GoogleID:    &googleID,
		MaxHabit:    s.quota.MaxHabits,
		CategoryMax: s.quota.MaxCategories,
	})
	if err != nil {
		return nil, false, fmt.Errorf("create user: %w", err)
	}
	return user, true, nil
}

// freeUsername returns base if unused, otherwise base1, base2, ... cut so
// the result never exceeds the username limit.
func (s *Service) freeUsername(ctx context.Context, base string) (string, error) {
	for n := 0; n < maxUsernameAttempts; n++ {
		candidate := base
		if n > 0 {
			suffix := strconv.Itoa(n)
			candidate = truncateRunes(base, MaxUsernameLength-len(suffix)) + suffix
		}

		taken, err := s.users.UsernameExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check username: %w", err)
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no free username for %q after %d attempts", base, maxUsernameAttempts)
}

// usernameBase derives a username from the Google display name, falling
// back to the local part of the email.
func usernameBase(name, email string) string {
	base := strings.TrimSpace(name)
	if base == "" {
		base, _, _ = strings.Cut(email, "@")
	}
	if base == "" {
		base = "user"
	}
	return truncateRunes(base, MaxUsernameLength)
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
