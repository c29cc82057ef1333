package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/habits-backend/internal/domain"
	"github.com/heartmarshall/habits-backend/pkg/ctxutil"
)

// Logout clears the caller's stored refresh token.
func (s *Service) Logout(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.users.ClearRefreshToken(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errUserNotFound
		}
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "user logged out",
		slog.String("user_id", userID.String()))

	return nil
}

// ValidateToken checks an access token and returns the user ID it carries.
func (s *Service) ValidateToken(_ context.Context, token string) (uuid.UUID, error) {
	userID, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userID, nil
}

// CleanupExpiredTokens clears refresh tokens whose expiry has passed.
func (s *Service) CleanupExpiredTokens(ctx context.Context) (int, error) {
	count, err := s.users.ClearExpiredRefreshTokens(ctx, s.clock())
	if err != nil {
		return 0, fmt.Errorf("auth.CleanupExpiredTokens: %w", err)
	}

	if count > 0 {
		s.log.InfoContext(ctx, "expired refresh tokens cleared",
			slog.Int("count", count))
	}

	return count, nil
}
