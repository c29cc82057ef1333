package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/habits-backend/internal/auth"
	"github.com/heartmarshall/habits-backend/internal/domain"
)

// Refresh rotates the token pair. The presented refresh token must match the
// hash stored for its user and be unexpired. The swap is a single
// conditional update, so a token is accepted at most once even under
// concurrent use.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if refreshToken == "" {
		return nil, domain.WithMessage(domain.ErrUnauthorized, "No refresh token provided")
	}

	rawRefresh, hashRefresh, err := s.jwt.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh generate refresh token: %w", err)
	}

	now := s.clock()
	userID, err := s.users.RotateRefreshToken(ctx, auth.HashToken(refreshToken), hashRefresh, now.Add(s.cfg.RefreshTokenTTL), now)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "unknown, expired or reused refresh token presented")
			return nil, domain.WithMessage(domain.ErrForbidden, "Invalid refresh token")
		}
		return nil, fmt.Errorf("auth.Refresh rotate token: %w", err)
	}

	accessToken, err := s.jwt.GenerateAccessToken(userID)
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh generate access token: %w", err)
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: rawRefresh}, nil
}
