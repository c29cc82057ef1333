package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/habits-backend/internal/auth"
	"github.com/heartmarshall/habits-backend/internal/config"
	"github.com/heartmarshall/habits-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByLogin(ctx context.Context, login string) (*domain.User, error)
	GetByGoogleID(ctx context.Context, googleID string) (*domain.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	SetRefreshToken(ctx context.Context, id uuid.UUID, hash string, expiresAt time.Time) error
	RotateRefreshToken(ctx context.Context, oldHash, newHash string, expiresAt, now time.Time) (uuid.UUID, error)
	ClearRefreshToken(ctx context.Context, id uuid.UUID) error
	ClearExpiredRefreshTokens(ctx context.Context, now time.Time) (int, error)
	LinkGoogle(ctx context.Context, id uuid.UUID, googleID string) (*domain.User, error)
	UpdateUsername(ctx context.Context, id uuid.UUID, username string) (*domain.User, error)
	GrantQuota(ctx context.Context, email string, extraHabits, extraCategories int) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// idTokenVerifier verifies third-party identity tokens.
type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.GoogleIdentity, error)
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, error)
	GenerateRefreshToken() (raw string, hash string, err error)
}

// Service implements account and credential operations.
type Service struct {
	log    *slog.Logger
	users  userRepo
	tx     txManager
	google idTokenVerifier
	jwt    jwtManager
	cfg    config.AuthConfig
	quota  config.QuotaConfig
	clock  func() time.Time
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tx txManager,
	google idTokenVerifier,
	jwt jwtManager,
	cfg config.AuthConfig,
	quota config.QuotaConfig,
) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		users:  users,
		tx:     tx,
		google: google,
		jwt:    jwt,
		cfg:    cfg,
		quota:  quota,
		clock:  time.Now,
	}
}

// issueTokens generates an access/refresh pair for the user and stores the
// refresh token hash, replacing whatever token the user held before.
func (s *Service) issueTokens(ctx context.Context, user *domain.User) (*TokenPair, error) {
	accessToken, err := s.jwt.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	rawRefresh, hashRefresh, err := s.jwt.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	expiresAt := s.clock().Add(s.cfg.RefreshTokenTTL)
	if err := s.users.SetRefreshToken(ctx, user.ID, hashRefresh, expiresAt); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: rawRefresh,
	}, nil
}
