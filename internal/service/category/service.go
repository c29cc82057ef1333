package category

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/habits-backend/internal/domain"
)

type categoryRepo interface {
	Create(ctx context.Context, userID uuid.UUID, name, icon string) (*domain.Category, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Category, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.Category, error)
	Update(ctx context.Context, userID, id uuid.UUID, name string, icon *string) (*domain.Category, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type userRepo interface {
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.User, error)
	AdjustCategoryCount(ctx context.Context, id uuid.UUID, delta int) (int, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

var (
	errCategoryNotFound = domain.WithMessage(domain.ErrNotFound, "Category not found")
	errUserNotFound     = domain.WithMessage(domain.ErrNotFound, "User not found")
	errQuotaExhausted   = domain.WithMessage(domain.ErrQuotaExceeded, "Exhausted category limit")
)

// Service manages the caller's categories.
type Service struct {
	categories categoryRepo
	users      userRepo
	audit      auditLogger
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new Category service.
func NewService(
	log *slog.Logger,
	categories categoryRepo,
	users userRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		categories: categories,
		users:      users,
		audit:      audit,
		tx:         tx,
		log:        log.With("service", "category"),
	}
}
