package habit

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/habits-backend/internal/domain"
)

type habitRepo interface {
	Create(ctx context.Context, h *domain.Habit) (*domain.Habit, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Habit, error)
	GetForUpdate(ctx context.Context, userID, id uuid.UUID) (*domain.Habit, error)
	List(ctx context.Context, userID uuid.UUID, active *bool) ([]domain.Habit, error)
	Update(ctx context.Context, userID, id uuid.UUID, params domain.HabitUpdateParams) (*domain.Habit, error)
	Archive(ctx context.Context, userID, id uuid.UUID) error
	Unarchive(ctx context.Context, userID, id uuid.UUID) error
	DeleteArchived(ctx context.Context, userID, id uuid.UUID) error
	UpdateStreaks(ctx context.Context, id uuid.UUID, current, best int) error
	Reorder(ctx context.Context, userID uuid.UUID, positions []domain.HabitPosition) error
	LinkCategories(ctx context.Context, habitID uuid.UUID, categoryIDs []uuid.UUID) error
	ReplaceCategories(ctx context.Context, habitID uuid.UUID, categoryIDs []uuid.UUID) error
}

type categoryRepo interface {
	ExistingIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error)
}

type logRepo interface {
	GetByHabitAndDate(ctx context.Context, habitID uuid.UUID, day time.Time) (*domain.CompletionLog, error)
	Create(ctx context.Context, habitID uuid.UUID, day time.Time) (*domain.CompletionLog, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListDates(ctx context.Context, habitID uuid.UUID) ([]time.Time, error)
}

type userRepo interface {
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.User, error)
	IncrementHabitCount(ctx context.Context, id uuid.UUID) (int, error)
	AdjustCoins(ctx context.Context, id uuid.UUID, delta int) (int, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

var (
	errHabitNotFound = domain.WithMessage(domain.ErrNotFound, "Habit not found")
	errUserNotFound  = domain.WithMessage(domain.ErrNotFound, "User not found")
	errHabitQuota    = domain.WithMessage(domain.ErrQuotaExceeded, "Reached max habit limit, buy more to create new habit")
)

// Service manages habits and their daily completion log.
type Service struct {
	habits     habitRepo
	categories categoryRepo
	logs       logRepo
	users      userRepo
	audit      auditLogger
	tx         txManager
	log        *slog.Logger
	clock      func() time.Time
}

// NewService creates a new Habit service.
func NewService(
	log *slog.Logger,
	habits habitRepo,
	categories categoryRepo,
	logs logRepo,
	users userRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		habits:     habits,
		categories: categories,
		logs:       logs,
		users:      users,
		audit:      audit,
		tx:         tx,
		log:        log.With("service", "habit"),
		clock:      time.Now,
	}
}

// checkCategories verifies that every id names a category owned by userID.
func (s *Service) checkCategories(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	existing, err := s.categories.ExistingIDs(ctx, userID, ids)
	if err != nil {
		return fmt.Errorf("check categories: %w", err)
	}

	var invalid []string
	for _, id := range ids {
		if !slices.Contains(existing, id) {
			invalid = append(invalid, id.String())
		}
	}
	if len(invalid) > 0 {
		return domain.WithMessage(domain.ErrValidation, "Invalid categories: "+strings.Join(invalid, ", "))
	}
	return nil
}

func (s *Service) logAudit(ctx context.Context, userID, habitID uuid.UUID, action domain.AuditAction, changes map[string]any) error {
	if err := s.audit.Log(ctx, domain.AuditRecord{
		UserID:     userID,
		EntityType: domain.EntityTypeHabit,
		EntityID:   &habitID,
		Action:     action,
		Changes:    changes,
	}); err != nil {
		return fmt.Errorf("audit log: %w", err)
	}
	return nil
}

// dedupe returns ids without repeats, keeping first-seen order.
func dedupe(ids []uuid.UUID) []uuid.UUID {
	if len(ids) == 0 {
		return nil
	}
	out := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
