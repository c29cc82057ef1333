package habit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/habits-backend/internal/domain"
	"github.com/heartmarshall/habits-backend/pkg/ctxutil"
)

// Create adds a habit at the end of the caller's list. The quota check, the
// category ownership check, the insert and the counter bump share one
// transaction with the user row locked.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Habit, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	habit := &domain.Habit{
		UserID:      userID,
		Title:       strings.TrimSpace(input.Title),
		Description: trimOrNil(input.Description),
		Icon:        domain.DefaultIcon,
		Color:       domain.DefaultColor,
		IsActive:    true,
	}
	if v := trimOrNil(input.Icon); v != nil {
		habit.Icon = *v
	}
	if v := trimOrNil(input.Color); v != nil {
		habit.Color = *v
	}
	categoryIDs := dedupe(input.Categories)

	var created *domain.Habit
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		user, err := s.users.GetForUpdate(txCtx, userID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return errUserNotFound
			}
			return fmt.Errorf("lock user: %w", err)
		}
		if !user.CanCreateHabit() {
			return errHabitQuota
		}

		if err := s.checkCategories(txCtx, userID, categoryIDs); err != nil {
			return err
		}

		habit.Position = user.HabitCount + 1
		created, err = s.habits.Create(txCtx, habit)
		if err != nil {
			return fmt.Errorf("create habit: %w", err)
		}

		if err := s.habits.LinkCategories(txCtx, created.ID, categoryIDs); err != nil {
			return fmt.Errorf("link categories: %w", err)
		}

		if _, err := s.users.IncrementHabitCount(txCtx, userID); err != nil {
			return fmt.Errorf("increment habit count: %w", err)
		}

		return s.logAudit(txCtx, userID, created.ID, domain.AuditActionCreate, map[string]any{
			"title":      map[string]any{"new": created.Title},
			"position":   map[string]any{"new": created.Position},
			"categories": map[string]any{"new": categoryIDs},
		})
	})
	if err != nil {
		return nil, fmt.Errorf("habit.Create: %w", err)
	}

	s.log.InfoContext(ctx, "habit created",
		slog.String("user_id", userID.String()),
		slog.String("habit_id", created.ID.String()),
		slog.Int("position", created.Position),
	)

	return created, nil
}
