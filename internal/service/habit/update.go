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

// Update applies a partial update. When categories are supplied the
// association set is replaced after the ownership check.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Habit, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.HabitUpdateParams{
		Description: trimPtr(input.Description),
		Icon:        trimOrNil(input.Icon),
		Color:       trimOrNil(input.Color),
	}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		params.Title = &title
	}

	var updated *domain.Habit
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Fetch old state inside transaction for accurate audit diff.
		old, err := s.habits.GetForUpdate(txCtx, userID, input.HabitID)
		if err != nil {
			return fmt.Errorf("get habit: %w", err)
		}

		updated, err = s.habits.Update(txCtx, userID, input.HabitID, params)
		if err != nil {
			return fmt.Errorf("update habit: %w", err)
		}

		changes := buildHabitChanges(old, updated)

		if input.Categories != nil {
			ids := dedupe(*input.Categories)
			if err := s.checkCategories(txCtx, userID, ids); err != nil {
				return err
			}
			if err := s.habits.ReplaceCategories(txCtx, input.HabitID, ids); err != nil {
				return fmt.Errorf("replace categories: %w", err)
			}
			changes["categories"] = map[string]any{"new": ids}
		}

		if len(changes) == 0 {
			return nil
		}
		return s.logAudit(txCtx, userID, input.HabitID, domain.AuditActionUpdate, changes)
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errHabitNotFound
		}
		return nil, fmt.Errorf("habit.Update: %w", err)
	}

	s.log.InfoContext(ctx, "habit updated",
		slog.String("user_id", userID.String()),
		slog.String("habit_id", input.HabitID.String()),
	)

	return updated, nil
}

// buildHabitChanges returns only changed fields for audit.
func buildHabitChanges(old, updated *domain.Habit) map[string]any {
	changes := make(map[string]any)
	if old.Title != updated.Title {
		changes["title"] = map[string]any{"old": old.Title, "new": updated.Title}
	}
	if derefOrEmpty(old.Description) != derefOrEmpty(updated.Description) {
		changes["description"] = map[string]any{"old": old.Description, "new": updated.Description}
	}
	if old.Icon != updated.Icon {
		changes["icon"] = map[string]any{"old": old.Icon, "new": updated.Icon}
	}
	if old.Color != updated.Color {
		changes["color"] = map[string]any{"old": old.Color, "new": updated.Color}
	}
	return changes
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
