package habit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/habits-backend/internal/domain"
	"github.com/heartmarshall/habits-backend/pkg/ctxutil"
)

// Archive hides a habit from the active list. Archiving an archived habit
// is a no-op that still succeeds.
func (s *Service) Archive(ctx context.Context, habitID uuid.UUID) error {
	return s.mutate(ctx, "habit.Archive", "habit archived", habitID, func(txCtx context.Context, userID uuid.UUID) error {
		if err := s.habits.Archive(txCtx, userID, habitID); err != nil {
			return err
		}
		return s.logAudit(txCtx, userID, habitID, domain.AuditActionUpdate, map[string]any{
			"is_active": map[string]any{"new": false},
		})
	})
}

// Unarchive returns an archived habit to the active list. Active habits are
// reported as not found.
func (s *Service) Unarchive(ctx context.Context, habitID uuid.UUID) error {
	return s.mutate(ctx, "habit.Unarchive", "habit unarchived", habitID, func(txCtx context.Context, userID uuid.UUID) error {
		if err := s.habits.Unarchive(txCtx, userID, habitID); err != nil {
			return err
		}
		return s.logAudit(txCtx, userID, habitID, domain.AuditActionUpdate, map[string]any{
			"is_active": map[string]any{"old": false, "new": true},
		})
	})
}

// Delete removes an archived habit with its logs and category links. The
// habit count is left as is since positions are never reused.
func (s *Service) Delete(ctx context.Context, habitID uuid.UUID) error {
	return s.mutate(ctx, "habit.Delete", "habit deleted", habitID, func(txCtx context.Context, userID uuid.UUID) error {
		if err := s.habits.DeleteArchived(txCtx, userID, habitID); err != nil {
			return err
		}
		return s.logAudit(txCtx, userID, habitID, domain.AuditActionDelete, nil)
	})
}

// mutate runs fn for the caller inside a transaction and maps a missing or
// foreign habit to the client-facing not-found error.
func (s *Service) mutate(
	ctx context.Context,
	op, logMsg string,
	habitID uuid.UUID,
	fn func(txCtx context.Context, userID uuid.UUID) error,
) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return fn(txCtx, userID)
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errHabitNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.InfoContext(ctx, logMsg,
		slog.String("user_id", userID.String()),
		slog.String("habit_id", habitID.String()),
	)
	return nil
}
