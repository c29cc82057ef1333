package habit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/habits-backend/internal/domain"
	"github.com/heartmarshall/habits-backend/pkg/ctxutil"
)

// Reorder assigns new positions to the listed habits. Either every listed
// habit is moved or, when any of them is missing or foreign, none is.
func (s *Service) Reorder(ctx context.Context, input ReorderInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.habits.Reorder(txCtx, userID, input.Positions)
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errHabitNotFound
		}
		return fmt.Errorf("habit.Reorder: %w", err)
	}

	s.log.InfoContext(ctx, "habits reordered",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(input.Positions)),
	)
	return nil
}
