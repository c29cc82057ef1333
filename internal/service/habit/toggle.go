package habit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/habits-backend/internal/domain"
	"github.com/heartmarshall/habits-backend/pkg/ctxutil"
)

// maxFutureDays is how far past the current UTC day a toggle may reach, so
// callers east of UTC can complete their local today.
const maxFutureDays = 1

// Toggle flips the completion state of one habit on one day. Completing
// earns a coin and un-completing takes it back. Streaks are recomputed from
// the full log afterwards. Everything happens in one transaction with the
// habit row locked, so concurrent toggles of the same habit serialize.
func (s *Service) Toggle(ctx context.Context, input ToggleInput) (*domain.ToggleResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := s.clock()
	today := domain.DayOf(now, ctxutil.TimezoneFromCtx(ctx))
	day := today
	if input.Date != nil {
		day = domain.DayOf(*input.Date, time.UTC)
		if day.After(domain.DayOf(now, time.UTC).AddDate(0, 0, maxFutureDays)) {
			return nil, domain.NewValidationError("date", "Date cannot be in the future")
		}
	}

	result := &domain.ToggleResult{HabitID: input.HabitID, Date: day}
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		habit, err := s.habits.GetForUpdate(txCtx, userID, input.HabitID)
		if err != nil {
			return fmt.Errorf("lock habit: %w", err)
		}

		delta, err := s.flip(txCtx, habit, day)
		if err != nil {
			return err
		}
		result.Completed = delta > 0

		result.Coins, err = s.users.AdjustCoins(txCtx, userID, delta)
		if err != nil {
			return fmt.Errorf("adjust coins: %w", err)
		}

		dates, err := s.logs.ListDates(txCtx, habit.ID)
		if err != nil {
			return fmt.Errorf("list completion dates: %w", err)
		}
		current, longest := domain.ComputeStreaks(dates, today)
		best := max(habit.StreakBest, longest)

		if err := s.habits.UpdateStreaks(txCtx, habit.ID, current, best); err != nil {
			return fmt.Errorf("update streaks: %w", err)
		}
		result.StreakCurrent = current
		result.StreakBest = best
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errHabitNotFound
		}
		return nil, fmt.Errorf("habit.Toggle: %w", err)
	}

	s.log.InfoContext(ctx, "habit completion toggled",
		slog.String("user_id", userID.String()),
		slog.String("habit_id", input.HabitID.String()),
		slog.String("date", day.Format(domain.DayLayout)),
		slog.Bool("completed", result.Completed),
	)

	return result, nil
}

// flip deletes the day's log when present and creates it otherwise. It
// returns the coin delta: +1 for a new completion, -1 for a removed one.
func (s *Service) flip(ctx context.Context, habit *domain.Habit, day time.Time) (int, error) {
	existing, err := s.logs.GetByHabitAndDate(ctx, habit.ID, day)
	switch {
	case err == nil:
		if err := s.logs.Delete(ctx, existing.ID); err != nil {
			return 0, fmt.Errorf("delete completion: %w", err)
		}
		return -1, nil
	case errors.Is(err, domain.ErrNotFound):
		if _, err := s.logs.Create(ctx, habit.ID, day); err != nil {
			return 0, fmt.Errorf("create completion: %w", err)
		}
		return 1, nil
	default:
		return 0, fmt.Errorf("get completion: %w", err)
	}
}
