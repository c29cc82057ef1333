package habit

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/habits-backend/internal/domain"
	"github.com/heartmarshall/habits-backend/pkg/ctxutil"
)

// List returns the caller's active or archived habits ordered by position.
func (s *Service) List(ctx context.Context, archived bool) ([]domain.Habit, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	active := !archived
	habits, err := s.habits.List(ctx, userID, &active)
	if err != nil {
		return nil, fmt.Errorf("habit.List: %w", err)
	}
	return habits, nil
}

// Get returns one habit owned by the caller.
func (s *Service) Get(ctx context.Context, habitID uuid.UUID) (*domain.Habit, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	habit, err := s.habits.GetByID(ctx, userID, habitID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errHabitNotFound
		}
		return nil, fmt.Errorf("habit.Get: %w", err)
	}
	return habit, nil
}
