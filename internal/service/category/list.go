package category

import (
	"context"
	"fmt"

	"github.com/heartmarshall/habits-backend/internal/domain"
	"github.com/heartmarshall/habits-backend/pkg/ctxutil"
)

// List returns all categories of the authenticated user, oldest first.
func (s *Service) List(ctx context.Context) ([]domain.Category, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	categories, err := s.categories.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("category.List: %w", err)
	}
	return categories, nil
}
