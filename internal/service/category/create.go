package category

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/habits-backend/internal/domain"
	"github.com/heartmarshall/habits-backend/pkg/ctxutil"
)

// Create adds a category for the authenticated user. The user row is locked
// for the quota check so concurrent creates cannot overshoot the limit.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Category, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	icon := domain.DefaultIcon
	if v := iconOrNil(input.Icon); v != nil {
		icon = *v
	}

	var category *domain.Category
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		user, err := s.users.GetForUpdate(txCtx, userID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return errUserNotFound
			}
			return fmt.Errorf("lock user: %w", err)
		}
		if !user.CanCreateCategory() {
			return errQuotaExhausted
		}

		category, err = s.categories.Create(txCtx, userID, name, icon)
		if err != nil {
			return fmt.Errorf("create category: %w", err)
		}

		if _, err := s.users.AdjustCategoryCount(txCtx, userID, 1); err != nil {
			return fmt.Errorf("increment category count: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeCategory,
			EntityID:   &category.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"name": map[string]any{"new": name},
				"icon": map[string]any{"new": icon},
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("category.Create: %w", err)
	}

	s.log.InfoContext(ctx, "category created",
		slog.String("user_id", userID.String()),
		slog.String("category_id", category.ID.String()),
	)

	return category, nil
}
