package category

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/habits-backend/internal/domain"
	"github.com/heartmarshall/habits-backend/pkg/ctxutil"
)

// Delete removes a category, unlinks it from every habit and frees one slot
// of the category quota.
func (s *Service) Delete(ctx context.Context, categoryID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	var name string
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		category, err := s.categories.GetByID(txCtx, userID, categoryID)
		if err != nil {
			return fmt.Errorf("get category: %w", err)
		}
		name = category.Name

		if err := s.categories.Delete(txCtx, userID, categoryID); err != nil {
			return fmt.Errorf("delete category: %w", err)
		}

		if _, err := s.users.AdjustCategoryCount(txCtx, userID, -1); err != nil {
			return fmt.Errorf("decrement category count: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeCategory,
			EntityID:   &categoryID,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"name": map[string]any{"old": name},
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errCategoryNotFound
		}
		return fmt.Errorf("category.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "category deleted",
		slog.String("user_id", userID.String()),
		slog.String("category_id", categoryID.String()),
		slog.String("name", name),
	)

	return nil
}
