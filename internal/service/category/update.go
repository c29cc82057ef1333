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

// Update renames a category and optionally changes its icon.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Category, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	icon := iconOrNil(input.Icon)

	var updated *domain.Category
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Fetch old state inside transaction for accurate audit diff.
		old, err := s.categories.GetByID(txCtx, userID, input.CategoryID)
		if err != nil {
			return fmt.Errorf("get category: %w", err)
		}

		updated, err = s.categories.Update(txCtx, userID, input.CategoryID, name, icon)
		if err != nil {
			return fmt.Errorf("update category: %w", err)
		}

		changes := buildCategoryChanges(old, updated)
		if len(changes) == 0 {
			return nil
		}
		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeCategory,
			EntityID:   &input.CategoryID,
			Action:     domain.AuditActionUpdate,
			Changes:    changes,
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errCategoryNotFound
		}
		return nil, fmt.Errorf("category.Update: %w", err)
	}

	s.log.InfoContext(ctx, "category updated",
		slog.String("user_id", userID.String()),
		slog.String("category_id", input.CategoryID.String()),
	)

	return updated, nil
}

// buildCategoryChanges returns only changed fields for audit.
func buildCategoryChanges(old, updated *domain.Category) map[string]any {
	changes := make(map[string]any)
	if old.Name != updated.Name {
		changes["name"] = map[string]any{"old": old.Name, "new": updated.Name}
	}
	if old.Icon != updated.Icon {
		changes["icon"] = map[string]any{"old": old.Icon, "new": updated.Icon}
	}
	return changes
}
