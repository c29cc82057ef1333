// Package dataloader provides per-request DataLoaders that batch the
// category and completion lookups of a habit list into single SQL calls.
// Loaders call repositories directly; the habit IDs they receive come from
// owner-scoped queries.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/habits-backend/internal/adapter/postgres/category"
	"github.com/heartmarshall/habits-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type categoryRepo interface {
	GetByHabitIDs(ctx context.Context, habitIDs []uuid.UUID) ([]category.CategoryWithHabitID, error)
}

type logRepo interface {
	GetByHabitIDs(ctx context.Context, habitIDs []uuid.UUID) ([]domain.CompletionLog, error)
}

// Repos holds the repositories required by the loaders.
type Repos struct {
	Category categoryRepo
	Log      logRepo
}

// Loaders is created per request via NewLoaders; results are cached for
// the lifetime of that request only.
type Loaders struct {
	CategoriesByHabitID *dataloader.Loader[uuid.UUID, []domain.Category]
	LogsByHabitID       *dataloader.Loader[uuid.UUID, []domain.CompletionLog]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		CategoriesByHabitID: newLoader(newCategoriesBatchFn(repos.Category)),
		LogsByHabitID:       newLoader(newLogsBatchFn(repos.Log)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is the middleware configured?")
	}
	return l
}
