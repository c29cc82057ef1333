package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/habits-backend/internal/domain"
)

func newCategoriesBatchFn(repo categoryRepo) dataloader.BatchFunc[uuid.UUID, []domain.Category] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.Category] {
		rows, err := repo.GetByHabitIDs(ctx, keys)
		if err != nil {
			return errorResults[[]domain.Category](len(keys), err)
		}

		grouped := make(map[uuid.UUID][]domain.Category, len(keys))
		for _, row := range rows {
			grouped[row.HabitID] = append(grouped[row.HabitID], row.Category)
		}

		return mapResults(keys, grouped, emptySlice[domain.Category])
	}
}

func newLogsBatchFn(repo logRepo) dataloader.BatchFunc[uuid.UUID, []domain.CompletionLog] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.CompletionLog] {
		logs, err := repo.GetByHabitIDs(ctx, keys)
		if err != nil {
			return errorResults[[]domain.CompletionLog](len(keys), err)
		}

		grouped := make(map[uuid.UUID][]domain.CompletionLog, len(keys))
		for _, l := range logs {
			grouped[l.HabitID] = append(grouped[l.HabitID], l)
		}

		return mapResults(keys, grouped, emptySlice[domain.CompletionLog])
	}
}

func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []uuid.UUID, grouped map[uuid.UUID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

func emptySlice[T any]() []T {
	return []T{}
}
