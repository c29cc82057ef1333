package habit

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/habits-backend/internal/domain"
	"sync"
)

var _ habitRepo = &habitRepoMock{}

type habitRepoMock struct {
	ArchiveFunc           func(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
	CreateFunc            func(ctx context.Context, h *domain.Habit) (*domain.Habit, error)
	DeleteArchivedFunc    func(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
	GetByIDFunc           func(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Habit, error)
	GetForUpdateFunc      func(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Habit, error)
	LinkCategoriesFunc    func(ctx context.Context, habitID uuid.UUID, categoryIDs []uuid.UUID) error
	ListFunc              func(ctx context.Context, userID uuid.UUID, active *bool) ([]domain.Habit, error)
	ReorderFunc           func(ctx context.Context, userID uuid.UUID, positions []domain.HabitPosition) error
	ReplaceCategoriesFunc func(ctx context.Context, habitID uuid.UUID, categoryIDs []uuid.UUID) error
	UnarchiveFunc         func(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
	UpdateFunc            func(ctx context.Context, userID uuid.UUID, id uuid.UUID, params domain.HabitUpdateParams) (*domain.Habit, error)
	UpdateStreaksFunc     func(ctx context.Context, id uuid.UUID, current int, best int) error

	calls struct {
		Archive []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Id     uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			H   *domain.Habit
		}
		DeleteArchived []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Id     uuid.UUID
		}
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Id     uuid.UUID
		}
		GetForUpdate []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Id     uuid.UUID
		}
		LinkCategories []struct {
			Ctx         context.Context
			HabitID     uuid.UUID
			CategoryIDs []uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Active *bool
		}
		Reorder []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			Positions []domain.HabitPosition
		}
		ReplaceCategories []struct {
			Ctx         context.Context
			HabitID     uuid.UUID
			CategoryIDs []uuid.UUID
		}
		Unarchive []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Id     uuid.UUID
		}
		Update []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Id     uuid.UUID
			Params domain.HabitUpdateParams
		}
		UpdateStreaks []struct {
			Ctx     context.Context
			Id      uuid.UUID
			Current int
			Best    int
		}
	}
	lockArchive           sync.RWMutex
	lockCreate            sync.RWMutex
	lockDeleteArchived    sync.RWMutex
	lockGetByID           sync.RWMutex
	lockGetForUpdate      sync.RWMutex
	lockLinkCategories    sync.RWMutex
	lockList              sync.RWMutex
	lockReorder           sync.RWMutex
	lockReplaceCategories sync.RWMutex
	lockUnarchive         sync.RWMutex
	lockUpdate            sync.RWMutex
	lockUpdateStreaks     sync.RWMutex
}

func (mock *habitRepoMock) Archive(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	if mock.ArchiveFunc == nil {
		panic("habitRepoMock.ArchiveFunc: method is nil but habitRepo.Archive was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Id     uuid.UUID
	}{Ctx: ctx, UserID: userID, Id: id}
	mock.lockArchive.Lock()
	mock.calls.Archive = append(mock.calls.Archive, callInfo)
	mock.lockArchive.Unlock()
	return mock.ArchiveFunc(ctx, userID, id)
}

func (mock *habitRepoMock) ArchiveCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Id     uuid.UUID
} {
	mock.lockArchive.RLock()
	calls := mock.calls.Archive
	mock.lockArchive.RUnlock()
	return calls
}

func (mock *habitRepoMock) Create(ctx context.Context, h *domain.Habit) (*domain.Habit, error) {
	if mock.CreateFunc == nil {
		panic("habitRepoMock.CreateFunc: method is nil but habitRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		H   *domain.Habit
	}{Ctx: ctx, H: h}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, h)
}

func (mock *habitRepoMock) CreateCalls() []struct {
	Ctx context.Context
	H   *domain.Habit
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *habitRepoMock) DeleteArchived(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	if mock.DeleteArchivedFunc == nil {
		panic("habitRepoMock.DeleteArchivedFunc: method is nil but habitRepo.DeleteArchived was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Id     uuid.UUID
	}{Ctx: ctx, UserID: userID, Id: id}
	mock.lockDeleteArchived.Lock()
	mock.calls.DeleteArchived = append(mock.calls.DeleteArchived, callInfo)
	mock.lockDeleteArchived.Unlock()
	return mock.DeleteArchivedFunc(ctx, userID, id)
}

func (mock *habitRepoMock) DeleteArchivedCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Id     uuid.UUID
} {
	mock.lockDeleteArchived.RLock()
	calls := mock.calls.DeleteArchived
	mock.lockDeleteArchived.RUnlock()
	return calls
}

func (mock *habitRepoMock) GetByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Habit, error) {
	if mock.GetByIDFunc == nil {
		panic("habitRepoMock.GetByIDFunc: method is nil but habitRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Id     uuid.UUID
	}{Ctx: ctx, UserID: userID, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, id)
}

func (mock *habitRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Id     uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *habitRepoMock) GetForUpdate(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Habit, error) {
	if mock.GetForUpdateFunc == nil {
		panic("habitRepoMock.GetForUpdateFunc: method is nil but habitRepo.GetForUpdate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Id     uuid.UUID
	}{Ctx: ctx, UserID: userID, Id: id}
	mock.lockGetForUpdate.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lockGetForUpdate.Unlock()
	return mock.GetForUpdateFunc(ctx, userID, id)
}

func (mock *habitRepoMock) GetForUpdateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Id     uuid.UUID
} {
	mock.lockGetForUpdate.RLock()
	calls := mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}

func (mock *habitRepoMock) LinkCategories(ctx context.Context, habitID uuid.UUID, categoryIDs []uuid.UUID) error {
	if mock.LinkCategoriesFunc == nil {
		panic("habitRepoMock.LinkCategoriesFunc: method is nil but habitRepo.LinkCategories was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		HabitID     uuid.UUID
		CategoryIDs []uuid.UUID
	}{Ctx: ctx, HabitID: habitID, CategoryIDs: categoryIDs}
	mock.lockLinkCategories.Lock()
	mock.calls.LinkCategories = append(mock.calls.LinkCategories, callInfo)
	mock.lockLinkCategories.Unlock()
	return mock.LinkCategoriesFunc(ctx, habitID, categoryIDs)
}

func (mock *habitRepoMock) LinkCategoriesCalls() []struct {
	Ctx         context.Context
	HabitID     uuid.UUID
	CategoryIDs []uuid.UUID
} {
	mock.lockLinkCategories.RLock()
	calls := mock.calls.LinkCategories
	mock.lockLinkCategories.RUnlock()
	return calls
}

func (mock *habitRepoMock) List(ctx context.Context, userID uuid.UUID, active *bool) ([]domain.Habit, error) {
	if mock.ListFunc == nil {
		panic("habitRepoMock.ListFunc: method is nil but habitRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Active *bool
	}{Ctx: ctx, UserID: userID, Active: active}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, active)
}

func (mock *habitRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Active *bool
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *habitRepoMock) Reorder(ctx context.Context, userID uuid.UUID, positions []domain.HabitPosition) error {
	if mock.ReorderFunc == nil {
		panic("habitRepoMock.ReorderFunc: method is nil but habitRepo.Reorder was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		Positions []domain.HabitPosition
	}{Ctx: ctx, UserID: userID, Positions: positions}
	mock.lockReorder.Lock()
	mock.calls.Reorder = append(mock.calls.Reorder, callInfo)
	mock.lockReorder.Unlock()
	return mock.ReorderFunc(ctx, userID, positions)
}

func (mock *habitRepoMock) ReorderCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	Positions []domain.HabitPosition
} {
	mock.lockReorder.RLock()
	calls := mock.calls.Reorder
	mock.lockReorder.RUnlock()
	return calls
}

func (mock *habitRepoMock) ReplaceCategories(ctx context.Context, habitID uuid.UUID, categoryIDs []uuid.UUID) error {
	if mock.ReplaceCategoriesFunc == nil {
		panic("habitRepoMock.ReplaceCategoriesFunc: method is nil but habitRepo.ReplaceCategories was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		HabitID     uuid.UUID
		CategoryIDs []uuid.UUID
	}{Ctx: ctx, HabitID: habitID, CategoryIDs: categoryIDs}
	mock.lockReplaceCategories.Lock()
	mock.calls.ReplaceCategories = append(mock.calls.ReplaceCategories, callInfo)
	mock.lockReplaceCategories.Unlock()
	return mock.ReplaceCategoriesFunc(ctx, habitID, categoryIDs)
}

func (mock *habitRepoMock) ReplaceCategoriesCalls() []struct {
	Ctx         context.Context
	HabitID     uuid.UUID
	CategoryIDs []uuid.UUID
} {
	mock.lockReplaceCategories.RLock()
	calls := mock.calls.ReplaceCategories
	mock.lockReplaceCategories.RUnlock()
	return calls
}

func (mock *habitRepoMock) Unarchive(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	if mock.UnarchiveFunc == nil {
		panic("habitRepoMock.UnarchiveFunc: method is nil but habitRepo.Unarchive was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Id     uuid.UUID
	}{Ctx: ctx, UserID: userID, Id: id}
	mock.lockUnarchive.Lock()
	mock.calls.Unarchive = append(mock.calls.Unarchive, callInfo)
	mock.lockUnarchive.Unlock()
	return mock.UnarchiveFunc(ctx, userID, id)
}

func (mock *habitRepoMock) UnarchiveCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Id     uuid.UUID
} {
	mock.lockUnarchive.RLock()
	calls := mock.calls.Unarchive
	mock.lockUnarchive.RUnlock()
	return calls
}

func (mock *habitRepoMock) Update(ctx context.Context, userID uuid.UUID, id uuid.UUID, params domain.HabitUpdateParams) (*domain.Habit, error) {
	if mock.UpdateFunc == nil {
		panic("habitRepoMock.UpdateFunc: method is nil but habitRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Id     uuid.UUID
		Params domain.HabitUpdateParams
	}{Ctx: ctx, UserID: userID, Id: id, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, userID, id, params)
}

func (mock *habitRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Id     uuid.UUID
	Params domain.HabitUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *habitRepoMock) UpdateStreaks(ctx context.Context, id uuid.UUID, current int, best int) error {
	if mock.UpdateStreaksFunc == nil {
		panic("habitRepoMock.UpdateStreaksFunc: method is nil but habitRepo.UpdateStreaks was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Id      uuid.UUID
		Current int
		Best    int
	}{Ctx: ctx, Id: id, Current: current, Best: best}
	mock.lockUpdateStreaks.Lock()
	mock.calls.UpdateStreaks = append(mock.calls.UpdateStreaks, callInfo)
	mock.lockUpdateStreaks.Unlock()
	return mock.UpdateStreaksFunc(ctx, id, current, best)
}

func (mock *habitRepoMock) UpdateStreaksCalls() []struct {
	Ctx     context.Context
	Id      uuid.UUID
	Current int
	Best    int
} {
	mock.lockUpdateStreaks.RLock()
	calls := mock.calls.UpdateStreaks
	mock.lockUpdateStreaks.RUnlock()
	return calls
}
