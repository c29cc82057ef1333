package habit

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/habits-backend/internal/domain"
	"sync"
	"time"
)

var _ logRepo = &logRepoMock{}

type logRepoMock struct {
	CreateFunc            func(ctx context.Context, habitID uuid.UUID, day time.Time) (*domain.CompletionLog, error)
	DeleteFunc            func(ctx context.Context, id uuid.UUID) error
	GetByHabitAndDateFunc func(ctx context.Context, habitID uuid.UUID, day time.Time) (*domain.CompletionLog, error)
	ListDatesFunc         func(ctx context.Context, habitID uuid.UUID) ([]time.Time, error)

	calls struct {
		Create []struct {
			Ctx     context.Context
			HabitID uuid.UUID
			Day     time.Time
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetByHabitAndDate []struct {
			Ctx     context.Context
			HabitID uuid.UUID
			Day     time.Time
		}
		ListDates []struct {
			Ctx     context.Context
			HabitID uuid.UUID
		}
	}
	lockCreate            sync.RWMutex
	lockDelete            sync.RWMutex
	lockGetByHabitAndDate sync.RWMutex
	lockListDates         sync.RWMutex
}

func (mock *logRepoMock) Create(ctx context.Context, habitID uuid.UUID, day time.Time) (*domain.CompletionLog, error) {
	if mock.CreateFunc == nil {
		panic("logRepoMock.CreateFunc: method is nil but logRepo.Create was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		HabitID uuid.UUID
		Day     time.Time
	}{Ctx: ctx, HabitID: habitID, Day: day}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, habitID, day)
}

func (mock *logRepoMock) CreateCalls() []struct {
	Ctx     context.Context
	HabitID uuid.UUID
	Day     time.Time
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *logRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("logRepoMock.DeleteFunc: method is nil but logRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *logRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *logRepoMock) GetByHabitAndDate(ctx context.Context, habitID uuid.UUID, day time.Time) (*domain.CompletionLog, error) {
	if mock.GetByHabitAndDateFunc == nil {
		panic("logRepoMock.GetByHabitAndDateFunc: method is nil but logRepo.GetByHabitAndDate was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		HabitID uuid.UUID
		Day     time.Time
	}{Ctx: ctx, HabitID: habitID, Day: day}
	mock.lockGetByHabitAndDate.Lock()
	mock.calls.GetByHabitAndDate = append(mock.calls.GetByHabitAndDate, callInfo)
	mock.lockGetByHabitAndDate.Unlock()
	return mock.GetByHabitAndDateFunc(ctx, habitID, day)
}

func (mock *logRepoMock) GetByHabitAndDateCalls() []struct {
	Ctx     context.Context
	HabitID uuid.UUID
	Day     time.Time
} {
	mock.lockGetByHabitAndDate.RLock()
	calls := mock.calls.GetByHabitAndDate
	mock.lockGetByHabitAndDate.RUnlock()
	return calls
}

func (mock *logRepoMock) ListDates(ctx context.Context, habitID uuid.UUID) ([]time.Time, error) {
	if mock.ListDatesFunc == nil {
		panic("logRepoMock.ListDatesFunc: method is nil but logRepo.ListDates was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		HabitID uuid.UUID
	}{Ctx: ctx, HabitID: habitID}
	mock.lockListDates.Lock()
	mock.calls.ListDates = append(mock.calls.ListDates, callInfo)
	mock.lockListDates.Unlock()
	return mock.ListDatesFunc(ctx, habitID)
}

func (mock *logRepoMock) ListDatesCalls() []struct {
	Ctx     context.Context
	HabitID uuid.UUID
} {
	mock.lockListDates.RLock()
	calls := mock.calls.ListDates
	mock.lockListDates.RUnlock()
	return calls
}
