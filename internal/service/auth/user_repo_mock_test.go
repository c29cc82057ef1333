package auth

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/habits-backend/internal/domain"
	"sync"
	"time"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	ClearExpiredRefreshTokensFunc func(ctx context.Context, now time.Time) (int, error)
	ClearRefreshTokenFunc         func(ctx context.Context, id uuid.UUID) error
	CreateFunc                    func(ctx context.Context, user *domain.User) (*domain.User, error)
	DeleteFunc                    func(ctx context.Context, id uuid.UUID) error
	GetByEmailFunc                func(ctx context.Context, email string) (*domain.User, error)
	GetByGoogleIDFunc             func(ctx context.Context, googleID string) (*domain.User, error)
	GetByIDFunc                   func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByLoginFunc                func(ctx context.Context, login string) (*domain.User, error)
	GrantQuotaFunc                func(ctx context.Context, email string, extraHabits int, extraCategories int) (*domain.User, error)
	LinkGoogleFunc                func(ctx context.Context, id uuid.UUID, googleID string) (*domain.User, error)
	RotateRefreshTokenFunc        func(ctx context.Context, oldHash string, newHash string, expiresAt time.Time, now time.Time) (uuid.UUID, error)
	SetRefreshTokenFunc           func(ctx context.Context, id uuid.UUID, hash string, expiresAt time.Time) error
	UpdateUsernameFunc            func(ctx context.Context, id uuid.UUID, username string) (*domain.User, error)
	UsernameExistsFunc            func(ctx context.Context, username string) (bool, error)

	calls struct {
		ClearExpiredRefreshTokens []struct {
			Ctx context.Context
			Now time.Time
		}
		ClearRefreshToken []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Create []struct {
			Ctx  context.Context
			User *domain.User
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
		GetByGoogleID []struct {
			Ctx      context.Context
			GoogleID string
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetByLogin []struct {
			Ctx   context.Context
			Login string
		}
		GrantQuota []struct {
			Ctx             context.Context
			Email           string
			ExtraHabits     int
			ExtraCategories int
		}
		LinkGoogle []struct {
			Ctx      context.Context
			Id       uuid.UUID
			GoogleID string
		}
		RotateRefreshToken []struct {
			Ctx       context.Context
			OldHash   string
			NewHash   string
			ExpiresAt time.Time
			Now       time.Time
		}
		SetRefreshToken []struct {
			Ctx       context.Context
			Id        uuid.UUID
			Hash      string
			ExpiresAt time.Time
		}
		UpdateUsername []struct {
			Ctx      context.Context
			Id       uuid.UUID
			Username string
		}
		UsernameExists []struct {
			Ctx      context.Context
			Username string
		}
	}
	lockClearExpiredRefreshTokens sync.RWMutex
	lockClearRefreshToken         sync.RWMutex
	lockCreate                    sync.RWMutex
	lockDelete                    sync.RWMutex
	lockGetByEmail                sync.RWMutex
	lockGetByGoogleID             sync.RWMutex
	lockGetByID                   sync.RWMutex
	lockGetByLogin                sync.RWMutex
	lockGrantQuota                sync.RWMutex
	lockLinkGoogle                sync.RWMutex
	lockRotateRefreshToken        sync.RWMutex
	lockSetRefreshToken           sync.RWMutex
	lockUpdateUsername            sync.RWMutex
	lockUsernameExists            sync.RWMutex
}

func (mock *userRepoMock) ClearExpiredRefreshTokens(ctx context.Context, now time.Time) (int, error) {
	if mock.ClearExpiredRefreshTokensFunc == nil {
		panic("userRepoMock.ClearExpiredRefreshTokensFunc: method is nil but userRepo.ClearExpiredRefreshTokens was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Now time.Time
	}{Ctx: ctx, Now: now}
	mock.lockClearExpiredRefreshTokens.Lock()
	mock.calls.ClearExpiredRefreshTokens = append(mock.calls.ClearExpiredRefreshTokens, callInfo)
	mock.lockClearExpiredRefreshTokens.Unlock()
	return mock.ClearExpiredRefreshTokensFunc(ctx, now)
}

func (mock *userRepoMock) ClearExpiredRefreshTokensCalls() []struct {
	Ctx context.Context
	Now time.Time
} {
	mock.lockClearExpiredRefreshTokens.RLock()
	calls := mock.calls.ClearExpiredRefreshTokens
	mock.lockClearExpiredRefreshTokens.RUnlock()
	return calls
}

func (mock *userRepoMock) ClearRefreshToken(ctx context.Context, id uuid.UUID) error {
	if mock.ClearRefreshTokenFunc == nil {
		panic("userRepoMock.ClearRefreshTokenFunc: method is nil but userRepo.ClearRefreshToken was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockClearRefreshToken.Lock()
	mock.calls.ClearRefreshToken = append(mock.calls.ClearRefreshToken, callInfo)
	mock.lockClearRefreshToken.Unlock()
	return mock.ClearRefreshTokenFunc(ctx, id)
}

func (mock *userRepoMock) ClearRefreshTokenCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockClearRefreshToken.RLock()
	calls := mock.calls.ClearRefreshToken
	mock.lockClearRefreshToken.RUnlock()
	return calls
}

func (mock *userRepoMock) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		User *domain.User
	}{Ctx: ctx, User: user}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, user)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	User *domain.User
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("userRepoMock.DeleteFunc: method is nil but userRepo.Delete was just called")
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

func (mock *userRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userRepoMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockGetByEmail.RLock()
	calls := mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	if mock.GetByGoogleIDFunc == nil {
		panic("userRepoMock.GetByGoogleIDFunc: method is nil but userRepo.GetByGoogleID was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		GoogleID string
	}{Ctx: ctx, GoogleID: googleID}
	mock.lockGetByGoogleID.Lock()
	mock.calls.GetByGoogleID = append(mock.calls.GetByGoogleID, callInfo)
	mock.lockGetByGoogleID.Unlock()
	return mock.GetByGoogleIDFunc(ctx, googleID)
}

func (mock *userRepoMock) GetByGoogleIDCalls() []struct {
	Ctx      context.Context
	GoogleID string
} {
	mock.lockGetByGoogleID.RLock()
	calls := mock.calls.GetByGoogleID
	mock.lockGetByGoogleID.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByLogin(ctx context.Context, login string) (*domain.User, error) {
	if mock.GetByLoginFunc == nil {
		panic("userRepoMock.GetByLoginFunc: method is nil but userRepo.GetByLogin was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Login string
	}{Ctx: ctx, Login: login}
	mock.lockGetByLogin.Lock()
	mock.calls.GetByLogin = append(mock.calls.GetByLogin, callInfo)
	mock.lockGetByLogin.Unlock()
	return mock.GetByLoginFunc(ctx, login)
}

func (mock *userRepoMock) GetByLoginCalls() []struct {
	Ctx   context.Context
	Login string
} {
	mock.lockGetByLogin.RLock()
	calls := mock.calls.GetByLogin
	mock.lockGetByLogin.RUnlock()
	return calls
}

func (mock *userRepoMock) GrantQuota(ctx context.Context, email string, extraHabits int, extraCategories int) (*domain.User, error) {
	if mock.GrantQuotaFunc == nil {
		panic("userRepoMock.GrantQuotaFunc: method is nil but userRepo.GrantQuota was just called")
	}
	callInfo := struct {
		Ctx             context.Context
		Email           string
		ExtraHabits     int
		ExtraCategories int
	}{Ctx: ctx, Email: email, ExtraHabits: extraHabits, ExtraCategories: extraCategories}
	mock.lockGrantQuota.Lock()
	mock.calls.GrantQuota = append(mock.calls.GrantQuota, callInfo)
	mock.lockGrantQuota.Unlock()
	return mock.GrantQuotaFunc(ctx, email, extraHabits, extraCategories)
}

func (mock *userRepoMock) GrantQuotaCalls() []struct {
	Ctx             context.Context
	Email           string
	ExtraHabits     int
	ExtraCategories int
} {
	mock.lockGrantQuota.RLock()
	calls := mock.calls.GrantQuota
	mock.lockGrantQuota.RUnlock()
	return calls
}

func (mock *userRepoMock) LinkGoogle(ctx context.Context, id uuid.UUID, googleID string) (*domain.User, error) {
	if mock.LinkGoogleFunc == nil {
		panic("userRepoMock.LinkGoogleFunc: method is nil but userRepo.LinkGoogle was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Id       uuid.UUID
		GoogleID string
	}{Ctx: ctx, Id: id, GoogleID: googleID}
	mock.lockLinkGoogle.Lock()
	mock.calls.LinkGoogle = append(mock.calls.LinkGoogle, callInfo)
	mock.lockLinkGoogle.Unlock()
	return mock.LinkGoogleFunc(ctx, id, googleID)
}

func (mock *userRepoMock) LinkGoogleCalls() []struct {
	Ctx      context.Context
	Id       uuid.UUID
	GoogleID string
} {
	mock.lockLinkGoogle.RLock()
	calls := mock.calls.LinkGoogle
	mock.lockLinkGoogle.RUnlock()
	return calls
}

func (mock *userRepoMock) RotateRefreshToken(ctx context.Context, oldHash string, newHash string, expiresAt time.Time, now time.Time) (uuid.UUID, error) {
	if mock.RotateRefreshTokenFunc == nil {
		panic("userRepoMock.RotateRefreshTokenFunc: method is nil but userRepo.RotateRefreshToken was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		OldHash   string
		NewHash   string
		ExpiresAt time.Time
		Now       time.Time
	}{Ctx: ctx, OldHash: oldHash, NewHash: newHash, ExpiresAt: expiresAt, Now: now}
	mock.lockRotateRefreshToken.Lock()
	mock.calls.RotateRefreshToken = append(mock.calls.RotateRefreshToken, callInfo)
	mock.lockRotateRefreshToken.Unlock()
	return mock.RotateRefreshTokenFunc(ctx, oldHash, newHash, expiresAt, now)
}

func (mock *userRepoMock) RotateRefreshTokenCalls() []struct {
	Ctx       context.Context
	OldHash   string
	NewHash   string
	ExpiresAt time.Time
	Now       time.Time
} {
	mock.lockRotateRefreshToken.RLock()
	calls := mock.calls.RotateRefreshToken
	mock.lockRotateRefreshToken.RUnlock()
	return calls
}

func (mock *userRepoMock) SetRefreshToken(ctx context.Context, id uuid.UUID, hash string, expiresAt time.Time) error {
	if mock.SetRefreshTokenFunc == nil {
		panic("userRepoMock.SetRefreshTokenFunc: method is nil but userRepo.SetRefreshToken was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Id        uuid.UUID
		Hash      string
		ExpiresAt time.Time
	}{Ctx: ctx, Id: id, Hash: hash, ExpiresAt: expiresAt}
	mock.lockSetRefreshToken.Lock()
	mock.calls.SetRefreshToken = append(mock.calls.SetRefreshToken, callInfo)
	mock.lockSetRefreshToken.Unlock()
	return mock.SetRefreshTokenFunc(ctx, id, hash, expiresAt)
}

func (mock *userRepoMock) SetRefreshTokenCalls() []struct {
	Ctx       context.Context
	Id        uuid.UUID
	Hash      string
	ExpiresAt time.Time
} {
	mock.lockSetRefreshToken.RLock()
	calls := mock.calls.SetRefreshToken
	mock.lockSetRefreshToken.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdateUsername(ctx context.Context, id uuid.UUID, username string) (*domain.User, error) {
	if mock.UpdateUsernameFunc == nil {
		panic("userRepoMock.UpdateUsernameFunc: method is nil but userRepo.UpdateUsername was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Id       uuid.UUID
		Username string
	}{Ctx: ctx, Id: id, Username: username}
	mock.lockUpdateUsername.Lock()
	mock.calls.UpdateUsername = append(mock.calls.UpdateUsername, callInfo)
	mock.lockUpdateUsername.Unlock()
	return mock.UpdateUsernameFunc(ctx, id, username)
}

func (mock *userRepoMock) UpdateUsernameCalls() []struct {
	Ctx      context.Context
	Id       uuid.UUID
	Username string
} {
	mock.lockUpdateUsername.RLock()
	calls := mock.calls.UpdateUsername
	mock.lockUpdateUsername.RUnlock()
	return calls
}

func (mock *userRepoMock) UsernameExists(ctx context.Context, username string) (bool, error) {
	if mock.UsernameExistsFunc == nil {
		panic("userRepoMock.UsernameExistsFunc: method is nil but userRepo.UsernameExists was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{Ctx: ctx, Username: username}
	mock.lockUsernameExists.Lock()
	mock.calls.UsernameExists = append(mock.calls.UsernameExists, callInfo)
	mock.lockUsernameExists.Unlock()
	return mock.UsernameExistsFunc(ctx, username)
}

func (mock *userRepoMock) UsernameExistsCalls() []struct {
	Ctx      context.Context
	Username string
} {
	mock.lockUsernameExists.RLock()
	calls := mock.calls.UsernameExists
	mock.lockUsernameExists.RUnlock()
	return calls
}
