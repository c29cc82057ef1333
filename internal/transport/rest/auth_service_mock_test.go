package rest

import (
	"context"
	"github.com/heartmarshall/habits-backend/internal/domain"
	"github.com/heartmarshall/habits-backend/internal/service/auth"
	"sync"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	DeleteAccountFunc  func(ctx context.Context) error
	GetUserDetailsFunc func(ctx context.Context) (*domain.User, error)
	GoogleSignInFunc   func(ctx context.Context, idToken string) (*auth.SignInResult, error)
	LoginFunc          func(ctx context.Context, input auth.LoginInput) (*auth.TokenPair, error)
	LogoutFunc         func(ctx context.Context) error
	RefreshFunc        func(ctx context.Context, refreshToken string) (*auth.TokenPair, error)
	RegisterFunc       func(ctx context.Context, input auth.RegisterInput) (*domain.User, error)
	UpdateUsernameFunc func(ctx context.Context, username string) (*domain.User, error)

	calls struct {
		DeleteAccount []struct {
			Ctx context.Context
		}
		GetUserDetails []struct {
			Ctx context.Context
		}
		GoogleSignIn []struct {
			Ctx     context.Context
			IdToken string
		}
		Login []struct {
			Ctx   context.Context
			Input auth.LoginInput
		}
		Logout []struct {
			Ctx context.Context
		}
		Refresh []struct {
			Ctx          context.Context
			RefreshToken string
		}
		Register []struct {
			Ctx   context.Context
			Input auth.RegisterInput
		}
		UpdateUsername []struct {
			Ctx      context.Context
			Username string
		}
	}
	lockDeleteAccount  sync.RWMutex
	lockGetUserDetails sync.RWMutex
	lockGoogleSignIn   sync.RWMutex
	lockLogin          sync.RWMutex
	lockLogout         sync.RWMutex
	lockRefresh        sync.RWMutex
	lockRegister       sync.RWMutex
	lockUpdateUsername sync.RWMutex
}

func (mock *authServiceMock) DeleteAccount(ctx context.Context) error {
	if mock.DeleteAccountFunc == nil {
		panic("authServiceMock.DeleteAccountFunc: method is nil but authService.DeleteAccount was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockDeleteAccount.Lock()
	mock.calls.DeleteAccount = append(mock.calls.DeleteAccount, callInfo)
	mock.lockDeleteAccount.Unlock()
	return mock.DeleteAccountFunc(ctx)
}

func (mock *authServiceMock) DeleteAccountCalls() []struct {
	Ctx context.Context
} {
	mock.lockDeleteAccount.RLock()
	calls := mock.calls.DeleteAccount
	mock.lockDeleteAccount.RUnlock()
	return calls
}

func (mock *authServiceMock) GetUserDetails(ctx context.Context) (*domain.User, error) {
	if mock.GetUserDetailsFunc == nil {
		panic("authServiceMock.GetUserDetailsFunc: method is nil but authService.GetUserDetails was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetUserDetails.Lock()
	mock.calls.GetUserDetails = append(mock.calls.GetUserDetails, callInfo)
	mock.lockGetUserDetails.Unlock()
	return mock.GetUserDetailsFunc(ctx)
}

func (mock *authServiceMock) GetUserDetailsCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetUserDetails.RLock()
	calls := mock.calls.GetUserDetails
	mock.lockGetUserDetails.RUnlock()
	return calls
}

func (mock *authServiceMock) GoogleSignIn(ctx context.Context, idToken string) (*auth.SignInResult, error) {
	if mock.GoogleSignInFunc == nil {
		panic("authServiceMock.GoogleSignInFunc: method is nil but authService.GoogleSignIn was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		IdToken string
	}{Ctx: ctx, IdToken: idToken}
	mock.lockGoogleSignIn.Lock()
	mock.calls.GoogleSignIn = append(mock.calls.GoogleSignIn, callInfo)
	mock.lockGoogleSignIn.Unlock()
	return mock.GoogleSignInFunc(ctx, idToken)
}

func (mock *authServiceMock) GoogleSignInCalls() []struct {
	Ctx     context.Context
	IdToken string
} {
	mock.lockGoogleSignIn.RLock()
	calls := mock.calls.GoogleSignIn
	mock.lockGoogleSignIn.RUnlock()
	return calls
}

func (mock *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (*auth.TokenPair, error) {
	if mock.LoginFunc == nil {
		panic("authServiceMock.LoginFunc: method is nil but authService.Login was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.LoginInput
	}{Ctx: ctx, Input: input}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, input)
}

func (mock *authServiceMock) LoginCalls() []struct {
	Ctx   context.Context
	Input auth.LoginInput
} {
	mock.lockLogin.RLock()
	calls := mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}

func (mock *authServiceMock) Logout(ctx context.Context) error {
	if mock.LogoutFunc == nil {
		panic("authServiceMock.LogoutFunc: method is nil but authService.Logout was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockLogout.Lock()
	mock.calls.Logout = append(mock.calls.Logout, callInfo)
	mock.lockLogout.Unlock()
	return mock.LogoutFunc(ctx)
}

func (mock *authServiceMock) LogoutCalls() []struct {
	Ctx context.Context
} {
	mock.lockLogout.RLock()
	calls := mock.calls.Logout
	mock.lockLogout.RUnlock()
	return calls
}

func (mock *authServiceMock) Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	if mock.RefreshFunc == nil {
		panic("authServiceMock.RefreshFunc: method is nil but authService.Refresh was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		RefreshToken string
	}{Ctx: ctx, RefreshToken: refreshToken}
	mock.lockRefresh.Lock()
	mock.calls.Refresh = append(mock.calls.Refresh, callInfo)
	mock.lockRefresh.Unlock()
	return mock.RefreshFunc(ctx, refreshToken)
}

func (mock *authServiceMock) RefreshCalls() []struct {
	Ctx          context.Context
	RefreshToken string
} {
	mock.lockRefresh.RLock()
	calls := mock.calls.Refresh
	mock.lockRefresh.RUnlock()
	return calls
}

func (mock *authServiceMock) Register(ctx context.Context, input auth.RegisterInput) (*domain.User, error) {
	if mock.RegisterFunc == nil {
		panic("authServiceMock.RegisterFunc: method is nil but authService.Register was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.RegisterInput
	}{Ctx: ctx, Input: input}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, input)
}

func (mock *authServiceMock) RegisterCalls() []struct {
	Ctx   context.Context
	Input auth.RegisterInput
} {
	mock.lockRegister.RLock()
	calls := mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}

func (mock *authServiceMock) UpdateUsername(ctx context.Context, username string) (*domain.User, error) {
	if mock.UpdateUsernameFunc == nil {
		panic("authServiceMock.UpdateUsernameFunc: method is nil but authService.UpdateUsername was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{Ctx: ctx, Username: username}
	mock.lockUpdateUsername.Lock()
	mock.calls.UpdateUsername = append(mock.calls.UpdateUsername, callInfo)
	mock.lockUpdateUsername.Unlock()
	return mock.UpdateUsernameFunc(ctx, username)
}

func (mock *authServiceMock) UpdateUsernameCalls() []struct {
	Ctx      context.Context
	Username string
} {
	mock.lockUpdateUsername.RLock()
	calls := mock.calls.UpdateUsername
	mock.lockUpdateUsername.RUnlock()
	return calls
}
