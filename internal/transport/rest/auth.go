package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/habits-backend/internal/domain"
	"github.com/heartmarshall/habits-backend/internal/service/auth"
)

type authService interface {
	Register(ctx context.Context, input auth.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, input auth.LoginInput) (*auth.TokenPair, error)
	GoogleSignIn(ctx context.Context, idToken string) (*auth.SignInResult, error)
	Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error)
	GetUserDetails(ctx context.Context) (*domain.User, error)
	Logout(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
	UpdateUsername(ctx context.Context, username string) (*domain.User, error)
}

// AuthHandler serves the /auth/v1 endpoints.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type registerRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginRequest struct {
	UserID   string `json:"userId"` // username or email
	Password string `json:"password"`
}

type googleSignInRequest struct {
	IDToken string `json:"idToken"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type updateUsernameRequest struct {
	Username string `json:"username"`
}

type tokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type userResponse struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	Coins         int    `json:"coins"`
	HabitCount    int    `json:"habitCount"`
	MaxHabit      int    `json:"maxHabit"`
	CategoryCount int    `json:"categoryCount"`
	CategoryMax   int    `json:"categoryMax"`
}

// Register handles POST /auth/v1/register-user.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	_, err := h.svc.Register(r.Context(), auth.RegisterInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		handleError(w, r, h.log, "register", err)
		return
	}

	writeSuccess(w, http.StatusCreated, "User registered successfully", nil)
}

// Login handles POST /auth/v1/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	tokens, err := h.svc.Login(r.Context(), auth.LoginInput{
		Login:    req.UserID,
		Password: req.Password,
	})
	if err != nil {
		handleError(w, r, h.log, "login", err)
		return
	}

	writeSuccess(w, http.StatusOK, "Login successful", toTokenResponse(tokens))
}

// GoogleSignIn handles POST /auth/v1/google-sign-in.
func (h *AuthHandler) GoogleSignIn(w http.ResponseWriter, r *http.Request) {
	var req googleSignInRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.GoogleSignIn(r.Context(), req.IDToken)
	if err != nil {
		handleError(w, r, h.log, "google sign-in", err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	writeSuccess(w, status, "Login successful", toTokenResponse(result.Tokens))
}

// Refresh handles POST /auth/v1/refresh-token.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	tokens, err := h.svc.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		handleError(w, r, h.log, "refresh token", err)
		return
	}

	writeSuccess(w, http.StatusOK, "Token refreshed", toTokenResponse(tokens))
}

// GetUserDetails handles GET /auth/v1/get-user-details.
func (h *AuthHandler) GetUserDetails(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.GetUserDetails(r.Context())
	if err != nil {
		handleError(w, r, h.log, "get user details", err)
		return
	}

	writeSuccess(w, http.StatusOK, "User data fetched successfully", map[string]any{
		"user": toUserResponse(user),
	})
}

// Logout handles GET /auth/v1/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Logout(r.Context()); err != nil {
		handleError(w, r, h.log, "logout", err)
		return
	}

	writeSuccess(w, http.StatusOK, "Logged out successfully", nil)
}

// DeleteAccount handles DELETE /auth/v1/delete-account.
func (h *AuthHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteAccount(r.Context()); err != nil {
		handleError(w, r, h.log, "delete account", err)
		return
	}

	writeSuccess(w, http.StatusOK, "User deleted successfully", nil)
}

// UpdateUsername handles PUT /auth/v1/update-username.
func (h *AuthHandler) UpdateUsername(w http.ResponseWriter, r *http.Request) {
	var req updateUsernameRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.svc.UpdateUsername(r.Context(), req.Username)
	if err != nil {
		handleError(w, r, h.log, "update username", err)
		return
	}

	writeSuccess(w, http.StatusOK, "Username updated successfully", map[string]any{
		"user": toUserResponse(user),
	})
}

func toTokenResponse(t *auth.TokenPair) tokenResponse {
	return tokenResponse{AccessToken: t.AccessToken, RefreshToken: t.RefreshToken}
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:            u.ID.String(),
		Username:      u.Username,
		Email:         u.Email,
		Coins:         u.Coins,
		HabitCount:    u.HabitCount,
		MaxHabit:      u.MaxHabit,
		CategoryCount: u.CategoryCount,
		CategoryMax:   u.CategoryMax,
	}
}
