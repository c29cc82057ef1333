// Package user implements the User repository using PostgreSQL.
// The users row is the credential store and also carries the quota
// counters and the coin balance.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/habits-backend/internal/adapter/postgres"
	"github.com/heartmarshall/habits-backend/internal/domain"
)

// Constraint names reported through postgres.ViolatedConstraint.
const (
	ConstraintEmail    = "ux_users_email"
	ConstraintUsername = "ux_users_username"
	ConstraintGoogleID = "ux_users_google_id"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const userColumns = `
    id, email, username, password_hash, google_id,
    refresh_token_hash, refresh_token_expires_at,
    habit_count, max_habit, category_count, category_max, coins,
    created_at, updated_at`

const createUserSQL = `
INSERT INTO users (email, username, password_hash, google_id, max_habit, category_max)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING` + userColumns

const getByIDSQL = `SELECT` + userColumns + ` FROM users WHERE id = $1`

const getForUpdateSQL = `SELECT` + userColumns + ` FROM users WHERE id = $1 FOR UPDATE`

const getByEmailSQL = `SELECT` + userColumns + ` FROM users WHERE email = $1`

const getByUsernameSQL = `SELECT` + userColumns + ` FROM users WHERE username = $1`

// A username match wins over an email match for the same login string.
const getByLoginSQL = `
SELECT` + userColumns + `
FROM users
WHERE username = $1 OR email = $1
ORDER BY (username = $1) DESC
LIMIT 1`

const getByGoogleIDSQL = `SELECT` + userColumns + ` FROM users WHERE google_id = $1`

// The hash comparison is re-evaluated after a concurrent update commits, so
// only one of two racing rotations of the same token matches.
const rotateRefreshTokenSQL = `
UPDATE users
SET refresh_token_hash = $2, refresh_token_expires_at = $3, updated_at = now()
WHERE refresh_token_hash = $1 AND refresh_token_expires_at > $4
RETURNING id`

const usernameExistsSQL = `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`

const setRefreshTokenSQL = `
UPDATE users
SET refresh_token_hash = $2, refresh_token_expires_at = $3, updated_at = now()
WHERE id = $1`

const clearRefreshTokenSQL = `
UPDATE users
SET refresh_token_hash = NULL, refresh_token_expires_at = NULL, updated_at = now()
WHERE id = $1`

const clearExpiredRefreshTokensSQL = `
UPDATE users
SET refresh_token_hash = NULL, refresh_token_expires_at = NULL, updated_at = now()
WHERE refresh_token_hash IS NOT NULL AND refresh_token_expires_at <= $1`

const linkGoogleSQL = `
UPDATE users SET google_id = $2, updated_at = now()
WHERE id = $1
RETURNING` + userColumns

const updateUsernameSQL = `
UPDATE users SET username = $2, updated_at = now()
WHERE id = $1
RETURNING` + userColumns

const deleteUserSQL = `DELETE FROM users WHERE id = $1`

const incrementHabitCountSQL = `
UPDATE users SET habit_count = habit_count + 1, updated_at = now()
WHERE id = $1
RETURNING habit_count`

const adjustCategoryCountSQL = `
UPDATE users SET category_count = category_count + $2, updated_at = now()
WHERE id = $1
RETURNING category_count`

const adjustCoinsSQL = `
UPDATE users SET coins = coins + $2, updated_at = now()
WHERE id = $1
RETURNING coins`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new user and returns the persisted row. A duplicate email,
// username or Google id yields domain.ErrAlreadyExists; the violated
// constraint is available through postgres.ViolatedConstraint.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createUserSQL,
		u.Email, u.Username, u.PasswordHash, u.GoogleID, u.MaxHabit, u.CategoryMax)

	created, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Email)
	}
	return created, nil
}

// SetRefreshToken stores the hash of the single active refresh token,
// replacing any previous one.
func (r *Repo) SetRefreshToken(ctx context.Context, id uuid.UUID, hash string, expiresAt time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, setRefreshTokenSQL, id, hash, expiresAt)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "user", id)
	}
	return nil
}

// RotateRefreshToken swaps an unexpired refresh token hash for a new one
// and returns the owning user id. A hash that is unknown, expired or already
// rotated yields domain.ErrNotFound.
func (r *Repo) RotateRefreshToken(ctx context.Context, oldHash, newHash string, expiresAt, now time.Time) (uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var id uuid.UUID
	if err := q.QueryRow(ctx, rotateRefreshTokenSQL, oldHash, newHash, expiresAt, now).Scan(&id); err != nil {
		return uuid.Nil, postgres.MapError(err, "refresh_token", "hash")
	}
	return id, nil
}

// ClearRefreshToken removes the stored refresh token. Idempotent.
func (r *Repo) ClearRefreshToken(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, clearRefreshTokenSQL, id); err != nil {
		return postgres.MapError(err, "user", id)
	}
	return nil
}

// ClearExpiredRefreshTokens clears refresh tokens that expired at or before
// now and returns how many users were affected.
func (r *Repo) ClearExpiredRefreshTokens(ctx context.Context, now time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, clearExpiredRefreshTokensSQL, now)
	if err != nil {
		return 0, fmt.Errorf("clear expired refresh tokens: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// LinkGoogle attaches a Google subject to an existing account.
func (r *Repo) LinkGoogle(ctx context.Context, id uuid.UUID, googleID string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, linkGoogleSQL, id, googleID))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// UpdateUsername changes the username.
func (r *Repo) UpdateUsername(ctx context.Context, id uuid.UUID, username string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, updateUsernameSQL, id, username))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// Delete removes the user. Habits, categories, logs and audit rows go with
// it through ON DELETE CASCADE.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteUserSQL, id)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "user", id)
	}
	return nil
}

// IncrementHabitCount bumps habit_count by one and returns the new value.
// The users_habit_quota check rejects going past max_habit.
func (r *Repo) IncrementHabitCount(ctx context.Context, id uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := q.QueryRow(ctx, incrementHabitCountSQL, id).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "user", id)
	}
	return n, nil
}

// AdjustCategoryCount adds delta to category_count and returns the new value.
func (r *Repo) AdjustCategoryCount(ctx context.Context, id uuid.UUID, delta int) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := q.QueryRow(ctx, adjustCategoryCountSQL, id, delta).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "user", id)
	}
	return n, nil
}

// AdjustCoins adds delta to the coin balance and returns the new balance.
// The update is relative, so concurrent toggles never lose an increment.
func (r *Repo) AdjustCoins(ctx context.Context, id uuid.UUID, delta int) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var coins int
	if err := q.QueryRow(ctx, adjustCoinsSQL, id, delta).Scan(&coins); err != nil {
		return 0, postgres.MapError(err, "user", id)
	}
	return coins, nil
}

// GrantQuota raises the habit and category limits of the account with the
// given email. Zero leaves a limit unchanged.
func (r *Repo) GrantQuota(ctx context.Context, email string, extraHabits, extraCategories int) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := postgres.Builder().
		Update("users").
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"email": email}).
		Suffix("RETURNING" + userColumns)
	if extraHabits != 0 {
		update = update.Set("max_habit", squirrel.Expr("max_habit + ?", extraHabits))
	}
	if extraCategories != 0 {
		update = update.Set("category_max", squirrel.Expr("category_max + ?", extraCategories))
	}

	query, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build grant quota query: %w", err)
	}

	u, err := scanUser(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return u, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, getByIDSQL, id)
}

// GetForUpdate returns a user and locks its row until the surrounding
// transaction ends. Quota checks use it to serialize concurrent creates.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, getForUpdateSQL, id)
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, getByEmailSQL, email)
}

// GetByUsername returns a user by username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getOne(ctx, getByUsernameSQL, username)
}

// GetByLogin returns the user whose username or email equals login.
func (r *Repo) GetByLogin(ctx context.Context, login string) (*domain.User, error) {
	return r.getOne(ctx, getByLoginSQL, login)
}

// GetByGoogleID returns the user linked to a Google subject.
func (r *Repo) GetByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	return r.getOne(ctx, getByGoogleIDSQL, googleID)
}

// UsernameExists reports whether the username is taken.
func (r *Repo) UsernameExists(ctx context.Context, username string) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := q.QueryRow(ctx, usernameExistsSQL, username).Scan(&exists); err != nil {
		return false, fmt.Errorf("check username exists: %w", err)
	}
	return exists, nil
}

func (r *Repo) getOne(ctx context.Context, query string, key any) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, query, key))
	if err != nil {
		return nil, postgres.MapError(err, "user", key)
	}
	return u, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.GoogleID,
		&u.RefreshTokenHash, &u.RefreshTokenExpiresAt,
		&u.HabitCount, &u.MaxHabit, &u.CategoryCount, &u.CategoryMax, &u.Coins,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
