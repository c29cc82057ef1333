// Package habit implements the Habit repository using PostgreSQL.
// It covers habit CRUD, the archive flag, ordering and M2M category links
// via the habit_categories join table.
package habit

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/habits-backend/internal/adapter/postgres"
	"github.com/heartmarshall/habits-backend/internal/domain"
)

// Repo provides habit persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new habit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

var habitColumns = []string{
	"id", "user_id", "title", "description", "icon", "color", "position",
	"is_active", "streak_current", "streak_best", "created_at", "updated_at",
}

const returningHabit = `
RETURNING id, user_id, title, description, icon, color, position,
          is_active, streak_current, streak_best, created_at, updated_at`

const createSQL = `
INSERT INTO habits (user_id, title, description, icon, color, position)
VALUES ($1, $2, $3, $4, $5, $6)` + returningHabit

const getByIDSQL = `
SELECT id, user_id, title, description, icon, color, position,
       is_active, streak_current, streak_best, created_at, updated_at
FROM habits
WHERE id = $1 AND user_id = $2`

const getForUpdateSQL = getByIDSQL + `
FOR UPDATE`

const archiveSQL = `
UPDATE habits SET is_active = false, updated_at = now()
WHERE id = $1 AND user_id = $2`

const unarchiveSQL = `
UPDATE habits SET is_active = true, updated_at = now()
WHERE id = $1 AND user_id = $2 AND is_active = false`

const deleteArchivedSQL = `
DELETE FROM habits
WHERE id = $1 AND user_id = $2 AND is_active = false`

const reorderSQL = `
UPDATE habits SET position = $3, updated_at = now()
WHERE id = $1 AND user_id = $2`

const updateStreaksSQL = `
UPDATE habits SET streak_current = $2, streak_best = $3, updated_at = now()
WHERE id = $1`

const unlinkAllCategoriesSQL = `DELETE FROM habit_categories WHERE habit_id = $1`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new habit. Position must already be assigned by the caller.
func (r *Repo) Create(ctx context.Context, h *domain.Habit) (*domain.Habit, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createSQL, h.UserID, h.Title, h.Description, h.Icon, h.Color, h.Position)
	created, err := scanHabit(row)
	if err != nil {
		return nil, postgres.MapError(err, "habit", h.Title)
	}
	return created, nil
}

// Update applies the non-nil fields of params to a habit owned by userID.
// With an empty params the current row is returned unchanged.
func (r *Repo) Update(ctx context.Context, userID, id uuid.UUID, params domain.HabitUpdateParams) (*domain.Habit, error) {
	if params.IsEmpty() {
		return r.GetByID(ctx, userID, id)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := postgres.Builder().
		Update("habits").
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Suffix(returningHabit)
	if params.Title != nil {
		update = update.Set("title", *params.Title)
	}
	if params.Description != nil {
		update = update.Set("description", *params.Description)
	}
	if params.Icon != nil {
		update = update.Set("icon", *params.Icon)
	}
	if params.Color != nil {
		update = update.Set("color", *params.Color)
	}

	query, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update habit query: %w", err)
	}

	h, err := scanHabit(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "habit", id)
	}
	return h, nil
}

// Archive marks a habit inactive regardless of its current state.
func (r *Repo) Archive(ctx context.Context, userID, id uuid.UUID) error {
	return r.execOne(ctx, archiveSQL, id, userID)
}

// Unarchive reactivates a habit. Only archived habits qualify; an active
// habit is reported as not found.
func (r *Repo) Unarchive(ctx context.Context, userID, id uuid.UUID) error {
	return r.execOne(ctx, unarchiveSQL, id, userID)
}

// DeleteArchived removes an archived habit. Active habits are reported as not
// found. Logs and join rows are removed by cascade.
func (r *Repo) DeleteArchived(ctx context.Context, userID, id uuid.UUID) error {
	return r.execOne(ctx, deleteArchivedSQL, id, userID)
}

// UpdateStreaks stores the streak counters of a habit.
func (r *Repo) UpdateStreaks(ctx context.Context, id uuid.UUID, current, best int) error {
	return r.execOne(ctx, updateStreaksSQL, id, current, best)
}

// Reorder assigns new positions to habits owned by userID. All updates are
// sent as one batch; if any id does not match an owned habit the call fails
// with domain.ErrNotFound and the caller's transaction should be rolled back.
func (r *Repo) Reorder(ctx context.Context, userID uuid.UUID, positions []domain.HabitPosition) error {
	if len(positions) == 0 {
		return nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	for _, p := range positions {
		batch.Queue(reorderSQL, p.ID, userID, p.Position)
	}

	br := q.SendBatch(ctx, batch)
	defer br.Close()

	for _, p := range positions {
		tag, err := br.Exec()
		if err != nil {
			return postgres.MapError(err, "habit", p.ID)
		}
		if tag.RowsAffected() == 0 {
			return postgres.MapError(pgx.ErrNoRows, "habit", p.ID)
		}
	}

	return nil
}

// LinkCategories attaches categories to a habit. Existing links are kept.
func (r *Repo) LinkCategories(ctx context.Context, habitID uuid.UUID, categoryIDs []uuid.UUID) error {
	if len(categoryIDs) == 0 {
		return nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	insert := postgres.Builder().
		Insert("habit_categories").
		Columns("habit_id", "category_id").
		Suffix("ON CONFLICT (habit_id, category_id) DO NOTHING")
	for _, cid := range categoryIDs {
		insert = insert.Values(habitID, cid)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("build link categories query: %w", err)
	}

	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "habit_categories", habitID)
	}
	return nil
}

// ReplaceCategories drops every category link of a habit and recreates the
// given set. Run it inside a transaction.
func (r *Repo) ReplaceCategories(ctx context.Context, habitID uuid.UUID, categoryIDs []uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, unlinkAllCategoriesSQL, habitID); err != nil {
		return postgres.MapError(err, "habit_categories", habitID)
	}
	return r.LinkCategories(ctx, habitID, categoryIDs)
}

func (r *Repo) execOne(ctx context.Context, query string, id uuid.UUID, args ...any) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, query, append([]any{id}, args...)...)
	if err != nil {
		return postgres.MapError(err, "habit", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "habit", id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a habit owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Habit, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	h, err := scanHabit(q.QueryRow(ctx, getByIDSQL, id, userID))
	if err != nil {
		return nil, postgres.MapError(err, "habit", id)
	}
	return h, nil
}

// GetForUpdate returns a habit owned by userID and locks its row until the
// surrounding transaction ends.
func (r *Repo) GetForUpdate(ctx context.Context, userID, id uuid.UUID) (*domain.Habit, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	h, err := scanHabit(q.QueryRow(ctx, getForUpdateSQL, id, userID))
	if err != nil {
		return nil, postgres.MapError(err, "habit", id)
	}
	return h, nil
}

// List returns the user's habits ordered by position. A nil active lists
// every habit; otherwise only habits with that is_active value.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, active *bool) ([]domain.Habit, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sel := postgres.Builder().
		Select(habitColumns...).
		From("habits").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("position ASC", "created_at ASC")
	if active != nil {
		sel = sel.Where(squirrel.Eq{"is_active": *active})
	}

	query, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list habits query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Habit, 0)
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan habit: %w", err)
		}
		out = append(out, *h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}
	return out, nil
}

func scanHabit(row pgx.Row) (*domain.Habit, error) {
	var h domain.Habit
	err := row.Scan(
		&h.ID, &h.UserID, &h.Title, &h.Description, &h.Icon, &h.Color, &h.Position,
		&h.IsActive, &h.StreakCurrent, &h.StreakBest, &h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &h, nil
}
