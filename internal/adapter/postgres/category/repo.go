// Package category implements the Category repository using PostgreSQL.
// Categories are linked to habits through the habit_categories join table.
package category

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

// CategoryWithHabitID is the batch result type for GetByHabitIDs.
type CategoryWithHabitID struct {
	HabitID uuid.UUID
	domain.Category
}

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new category repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const categoryColumns = `id, user_id, name, icon, created_at, updated_at`

const createSQL = `
INSERT INTO categories (user_id, name, icon)
VALUES ($1, $2, $3)
RETURNING ` + categoryColumns

const getByIDSQL = `
SELECT ` + categoryColumns + `
FROM categories
WHERE id = $1 AND user_id = $2`

const listSQL = `
SELECT ` + categoryColumns + `
FROM categories
WHERE user_id = $1
ORDER BY created_at, id`

const deleteSQL = `DELETE FROM categories WHERE id = $1 AND user_id = $2`

const getByHabitIDsSQL = `
SELECT
    hc.habit_id,
    c.id, c.user_id, c.name, c.icon, c.created_at, c.updated_at
FROM habit_categories hc
JOIN categories c ON hc.category_id = c.id
WHERE hc.habit_id = ANY($1::uuid[])
ORDER BY hc.habit_id, c.name`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new category for the user.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, name, icon string) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCategory(q.QueryRow(ctx, createSQL, userID, name, icon))
	if err != nil {
		return nil, postgres.MapError(err, "category", name)
	}
	return c, nil
}

// Update changes the name and, when icon is non-nil, the icon of a category
// owned by userID. A category of another user is reported as not found.
func (r *Repo) Update(ctx context.Context, userID, id uuid.UUID, name string, icon *string) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := postgres.Builder().
		Update("categories").
		Set("name", name).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING " + categoryColumns)
	if icon != nil {
		update = update.Set("icon", *icon)
	}

	query, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update category query: %w", err)
	}

	c, err := scanCategory(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "category", id)
	}
	return c, nil
}

// Delete removes a category owned by userID. Join rows are removed by
// cascade.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id, userID)
	if err != nil {
		return postgres.MapError(err, "category", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "category", id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a category owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCategory(q.QueryRow(ctx, getByIDSQL, id, userID))
	if err != nil {
		return nil, postgres.MapError(err, "category", id)
	}
	return c, nil
}

// List returns all categories of the user in creation order.
// Returns an empty slice (not nil) when the user has none.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return out, nil
}

// ExistingIDs returns the subset of ids that are categories owned by userID.
func (r *Repo) ExistingIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return []uuid.UUID{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := postgres.Builder().
		Select("id").
		From("categories").
		Where(squirrel.Eq{"user_id": userID}).
		Where("id = ANY(?::uuid[])", ids).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build existing categories query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("existing categories: %w", err)
	}

	found, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("existing categories: %w", err)
	}
	return found, nil
}

// GetByHabitIDs returns the categories linked to each of the given habits
// (batch for DataLoader).
func (r *Repo) GetByHabitIDs(ctx context.Context, habitIDs []uuid.UUID) ([]CategoryWithHabitID, error) {
	if len(habitIDs) == 0 {
		return []CategoryWithHabitID{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, getByHabitIDsSQL, habitIDs)
	if err != nil {
		return nil, fmt.Errorf("get categories by habit_ids: %w", err)
	}
	defer rows.Close()

	out := make([]CategoryWithHabitID, 0)
	for rows.Next() {
		var c CategoryWithHabitID
		if err := rows.Scan(&c.HabitID, &c.ID, &c.UserID, &c.Name, &c.Icon, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category by habit: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get categories by habit_ids: %w", err)
	}
	return out, nil
}

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var c domain.Category
	if err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Icon, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
