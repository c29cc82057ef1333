// Package completion implements the completion log repository using
// PostgreSQL. One habit_logs row marks a habit as done on a calendar day.
package completion

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/habits-backend/internal/adapter/postgres"
	"github.com/heartmarshall/habits-backend/internal/domain"
)

// Repo provides completion log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new completion log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getByHabitAndDateSQL = `
SELECT id, habit_id, log_date, completed, created_at
FROM habit_logs
WHERE habit_id = $1 AND log_date = $2`

const createSQL = `
INSERT INTO habit_logs (habit_id, log_date, completed)
VALUES ($1, $2, true)
RETURNING id, habit_id, log_date, completed, created_at`

const deleteSQL = `DELETE FROM habit_logs WHERE id = $1`

const listDatesSQL = `
SELECT log_date
FROM habit_logs
WHERE habit_id = $1 AND completed
ORDER BY log_date`

const getByHabitIDsSQL = `
SELECT id, habit_id, log_date, completed, created_at
FROM habit_logs
WHERE habit_id = ANY($1::uuid[])
ORDER BY habit_id, log_date`

// GetByHabitAndDate returns the log of a habit for one day, or
// domain.ErrNotFound when the day is not logged.
func (r *Repo) GetByHabitAndDate(ctx context.Context, habitID uuid.UUID, day time.Time) (*domain.CompletionLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	l, err := scanLog(q.QueryRow(ctx, getByHabitAndDateSQL, habitID, day))
	if err != nil {
		return nil, postgres.MapError(err, "habit_log", day.Format(domain.DayLayout))
	}
	return l, nil
}

// Create inserts a completed log for the day. A second log for the same
// habit and day violates ux_habit_logs_habit_date and yields
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, habitID uuid.UUID, day time.Time) (*domain.CompletionLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	l, err := scanLog(q.QueryRow(ctx, createSQL, habitID, day))
	if err != nil {
		return nil, postgres.MapError(err, "habit_log", day.Format(domain.DayLayout))
	}
	return l, nil
}

// Delete removes a log by id.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "habit_log", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "habit_log", id)
	}
	return nil
}

// ListDates returns every completed day of a habit in ascending order.
func (r *Repo) ListDates(ctx context.Context, habitID uuid.UUID) ([]time.Time, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listDatesSQL, habitID)
	if err != nil {
		return nil, fmt.Errorf("list log dates: %w", err)
	}

	days, err := pgx.CollectRows(rows, pgx.RowTo[time.Time])
	if err != nil {
		return nil, fmt.Errorf("list log dates: %w", err)
	}
	return days, nil
}

// GetByHabitIDs returns the logs of several habits (batch for DataLoader).
func (r *Repo) GetByHabitIDs(ctx context.Context, habitIDs []uuid.UUID) ([]domain.CompletionLog, error) {
	if len(habitIDs) == 0 {
		return []domain.CompletionLog{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, getByHabitIDsSQL, habitIDs)
	if err != nil {
		return nil, fmt.Errorf("get logs by habit_ids: %w", err)
	}
	defer rows.Close()

	out := make([]domain.CompletionLog, 0)
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, fmt.Errorf("scan habit log: %w", err)
		}
		out = append(out, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get logs by habit_ids: %w", err)
	}
	return out, nil
}

func scanLog(row pgx.Row) (*domain.CompletionLog, error) {
	var l domain.CompletionLog
	if err := row.Scan(&l.ID, &l.HabitID, &l.Date, &l.Completed, &l.CreatedAt); err != nil {
		return nil, err
	}
	l.Date = l.Date.UTC()
	return &l, nil
}
