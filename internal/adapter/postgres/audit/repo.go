// Package audit implements the Audit repository using PostgreSQL.
// It provides append-only operations for audit log records.
package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/habits-backend/internal/adapter/postgres"
	"github.com/heartmarshall/habits-backend/internal/domain"
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
INSERT INTO audit_log (user_id, entity_type, entity_id, action, changes)
VALUES ($1, $2, $3, $4, $5)`

const getByEntitySQL = `
SELECT id, user_id, entity_type, entity_id, action, changes, created_at
FROM audit_log
WHERE entity_type = $1 AND entity_id = $2
ORDER BY created_at DESC
LIMIT $3`

// Log appends an audit record. Called inside the mutating transaction so the
// record is only kept when the change itself commits.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	if !record.EntityType.IsValid() || !record.Action.IsValid() {
		return fmt.Errorf("audit_record: invalid entity type %q or action %q: %w",
			record.EntityType, record.Action, domain.ErrValidation)
	}

	changes := record.Changes
	if changes == nil {
		changes = map[string]any{}
	}
	changesJSON, err := json.Marshal(changes)
	if err != nil {
		return fmt.Errorf("audit_record marshal changes: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	_, err = q.Exec(ctx, createSQL,
		record.UserID, string(record.EntityType), record.EntityID, string(record.Action), changesJSON)
	if err != nil {
		return postgres.MapError(err, "audit_record", record.EntityType)
	}
	return nil
}

// GetByEntity returns the change history for a specific entity, newest
// first, limited to limit records.
func (r *Repo) GetByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, getByEntitySQL, string(entityType), entityID, limit)
	if err != nil {
		return nil, fmt.Errorf("get audit_records by entity: %w", err)
	}
	defer rows.Close()

	records := make([]domain.AuditRecord, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get audit_records by entity: %w", err)
	}
	return records, nil
}

func scanRecord(row pgx.Row) (domain.AuditRecord, error) {
	var (
		rec        domain.AuditRecord
		entityType string
		action     string
		changes    []byte
	)
	if err := row.Scan(&rec.ID, &rec.UserID, &entityType, &rec.EntityID, &action, &changes, &rec.CreatedAt); err != nil {
		return domain.AuditRecord{}, fmt.Errorf("scan audit_record: %w", err)
	}
	rec.EntityType = domain.EntityType(entityType)
	rec.Action = domain.AuditAction(action)

	if len(changes) > 0 {
		rec.Changes = make(map[string]any)
		if err := json.Unmarshal(changes, &rec.Changes); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit_record %s unmarshal changes: %w", rec.ID, err)
		}
	}
	return rec, nil
}
