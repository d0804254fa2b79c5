package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.AuditRepository = (*AuditRepo)(nil)

// AuditRepo implementación de la bitácora sobre PostgreSQL. Append-only.
type AuditRepo struct {
	q Querier
}

// NewAuditRepository construye el adaptador de bitácora.
func NewAuditRepository(q Querier) *AuditRepo {
	return &AuditRepo{q: q}
}

// Create persiste una entrada de bitácora.
func (r *AuditRepo) Create(entry *entity.AuditEntry) error {
	query := `
		INSERT INTO audit_log (id, action_type, details, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.ActionType, entry.Details, entry.UserID, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

// List devuelve la bitácora en orden cronológico inverso.
func (r *AuditRepo) List(limit, offset int) ([]*entity.AuditEntry, error) {
	query := `
		SELECT id, action_type, details, user_id, created_at
		FROM audit_log
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list audit log: %w", err)
	}
	defer rows.Close()

	var out []*entity.AuditEntry
	for rows.Next() {
		var e entity.AuditEntry
		if err := rows.Scan(&e.ID, &e.ActionType, &e.Details, &e.UserID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}
