package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo implementación del puerto SessionRepository sobre PostgreSQL.
// El username y el rol se leen con un join a users: la sesión solo guarda la
// referencia y el instante de revocación.
type SessionRepo struct {
	q Querier
}

// NewSessionRepository construye el adaptador de sesiones.
func NewSessionRepository(q Querier) *SessionRepo {
	return &SessionRepo{q: q}
}

// Create persiste una nueva sesión activa.
func (r *SessionRepo) Create(session *entity.Session) error {
	query := `
		INSERT INTO sessions (id, user_id, created_at, revoked_at)
		VALUES ($1, $2, $3, NULL)`
	_, err := r.q.Exec(context.Background(), query, session.ID, session.UserID, session.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// GetByID obtiene una sesión con los datos del usuario. Devuelve nil sin
// error si no existe.
func (r *SessionRepo) GetByID(id string) (*entity.Session, error) {
	query := `
		SELECT s.id, s.user_id, u.username, u.role, s.created_at, s.revoked_at
		FROM sessions s
		JOIN users u ON u.id = s.user_id
		WHERE s.id = $1`
	var s entity.Session
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.UserID, &s.Username, &s.Role, &s.CreatedAt, &s.RevokedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &s, nil
}

// Revoke marca la sesión como revocada. Idempotente: una sesión ya revocada
// conserva su revoked_at original.
func (r *SessionRepo) Revoke(id string) error {
	query := `UPDATE sessions SET revoked_at = now() WHERE id = $1 AND revoked_at IS NULL`
	_, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}
