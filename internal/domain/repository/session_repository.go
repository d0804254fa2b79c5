package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// SessionRepository define el puerto de persistencia para sesiones.
// La transición Revoke es terminal: una sesión revocada no se reactiva.
type SessionRepository interface {
	Create(session *entity.Session) error
	GetByID(id string) (*entity.Session, error)
	Revoke(id string) error
}
