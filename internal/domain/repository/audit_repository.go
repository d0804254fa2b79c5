package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// AuditRepository define el puerto de persistencia de la bitácora.
// Append-only: solo Create y lectura en orden cronológico inverso.
type AuditRepository interface {
	Create(entry *entity.AuditEntry) error
	// List devuelve entradas de la más reciente a la más antigua.
	List(limit, offset int) ([]*entity.AuditEntry, error)
}
