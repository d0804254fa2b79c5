package entity

import "time"

// Tipos de acción registrados en la bitácora.
const (
	AuditLogin           = "login"
	AuditLogout          = "logout"
	AuditAltaProducto    = "alta_producto"
	AuditEdicionProducto = "edicion_producto"
	AuditSalidaStock     = "salida_stock"
	AuditAltaUsuario     = "alta_usuario"
)

// AuditEntry representa una entrada de la bitácora del sistema.
// Append-only: nunca se edita ni se borra.
type AuditEntry struct {
	ID         string
	ActionType string
	Details    string
	UserID     string
	CreatedAt  time.Time
}
