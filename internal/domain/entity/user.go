package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleGerente  = "gerente"
	RoleOperador = "operador"
)

// ValidRole indica si el rol existe en el sistema.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleGerente, RoleOperador:
		return true
	}
	return false
}

// User representa un usuario del sistema.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, gerente, operador
	CreatedAt    time.Time
}
