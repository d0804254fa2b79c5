package dto

// CreateUserRequest entrada para dar de alta un usuario (solo admin).
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"` // admin | gerente | operador
}
