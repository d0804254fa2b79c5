package dto

import "time"

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name        string `json:"name"`
	Spec        string `json:"spec"`
	Unit        string `json:"unit"`
	CategoryID  int    `json:"category_id"`
	SafetyStock int64  `json:"safety_stock"`
}

// UpdateProductRequest entrada para actualizar un producto (reemplazo completo
// de los campos mutables; el ID es inmutable).
type UpdateProductRequest struct {
	Name        string `json:"name"`
	Spec        string `json:"spec"`
	Unit        string `json:"unit"`
	CategoryID  int    `json:"category_id"`
	SafetyStock int64  `json:"safety_stock"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Spec        string    `json:"spec"`
	Unit        string    `json:"unit"`
	CategoryID  int       `json:"category_id"`
	SafetyStock int64     `json:"safety_stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
