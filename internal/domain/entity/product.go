package entity

import "time"

// Product representa un producto del catálogo del almacén.
// La cantidad en existencia NO vive aquí: se deriva siempre del libro de
// movimientos (ver StockMovement). Los productos nunca se eliminan físicamente.
type Product struct {
	ID          string
	Name        string
	Spec        string // especificación / modelo
	Unit        string // unidad de medida (caja, pieza, kg...)
	CategoryID  int
	SafetyStock int64 // umbral mínimo para la clasificación de estado
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
