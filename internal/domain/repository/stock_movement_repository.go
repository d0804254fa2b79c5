package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// StockMovementRepository define el puerto de persistencia del libro de
// movimientos. El libro es append-only: solo Create y lecturas.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	// List devuelve movimientos del más reciente al más antiguo.
	// direction filtra por "in" o "out"; vacío devuelve ambos.
	List(direction string, limit, offset int) ([]*entity.StockMovement, error)
	// CurrentQuantity deriva la existencia actual: Σ entradas − Σ salidas.
	CurrentQuantity(productID string) (int64, error)
	// QuantitiesByProduct deriva la existencia de todos los productos con
	// movimientos en una sola pasada (proyección para listados).
	QuantitiesByProduct() (map[string]int64, error)
}
