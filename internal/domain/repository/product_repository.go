package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// No existe Delete: los productos nunca se eliminan físicamente.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetByIDForUpdate bloquea la fila del producto (SELECT FOR UPDATE).
	// Dentro de una transacción serializa los movimientos de ese producto.
	GetByIDForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// List devuelve los productos en orden de inserción.
	List(limit, offset int) ([]*entity.Product, error)
}
