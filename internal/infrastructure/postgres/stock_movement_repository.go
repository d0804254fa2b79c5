package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). Solo inserta y lee: el libro es append-only y la
// tabla no tiene UPDATE ni DELETE en ninguna ruta de código.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador del libro. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create anota un movimiento en el libro.
func (r *StockMovementRepo) Create(m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, product_id, direction, quantity, counterparty, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ProductID, m.Direction, m.Quantity, m.Counterparty, m.CreatedBy, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// List devuelve movimientos del más reciente al más antiguo.
// direction vacío devuelve entradas y salidas.
func (r *StockMovementRepo) List(direction string, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, direction, quantity, counterparty, created_by, created_at
		FROM stock_movements
		WHERE ($1 = '' OR direction = $1)
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, direction, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var out []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(
			&m.ID, &m.ProductID, &m.Direction, &m.Quantity, &m.Counterparty,
			&m.CreatedBy, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

// CurrentQuantity deriva la existencia actual de un producto desde el libro:
// Σ entradas − Σ salidas. Dentro de una transacción que ya bloqueó la fila
// del producto, este valor no puede cambiar hasta el commit.
func (r *StockMovementRepo) CurrentQuantity(productID string) (int64, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN direction = 'in' THEN quantity ELSE -quantity END), 0)
		FROM stock_movements
		WHERE product_id = $1`
	var qty int64
	if err := r.q.QueryRow(context.Background(), query, productID).Scan(&qty); err != nil {
		return 0, fmt.Errorf("current quantity: %w", err)
	}
	return qty, nil
}

// QuantitiesByProduct deriva la existencia de todos los productos con
// movimientos en una sola consulta agregada.
func (r *StockMovementRepo) QuantitiesByProduct() (map[string]int64, error) {
	query := `
		SELECT product_id,
		       COALESCE(SUM(CASE WHEN direction = 'in' THEN quantity ELSE -quantity END), 0)
		FROM stock_movements
		GROUP BY product_id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("quantities by product: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int64)
	for rows.Next() {
		var productID string
		var qty int64
		if err := rows.Scan(&productID, &qty); err != nil {
			return nil, fmt.Errorf("scan quantity: %w", err)
		}
		out[productID] = qty
	}
	return out, rows.Err()
}
