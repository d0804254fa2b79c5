package entity

import "time"

// Direcciones de movimiento.
const (
	DirectionIn  = "in"  // entrada
	DirectionOut = "out" // salida
)

// StockMovement representa un asiento del libro de movimientos.
// El libro es append-only: un movimiento jamás se actualiza ni se borra,
// y la existencia actual de un producto es siempre la suma de sus asientos.
type StockMovement struct {
	ID           string
	ProductID    string
	Direction    string // in | out
	Quantity     int64  // siempre > 0; la dirección lleva el signo
	Counterparty string // proveedor en entradas, cliente en salidas
	CreatedBy    string // UserID del operador
	CreatedAt    time.Time
}
