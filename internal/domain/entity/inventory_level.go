package entity

// InventoryLevel representa la existencia actual de un producto junto con su
// clasificación de estado. Es una proyección de lectura: se recalcula desde el
// libro de movimientos en cada consulta, nunca se almacena como estado propio.
type InventoryLevel struct {
	Product         Product
	CurrentQuantity int64
	Status          string // ver internal/domain/inventory
}
