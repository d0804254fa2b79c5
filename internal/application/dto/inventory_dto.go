package dto

import "time"

// StockInRequest entrada de mercancía.
type StockInRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
	Supplier  string `json:"supplier"`
}

// StockOutRequest salida de mercancía.
type StockOutRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
	Customer  string `json:"customer"`
}

// MovementResponse salida de un movimiento del libro.
type MovementResponse struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	Direction    string    `json:"direction"`
	Quantity     int64     `json:"quantity"`
	Counterparty string    `json:"counterparty"`
	CreatedBy    string    `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
}

// InventoryItemResponse proyección de lectura: producto + existencia derivada + estado.
type InventoryItemResponse struct {
	Product         ProductResponse `json:"product"`
	CurrentQuantity int64           `json:"current_quantity"`
	Status          string          `json:"status"`
}
