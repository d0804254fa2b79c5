package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/authz"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	domaininv "github.com/jhoicas/almacen-api/internal/domain/inventory"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// InventoryUseCase es el motor de movimientos: entradas, salidas y la
// proyección de existencias derivada del libro.
//
// Invariante: para todo producto, existencia = Σ entradas − Σ salidas >= 0.
// Las salidas se ejecutan en transacción con bloqueo de fila del producto
// (SELECT FOR UPDATE), de modo que dos salidas concurrentes del mismo
// producto se serializan y el invariante no puede romperse ni transitoriamente.
type InventoryUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
	auditor      *audit.Recorder
}

// NewInventoryUseCase construye el motor de movimientos.
func NewInventoryUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	auditor *audit.Recorder,
) *InventoryUseCase {
	return &InventoryUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		movementRepo: movementRepo,
		auditor:      auditor,
	}
}

// RegisterStockIn anota una entrada en el libro. Las entradas no tienen
// precondición sobre el estado actual, así que no requieren serialización:
// entradas concurrentes del mismo producto pueden proceder en paralelo.
func (uc *InventoryUseCase) RegisterStockIn(ctx context.Context, actor entity.Session, in dto.StockInRequest) (*dto.MovementResponse, error) {
	if err := authz.Authorize(actor.Role, authz.OpRegistrarEntrada); err != nil {
		return nil, err
	}
	if in.ProductID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	mov := &entity.StockMovement{
		ID:           uuid.New().String(),
		ProductID:    in.ProductID,
		Direction:    entity.DirectionIn,
		Quantity:     in.Quantity,
		Counterparty: in.Supplier,
		CreatedBy:    actor.UserID,
		CreatedAt:    time.Now(),
	}
	if err := uc.movementRepo.Create(mov); err != nil {
		return nil, err
	}
	return toMovementResponse(mov), nil
}

// RegisterStockOut anota una salida. Dentro de una sola transacción:
// bloquea la fila del producto, deriva la existencia actual del libro,
// rechaza con ErrInsufficientStock si la cantidad la excede y si no anota
// el movimiento. Commit o rollback completo: un rechazo deja el libro
// exactamente como estaba. La bitácora se escribe después del commit y su
// fallo no revierte la salida.
func (uc *InventoryUseCase) RegisterStockOut(ctx context.Context, actor entity.Session, in dto.StockOutRequest) (*dto.MovementResponse, error) {
	if err := authz.Authorize(actor.Role, authz.OpRegistrarSalida); err != nil {
		return nil, err
	}
	if in.ProductID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	mov := &entity.StockMovement{
		ID:           uuid.New().String(),
		ProductID:    in.ProductID,
		Direction:    entity.DirectionOut,
		Quantity:     in.Quantity,
		Counterparty: in.Customer,
		CreatedBy:    actor.UserID,
		CreatedAt:    time.Now(),
	}

	var productName string
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloquea la fila del producto: serializa las salidas de ese producto.
		product, err := productRepo.GetByIDForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		productName = product.Name

		current, err := movRepo.CurrentQuantity(in.ProductID)
		if err != nil {
			return err
		}
		if in.Quantity > current {
			return domain.ErrInsufficientStock
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}

	uc.auditor.Record(entity.AuditSalidaStock,
		fmt.Sprintf("salida: %d de %s para %s", in.Quantity, productName, in.Customer),
		actor.UserID)

	return toMovementResponse(mov), nil
}

// CurrentQuantity deriva la existencia actual de un producto. Lectura pura.
func (uc *InventoryUseCase) CurrentQuantity(actor entity.Session, productID string) (int64, error) {
	if err := authz.Authorize(actor.Role, authz.OpVerInventario); err != nil {
		return 0, err
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, domain.ErrNotFound
	}
	return uc.movementRepo.CurrentQuantity(productID)
}

// ListMovements devuelve el libro del más reciente al más antiguo.
// direction filtra por "in"/"out"; vacío devuelve ambos.
func (uc *InventoryUseCase) ListMovements(actor entity.Session, direction string, page dto.PageRequest) ([]dto.MovementResponse, error) {
	if err := authz.Authorize(actor.Role, authz.OpVerMovimientos); err != nil {
		return nil, err
	}
	if direction != "" && direction != entity.DirectionIn && direction != entity.DirectionOut {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()
	movements, err := uc.movementRepo.List(direction, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, *toMovementResponse(m))
	}
	return out, nil
}

// ListInventory proyecta el inventario: cada producto con su existencia
// derivada y su clasificación de estado. Siempre se recalcula desde el libro;
// no hay caché de cantidades que pueda quedar obsoleta. Con lowStockOnly se
// devuelven solo los productos bajo umbral (alerta o critico), el panel de
// reposición.
func (uc *InventoryUseCase) ListInventory(actor entity.Session, lowStockOnly bool, page dto.PageRequest) ([]dto.InventoryItemResponse, error) {
	if err := authz.Authorize(actor.Role, authz.OpVerInventario); err != nil {
		return nil, err
	}
	page.DefaultPage()
	products, err := uc.productRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	quantities, err := uc.movementRepo.QuantitiesByProduct()
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryItemResponse, 0, len(products))
	for _, p := range products {
		qty := quantities[p.ID] // cero si el producto no tiene movimientos
		if lowStockOnly && !domaininv.BajoUmbral(qty, p.SafetyStock) {
			continue
		}
		level := entity.InventoryLevel{
			Product:         *p,
			CurrentQuantity: qty,
			Status:          domaininv.Status(qty, p.SafetyStock),
		}
		out = append(out, toInventoryItemResponse(level))
	}
	return out, nil
}

func toInventoryItemResponse(level entity.InventoryLevel) dto.InventoryItemResponse {
	return dto.InventoryItemResponse{
		Product: dto.ProductResponse{
			ID:          level.Product.ID,
			Name:        level.Product.Name,
			Spec:        level.Product.Spec,
			Unit:        level.Product.Unit,
			CategoryID:  level.Product.CategoryID,
			SafetyStock: level.Product.SafetyStock,
			CreatedAt:   level.Product.CreatedAt,
			UpdatedAt:   level.Product.UpdatedAt,
		},
		CurrentQuantity: level.CurrentQuantity,
		Status:          level.Status,
	}
}

func toMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:           m.ID,
		ProductID:    m.ProductID,
		Direction:    m.Direction,
		Quantity:     m.Quantity,
		Counterparty: m.Counterparty,
		CreatedBy:    m.CreatedBy,
		CreatedAt:    m.CreatedAt,
	}
}
