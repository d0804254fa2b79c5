package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
)

// InventoryHandler maneja movimientos y proyección de inventario (protegido).
type InventoryHandler struct {
	uc *inventory.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// StockIn godoc
// @Summary      Registrar entrada de mercancía
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockInRequest  true  "product_id, quantity, supplier"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/in [post]
func (h *InventoryHandler) StockIn(c *fiber.Ctx) error {
	var in dto.StockInRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegisterStockIn(c.Context(), GetSession(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// StockOut godoc
// @Summary      Registrar salida de mercancía
// @Description  Rechaza con 409 INSUFFICIENT_STOCK si la cantidad excede la
//               existencia actual; la verificación y el asiento son atómicos
//               por producto.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockOutRequest  true  "product_id, quantity, customer"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/out [post]
func (h *InventoryHandler) StockOut(c *fiber.Ctx) error {
	var in dto.StockOutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegisterStockOut(c.Context(), GetSession(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMovements godoc
// @Summary      Listar movimientos (más recientes primero)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        direction  query  string  false  "in | out; vacío = ambos"
// @Param        limit      query  int     false  "Límite"
// @Param        offset     query  int     false  "Offset"
// @Success      200  {array}   dto.MovementResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit"), Offset: c.QueryInt("offset")}
	out, err := h.uc.ListMovements(GetSession(c), c.Query("direction"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListInventory godoc
// @Summary      Inventario actual (existencia derivada + estado por producto)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        low_stock  query  bool  false  "Solo productos bajo umbral (alerta o critico)"
// @Param        limit      query  int   false  "Límite"
// @Param        offset     query  int   false  "Offset"
// @Success      200  {array}   dto.InventoryItemResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) ListInventory(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit"), Offset: c.QueryInt("offset")}
	out, err := h.uc.ListInventory(GetSession(c), c.QueryBool("low_stock"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
