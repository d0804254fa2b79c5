package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/catalog"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/application/users"
	"github.com/jhoicas/almacen-api/internal/domain/authz"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CatalogUC   *catalog.CatalogUseCase
	InventoryUC *inventory.InventoryUseCase
	UserUC      *users.UserUseCase
	AuditUC     *audit.Recorder
	JWTSecret   string
}

// Router registra las rutas de la API. Cada ruta mutante pasa por
// RequirePermission con la operación que ejecuta: la tabla de permisos es el
// único punto de decisión RBAC (los casos de uso la vuelven a consultar como
// defensa en profundidad con la misma tabla).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login público, logout con sesión viva
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.AuthUC))
	protected.Post("/auth/logout", authHandler.Logout)

	// Catálogo
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.CatalogUC)
	products.Get("/", RequirePermission(authz.OpVerProductos), productHandler.List)
	products.Post("/", RequirePermission(authz.OpCrearProducto), productHandler.Create)
	products.Put("/:id", RequirePermission(authz.OpEditarProducto), productHandler.Update)

	// Motor de movimientos e inventario
	inv := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inv.Get("/", RequirePermission(authz.OpVerInventario), inventoryHandler.ListInventory)
	inv.Post("/in", RequirePermission(authz.OpRegistrarEntrada), inventoryHandler.StockIn)
	inv.Post("/out", RequirePermission(authz.OpRegistrarSalida), inventoryHandler.StockOut)
	inv.Get("/movements", RequirePermission(authz.OpVerMovimientos), inventoryHandler.ListMovements)

	// Usuarios (solo admin vía tabla de permisos)
	usersGroup := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	usersGroup.Get("/", RequirePermission(authz.OpVerUsuarios), userHandler.List)
	usersGroup.Post("/", RequirePermission(authz.OpCrearUsuario), userHandler.Create)

	// Bitácora
	auditHandler := NewAuditHandler(deps.AuditUC)
	protected.Get("/audit", RequirePermission(authz.OpVerBitacora), auditHandler.List)
}
