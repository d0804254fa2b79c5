package authz

import (
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// Operation identifica una operación del núcleo sujeta a autorización.
type Operation string

// Operaciones del sistema.
const (
	OpVerProductos     Operation = "productos:ver"
	OpCrearProducto    Operation = "productos:crear"
	OpEditarProducto   Operation = "productos:editar"
	OpRegistrarEntrada Operation = "movimientos:entrada"
	OpRegistrarSalida  Operation = "movimientos:salida"
	OpVerMovimientos   Operation = "movimientos:ver"
	OpVerInventario    Operation = "inventario:ver"
	OpCrearUsuario     Operation = "usuarios:crear"
	OpVerUsuarios      Operation = "usuarios:ver"
	OpVerBitacora      Operation = "bitacora:ver"
)

// Tabla estática rol -> operaciones permitidas. Es la única fuente de verdad
// para RBAC: los casos de uso la consultan antes de toda mutación y el
// middleware HTTP delega en ella, sin checks de rol dispersos.
var permissions = map[string]map[Operation]struct{}{
	entity.RoleAdmin: opSet(
		OpVerProductos, OpCrearProducto, OpEditarProducto,
		OpRegistrarEntrada, OpRegistrarSalida, OpVerMovimientos,
		OpVerInventario,
		OpCrearUsuario, OpVerUsuarios, OpVerBitacora,
	),
	entity.RoleGerente: opSet(
		OpVerProductos,
		OpRegistrarEntrada, OpRegistrarSalida, OpVerMovimientos,
		OpVerInventario,
	),
	entity.RoleOperador: opSet(
		OpRegistrarEntrada, OpRegistrarSalida,
		OpVerInventario,
	),
}

func opSet(ops ...Operation) map[Operation]struct{} {
	s := make(map[Operation]struct{}, len(ops))
	for _, op := range ops {
		s[op] = struct{}{}
	}
	return s
}

// Allowed indica si el rol puede ejecutar la operación.
func Allowed(role string, op Operation) bool {
	ops, ok := permissions[role]
	if !ok {
		return false
	}
	_, ok = ops[op]
	return ok
}

// Authorize verifica el permiso y devuelve ErrForbidden si el rol no lo tiene.
func Authorize(role string, op Operation) error {
	if !Allowed(role, op) {
		return domain.ErrForbidden
	}
	return nil
}
