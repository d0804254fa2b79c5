package catalog

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/authz"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// CatalogUseCase gestiona el catálogo de productos: alta, edición y listado.
// No toca el libro de movimientos ni la proyección de inventario.
type CatalogUseCase struct {
	productRepo repository.ProductRepository
	auditor     *audit.Recorder
}

// NewCatalogUseCase construye el caso de uso de catálogo.
func NewCatalogUseCase(productRepo repository.ProductRepository, auditor *audit.Recorder) *CatalogUseCase {
	return &CatalogUseCase{productRepo: productRepo, auditor: auditor}
}

// validate aplica las reglas comunes de alta y edición.
func validate(name, unit string, categoryID int, safetyStock int64) error {
	if name == "" || unit == "" {
		return domain.ErrInvalidInput
	}
	if categoryID < 1 {
		return domain.ErrInvalidInput
	}
	if safetyStock < 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

// AddProduct crea un producto con un ID recién asignado.
func (uc *CatalogUseCase) AddProduct(actor entity.Session, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := authz.Authorize(actor.Role, authz.OpCrearProducto); err != nil {
		return nil, err
	}
	if err := validate(in.Name, in.Unit, in.CategoryID, in.SafetyStock); err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Spec:        in.Spec,
		Unit:        in.Unit,
		CategoryID:  in.CategoryID,
		SafetyStock: in.SafetyStock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	uc.auditor.Record(entity.AuditAltaProducto, fmt.Sprintf("alta de producto: %s", product.Name), actor.UserID)
	return toProductResponse(product), nil
}

// UpdateProduct reemplaza los campos mutables de un producto existente.
// Mismas validaciones que el alta; ErrNotFound si el ID no existe.
func (uc *CatalogUseCase) UpdateProduct(actor entity.Session, productID string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := authz.Authorize(actor.Role, authz.OpEditarProducto); err != nil {
		return nil, err
	}
	if err := validate(in.Name, in.Unit, in.CategoryID, in.SafetyStock); err != nil {
		return nil, err
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.Name = in.Name
	product.Spec = in.Spec
	product.Unit = in.Unit
	product.CategoryID = in.CategoryID
	product.SafetyStock = in.SafetyStock
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	uc.auditor.Record(entity.AuditEdicionProducto, fmt.Sprintf("edición de producto: %s", product.Name), actor.UserID)
	return toProductResponse(product), nil
}

// ListProducts devuelve el catálogo en orden de inserción.
func (uc *CatalogUseCase) ListProducts(actor entity.Session, page dto.PageRequest) ([]dto.ProductResponse, error) {
	if err := authz.Authorize(actor.Role, authz.OpVerProductos); err != nil {
		return nil, err
	}
	page.DefaultPage()
	products, err := uc.productRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Spec:        p.Spec,
		Unit:        p.Unit,
		CategoryID:  p.CategoryID,
		SafetyStock: p.SafetyStock,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
