package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/application/dto"
)

// AuditHandler consulta de la bitácora (protegido, solo admin).
type AuditHandler struct {
	uc *audit.Recorder
}

// NewAuditHandler construye el handler.
func NewAuditHandler(uc *audit.Recorder) *AuditHandler {
	return &AuditHandler{uc: uc}
}

// List godoc
// @Summary      Bitácora del sistema (más recientes primero)
// @Tags         audit
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"
// @Param        offset  query  int  false  "Offset"
// @Success      200  {array}  dto.AuditEntryResponse
// @Router       /api/audit [get]
func (h *AuditHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit"), Offset: c.QueryInt("offset")}
	out, err := h.uc.List(GetSession(c), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
