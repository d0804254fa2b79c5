package audit

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/authz"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// Recorder escribe la bitácora del sistema. Las escrituras son best-effort:
// una bitácora caída nunca revierte una mutación ya confirmada del libro o
// del catálogo; el fallo se registra en el log y la operación continúa.
type Recorder struct {
	repo repository.AuditRepository
	log  *logger.Logger
}

// NewRecorder construye el caso de uso de bitácora.
func NewRecorder(repo repository.AuditRepository, log *logger.Logger) *Recorder {
	return &Recorder{repo: repo, log: log}
}

// Record persiste una entrada de bitácora. Nunca devuelve error al caller.
func (r *Recorder) Record(actionType, details, userID string) {
	entry := &entity.AuditEntry{
		ID:         uuid.New().String(),
		ActionType: actionType,
		Details:    details,
		UserID:     userID,
		CreatedAt:  time.Now(),
	}
	if err := r.repo.Create(entry); err != nil {
		r.log.Warn().Err(err).
			Str("action_type", actionType).
			Str("user_id", userID).
			Msg("no se pudo registrar la entrada de bitácora")
	}
}

// List devuelve la bitácora en orden cronológico inverso (requiere permiso).
func (r *Recorder) List(actor entity.Session, page dto.PageRequest) ([]dto.AuditEntryResponse, error) {
	if err := authz.Authorize(actor.Role, authz.OpVerBitacora); err != nil {
		return nil, err
	}
	page.DefaultPage()
	entries, err := r.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AuditEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.AuditEntryResponse{
			ID:         e.ID,
			ActionType: e.ActionType,
			Details:    e.Details,
			UserID:     e.UserID,
			CreatedAt:  e.CreatedAt,
		})
	}
	return out, nil
}
