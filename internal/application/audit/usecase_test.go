package audit_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

type fakeAuditRepo struct {
	entries []*entity.AuditEntry
	failing bool
}

func (r *fakeAuditRepo) Create(e *entity.AuditEntry) error {
	if r.failing {
		return errors.New("bitácora caída")
	}
	r.entries = append(r.entries, e)
	return nil
}

// List devuelve las entradas del más reciente al más antiguo, como el
// adaptador real (ORDER BY created_at DESC).
func (r *fakeAuditRepo) List(limit, offset int) ([]*entity.AuditEntry, error) {
	out := make([]*entity.AuditEntry, 0, len(r.entries))
	for i := len(r.entries) - 1; i >= 0; i-- {
		out = append(out, r.entries[i])
	}
	return out, nil
}

var adminSession = entity.Session{ID: "s-admin", UserID: "u-admin", Username: "admin", Role: entity.RoleAdmin}

func TestRecord_Persiste(t *testing.T) {
	repo := &fakeAuditRepo{}
	rec := audit.NewRecorder(repo, logger.Nop())

	rec.Record(entity.AuditSalidaStock, "salida de 5 unidades", "u-op")

	require.Len(t, repo.entries, 1)
	e := repo.entries[0]
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, entity.AuditSalidaStock, e.ActionType)
	assert.Equal(t, "u-op", e.UserID)
	assert.WithinDuration(t, time.Now(), e.CreatedAt, time.Second)
}

// Una bitácora caída no debe tumbar la operación que la originó: Record
// no devuelve error y no entra en pánico.
func TestRecord_FalloNoSePropaga(t *testing.T) {
	repo := &fakeAuditRepo{failing: true}
	rec := audit.NewRecorder(repo, logger.Nop())

	assert.NotPanics(t, func() {
		rec.Record(entity.AuditLogin, "login", "u-1")
	})
	assert.Empty(t, repo.entries)
}

// Tres eventos en t1 < t2 < t3 vuelven t3, t2, t1.
func TestList_MasRecientePrimero(t *testing.T) {
	repo := &fakeAuditRepo{}
	rec := audit.NewRecorder(repo, logger.Nop())

	rec.Record(entity.AuditLogin, "primero", "u-1")
	rec.Record(entity.AuditAltaProducto, "segundo", "u-1")
	rec.Record(entity.AuditSalidaStock, "tercero", "u-1")

	out, err := rec.List(adminSession, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "tercero", out[0].Details)
	assert.Equal(t, "segundo", out[1].Details)
	assert.Equal(t, "primero", out[2].Details)
	assert.False(t, out[0].CreatedAt.Before(out[2].CreatedAt))
}

func TestList_SoloAdmin(t *testing.T) {
	repo := &fakeAuditRepo{}
	rec := audit.NewRecorder(repo, logger.Nop())
	rec.Record(entity.AuditLogin, "login", "u-1")

	_, err := rec.List(entity.Session{Role: entity.RoleGerente}, dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = rec.List(entity.Session{Role: entity.RoleOperador}, dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	out, err := rec.List(adminSession, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, out, 1)
}
