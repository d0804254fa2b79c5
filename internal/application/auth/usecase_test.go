package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/almacen-api/pkg/jwt"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

type fakeUserRepo struct {
	users []*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.users = append(r.users, u)
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	return r.users, nil
}

type fakeSessionRepo struct {
	sessions map[string]*entity.Session
}

func (r *fakeSessionRepo) Create(s *entity.Session) error {
	cp := *s
	r.sessions[s.ID] = &cp
	return nil
}

func (r *fakeSessionRepo) GetByID(id string) (*entity.Session, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSessionRepo) Revoke(id string) error {
	if s, ok := r.sessions[id]; ok && s.RevokedAt == nil {
		now := time.Now()
		s.RevokedAt = &now
	}
	return nil
}

type fakeAuditRepo struct {
	entries []*entity.AuditEntry
}

func (r *fakeAuditRepo) Create(e *entity.AuditEntry) error {
	r.entries = append(r.entries, e)
	return nil
}

func (r *fakeAuditRepo) List(limit, offset int) ([]*entity.AuditEntry, error) {
	return r.entries, nil
}

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "almacen-api-test"
)

func newUseCase(t *testing.T) (*auth.AuthUseCase, *fakeUserRepo, *fakeSessionRepo, *fakeAuditRepo) {
	t.Helper()
	userRepo := &fakeUserRepo{}
	sessionRepo := &fakeSessionRepo{sessions: map[string]*entity.Session{}}
	auditRepo := &fakeAuditRepo{}
	uc := auth.NewAuthUseCase(userRepo, sessionRepo, audit.NewRecorder(auditRepo, logger.Nop()), auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     testIssuer,
	})
	return uc, userRepo, sessionRepo, auditRepo
}

func seedUser(t *testing.T, repo *fakeUserRepo, username, password, role string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.User{
		ID:           "u-" + username,
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
	}
	require.NoError(t, repo.Create(u))
	return u
}

func TestLogin_OK(t *testing.T) {
	uc, userRepo, sessionRepo, auditRepo := newUseCase(t)
	seedUser(t, userRepo, "maria", "secreta123", entity.RoleGerente)

	out, err := uc.Login(dto.LoginRequest{Username: "maria", Password: "secreta123"})
	require.NoError(t, err)
	assert.Equal(t, "maria", out.User.Username)
	assert.Equal(t, entity.RoleGerente, out.User.Role)

	// El token debe llevar la sesión recién creada y el rol del usuario.
	userID, sessionID, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "u-maria", userID)
	assert.Equal(t, entity.RoleGerente, role)
	require.Contains(t, sessionRepo.sessions, sessionID)
	assert.True(t, sessionRepo.sessions[sessionID].Active())

	require.Len(t, auditRepo.entries, 1)
	assert.Equal(t, entity.AuditLogin, auditRepo.entries[0].ActionType)
}

// Usuario inexistente y contraseña incorrecta responden el mismo error.
func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, userRepo, _, auditRepo := newUseCase(t)
	seedUser(t, userRepo, "maria", "secreta123", entity.RoleGerente)

	_, err := uc.Login(dto.LoginRequest{Username: "maria", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Username: "nadie", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	assert.Empty(t, auditRepo.entries, "un login fallido no se registra en bitácora")
}

func TestLogin_SinUsuariosRegistrados(t *testing.T) {
	uc, _, _, _ := newUseCase(t)
	_, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "admin"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_CamposVacios(t *testing.T) {
	uc, _, _, _ := newUseCase(t)
	_, err := uc.Login(dto.LoginRequest{Username: "", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Login(dto.LoginRequest{Username: "x", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Logout es terminal: la sesión revocada deja de resolverse y la transición
// queda en bitácora.
func TestLogout_RevocaSesion(t *testing.T) {
	uc, userRepo, _, auditRepo := newUseCase(t)
	seedUser(t, userRepo, "maria", "secreta123", entity.RoleGerente)

	out, err := uc.Login(dto.LoginRequest{Username: "maria", Password: "secreta123"})
	require.NoError(t, err)
	_, sessionID, _, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)

	session, err := uc.ResolveSession(sessionID)
	require.NoError(t, err)
	require.True(t, session.Active())

	require.NoError(t, uc.Logout(*session))

	_, err = uc.ResolveSession(sessionID)
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "la sesión revocada no debe resolverse")

	require.Len(t, auditRepo.entries, 2)
	assert.Equal(t, entity.AuditLogout, auditRepo.entries[1].ActionType)
}

func TestResolveSession_Inexistente(t *testing.T) {
	uc, _, _, _ := newUseCase(t)
	_, err := uc.ResolveSession("no-such-session")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
