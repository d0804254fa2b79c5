package users_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/users"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

type fakeUserRepo struct {
	users []*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return domain.ErrDuplicate
		}
	}
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

var (
	adminSession    = entity.Session{ID: "s-admin", UserID: "u-admin", Username: "admin", Role: entity.RoleAdmin}
	gerenteSession  = entity.Session{ID: "s-ger", UserID: "u-ger", Username: "gerente", Role: entity.RoleGerente}
	operadorSession = entity.Session{ID: "s-op", UserID: "u-op", Username: "operador", Role: entity.RoleOperador}
)

func newUseCase() (*users.UserUseCase, *fakeUserRepo, *fakeAuditRepo) {
	userRepo := &fakeUserRepo{}
	auditRepo := &fakeAuditRepo{}
	return users.NewUserUseCase(userRepo, audit.NewRecorder(auditRepo, logger.Nop())), userRepo, auditRepo
}

func TestAddUser_OK(t *testing.T) {
	uc, repo, auditRepo := newUseCase()

	out, err := uc.AddUser(adminSession, dto.CreateUserRequest{
		Username: "pedro",
		Password: "clave123",
		Role:     entity.RoleOperador,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "pedro", out.Username)
	assert.Equal(t, entity.RoleOperador, out.Role)

	// La contraseña se guarda hasheada, nunca en claro.
	require.Len(t, repo.users, 1)
	stored := repo.users[0]
	assert.NotEqual(t, "clave123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("clave123")))

	require.Len(t, auditRepo.entries, 1)
	assert.Equal(t, entity.AuditAltaUsuario, auditRepo.entries[0].ActionType)
	assert.Equal(t, adminSession.UserID, auditRepo.entries[0].UserID)
}

func TestAddUser_SoloAdmin(t *testing.T) {
	uc, repo, _ := newUseCase()

	for _, actor := range []entity.Session{gerenteSession, operadorSession} {
		_, err := uc.AddUser(actor, dto.CreateUserRequest{
			Username: "pedro",
			Password: "clave123",
			Role:     entity.RoleOperador,
		})
		assert.ErrorIs(t, err, domain.ErrForbidden, "rol %s no debe crear usuarios", actor.Role)
	}
	assert.Empty(t, repo.users)
}

func TestAddUser_Validaciones(t *testing.T) {
	uc, _, _ := newUseCase()

	cases := []struct {
		name string
		in   dto.CreateUserRequest
	}{
		{"username vacío", dto.CreateUserRequest{Username: "", Password: "x", Role: entity.RoleOperador}},
		{"password vacío", dto.CreateUserRequest{Username: "pedro", Password: "", Role: entity.RoleOperador}},
		{"rol desconocido", dto.CreateUserRequest{Username: "pedro", Password: "x", Role: "supervisor"}},
		{"rol vacío", dto.CreateUserRequest{Username: "pedro", Password: "x", Role: ""}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.AddUser(adminSession, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestAddUser_UsernameDuplicado(t *testing.T) {
	uc, _, _ := newUseCase()

	_, err := uc.AddUser(adminSession, dto.CreateUserRequest{Username: "pedro", Password: "a", Role: entity.RoleOperador})
	require.NoError(t, err)

	_, err = uc.AddUser(adminSession, dto.CreateUserRequest{Username: "pedro", Password: "b", Role: entity.RoleGerente})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestListUsers_SinHashes(t *testing.T) {
	uc, repo, _ := newUseCase()
	repo.users = append(repo.users, &entity.User{
		ID: "u-1", Username: "maria", PasswordHash: "$2a$10$hash", Role: entity.RoleGerente, CreatedAt: time.Now(),
	})

	list, err := uc.ListUsers(adminSession, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "maria", list[0].Username)
}

func TestListUsers_SoloAdmin(t *testing.T) {
	uc, _, _ := newUseCase()
	_, err := uc.ListUsers(operadorSession, dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
