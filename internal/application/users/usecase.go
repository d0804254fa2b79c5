package users

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/authz"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// UserUseCase administración de usuarios (solo admin).
type UserUseCase struct {
	userRepo repository.UserRepository
	auditor  *audit.Recorder
}

// NewUserUseCase construye el caso de uso de usuarios.
func NewUserUseCase(userRepo repository.UserRepository, auditor *audit.Recorder) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, auditor: auditor}
}

// AddUser crea un usuario: hashea la contraseña con bcrypt y persiste.
// Devuelve ErrDuplicate si el username ya existe.
func (uc *UserUseCase) AddUser(actor entity.Session, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := authz.Authorize(actor.Role, authz.OpCrearUsuario); err != nil {
		return nil, err
	}
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         in.Role,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	uc.auditor.Record(entity.AuditAltaUsuario, fmt.Sprintf("alta de usuario: %s (%s)", user.Username, user.Role), actor.UserID)
	return &dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}, nil
}

// ListUsers devuelve los usuarios registrados (sin hashes).
func (uc *UserUseCase) ListUsers(actor entity.Session, page dto.PageRequest) ([]dto.UserResponse, error) {
	if err := authz.Authorize(actor.Role, authz.OpVerUsuarios); err != nil {
		return nil, err
	}
	page.DefaultPage()
	list, err := uc.userRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, dto.UserResponse{
			ID:        u.ID,
			Username:  u.Username,
			Role:      u.Role,
			CreatedAt: u.CreatedAt,
		})
	}
	return out, nil
}
