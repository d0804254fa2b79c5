package auth

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login y logout.
// El estado de sesión es explícito (fila en la base) y viaja como valor:
// no existe ningún flag global de "usuario conectado".
type AuthUseCase struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	auditor     *audit.Recorder
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, auditor *audit.Recorder, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, sessionRepo: sessionRepo, auditor: auditor, jwtCfg: jwtCfg}
}

// Login verifica username/password con bcrypt, crea la sesión y genera el JWT.
// Credenciales incorrectas y usuario inexistente responden lo mismo
// (ErrUnauthorized) para no filtrar qué usuarios existen.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.FindByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	session := &entity.Session{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		CreatedAt: time.Now(),
	}
	if err := uc.sessionRepo.Create(session); err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, session.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	uc.auditor.Record(entity.AuditLogin, fmt.Sprintf("el usuario %s inició sesión", user.Username), user.ID)

	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:        user.ID,
			Username:  user.Username,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}

// Logout revoca la sesión: transición terminal. Cualquier petición posterior
// con el mismo token será rechazada por el middleware con 401.
func (uc *AuthUseCase) Logout(session entity.Session) error {
	if err := uc.sessionRepo.Revoke(session.ID); err != nil {
		return err
	}
	uc.auditor.Record(entity.AuditLogout, fmt.Sprintf("el usuario %s cerró sesión", session.Username), session.UserID)
	return nil
}

// ResolveSession valida que la sesión exista y siga activa (la usa el
// middleware HTTP en cada petición; el estado siempre se relee de la base).
func (uc *AuthUseCase) ResolveSession(sessionID string) (*entity.Session, error) {
	session, err := uc.sessionRepo.GetByID(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || !session.Active() {
		return nil, domain.ErrUnauthorized
	}
	return session, nil
}
