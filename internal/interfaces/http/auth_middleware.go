package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/authz"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/pkg/jwt"
)

// Local key para la sesión en Fiber.
const LocalSession = "session"

// SessionResolver es el contrato mínimo que necesita el middleware para
// comprobar que la sesión del token sigue activa. Lo implementa
// *auth.AuthUseCase; la interfaz evita el import circular.
type SessionResolver interface {
	ResolveSession(sessionID string) (*entity.Session, error)
}

// AuthMiddleware valida el Bearer Token JWT, verifica contra la base que la
// sesión no fue revocada y deja la sesión en c.Locals. Un token de una sesión
// cerrada responde 401 aunque el JWT siga criptográficamente vigente.
func AuthMiddleware(jwtSecret string, resolver SessionResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		_, sessionID, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "token sin rol"})
		}
		session, err := resolver.ResolveSession(sessionID)
		if err != nil || session == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_CLOSED", Message: "sesión cerrada o inexistente"})
		}
		// El rol efectivo es el de la sesión persistida, no el del claim.
		c.Locals(LocalSession, *session)
		return c.Next()
	}
}

// RequirePermission autoriza la operación contra la tabla estática rol->operación.
// Debe usarse DESPUÉS de AuthMiddleware (necesita la sesión en Locals).
func RequirePermission(op authz.Operation) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := c.Locals(LocalSession).(entity.Session)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión no encontrada en el contexto"})
		}
		if !authz.Allowed(session.Role, op) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el rol no tiene permiso para esta operación"})
		}
		return c.Next()
	}
}

// GetSession devuelve la sesión del contexto (después del middleware de auth).
func GetSession(c *fiber.Ctx) entity.Session {
	v := c.Locals(LocalSession)
	if v == nil {
		return entity.Session{}
	}
	s, _ := v.(entity.Session)
	return s
}
