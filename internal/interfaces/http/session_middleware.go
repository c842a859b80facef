package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-local/internal/application/auth"
	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// LocalUser clave de c.Locals con la identidad activa.
const LocalUser = "user"

// sessionProvider contrato mínimo que necesita el middleware; lo implementa *auth.Session.
type sessionProvider interface {
	Current() *entity.User
}

// RequireSession exige una sesión activa y deja la identidad en c.Locals(LocalUser).
func RequireSession(s sessionProvider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u := s.Current()
		if u == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "NO_SESSION",
				Message: "inicie sesión para continuar",
			})
		}
		c.Locals(LocalUser, *u)
		return c.Next()
	}
}

// RequireView bloquea con 403 si el rol activo no puede abrir la vista.
// Debe usarse DESPUÉS de RequireSession.
func RequireView(v auth.View) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !auth.CanAccessView(GetUser(c).Role, v) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "su rol no tiene acceso a la vista '" + string(v) + "'",
			})
		}
		return c.Next()
	}
}

// RequireOperation bloquea con 403 si el rol activo no puede ejecutar la mutación.
func RequireOperation(op auth.Operation) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !auth.CanMutate(GetUser(c).Role, op) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "su rol no puede ejecutar '" + string(op) + "'",
			})
		}
		return c.Next()
	}
}

// GetUser devuelve la identidad activa (vacía si no pasó por RequireSession).
func GetUser(c *fiber.Ctx) entity.User {
	u, _ := c.Locals(LocalUser).(entity.User)
	return u
}
