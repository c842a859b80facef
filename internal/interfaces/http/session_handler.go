package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-local/internal/application/auth"
	"github.com/jhoicas/inventario-local/internal/application/dto"
)

// SessionHandler ingreso, salida y sesión actual.
type SessionHandler struct {
	session *auth.Session
}

// NewSessionHandler construye el handler.
func NewSessionHandler(session *auth.Session) *SessionHandler {
	return &SessionHandler{session: session}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.SessionResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/session [post]
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	in.Username = strings.TrimSpace(in.Username)
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "usuario y contraseña son requeridos"})
	}
	u, err := h.session.Login(in.Username, in.Password)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(auth.Describe(u))
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         session
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/session [delete]
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	h.session.Logout()
	return c.JSON(dto.MessageResponse{Message: "sesión cerrada"})
}

// Current godoc
// @Summary      Sesión actual
// @Tags         session
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/session [get]
func (h *SessionHandler) Current(c *fiber.Ctx) error {
	u := h.session.Current()
	if u == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NO_SESSION", Message: "no hay sesión activa"})
	}
	return c.JSON(auth.Describe(*u))
}
