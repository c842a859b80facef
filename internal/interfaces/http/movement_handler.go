package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/application/inventory"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// MovementHandler maneja el historial y el registro de movimientos (requiere sesión).
type MovementHandler struct {
	repo *inventory.Repository
}

// NewMovementHandler construye el handler.
func NewMovementHandler(repo *inventory.Repository) *MovementHandler {
	return &MovementHandler{repo: repo}
}

// List godoc
// @Summary      Historial de movimientos
// @Tags         movements
// @Produce      json
// @Param        type        query  string  false  "entrada | salida"
// @Param        product_id  query  string  false  "ID del producto"
// @Param        from        query  string  false  "YYYY-MM-DD"
// @Param        to          query  string  false  "YYYY-MM-DD (incluye el día completo)"
// @Success      200  {object}  dto.MovementListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	f := dto.MovementFilter{ProductID: c.Query("product_id")}
	if s := c.Query("type"); s != "" {
		t, err := entity.ParseMovementType(s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		f.Type = t
	}
	for _, p := range []struct {
		name string
		dst  **time.Time
	}{{"from", &f.From}, {"to", &f.To}} {
		s := c.Query(p.name)
		if s == "" {
			continue
		}
		d, err := time.ParseInLocation(dateLayout, s, time.Local)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: p.name + " debe tener formato YYYY-MM-DD"})
		}
		*p.dst = &d
	}
	return c.JSON(h.repo.MovementViews(f))
}

// Reasons godoc
// @Summary      Motivos seleccionables para un tipo de movimiento
// @Tags         movements
// @Produce      json
// @Param        type  query  string  true  "entrada | salida"
// @Success      200  {object}  dto.MovementReasonsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements/reasons [get]
func (h *MovementHandler) Reasons(c *fiber.Ctx) error {
	t, err := entity.ParseMovementType(c.Query("type"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.JSON(dto.MovementReasonsResponse{Type: t, Reasons: entity.ReasonsFor(t)})
}

// Record godoc
// @Summary      Registrar movimiento de inventario
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "product_id, type, quantity, reason, notes"
// @Success      201   {object}  entity.Movement
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.repo.RecordMovement(GetUser(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
