package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/application/inventory"
)

// CategoryHandler maneja las peticiones HTTP para Category (solo administrador).
type CategoryHandler struct {
	repo *inventory.Repository
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(repo *inventory.Repository) *CategoryHandler {
	return &CategoryHandler{repo: repo}
}

// List godoc
// @Summary      Listar categorías con su número de productos
// @Tags         categories
// @Produce      json
// @Success      200  {array}  dto.CategoryResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.repo.CategoryViews())
}

// GetByID GET /api/categories/:id
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	out := h.repo.GetCategory(c.Params("id"))
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "categoría no encontrada"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CategoryRequest  true  "name, description"
// @Success      201   {object}  entity.Category
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.repo.CreateCategory(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update PUT /api/categories/:id (sobrescribe nombre y descripción).
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.repo.UpdateCategory(c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar categoría
// @Tags         categories
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.repo.DeleteCategory(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "categoría eliminada"})
}
