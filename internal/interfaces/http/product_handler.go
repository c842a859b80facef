package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/application/inventory"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// ProductHandler maneja las peticiones HTTP para Product (requiere sesión).
type ProductHandler struct {
	repo *inventory.Repository
}

// NewProductHandler construye el handler.
func NewProductHandler(repo *inventory.Repository) *ProductHandler {
	return &ProductHandler{repo: repo}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Param        search    query  string  false  "Nombre o código"
// @Param        category  query  string  false  "ID de categoría"
// @Param        status    query  string  false  "low | normal | good"
// @Success      200  {object}  dto.ProductListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	f := dto.ProductFilter{
		Search:     c.Query("search"),
		CategoryID: c.Query("category"),
	}
	if s := c.Query("status"); s != "" {
		status, ok := entity.ParseStockStatus(s)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status debe ser low, normal o good"})
		}
		f.Status = status
	}
	return c.JSON(h.repo.ProductViews(f))
}

// GetByID godoc
// @Summary      Detalle de producto con su historial
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out := h.repo.ProductDetail(c.Params("id"))
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// GetByCode godoc
// @Summary      Buscar producto por código
// @Tags         products
// @Produce      json
// @Param        code  path  string  true  "Código"
// @Success      200  {object}  entity.Product
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/code/{code} [get]
func (h *ProductHandler) GetByCode(c *fiber.Ctx) error {
	out := h.repo.GetProductByCode(c.Params("code"))
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// CategoryOptions opciones de categoría para el formulario de productos.
// GET /api/products/categories
func (h *ProductHandler) CategoryOptions(c *fiber.Ctx) error {
	return c.JSON(h.repo.CategoryOptions())
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  entity.Product
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.repo.CreateProduct(GetUser(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a actualizar"
// @Success      200   {object}  entity.Product
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.repo.UpdateProduct(c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.repo.DeleteProduct(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "producto eliminado"})
}
