package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/application/inventory"
	"github.com/jhoicas/inventario-local/internal/infrastructure/pdf"
)

// stockReporter lo implementa *pdf.StockReportGenerator.
type stockReporter interface {
	Generate(ctx context.Context, r pdf.StockReport) ([]byte, error)
}

// DashboardHandler maneja los endpoints del tablero (solo administrador).
type DashboardHandler struct {
	repo   *inventory.Repository
	report stockReporter
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(repo *inventory.Repository, report stockReporter) *DashboardHandler {
	return &DashboardHandler{repo: repo, report: report}
}

// GetSummary devuelve el tablero completo.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (totales, low_stock[5], most_active[5], recent_movements[10]).
// Todo se recalcula en cada llamada.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	return c.JSON(h.repo.Summary())
}

// LowStock GET /api/dashboard/low-stock?limit=N (por defecto todos).
func (h *DashboardHandler) LowStock(c *fiber.Ctx) error {
	return c.JSON(h.repo.LowStockProducts(c.QueryInt("limit", -1)))
}

// LedgerCheck GET /api/dashboard/ledger-check: productos cuyo stock no cuadra con su historial.
func (h *DashboardHandler) LedgerCheck(c *fiber.Ctx) error {
	return c.JSON(h.repo.LedgerCheck())
}

// StockReport godoc
// @Summary      Reporte de existencias en PDF
// @Tags         dashboard
// @Produce      application/pdf
// @Success      200
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/stock.pdf [get]
func (h *DashboardHandler) StockReport(c *fiber.Ctx) error {
	summary, products := h.repo.StockReport()
	out, err := h.report.Generate(c.UserContext(), pdf.StockReport{
		Summary:     summary,
		Products:    products,
		GeneratedAt: time.Now(),
		GeneratedBy: GetUser(c).Name,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="existencias.pdf"`)
	return c.Send(out)
}
