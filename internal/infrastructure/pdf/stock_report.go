// Package pdf genera el reporte de existencias en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación │ usuario             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: productos / unidades / nivel bajo / movimientos   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Producto | Categoría | Stock | Mín | Valor │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL: valor del inventario                                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorLow     = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// StockReport datos del reporte.
type StockReport struct {
	Summary     dto.DashboardSummaryDTO
	Products    []dto.ProductResponse
	GeneratedAt time.Time
	GeneratedBy string
}

// ── Generator ─────────────────────────────────────────────────────────────────

// StockReportGenerator genera el reporte con Maroto v2.
type StockReportGenerator struct {
	lang language.Tag
}

// NewStockReportGenerator construye el generador; los importes se formatean según lang.
func NewStockReportGenerator(lang language.Tag) *StockReportGenerator {
	return &StockReportGenerator{lang: lang}
}

// Generate arma el PDF y devuelve sus bytes.
func (g *StockReportGenerator) Generate(_ context.Context, r StockReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de existencias", true).
		WithAuthor(r.GeneratedBy, true).
		Build()

	m := maroto.New(cfg)
	p := message.NewPrinter(g.lang)

	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(p, r.Summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	total := decimal.Zero
	for _, prod := range r.Products {
		value := prod.Price.Mul(decimal.NewFromInt(int64(prod.Stock)))
		total = total.Add(value)
		m.AddRows(productRow(p, prod, value))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(p, total))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(r StockReport) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("REPORTE DE EXISTENCIAS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+r.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(nonEmpty(r.GeneratedBy, "—"), props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func summaryRow(p *message.Printer, s dto.DashboardSummaryDTO) core.Row {
	cell := func(label string, v int) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(p.Sprintf("%d", v), props.Text{Style: fontstyle.Bold, Size: 12, Top: 5, Align: align.Center}),
		)
	}
	return row.New(14).Add(
		cell("Productos", s.TotalProducts),
		cell("Unidades en stock", s.TotalStock),
		cell("Nivel bajo", s.LowStockCount),
		cell("Movimientos", s.TotalMovements),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Código", 2, align.Left),
		h("Producto", 3, align.Left),
		h("Categoría", 2, align.Left),
		h("Stock", 1, align.Right),
		h("Mín.", 1, align.Right),
		h("Valor", 3, align.Right),
	)
}

func productRow(p *message.Printer, prod dto.ProductResponse, value decimal.Decimal) core.Row {
	style := props.Text{Size: 8, Top: 1, Left: 1}
	stockStyle := props.Text{Size: 8, Top: 1, Align: align.Right, Right: 1}
	if prod.Status == entity.StockLow {
		stockStyle.Style = fontstyle.Bold
		stockStyle.Color = colorLow
	}
	return row.New(7).Add(
		col.New(2).Add(text.New(prod.Code, style)),
		col.New(3).Add(text.New(prod.Name, style)),
		col.New(2).Add(text.New(prod.CategoryName, style)),
		col.New(1).Add(text.New(strconv.Itoa(prod.Stock), stockStyle)),
		col.New(1).Add(text.New(strconv.Itoa(prod.MinStock), props.Text{Size: 8, Top: 1, Align: align.Right, Right: 1})),
		col.New(3).Add(text.New(formatMoney(p, value), props.Text{Size: 8, Top: 1, Align: align.Right, Right: 1})),
	)
}

func totalRow(p *message.Printer, total decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("VALOR TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New(formatMoney(p, total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney importe con separadores de miles del idioma y dos decimales.
func formatMoney(p *message.Printer, d decimal.Decimal) string {
	return "$" + p.Sprint(number.Decimal(d.Round(2).InexactFloat64(), number.Scale(2)))
}
