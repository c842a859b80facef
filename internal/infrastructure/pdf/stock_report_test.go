package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/infrastructure/pdf"
)

func TestStockReport_GeneraPDF(t *testing.T) {
	g := pdf.NewStockReportGenerator(language.Spanish)
	out, err := g.Generate(context.Background(), pdf.StockReport{
		Summary: dto.DashboardSummaryDTO{TotalProducts: 2, TotalStock: 25, LowStockCount: 1, TotalMovements: 3},
		Products: []dto.ProductResponse{
			{Code: "P-001", Name: "Lápiz", CategoryName: "Oficina", Price: decimal.RequireFromString("1500.5"), Stock: 20, MinStock: 5, Status: entity.StockGood},
			{Code: "P-002", Name: "Café", CategoryName: "Sin categoría", Price: decimal.NewFromInt(12000), Stock: 5, MinStock: 10, Status: entity.StockLow},
		},
		GeneratedAt: time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC),
		GeneratedBy: "Administrador",
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestStockReport_SinProductos(t *testing.T) {
	out, err := pdf.NewStockReportGenerator(language.Spanish).Generate(context.Background(), pdf.StockReport{})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
