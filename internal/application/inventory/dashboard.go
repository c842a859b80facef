package inventory

import (
	"sort"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/inventory"
)

// Tamaños de las listas del tablero.
const (
	DashboardLowStockLimit   = 5
	DashboardMostActiveLimit = 5
	DashboardRecentLimit     = 10
)

// TotalProducts número de productos.
func (r *Repository) TotalProducts() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.products)
}

// TotalStock suma del stock de todos los productos.
func (r *Repository) TotalStock() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.totalStock()
}

// LowStockCount productos en nivel LOW.
func (r *Repository) LowStockCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lowStockCount()
}

// TotalMovements número de movimientos registrados.
func (r *Repository) TotalMovements() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.movements)
}

// TopProducts hasta n productos existentes con más movimientos, de mayor a menor.
// Los movimientos de productos eliminados no cuentan; los empates conservan el orden
// de primera aparición en el historial.
func (r *Repository) TopProducts(n int) []dto.ActiveProductDTO {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.topProducts(n)
}

// RecentMovements los n movimientos más recientes.
func (r *Repository) RecentMovements(n int) []dto.MovementResponse {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.recentMovements(n)
}

// LowStockProducts hasta n productos en nivel LOW, stock ascendente, con la cantidad
// sugerida para llegar a 2*minStock.
func (r *Repository) LowStockProducts(n int) []dto.LowStockDTO {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lowStockProducts(n)
}

// Summary arma el tablero completo bajo una sola lectura consistente.
func (r *Repository) Summary() dto.DashboardSummaryDTO {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.summary()
}

func (r *Repository) summary() dto.DashboardSummaryDTO {
	return dto.DashboardSummaryDTO{
		TotalProducts:   len(r.products),
		TotalStock:      r.totalStock(),
		LowStockCount:   r.lowStockCount(),
		TotalMovements:  len(r.movements),
		LowStock:        r.lowStockProducts(DashboardLowStockLimit),
		MostActive:      r.topProducts(DashboardMostActiveLimit),
		RecentMovements: r.recentMovements(DashboardRecentLimit),
	}
}

// StockReport devuelve el tablero y la lista completa de productos tomados bajo la misma
// lectura, para que el reporte no mezcle dos estados distintos.
func (r *Repository) StockReport() (dto.DashboardSummaryDTO, []dto.ProductResponse) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.summary(), r.productViews(dto.ProductFilter{}).Items
}

// LedgerCheck compara el stock de cada producto con el derivado de su historial.
// Devuelve solo los que no coinciden.
func (r *Repository) LedgerCheck() []dto.LedgerMismatchDTO {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []dto.LedgerMismatchDTO{}
	for _, p := range r.products {
		derived := inventory.DeriveStock(r.movements, p.ID)
		if derived == p.Stock {
			continue
		}
		out = append(out, dto.LedgerMismatchDTO{
			ProductID:    p.ID,
			Code:         p.Code,
			Name:         p.Name,
			Stock:        p.Stock,
			DerivedStock: derived,
		})
	}
	return out
}

func (r *Repository) totalStock() int {
	total := 0
	for _, p := range r.products {
		total += p.Stock
	}
	return total
}

func (r *Repository) lowStockCount() int {
	count := 0
	for _, p := range r.products {
		if inventory.IsLowStock(p) {
			count++
		}
	}
	return count
}

func (r *Repository) topProducts(n int) []dto.ActiveProductDTO {
	counts := map[string]int{}
	order := []string{}
	for _, m := range r.movements {
		if r.productIndex(m.ProductID) < 0 {
			continue
		}
		if counts[m.ProductID] == 0 {
			order = append(order, m.ProductID)
		}
		counts[m.ProductID]++
	}
	sort.SliceStable(order, func(i, j int) bool { return counts[order[i]] > counts[order[j]] })
	if n >= 0 && len(order) > n {
		order = order[:n]
	}

	out := make([]dto.ActiveProductDTO, 0, len(order))
	for _, id := range order {
		p := r.products[r.productIndex(id)]
		out = append(out, dto.ActiveProductDTO{
			ProductID:     p.ID,
			Code:          p.Code,
			Name:          p.Name,
			Stock:         p.Stock,
			MovementCount: counts[id],
		})
	}
	return out
}

func (r *Repository) recentMovements(n int) []dto.MovementResponse {
	list := r.movements
	if n >= 0 && len(list) > n {
		list = list[:n]
	}
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, r.toMovementResponse(m))
	}
	return out
}

func (r *Repository) lowStockProducts(n int) []dto.LowStockDTO {
	low := make([]entity.Product, 0)
	for _, p := range r.products {
		if inventory.IsLowStock(p) {
			low = append(low, p)
		}
	}
	sort.SliceStable(low, func(i, j int) bool { return low[i].Stock < low[j].Stock })
	if n >= 0 && len(low) > n {
		low = low[:n]
	}

	out := make([]dto.LowStockDTO, 0, len(low))
	for _, p := range low {
		out = append(out, dto.LowStockDTO{
			ProductID:         p.ID,
			Code:              p.Code,
			Name:              p.Name,
			Stock:             p.Stock,
			MinStock:          p.MinStock,
			SuggestedOrderQty: suggestedOrderQty(p),
		})
	}
	return out
}

// suggestedOrderQty lo que falta para llegar a 2*minStock, el tope de NORMAL; nunca negativo.
// Con minStock 0 el objetivo es 1, lo justo para salir de LOW.
func suggestedOrderQty(p entity.Product) int {
	target := max(2*p.MinStock, p.MinStock+1)
	if q := target - p.Stock; q > 0 {
		return q
	}
	return 0
}
