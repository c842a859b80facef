package inventory

import (
	"fmt"

	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// ClassifyStock implementa la clasificación de tres niveles (servicio de dominio).
// LOW: stock <= minStock; NORMAL: minStock < stock <= 2*minStock; GOOD: stock > 2*minStock.
// Es la única implementación; dashboard, listados y detalle la usan.
func ClassifyStock(stock, minStock int) entity.StockStatus {
	switch {
	case stock <= minStock:
		return entity.StockLow
	case stock <= 2*minStock:
		return entity.StockNormal
	default:
		return entity.StockGood
	}
}

// IsLowStock atajo para ClassifyStock(...) == StockLow.
func IsLowStock(p entity.Product) bool {
	return ClassifyStock(p.Stock, p.MinStock) == entity.StockLow
}

// AdjustStock es la primitiva de mutación de stock.
// Entrada: suma sin condición. Salida: exige stock >= quantity, si no devuelve ErrInsufficientStock.
func AdjustStock(stock, quantity int, t entity.MovementType) (int, error) {
	if quantity <= 0 {
		return stock, fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrInvalidInput)
	}
	switch t {
	case entity.MovementTypeIn:
		return stock + quantity, nil
	case entity.MovementTypeOut:
		if stock < quantity {
			return stock, domain.ErrInsufficientStock
		}
		return stock - quantity, nil
	}
	return stock, fmt.Errorf("%w: tipo de movimiento %q", domain.ErrInvalidInput, t)
}

// DeriveStock reconstruye el stock de un producto desde cero sumando entradas y restando salidas.
func DeriveStock(movements []entity.Movement, productID string) int {
	total := 0
	for _, m := range movements {
		if m.ProductID != productID {
			continue
		}
		switch m.Type {
		case entity.MovementTypeIn:
			total += m.Quantity
		case entity.MovementTypeOut:
			total -= m.Quantity
		}
	}
	return total
}
