package dto

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Todo se recalcula desde el estado actual en cada llamada.
type DashboardSummaryDTO struct {
	TotalProducts  int `json:"total_products"`
	TotalStock     int `json:"total_stock"`
	LowStockCount  int `json:"low_stock_count"`
	TotalMovements int `json:"total_movements"`

	LowStock        []LowStockDTO      `json:"low_stock"`        // stock ascendente
	MostActive      []ActiveProductDTO `json:"most_active"`      // por número de movimientos
	RecentMovements []MovementResponse `json:"recent_movements"` // más reciente primero
}

// ActiveProductDTO producto con su número de movimientos.
type ActiveProductDTO struct {
	ProductID     string `json:"product_id"`
	Code          string `json:"code"`
	Name          string `json:"name"`
	Stock         int    `json:"stock"`
	MovementCount int    `json:"movement_count"`
}

// LowStockDTO producto en nivel bajo con la cantidad sugerida para llegar a 2*minStock.
type LowStockDTO struct {
	ProductID         string `json:"product_id"`
	Code              string `json:"code"`
	Name              string `json:"name"`
	Stock             int    `json:"stock"`
	MinStock          int    `json:"min_stock"`
	SuggestedOrderQty int    `json:"suggested_order_qty"`
}

// LedgerMismatchDTO producto cuyo stock no coincide con la suma de sus movimientos.
type LedgerMismatchDTO struct {
	ProductID    string `json:"product_id"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	Stock        int    `json:"stock"`
	DerivedStock int    `json:"derived_stock"`
}
