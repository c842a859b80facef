package entity

// StockStatus clasificación de tres niveles de un producto según (stock, minStock).
type StockStatus string

const (
	StockLow    StockStatus = "LOW"
	StockNormal StockStatus = "NORMAL"
	StockGood   StockStatus = "GOOD"
)

// Label etiqueta mostrada al usuario.
func (s StockStatus) Label() string {
	switch s {
	case StockLow:
		return "Bajo"
	case StockNormal:
		return "Normal"
	case StockGood:
		return "Bueno"
	}
	return string(s)
}

// ParseStockStatus acepta los valores del enum y los alias del filtro de la vista de productos.
func ParseStockStatus(s string) (StockStatus, bool) {
	switch s {
	case "LOW", "low":
		return StockLow, true
	case "NORMAL", "normal":
		return StockNormal, true
	case "GOOD", "good", "high":
		return StockGood, true
	}
	return "", false
}
