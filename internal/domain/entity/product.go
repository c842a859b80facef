package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// Stock solo cambia mediante movimientos (ver Movement); nunca se asigna desde la presentación.
type Product struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"` // código único entre productos vivos
	Name        string          `json:"name"`
	CategoryID  string          `json:"category"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	MinStock    int             `json:"minStock"` // umbral de reorden
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
