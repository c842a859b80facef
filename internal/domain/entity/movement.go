package entity

import (
	"fmt"
	"time"
)

// MovementType dirección de un movimiento de stock.
type MovementType string

// Tipos de movimiento (valores persistidos).
const (
	MovementTypeIn  MovementType = "entrada"
	MovementTypeOut MovementType = "salida"
)

// ParseMovementType convierte un string en MovementType; falla con cualquier otro valor.
func ParseMovementType(s string) (MovementType, error) {
	switch MovementType(s) {
	case MovementTypeIn, MovementTypeOut:
		return MovementType(s), nil
	}
	return "", fmt.Errorf("tipo de movimiento desconocido %q", s)
}

// MovementReason motivo de un movimiento; el conjunto válido depende del tipo.
type MovementReason string

// Motivos de entrada.
const (
	ReasonPurchase       MovementReason = "Compra"
	ReasonCustomerReturn MovementReason = "Devolución de cliente"
	ReasonAdjustment     MovementReason = "Ajuste de inventario"
	ReasonProduction     MovementReason = "Producción"
)

// Motivos de salida (ReasonAdjustment también aplica).
const (
	ReasonSale           MovementReason = "Venta"
	ReasonLoss           MovementReason = "Pérdida"
	ReasonSupplierReturn MovementReason = "Devolución a proveedor"
	ReasonShrinkage      MovementReason = "Merma"
)

// ReasonInitialStock solo lo genera el alta de un producto con stock inicial.
const ReasonInitialStock MovementReason = "Stock inicial"

var (
	inboundReasons  = []MovementReason{ReasonPurchase, ReasonCustomerReturn, ReasonAdjustment, ReasonProduction}
	outboundReasons = []MovementReason{ReasonSale, ReasonLoss, ReasonSupplierReturn, ReasonShrinkage, ReasonAdjustment}
)

// ReasonsFor devuelve el catálogo de motivos seleccionables para un tipo (copia).
func ReasonsFor(t MovementType) []MovementReason {
	var src []MovementReason
	switch t {
	case MovementTypeIn:
		src = inboundReasons
	case MovementTypeOut:
		src = outboundReasons
	}
	out := make([]MovementReason, len(src))
	copy(out, src)
	return out
}

// AllowsReason indica si el motivo es seleccionable para el tipo.
func (t MovementType) AllowsReason(r MovementReason) bool {
	for _, candidate := range ReasonsFor(t) {
		if candidate == r {
			return true
		}
	}
	return false
}

// Movement registro de auditoría inmutable; es el único mecanismo que cambia Product.Stock
// después del alta.
type Movement struct {
	ID        string         `json:"id"`
	ProductID string         `json:"productId"`
	Type      MovementType   `json:"type"`
	Quantity  int            `json:"quantity"`
	Reason    MovementReason `json:"reason"`
	Notes     string         `json:"notes"`
	ActorID   string         `json:"user"`
	ActorName string         `json:"userName"`
	Date      time.Time      `json:"date"`
}
