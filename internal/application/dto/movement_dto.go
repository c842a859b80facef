package dto

import (
	"time"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// RecordMovementRequest body para POST /api/movements.
type RecordMovementRequest struct {
	ProductID string                `json:"product_id"`
	Type      entity.MovementType   `json:"type"`
	Quantity  int                   `json:"quantity"`
	Reason    entity.MovementReason `json:"reason"`
	Notes     string                `json:"notes"`
}

// MovementFilter filtros del historial; To incluye el día completo.
type MovementFilter struct {
	Type      entity.MovementType
	ProductID string
	From      *time.Time
	To        *time.Time
}

// MovementResponse movimiento con el nombre del producto resuelto.
type MovementResponse struct {
	ID          string                `json:"id"`
	ProductID   string                `json:"product_id"`
	ProductCode string                `json:"product_code"`
	ProductName string                `json:"product_name"` // "Producto eliminado" si ya no existe
	Type        entity.MovementType   `json:"type"`
	Quantity    int                   `json:"quantity"`
	Reason      entity.MovementReason `json:"reason"`
	Notes       string                `json:"notes"`
	User        string                `json:"user"`
	UserName    string                `json:"user_name"`
	Date        time.Time             `json:"date"`
}

// MovementListResponse historial filtrado.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
}

// MovementReasonsResponse catálogo de motivos de un tipo.
type MovementReasonsResponse struct {
	Type    entity.MovementType     `json:"type"`
	Reasons []entity.MovementReason `json:"reasons"`
}
