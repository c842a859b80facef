package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto. InitialStock nil equivale a 0.
type CreateProductRequest struct {
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	CategoryID   string          `json:"category_id"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	MinStock     int             `json:"min_stock"`
	InitialStock *int            `json:"initial_stock"`
}

// UpdateProductRequest entrada para actualizar un producto (sin Stock: solo cambia vía movimientos).
type UpdateProductRequest struct {
	Code        *string          `json:"code"`
	Name        *string          `json:"name"`
	CategoryID  *string          `json:"category_id"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	MinStock    *int             `json:"min_stock"`
}

// ProductFilter filtros de la vista de productos; campos vacíos no filtran.
type ProductFilter struct {
	Search     string             // nombre o código, sin distinguir mayúsculas
	CategoryID string
	Status     entity.StockStatus
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string             `json:"id"`
	Code         string             `json:"code"`
	Name         string             `json:"name"`
	CategoryID   string             `json:"category_id"`
	CategoryName string             `json:"category_name"`
	Description  string             `json:"description"`
	Price        decimal.Decimal    `json:"price"`
	Stock        int                `json:"stock"`
	MinStock     int                `json:"min_stock"`
	Status       entity.StockStatus `json:"status"`
	StatusLabel  string             `json:"status_label"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// ProductListResponse lista de productos filtrada.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// ProductDetailResponse producto con su historial de movimientos (más reciente primero).
type ProductDetailResponse struct {
	ProductResponse
	Movements []MovementResponse `json:"movements"`
}

// CategoryOption par id/nombre para los selectores de la vista de productos.
type CategoryOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
