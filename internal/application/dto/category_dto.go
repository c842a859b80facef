package dto

import "time"

// CategoryRequest entrada para crear o actualizar una categoría (sobrescribe ambos campos).
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoryResponse salida de una categoría con el número de productos que la usan.
type CategoryResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	ProductCount int       `json:"product_count"`
}
