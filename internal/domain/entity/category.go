package entity

import "time"

// Category agrupa productos. No se puede eliminar mientras algún producto la referencie.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}
