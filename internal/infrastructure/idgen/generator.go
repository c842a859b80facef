// Package idgen genera identificadores únicos para entidades nuevas.
package idgen

import "github.com/google/uuid"

// Generator produce identificadores nuevos.
type Generator interface {
	NewID() string
}

// UUIDv7 genera UUID versión 7: prefijo de tiempo (ms) + sufijo aleatorio, ordenables por creación.
type UUIDv7 struct{}

// NewID devuelve un UUIDv7; si el generador falla cae a UUIDv4.
func (UUIDv7) NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Func adapta una función a Generator (tests con ids deterministas).
type Func func() string

func (f Func) NewID() string { return f() }
