package repository

import "context"

// KVStore define el puerto de persistencia clave-valor (DIP).
// Los valores son blobs opacos; la serialización es responsabilidad del adaptador de persistencia.
type KVStore interface {
	// Get devuelve domain.ErrNotFound si la clave no existe.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete no falla si la clave no existe.
	Delete(ctx context.Context, key string) error
	// SetMany escribe todas las claves o ninguna.
	SetMany(ctx context.Context, entries map[string][]byte) error
	Close() error
}
