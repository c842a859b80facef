// Package storage es el adaptador de persistencia: serializa valores a JSON sobre un
// repository.KVStore y absorbe cualquier fallo del almacén (lo registra y devuelve
// el valor por defecto o false).
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
	"github.com/jhoicas/inventario-local/pkg/logger"
)

// Los blobs guardan los importes como números JSON, igual que los escribe el navegador.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Storage adaptador síncrono: cada operación termina antes de devolver.
type Storage struct {
	kv      repository.KVStore
	log     *logger.Logger
	timeout time.Duration
}

// New construye el adaptador. timeout <= 0 significa sin límite por operación.
func New(kv repository.KVStore, log *logger.Logger, timeout time.Duration) *Storage {
	return &Storage{kv: kv, log: log.Component("storage"), timeout: timeout}
}

func (s *Storage) context() (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), s.timeout)
}

// Load lee la clave y la decodifica en T. Si no existe, no se puede leer o está corrupta
// devuelve def.
func Load[T any](s *Storage, key string, def T) T {
	ctx, cancel := s.context()
	defer cancel()

	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.Warn().Err(err).Str("key", key).Msg("error al leer del almacén")
		}
		return def
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("valor almacenado corrupto, se usa el valor por defecto")
		return def
	}
	return v
}

// Save serializa y guarda v bajo key.
func (s *Storage) Save(key string, v any) bool {
	raw, err := json.Marshal(v)
	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("error al serializar")
		return false
	}
	ctx, cancel := s.context()
	defer cancel()
	if err := s.kv.Set(ctx, key, raw); err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("error al guardar en el almacén")
		return false
	}
	return true
}

// SaveAll guarda todas las claves en una sola escritura atómica: o todas o ninguna.
func (s *Storage) SaveAll(entries map[string]any) bool {
	raws := make(map[string][]byte, len(entries))
	keys := make([]string, 0, len(entries))
	for key, v := range entries {
		raw, err := json.Marshal(v)
		if err != nil {
			s.log.Error().Err(err).Str("key", key).Msg("error al serializar")
			return false
		}
		raws[key] = raw
		keys = append(keys, key)
	}
	ctx, cancel := s.context()
	defer cancel()
	if err := s.kv.SetMany(ctx, raws); err != nil {
		s.log.Error().Err(err).Strs("keys", keys).Msg("error al guardar en el almacén")
		return false
	}
	return true
}

// Remove elimina la clave.
func (s *Storage) Remove(key string) bool {
	ctx, cancel := s.context()
	defer cancel()
	if err := s.kv.Delete(ctx, key); err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("error al eliminar del almacén")
		return false
	}
	return true
}
