// Package memory implementa repository.KVStore en memoria del proceso.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
)

var _ repository.KVStore = (*KVStore)(nil)

// KVStore almacén en memoria; los valores se copian al entrar y al salir.
type KVStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewKVStore construye un almacén vacío.
func NewKVStore() *KVStore {
	return &KVStore{data: make(map[string][]byte)}
}

func (s *KVStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return clone(v), nil
}

func (s *KVStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = clone(value)
	return nil
}

func (s *KVStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// SetMany aplica todas las escrituras bajo el mismo lock.
func (s *KVStore) SetMany(_ context.Context, entries map[string][]byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range entries {
		s.data[k] = clone(v)
	}
	return nil
}

func (s *KVStore) Close() error { return nil }

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
