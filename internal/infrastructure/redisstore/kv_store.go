// Package redisstore implementa repository.KVStore sobre Redis.
package redisstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
	"github.com/jhoicas/inventario-local/pkg/config"
)

var _ repository.KVStore = (*KVStore)(nil)

// KVStore guarda cada blob como un string de Redis bajo prefix+key, sin TTL.
type KVStore struct {
	rdb    *redis.Client
	prefix string
}

// New abre el cliente y verifica la conexión con PING.
func New(ctx context.Context, cfg config.RedisConfig, prefix string) (*KVStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return NewWithClient(rdb, prefix), nil
}

// NewWithClient usa un cliente ya construido.
func NewWithClient(rdb *redis.Client, prefix string) *KVStore {
	return &KVStore{rdb: rdb, prefix: prefix}
}

func (s *KVStore) key(k string) string { return s.prefix + k }

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.rdb.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return b, nil
}

func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.rdb.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *KVStore) Delete(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

// SetMany envía todos los SET dentro de MULTI/EXEC.
func (s *KVStore) SetMany(ctx context.Context, entries map[string][]byte) error {
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for k, v := range entries {
			pipe.Set(ctx, s.key(k), v, 0)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis multi/exec: %w", err)
	}
	return nil
}

func (s *KVStore) Close() error {
	return s.rdb.Close()
}
