// Package kvopen abre el almacén clave-valor elegido por configuración.
package kvopen

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-local/internal/domain/repository"
	"github.com/jhoicas/inventario-local/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-local/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-local/internal/infrastructure/redisstore"
	"github.com/jhoicas/inventario-local/pkg/config"
)

// Open conecta con el almacén de cfg.Store.Driver. El cierre devuelto libera conexiones y pools.
func Open(ctx context.Context, cfg *config.Config) (repository.KVStore, func(), error) {
	switch cfg.Store.Driver {
	case config.StoreMemory:
		kv := memory.NewKVStore()
		return kv, func() { _ = kv.Close() }, nil

	case config.StoreRedis:
		kv, err := redisstore.New(ctx, cfg.Redis, cfg.Store.Prefix)
		if err != nil {
			return nil, nil, fmt.Errorf("conexión a Redis: %w", err)
		}
		return kv, func() { _ = kv.Close() }, nil

	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		kv, err := postgres.NewKVStore(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		return kv, func() { _ = kv.Close(); pool.Close() }, nil
	}
	return nil, nil, fmt.Errorf("driver de almacén desconocido %q", cfg.Store.Driver)
}
