package redisstore_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/infrastructure/redisstore"
	"github.com/jhoicas/inventario-local/pkg/config"
)

// Requiere un Redis real: REDIS_ADDR=localhost:6379 go test ./internal/infrastructure/redisstore
func newStore(t *testing.T) *redisstore.KVStore {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR no definido")
	}
	prefix := "test:" + uuid.NewString() + ":"
	s, err := redisstore.New(context.Background(), config.RedisConfig{Addr: addr}, prefix)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRedisKVStore_Ciclo(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	_, err := s.Get(ctx, "inventory_products")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, s.SetMany(ctx, map[string][]byte{
		"inventory_products":  []byte(`[]`),
		"inventory_movements": []byte(`[{"id":"m1"}]`),
	}))
	got, err := s.Get(ctx, "inventory_movements")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"m1"}]`, string(got))

	require.NoError(t, s.Delete(ctx, "inventory_movements"))
	require.NoError(t, s.Delete(ctx, "inventory_products"))
	_, err = s.Get(ctx, "inventory_movements")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
