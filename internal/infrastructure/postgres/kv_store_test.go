package postgres_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-local/pkg/config"
)

// Requiere PostgreSQL real: DATABASE_URL=postgres://... go test ./internal/infrastructure/postgres
func TestPostgresKVStore_Ciclo(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	s, err := postgres.NewKVStore(ctx, pool)
	require.NoError(t, err)

	key := "test_" + uuid.NewString()
	_, err = s.Get(ctx, key)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, s.SetMany(ctx, map[string][]byte{key: []byte(`[{"id":"p1","stock":3}]`)}))
	got, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"p1","stock":3}]`, string(got))

	require.NoError(t, s.Set(ctx, key, []byte(`[]`)))
	got, err = s.Get(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(got))

	require.NoError(t, s.Delete(ctx, key))
	_, err = s.Get(ctx, key)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTxRunner_RollbackSiFallaElCallback(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	s, err := postgres.NewKVStore(ctx, pool)
	require.NoError(t, err)

	key := "test_" + uuid.NewString()
	errBoom := errors.New("falla a mitad de la transacción")
	err = postgres.NewTxRunner(pool).Run(ctx, func(q postgres.Querier) error {
		_, err := q.Exec(ctx, `INSERT INTO kv_store (key, value) VALUES ($1, '[]')`, key)
		require.NoError(t, err)
		return errBoom
	})
	assert.ErrorIs(t, err, errBoom)

	_, err = s.Get(ctx, key)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
