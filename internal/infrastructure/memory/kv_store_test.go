package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/infrastructure/memory"
)

func TestKVStore_GetInexistente(t *testing.T) {
	s := memory.NewKVStore()
	_, err := s.Get(context.Background(), "nada")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestKVStore_SetCopiaElValor(t *testing.T) {
	ctx := context.Background()
	s := memory.NewKVStore()
	v := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", v))
	v[0] = 'z'

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestKVStore_SetManyYDelete(t *testing.T) {
	ctx := context.Background()
	s := memory.NewKVStore()
	require.NoError(t, s.SetMany(ctx, map[string][]byte{"a": []byte("1"), "b": []byte("2")}))

	got, err := s.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "2", string(got))

	require.NoError(t, s.Delete(ctx, "a"))
	require.NoError(t, s.Delete(ctx, "a"), "borrar dos veces no falla")
	_, err = s.Get(ctx, "a")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
