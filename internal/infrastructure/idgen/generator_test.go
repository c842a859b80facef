package idgen_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-local/internal/infrastructure/idgen"
)

func TestUUIDv7_UnicosYVersion7(t *testing.T) {
	gen := idgen.UUIDv7{}
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := gen.NewID()
		_, dup := seen[id]
		require.False(t, dup, "id repetido: %s", id)
		seen[id] = struct{}{}
	}

	parsed, err := uuid.Parse(gen.NewID())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}
