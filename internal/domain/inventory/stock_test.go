package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/inventory"
)

// Fronteras con minStock = 10: 10 bajo, 11 y 20 normal, 21 bueno.
func TestClassifyStock_Fronteras(t *testing.T) {
	assert.Equal(t, entity.StockLow, inventory.ClassifyStock(10, 10))
	assert.Equal(t, entity.StockNormal, inventory.ClassifyStock(11, 10))
	assert.Equal(t, entity.StockNormal, inventory.ClassifyStock(20, 10))
	assert.Equal(t, entity.StockGood, inventory.ClassifyStock(21, 10))
}

func TestClassifyStock_MinimoCero(t *testing.T) {
	assert.Equal(t, entity.StockLow, inventory.ClassifyStock(0, 0))
	assert.Equal(t, entity.StockGood, inventory.ClassifyStock(1, 0))
}

func TestAdjustStock_EntradaSumaSinCondicion(t *testing.T) {
	got, err := inventory.AdjustStock(0, 7, entity.MovementTypeIn)
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestAdjustStock_SalidaInsuficiente(t *testing.T) {
	got, err := inventory.AdjustStock(5, 6, entity.MovementTypeOut)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 5, got, "el stock no debe cambiar")
}

func TestAdjustStock_SalidaExacta(t *testing.T) {
	got, err := inventory.AdjustStock(5, 5, entity.MovementTypeOut)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestAdjustStock_CantidadInvalida(t *testing.T) {
	_, err := inventory.AdjustStock(5, 0, entity.MovementTypeIn)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = inventory.AdjustStock(5, 1, entity.MovementType("ajuste"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDeriveStock_IgnoraOtrosProductos(t *testing.T) {
	movs := []entity.Movement{
		{ProductID: "a", Type: entity.MovementTypeOut, Quantity: 3},
		{ProductID: "b", Type: entity.MovementTypeIn, Quantity: 100},
		{ProductID: "a", Type: entity.MovementTypeIn, Quantity: 10},
	}
	assert.Equal(t, 7, inventory.DeriveStock(movs, "a"))
	assert.Equal(t, 0, inventory.DeriveStock(movs, "zzz"))
}
