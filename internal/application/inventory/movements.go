package inventory

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/inventory"
	"github.com/jhoicas/inventario-local/internal/infrastructure/storage"
)

// ListMovements devuelve una copia del historial, más reciente primero.
func (r *Repository) ListMovements() []entity.Movement {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.movements)
}

// RecordMovement ajusta el stock del producto y, solo si el ajuste procede, crea el movimiento.
// Stock y movimiento se persisten en la misma escritura: existen ambos o ninguno.
// Una salida mayor que el stock devuelve domain.ErrInsufficientStock sin cambiar nada.
func (r *Repository) RecordMovement(actor entity.User, in dto.RecordMovementRequest) (*entity.Movement, error) {
	if actor.Username == "" {
		return nil, domain.ErrNoSession
	}
	if strings.TrimSpace(in.ProductID) == "" {
		return nil, fmt.Errorf("%w: el producto es requerido", domain.ErrInvalidInput)
	}
	t, err := entity.ParseMovementType(string(in.Type))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrInvalidInput)
	}
	if in.Reason == "" {
		return nil, fmt.Errorf("%w: el motivo es requerido", domain.ErrInvalidInput)
	}
	if !t.AllowsReason(in.Reason) {
		return nil, fmt.Errorf("%w: motivo %q no válido para %s", domain.ErrInvalidInput, in.Reason, t)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.ready(); err != nil {
		return nil, err
	}

	i := r.productIndex(in.ProductID)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	product := r.products[i]
	stock, err := inventory.AdjustStock(product.Stock, in.Quantity, t)
	if err != nil {
		r.log.Debug().Str("product_id", product.ID).Int("stock", product.Stock).Int("quantity", in.Quantity).
			Msg("salida rechazada por stock insuficiente")
		return nil, err
	}
	product.Stock = stock
	product.UpdatedAt = r.now()

	mov := r.newMovement(actor, product.ID, t, in.Quantity, in.Reason, strings.TrimSpace(in.Notes))
	products := slices.Clone(r.products)
	products[i] = product
	movements := prepend(r.movements, mov)

	if err := r.persist(map[string]any{
		storage.KeyProducts:  products,
		storage.KeyMovements: movements,
	}); err != nil {
		r.log.Error().Str("product_id", product.ID).Msg("movimiento no persistido; stock sin cambios")
		return nil, err
	}
	r.products = products
	r.movements = movements

	r.log.Debug().
		Str("movement_id", mov.ID).
		Str("product_id", product.ID).
		Str("type", string(t)).
		Int("quantity", in.Quantity).
		Int("stock", product.Stock).
		Msg("movimiento registrado")
	return &mov, nil
}

func (r *Repository) newMovement(actor entity.User, productID string, t entity.MovementType, qty int, reason entity.MovementReason, notes string) entity.Movement {
	return entity.Movement{
		ID:        r.ids.NewID(),
		ProductID: productID,
		Type:      t,
		Quantity:  qty,
		Reason:    reason,
		Notes:     notes,
		ActorID:   actor.Username,
		ActorName: actor.Name,
		Date:      r.now(),
	}
}

// prepend devuelve una lista nueva con m al inicio; no modifica list.
func prepend(list []entity.Movement, m entity.Movement) []entity.Movement {
	out := make([]entity.Movement, 0, len(list)+1)
	out = append(out, m)
	return append(out, list...)
}
