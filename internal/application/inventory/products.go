package inventory

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/inventory"
	"github.com/jhoicas/inventario-local/internal/infrastructure/storage"
)

const initialStockNote = "Producto creado con stock inicial"

// ListProducts devuelve una copia de los productos en orden de alta.
func (r *Repository) ListProducts() []entity.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.products)
}

// GetProduct devuelve una copia del producto o nil si no existe.
func (r *Repository) GetProduct(id string) *entity.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.productIndex(id); i >= 0 {
		p := r.products[i]
		return &p
	}
	return nil
}

// GetProductByCode devuelve una copia del producto con ese código o nil.
func (r *Repository) GetProductByCode(code string) *entity.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.productIndexByCode(strings.TrimSpace(code)); i >= 0 {
		p := r.products[i]
		return &p
	}
	return nil
}

// CreateProduct da de alta un producto. El producto nace con stock 0; si hay stock inicial se
// aplica como un movimiento de entrada "Stock inicial" a nombre de actor, y producto y
// movimiento se persisten juntos.
func (r *Repository) CreateProduct(actor entity.User, in dto.CreateProductRequest) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.ready(); err != nil {
		return nil, err
	}

	code := strings.TrimSpace(in.Code)
	name := strings.TrimSpace(in.Name)
	if code == "" || name == "" {
		return nil, fmt.Errorf("%w: código y nombre son requeridos", domain.ErrInvalidInput)
	}
	if err := r.validateCategory(in.CategoryID); err != nil {
		return nil, err
	}
	if err := validateAmounts(in.Price, in.MinStock); err != nil {
		return nil, err
	}
	initial := 0
	if in.InitialStock != nil {
		initial = *in.InitialStock
	}
	if initial < 0 {
		return nil, fmt.Errorf("%w: el stock inicial no puede ser negativo", domain.ErrInvalidInput)
	}
	if initial > 0 && actor.Username == "" {
		return nil, domain.ErrNoSession
	}
	if r.productIndexByCode(code) >= 0 {
		return nil, fmt.Errorf("%w: ya existe un producto con el código %q", domain.ErrDuplicate, code)
	}

	now := r.now()
	product := entity.Product{
		ID:          r.ids.NewID(),
		Code:        code,
		Name:        name,
		CategoryID:  in.CategoryID,
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		MinStock:    in.MinStock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	entries := map[string]any{}
	movements := r.movements
	if initial > 0 {
		stock, err := inventory.AdjustStock(product.Stock, initial, entity.MovementTypeIn)
		if err != nil {
			return nil, err
		}
		product.Stock = stock
		mov := r.newMovement(actor, product.ID, entity.MovementTypeIn, initial, entity.ReasonInitialStock, initialStockNote)
		movements = prepend(r.movements, mov)
		entries[storage.KeyMovements] = movements
	}
	products := append(slices.Clone(r.products), product)
	entries[storage.KeyProducts] = products

	if err := r.persist(entries); err != nil {
		r.log.Error().Str("code", code).Msg("alta de producto no persistida")
		return nil, err
	}
	r.products = products
	r.movements = movements

	r.log.Debug().Str("product_id", product.ID).Str("code", code).Int("stock", product.Stock).Msg("producto creado")
	return &product, nil
}

// UpdateProduct sobrescribe los campos editables presentes en in. Stock nunca se toca.
// Devuelve domain.ErrNotFound si el id no existe.
func (r *Repository) UpdateProduct(id string, in dto.UpdateProductRequest) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.ready(); err != nil {
		return nil, err
	}

	i := r.productIndex(id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	product := r.products[i]

	if in.Code != nil {
		code := strings.TrimSpace(*in.Code)
		if code == "" {
			return nil, fmt.Errorf("%w: el código es requerido", domain.ErrInvalidInput)
		}
		if j := r.productIndexByCode(code); j >= 0 && j != i {
			return nil, fmt.Errorf("%w: ya existe un producto con el código %q", domain.ErrDuplicate, code)
		}
		product.Code = code
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: el nombre es requerido", domain.ErrInvalidInput)
		}
		product.Name = name
	}
	if in.CategoryID != nil {
		if err := r.validateCategory(*in.CategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = *in.CategoryID
	}
	if in.Description != nil {
		product.Description = strings.TrimSpace(*in.Description)
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.MinStock != nil {
		product.MinStock = *in.MinStock
	}
	if err := validateAmounts(product.Price, product.MinStock); err != nil {
		return nil, err
	}
	product.UpdatedAt = r.now()

	products := slices.Clone(r.products)
	products[i] = product
	if err := r.persist(map[string]any{storage.KeyProducts: products}); err != nil {
		return nil, err
	}
	r.products = products

	r.log.Debug().Str("product_id", id).Msg("producto actualizado")
	return &product, nil
}

// DeleteProduct elimina el producto. Sus movimientos quedan como referencias huérfanas.
func (r *Repository) DeleteProduct(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.ready(); err != nil {
		return err
	}

	i := r.productIndex(id)
	if i < 0 {
		return domain.ErrNotFound
	}
	products := slices.Delete(slices.Clone(r.products), i, i+1)
	if err := r.persist(map[string]any{storage.KeyProducts: products}); err != nil {
		return err
	}
	r.products = products

	r.log.Debug().Str("product_id", id).Msg("producto eliminado")
	return nil
}

func (r *Repository) validateCategory(id string) error {
	if id == "" {
		return fmt.Errorf("%w: la categoría es requerida", domain.ErrInvalidInput)
	}
	if r.categoryIndex(id) < 0 {
		return fmt.Errorf("%w: la categoría %q no existe", domain.ErrInvalidInput, id)
	}
	return nil
}

func validateAmounts(price decimal.Decimal, minStock int) error {
	if price.IsNegative() {
		return fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
	}
	if minStock < 0 {
		return fmt.Errorf("%w: el stock mínimo no puede ser negativo", domain.ErrInvalidInput)
	}
	return nil
}
