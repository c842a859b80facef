package inventory

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/infrastructure/storage"
)

// ListCategories devuelve una copia de las categorías.
func (r *Repository) ListCategories() []entity.Category {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.categories)
}

// GetCategory devuelve una copia de la categoría o nil.
func (r *Repository) GetCategory(id string) *entity.Category {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.categoryIndex(id); i >= 0 {
		c := r.categories[i]
		return &c
	}
	return nil
}

// CreateCategory da de alta una categoría.
func (r *Repository) CreateCategory(in dto.CategoryRequest) (*entity.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre es requerido", domain.ErrInvalidInput)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.ready(); err != nil {
		return nil, err
	}

	category := entity.Category{
		ID:          r.ids.NewID(),
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		CreatedAt:   r.now(),
	}
	categories := append(slices.Clone(r.categories), category)
	if err := r.persist(map[string]any{storage.KeyCategories: categories}); err != nil {
		return nil, err
	}
	r.categories = categories

	r.log.Debug().Str("category_id", category.ID).Msg("categoría creada")
	return &category, nil
}

// UpdateCategory sobrescribe nombre y descripción.
func (r *Repository) UpdateCategory(id string, in dto.CategoryRequest) (*entity.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre es requerido", domain.ErrInvalidInput)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.ready(); err != nil {
		return nil, err
	}

	i := r.categoryIndex(id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	category := r.categories[i]
	category.Name = name
	category.Description = strings.TrimSpace(in.Description)

	categories := slices.Clone(r.categories)
	categories[i] = category
	if err := r.persist(map[string]any{storage.KeyCategories: categories}); err != nil {
		return nil, err
	}
	r.categories = categories

	r.log.Debug().Str("category_id", id).Msg("categoría actualizada")
	return &category, nil
}

// DeleteCategory elimina la categoría si ningún producto la referencia;
// si alguno lo hace devuelve domain.ErrCategoryInUse y no cambia nada.
func (r *Repository) DeleteCategory(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.ready(); err != nil {
		return err
	}

	if slices.ContainsFunc(r.products, func(p entity.Product) bool { return p.CategoryID == id }) {
		return domain.ErrCategoryInUse
	}
	i := r.categoryIndex(id)
	if i < 0 {
		return domain.ErrNotFound
	}
	categories := slices.Delete(slices.Clone(r.categories), i, i+1)
	if err := r.persist(map[string]any{storage.KeyCategories: categories}); err != nil {
		return err
	}
	r.categories = categories

	r.log.Debug().Str("category_id", id).Msg("categoría eliminada")
	return nil
}
