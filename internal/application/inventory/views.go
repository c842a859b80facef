package inventory

import (
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/inventory"
)

const (
	deletedProductName = "Producto eliminado"
	noCategoryName     = "Sin categoría"
)

// ProductViews lista los productos aplicando búsqueda, categoría y nivel de stock.
func (r *Repository) ProductViews(f dto.ProductFilter) dto.ProductListResponse {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.productViews(f)
}

func (r *Repository) productViews(f dto.ProductFilter) dto.ProductListResponse {
	// cases.Caser no es seguro entre goroutines; uno por llamada.
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(f.Search))

	items := make([]dto.ProductResponse, 0, len(r.products))
	for _, p := range r.products {
		if needle != "" &&
			!strings.Contains(fold.String(p.Name), needle) &&
			!strings.Contains(fold.String(p.Code), needle) {
			continue
		}
		if f.CategoryID != "" && p.CategoryID != f.CategoryID {
			continue
		}
		if f.Status != "" && inventory.ClassifyStock(p.Stock, p.MinStock) != f.Status {
			continue
		}
		items = append(items, r.toProductResponse(p))
	}
	return dto.ProductListResponse{Items: items, Total: len(items)}
}

// ProductDetail devuelve el producto con su historial o nil si no existe.
func (r *Repository) ProductDetail(id string) *dto.ProductDetailResponse {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.productIndex(id)
	if i < 0 {
		return nil
	}
	p := r.products[i]
	out := &dto.ProductDetailResponse{
		ProductResponse: r.toProductResponse(p),
		Movements:       []dto.MovementResponse{},
	}
	for _, m := range r.movements {
		if m.ProductID == id {
			out.Movements = append(out.Movements, r.toMovementResponse(m))
		}
	}
	return out
}

// CategoryViews lista las categorías con su número de productos.
func (r *Repository) CategoryViews() []dto.CategoryResponse {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[string]int, len(r.categories))
	for _, p := range r.products {
		counts[p.CategoryID]++
	}
	out := make([]dto.CategoryResponse, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, dto.CategoryResponse{
			ID:           c.ID,
			Name:         c.Name,
			Description:  c.Description,
			CreatedAt:    c.CreatedAt,
			ProductCount: counts[c.ID],
		})
	}
	return out
}

// CategoryOptions pares id/nombre para los selectores de productos.
func (r *Repository) CategoryOptions() []dto.CategoryOption {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]dto.CategoryOption, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, dto.CategoryOption{ID: c.ID, Name: c.Name})
	}
	return out
}

// MovementViews historial filtrado, más reciente primero. To incluye el día completo.
func (r *Repository) MovementViews(f dto.MovementFilter) dto.MovementListResponse {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var until time.Time
	if f.To != nil {
		y, m, d := f.To.Date()
		until = time.Date(y, m, d, 0, 0, 0, 0, f.To.Location()).AddDate(0, 0, 1)
	}

	items := make([]dto.MovementResponse, 0, len(r.movements))
	for _, m := range r.movements {
		if f.Type != "" && m.Type != f.Type {
			continue
		}
		if f.ProductID != "" && m.ProductID != f.ProductID {
			continue
		}
		if f.From != nil && m.Date.Before(*f.From) {
			continue
		}
		if f.To != nil && !m.Date.Before(until) {
			continue
		}
		items = append(items, r.toMovementResponse(m))
	}
	return dto.MovementListResponse{Items: items, Total: len(items)}
}

func (r *Repository) toProductResponse(p entity.Product) dto.ProductResponse {
	status := inventory.ClassifyStock(p.Stock, p.MinStock)
	return dto.ProductResponse{
		ID:           p.ID,
		Code:         p.Code,
		Name:         p.Name,
		CategoryID:   p.CategoryID,
		CategoryName: r.categoryName(p.CategoryID),
		Description:  p.Description,
		Price:        p.Price,
		Stock:        p.Stock,
		MinStock:     p.MinStock,
		Status:       status,
		StatusLabel:  status.Label(),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (r *Repository) toMovementResponse(m entity.Movement) dto.MovementResponse {
	out := dto.MovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		ProductName: deletedProductName,
		Type:        m.Type,
		Quantity:    m.Quantity,
		Reason:      m.Reason,
		Notes:       m.Notes,
		User:        m.ActorID,
		UserName:    m.ActorName,
		Date:        m.Date,
	}
	if i := r.productIndex(m.ProductID); i >= 0 {
		out.ProductCode = r.products[i].Code
		out.ProductName = r.products[i].Name
	}
	return out
}

func (r *Repository) categoryName(id string) string {
	if i := r.categoryIndex(id); i >= 0 {
		return r.categories[i].Name
	}
	return noCategoryName
}
