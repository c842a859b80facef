// Package inventory contiene el Repositorio de Inventario: dueño de las colecciones de
// productos, categorías y movimientos en memoria, garante de sus invariantes y único
// punto que escribe a través del adaptador de persistencia.
package inventory

import (
	"slices"
	"sync"
	"time"

	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/infrastructure/idgen"
	"github.com/jhoicas/inventario-local/internal/infrastructure/storage"
	"github.com/jhoicas/inventario-local/pkg/logger"
)

// Repository se construye una vez por proceso y se pasa por referencia a quien lo use.
//
// Cada mutación calcula el estado siguiente sobre copias, lo persiste y solo entonces lo
// publica en memoria; si la escritura falla devuelve domain.ErrPersistence y nada cambia.
// El mutex convierte RecordMovement en una sola sección crítica
// (verificación de stock + mutación + alta del movimiento + escritura).
type Repository struct {
	mu          sync.RWMutex
	store       *storage.Storage
	ids         idgen.Generator
	now         func() time.Time
	log         *logger.Logger
	initialized bool

	products   []entity.Product
	categories []entity.Category
	movements  []entity.Movement // más reciente primero
}

// Option configura el repositorio.
type Option func(*Repository)

// WithIDGenerator reemplaza el generador de ids (por defecto UUIDv7).
func WithIDGenerator(g idgen.Generator) Option {
	return func(r *Repository) { r.ids = g }
}

// WithClock reemplaza el reloj (por defecto time.Now).
func WithClock(now func() time.Time) Option {
	return func(r *Repository) { r.now = now }
}

// NewRepository construye el repositorio; hay que llamar a Initialize antes de usarlo.
func NewRepository(store *storage.Storage, log *logger.Logger, opts ...Option) *Repository {
	r := &Repository{
		store:      store,
		ids:        idgen.UUIDv7{},
		now:        time.Now,
		log:        log.Component("inventory"),
		products:   []entity.Product{},
		categories: []entity.Category{},
		movements:  []entity.Movement{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Initialize carga los tres blobs y, si no hay categorías, siembra las cinco por defecto.
// Solo puede ejecutarse una vez.
func (r *Repository) Initialize() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.initialized {
		return domain.ErrAlreadyInitialized
	}

	r.products = storage.Load(r.store, storage.KeyProducts, []entity.Product{})
	r.categories = storage.Load(r.store, storage.KeyCategories, []entity.Category{})
	r.movements = storage.Load(r.store, storage.KeyMovements, []entity.Movement{})
	if r.products == nil {
		r.products = []entity.Product{}
	}
	if r.movements == nil {
		r.movements = []entity.Movement{}
	}

	if len(r.categories) == 0 {
		r.categories = r.defaultCategories()
		if !r.store.Save(storage.KeyCategories, r.categories) {
			r.log.Warn().Msg("no se pudieron guardar las categorías por defecto; quedan solo en memoria")
		}
	}

	r.initialized = true
	r.log.Info().
		Int("products", len(r.products)).
		Int("categories", len(r.categories)).
		Int("movements", len(r.movements)).
		Msg("inventario cargado")
	return nil
}

func (r *Repository) defaultCategories() []entity.Category {
	now := r.now()
	seed := []struct{ name, description string }{
		{"Electrónica", "Productos electrónicos y tecnológicos"},
		{"Alimentos", "Productos alimenticios"},
		{"Bebidas", "Todo tipo de bebidas"},
		{"Limpieza", "Productos de limpieza e higiene"},
		{"Oficina", "Material de oficina y papelería"},
	}
	out := make([]entity.Category, 0, len(seed))
	for _, s := range seed {
		out = append(out, entity.Category{
			ID:          r.ids.NewID(),
			Name:        s.name,
			Description: s.description,
			CreatedAt:   now,
		})
	}
	return out
}

// ready rechaza las mutaciones previas a Initialize: escribirían sobre los blobs guardados
// partiendo de colecciones vacías. Se llama con el mutex tomado.
func (r *Repository) ready() error {
	if !r.initialized {
		return domain.ErrNotInitialized
	}
	return nil
}

// persist escribe los blobs en una sola operación atómica.
func (r *Repository) persist(entries map[string]any) error {
	if !r.store.SaveAll(entries) {
		return domain.ErrPersistence
	}
	return nil
}

func (r *Repository) productIndex(id string) int {
	return slices.IndexFunc(r.products, func(p entity.Product) bool { return p.ID == id })
}

func (r *Repository) productIndexByCode(code string) int {
	return slices.IndexFunc(r.products, func(p entity.Product) bool { return p.Code == code })
}

func (r *Repository) categoryIndex(id string) int {
	return slices.IndexFunc(r.categories, func(c entity.Category) bool { return c.ID == id })
}
