package auth

import "github.com/jhoicas/inventario-local/internal/domain/entity"

// View pantalla de la aplicación.
type View string

// Vistas.
const (
	ViewDashboard  View = "dashboard"
	ViewProducts   View = "products"
	ViewCategories View = "categories"
	ViewMovements  View = "movements"
)

// Views todas las vistas en orden de menú.
var Views = []View{ViewDashboard, ViewProducts, ViewCategories, ViewMovements}

// Operation tipo de mutación sobre el repositorio.
type Operation string

// Operaciones.
const (
	OpCreateProduct  Operation = "create_product"
	OpUpdateProduct  Operation = "update_product"
	OpDeleteProduct  Operation = "delete_product"
	OpRecordMovement Operation = "record_movement"
	OpCreateCategory Operation = "create_category"
	OpUpdateCategory Operation = "update_category"
	OpDeleteCategory Operation = "delete_category"
)

// CanAccessView tabla fija: el administrador ve todo; el empleado solo productos y movimientos.
func CanAccessView(role entity.Role, v View) bool {
	switch role {
	case entity.RoleAdmin:
		switch v {
		case ViewDashboard, ViewProducts, ViewCategories, ViewMovements:
			return true
		}
	case entity.RoleEmployee:
		switch v {
		case ViewProducts, ViewMovements:
			return true
		}
	}
	return false
}

// CanMutate tabla fija: el empleado solo crea productos y registra movimientos.
func CanMutate(role entity.Role, op Operation) bool {
	switch role {
	case entity.RoleAdmin:
		switch op {
		case OpCreateProduct, OpUpdateProduct, OpDeleteProduct, OpRecordMovement,
			OpCreateCategory, OpUpdateCategory, OpDeleteCategory:
			return true
		}
	case entity.RoleEmployee:
		switch op {
		case OpCreateProduct, OpRecordMovement:
			return true
		}
	}
	return false
}

// HomeView vista inicial tras el ingreso.
func HomeView(role entity.Role) View {
	if role == entity.RoleAdmin {
		return ViewDashboard
	}
	return ViewProducts
}

// AllowedViews vistas que el rol puede abrir, en orden de menú.
func AllowedViews(role entity.Role) []View {
	out := make([]View, 0, len(Views))
	for _, v := range Views {
		if CanAccessView(role, v) {
			out = append(out, v)
		}
	}
	return out
}
