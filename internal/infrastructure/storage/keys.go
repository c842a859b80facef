package storage

// Claves de los cuatro blobs persistidos.
const (
	KeyProducts    = "inventory_products"
	KeyCategories  = "inventory_categories"
	KeyMovements   = "inventory_movements" // más reciente primero
	KeyCurrentUser = "inventory_current_user"
)
