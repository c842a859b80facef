package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-local/internal/application/auth"
	"github.com/jhoicas/inventario-local/internal/application/inventory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Repo    *inventory.Repository
	Session *auth.Session
	Report  stockReporter
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Sesión (pública)
	sessionHandler := NewSessionHandler(deps.Session)
	api.Post("/session", sessionHandler.Login)
	api.Get("/session", sessionHandler.Current)
	api.Delete("/session", sessionHandler.Logout)

	// Rutas que requieren sesión
	protected := api.Group("/", RequireSession(deps.Session))

	// Products (admin y empleado)
	products := protected.Group("/products", RequireView(auth.ViewProducts))
	productHandler := NewProductHandler(deps.Repo)
	products.Get("/", productHandler.List)
	products.Get("/categories", productHandler.CategoryOptions)
	products.Get("/code/:code", productHandler.GetByCode)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", RequireOperation(auth.OpCreateProduct), productHandler.Create)
	products.Put("/:id", RequireOperation(auth.OpUpdateProduct), productHandler.Update)
	products.Delete("/:id", RequireOperation(auth.OpDeleteProduct), productHandler.Delete)

	// Categories (solo admin)
	categories := protected.Group("/categories", RequireView(auth.ViewCategories))
	categoryHandler := NewCategoryHandler(deps.Repo)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", RequireOperation(auth.OpCreateCategory), categoryHandler.Create)
	categories.Put("/:id", RequireOperation(auth.OpUpdateCategory), categoryHandler.Update)
	categories.Delete("/:id", RequireOperation(auth.OpDeleteCategory), categoryHandler.Delete)

	// Movements (admin y empleado)
	movements := protected.Group("/movements", RequireView(auth.ViewMovements))
	movementHandler := NewMovementHandler(deps.Repo)
	movements.Get("/", movementHandler.List)
	movements.Get("/reasons", movementHandler.Reasons)
	movements.Post("/", RequireOperation(auth.OpRecordMovement), movementHandler.Record)

	// Dashboard y reportes (solo admin)
	dashboardHandler := NewDashboardHandler(deps.Repo, deps.Report)
	dashboard := protected.Group("/dashboard", RequireView(auth.ViewDashboard))
	dashboard.Get("/summary", dashboardHandler.GetSummary)
	dashboard.Get("/low-stock", dashboardHandler.LowStock)
	dashboard.Get("/ledger-check", dashboardHandler.LedgerCheck)
	protected.Get("/reports/stock.pdf", RequireView(auth.ViewDashboard), dashboardHandler.StockReport)
}
