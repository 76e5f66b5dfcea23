// Package http define los handlers Fiber y el ruteo de la API.
package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/shop-manager/internal/domain/entity"
)

// RouterDeps dependencias del router (handlers ya construidos + secret JWT).
type RouterDeps struct {
	AuthHandler      *AuthHandler
	StockHandler     *StockHandler
	SalesHandler     *SalesHandler
	DashboardHandler *DashboardHandler
	ReportsHandler   *ReportsHandler
	JWTSecret        string
}

// Router registra las rutas de la API en la app Fiber.
//
// Autorización por rol:
//   - alta de lotes: admin y bodeguero
//   - registro de ventas: admin y vendedor
//   - consultas y reportes: cualquier usuario autenticado
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas públicas.
	auth := api.Group("/auth")
	auth.Post("/register", deps.AuthHandler.Register)
	auth.Post("/login", deps.AuthHandler.Login)

	// Rutas protegidas.
	protected := api.Group("", AuthMiddleware(deps.JWTSecret))

	protected.Get("/auth/me", deps.AuthHandler.Me)

	stock := protected.Group("/stock")
	stock.Post("", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), deps.StockHandler.AddBatch)
	stock.Get("", deps.StockHandler.ListBatches)
	stock.Get("/aggregate", deps.StockHandler.Aggregate)
	stock.Get("/:name/batches", deps.StockHandler.BatchesForItem)

	sales := protected.Group("/sales")
	sales.Post("", RequireRole(entity.RoleAdmin, entity.RoleVendedor), deps.SalesHandler.RecordSale)

	dashboard := protected.Group("/dashboard")
	dashboard.Get("/summary", deps.DashboardHandler.Summary)
	dashboard.Get("/profit-details", deps.DashboardHandler.ProfitDetails)
	dashboard.Get("/low-stock", deps.DashboardHandler.LowStock)
	dashboard.Get("/expiring", deps.DashboardHandler.Expiring)

	reports := protected.Group("/reports")
	reports.Get("/sales", deps.ReportsHandler.SalesHistory)
	reports.Get("/sales/pdf", deps.ReportsHandler.SalesHistoryPDF)
	reports.Get("/stock", deps.ReportsHandler.StockStatus)
}
