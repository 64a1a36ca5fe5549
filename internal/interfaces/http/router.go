package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-admin/internal/application/catalog"
	"github.com/jhoicas/inventario-admin/internal/application/recommend"
	"github.com/jhoicas/inventario-admin/internal/application/report"
	"github.com/jhoicas/inventario-admin/internal/application/session"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SessionUC   *session.Store
	CatalogUC   *catalog.Store
	ReportUC    *report.UseCase
	RecommendUC *recommend.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.SessionUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Directorio e inventario (cualquier rol autenticado)
	directoryHandler := NewDirectoryHandler(deps.CatalogUC)
	protected.Get("/directory", directoryHandler.List)

	inventoryHandler := NewInventoryHandler(deps.CatalogUC, deps.ReportUC)
	protected.Get("/inventory", inventoryHandler.List)
	protected.Get("/inventory/report", inventoryHandler.Report)
	protected.Post("/send-email", inventoryHandler.SendEmail)

	dashboardHandler := NewDashboardHandler(deps.CatalogUC)
	protected.Get("/dashboard", dashboardHandler.Stats)

	// Administración (solo rol admin; responde 401 igual que sin sesión)
	admin := protected.Group("/", RequireAdmin())

	companies := admin.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CatalogUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Put("/:nit", companyHandler.Update)
	companies.Delete("/:nit", companyHandler.Delete)

	products := admin.Group("/products")
	productHandler := NewProductHandler(deps.CatalogUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Post("/price-preview", productHandler.PricePreview)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	aiHandler := NewAIHandler(deps.CatalogUC, deps.RecommendUC)
	admin.Post("/ai/recommendations", aiHandler.Recommendations)
}
