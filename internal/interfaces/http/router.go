package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/utm-ti/inventario-api/internal/application/analytics"
	"github.com/utm-ti/inventario-api/internal/application/auth"
	"github.com/utm-ti/inventario-api/internal/application/inventory"
	"github.com/utm-ti/inventario-api/internal/application/usecase"
	"github.com/utm-ti/inventario-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ProductUC    *usecase.ProductUseCase
	CategoryUC   *usecase.CategoryUseCase
	Engine       *inventory.Engine
	MovementRepo repository.MovementRepository
	DashboardUC  *analytics.DashboardUseCase
	JWTSecret    string
}

// Router registra las rutas de la API (mismas rutas del servicio original).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/registro", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/verificar", AuthMiddleware(deps.JWTSecret), authHandler.Verify)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Productos
	productHandler := NewProductHandler(deps.ProductUC)
	products := protected.Group("/productos")
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Categorías (crear solo admin)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories := protected.Group("/categorias")
	categories.Get("/", categoryHandler.List)
	categories.Post("/", RequireAdmin(), categoryHandler.Create)

	// Movimientos de inventario
	inventoryHandler := NewInventoryHandler(deps.Engine, deps.MovementRepo)
	movements := protected.Group("/movimientos")
	movements.Post("/", inventoryHandler.RegisterMovement)
	movements.Get("/", inventoryHandler.ListMovements)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.GetDashboard)
}
