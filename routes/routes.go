package routes

import (
	"github.com/gofiber/fiber/v2"

	"preorder/handlers"
	"preorder/middleware"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// --- Authentication Routes ---
	auth := api.Group("/auth")
	auth.Post("/login", handlers.HandleLogin)
	auth.Post("/init", handlers.HandleInitializeAdmin)

	// Everything below requires a valid token.
	protected := api.Group("", middleware.JWTMiddleware)

	// Catalog
	protected.Get("/seasons", handlers.HandleListSeasons)
	protected.Get("/brands", handlers.HandleListBrands)
	protected.Get("/locations", handlers.HandleListLocations)

	// Suggestions
	protected.Post("/suggestions", handlers.HandleGetSuggestions)

	// Orders
	orders := protected.Group("/orders")
	orders.Post("/ship-dates", handlers.HandlePreviewShipDates)
	orders.Post("/generate", handlers.HandleGenerateOrders)
	orders.Get("/", handlers.HandleListOrders)
	orders.Get("/:orderId/copy-context", handlers.HandleGetCopyContext)
	orders.Post("/:orderId/copy", handlers.HandleCopyOrder)

	// Budgets
	protected.Get("/budgets", handlers.HandleListBudgets)
	protected.Put("/budgets", middleware.AdminRequired, handlers.HandleUpsertBudget)

	// Assistant
	protected.Post("/assistant", handlers.HandleAssistant)
}
