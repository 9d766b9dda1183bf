package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"preorder/config"
	"preorder/database"
	"preorder/handlers"
	"preorder/routes"
	"preorder/stores"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Initialize database
	database.Connect(config.AppConfig.DatabaseURL)
	defer database.Close()

	// Wire the PostgreSQL stores into the handlers
	pool := database.GetDB()
	handlers.UseStores(
		stores.NewPGSalesStore(pool),
		stores.NewPGOrderStore(pool),
		stores.NewPGBudgetStore(pool),
		stores.NewPGAIUsageStore(pool),
	)

	app := fiber.New()

	// Add CORS middleware
	app.Use(cors.New())

	// Setup routes
	routes.SetupRoutes(app)

	// Start server
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
