package handlers

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	"preorder/database"
	"preorder/models"
)

// HandleListSeasons lists all buying seasons, newest first.
func HandleListSeasons(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	rows, err := db.Query(ctx, "SELECT id, name, status, created_at, updated_at FROM seasons ORDER BY created_at DESC")
	if err != nil {
		log.Printf("Error listing seasons: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve seasons"})
	}
	defer rows.Close()

	seasons := make([]models.Season, 0)
	for rows.Next() {
		var s models.Season
		if err := rows.Scan(&s.ID, &s.Name, &s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
			log.Printf("Error scanning season: %v", err)
			continue
		}
		seasons = append(seasons, s)
	}
	return c.JSON(fiber.Map{"status": "success", "data": seasons})
}

// HandleListBrands lists all brands.
func HandleListBrands(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	rows, err := db.Query(ctx, "SELECT id, name, code FROM brands ORDER BY name")
	if err != nil {
		log.Printf("Error listing brands: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve brands"})
	}
	defer rows.Close()

	brands := make([]models.Brand, 0)
	for rows.Next() {
		var b models.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.Code); err != nil {
			log.Printf("Error scanning brand: %v", err)
			continue
		}
		brands = append(brands, b)
	}
	return c.JSON(fiber.Map{"status": "success", "data": brands})
}

// HandleListLocations lists all retail locations.
func HandleListLocations(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	rows, err := db.Query(ctx, "SELECT id, name, code FROM locations ORDER BY code")
	if err != nil {
		log.Printf("Error listing locations: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve locations"})
	}
	defer rows.Close()

	locations := make([]models.Location, 0)
	for rows.Next() {
		var l models.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Code); err != nil {
			log.Printf("Error scanning location: %v", err)
			continue
		}
		locations = append(locations, l)
	}
	return c.JSON(fiber.Map{"status": "success", "data": locations})
}
