package handlers

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"preorder/planner"
	"preorder/stores"
)

// SuggestionRequest selects the brand/location and historical window for a
// suggestion query.
type SuggestionRequest struct {
	BrandID     int        `json:"brandId" validate:"required,gt=0"`
	LocationID  int        `json:"locationId" validate:"required,gt=0"`
	SalesMonths int        `json:"salesMonths"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
}

// HandleGetSuggestions returns suggested order quantities grouped by product
// family, carried forward from units sold in the selected window.
func HandleGetSuggestions(c *fiber.Ctx) error {
	ctx := context.Background()

	var req SuggestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Brand and location are required"})
	}

	filter := stores.SalesFilter{
		BrandID:    req.BrandID,
		LocationID: req.LocationID,
		Window: planner.SalesWindow{
			Months:    req.SalesMonths,
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
		},
	}

	variants, err := salesStore.QuerySalesHistory(ctx, filter)
	if err != nil {
		if errors.Is(err, stores.ErrNoSalesData) {
			// an explicit empty state, not a failure
			return c.JSON(fiber.Map{"status": "success", "noData": true, "families": []planner.SuggestionFamily{}})
		}
		log.Printf("Error querying sales history: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to load sales history"})
	}

	families := planner.BuildSuggestions(variants)
	return c.JSON(fiber.Map{"status": "success", "noData": false, "families": families})
}
