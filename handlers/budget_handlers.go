package handlers

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"preorder/models"
	"preorder/planner"
)

// BudgetRow is one budget allocation with its derived utilization.
type BudgetRow struct {
	models.BudgetAllocation
	planner.BudgetUsage
}

// HandleListBudgets returns a season's budget table. Derived fields are
// computed here, never read from storage.
func HandleListBudgets(c *fiber.Ctx) error {
	ctx := context.Background()

	seasonID := c.QueryInt("seasonId")
	if seasonID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "seasonId is required"})
	}

	budgets, err := budgetStore.ListBudgets(ctx, seasonID)
	if err != nil {
		log.Printf("Error listing budgets: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve budgets"})
	}

	rows := make([]BudgetRow, 0, len(budgets))
	for _, b := range budgets {
		rows = append(rows, BudgetRow{
			BudgetAllocation: b,
			BudgetUsage:      planner.ComputeBudgetUsage(b.Amount, b.TotalOrdered),
		})
	}
	return c.JSON(fiber.Map{"status": "success", "data": rows})
}

// UpsertBudgetRequest sets one brand/location/season allocation amount.
type UpsertBudgetRequest struct {
	SeasonID   int    `json:"seasonId" validate:"required,gt=0"`
	BrandID    int    `json:"brandId" validate:"required,gt=0"`
	LocationID int    `json:"locationId" validate:"required,gt=0"`
	Amount     string `json:"amount" validate:"required"`
}

// HandleUpsertBudget creates or updates a budget allocation (admin only).
func HandleUpsertBudget(c *fiber.Ctx) error {
	ctx := context.Background()

	var req UpsertBudgetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Season, brand, location and amount are required"})
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || amount.IsNegative() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Amount must be a non-negative number"})
	}

	if err := budgetStore.UpsertBudget(ctx, req.SeasonID, req.BrandID, req.LocationID, amount); err != nil {
		log.Printf("Error upserting budget: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to save budget"})
	}
	return c.JSON(fiber.Map{"status": "success"})
}
