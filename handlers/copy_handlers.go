package handlers

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	"preorder/planner"
	"preorder/stores"
)

// ColorChoice is the caller's source-to-target color pick for one family.
type ColorChoice struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// CopyOrderRequest copies an order to another location, optionally
// substituting colors family by family.
type CopyOrderRequest struct {
	TargetLocationID int                    `json:"targetLocationId" validate:"required,gt=0"`
	ShipDate         *string                `json:"shipDate"`
	Notes            *string                `json:"notes"`
	ColorChoices     map[string]ColorChoice `json:"colorChoices"`
}

// HandleGetCopyContext returns the source order's lines and the colors
// available per family, so the client can offer substitution choices.
func HandleGetCopyContext(c *fiber.Ctx) error {
	ctx := context.Background()

	orderID, err := c.ParamsInt("orderId")
	if err != nil || orderID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid order id"})
	}

	copyCtx, err := orderStore.GetCopyContext(ctx, orderID)
	if err != nil {
		log.Printf("Error loading copy context for order %d: %v", orderID, err)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": err.Error()})
	}
	return c.JSON(fiber.Map{"status": "success", "data": copyCtx})
}

// HandleCopyOrder builds the variant mapping from the caller's color
// choices and hands it to the order store's copy operation.
func HandleCopyOrder(c *fiber.Ctx) error {
	ctx := context.Background()

	orderID, err := c.ParamsInt("orderId")
	if err != nil || orderID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid order id"})
	}

	var req CopyOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "A target location is required"})
	}

	copyCtx, err := orderStore.GetCopyContext(ctx, orderID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": err.Error()})
	}

	remaps := make(map[string]planner.FamilyRemap, len(req.ColorChoices))
	for family, choice := range req.ColorChoices {
		remaps[family] = planner.FamilyRemap{
			SourceColor:     choice.From,
			TargetColor:     choice.To,
			AvailableColors: copyCtx.FamilyColors[family],
		}
	}
	mapping := planner.BuildVariantMapping(copyCtx.Lines, remaps)

	newOrderID, err := orderStore.CopyOrder(ctx, orderID, stores.CopyOrderInput{
		TargetLocationID: req.TargetLocationID,
		ShipDate:         req.ShipDate,
		Notes:            req.Notes,
		Mapping:          mapping,
	})
	if err != nil {
		log.Printf("Error copying order %d: %v", orderID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": fiber.Map{
		"orderId":        newOrderID,
		"variantMapping": mapping,
	}})
}
