package handlers

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"preorder/planner"
	"preorder/utils"
)

// GenerateOrderItem is one selected variant with its total quantity and an
// optional restriction to specific shipment indexes.
type GenerateOrderItem struct {
	ProductID   int             `json:"productId" validate:"required,gt=0"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalQty    int             `json:"totalQty" validate:"gte=0"`
	TargetShips []int           `json:"targetShips,omitempty"`
}

// GenerateOrdersRequest is the full order-generation payload: the order
// context, the shipment configuration, and the selected items.
type GenerateOrdersRequest struct {
	SeasonID      int                 `json:"seasonId" validate:"required,gt=0"`
	BrandID       int                 `json:"brandId" validate:"required,gt=0"`
	LocationID    int                 `json:"locationId" validate:"required,gt=0"`
	NumberOfShips int                 `json:"numberOfShips"`
	ShipDates     []string            `json:"shipDates"`
	Notes         string              `json:"notes"`
	Items         []GenerateOrderItem `json:"items" validate:"required,min=1,dive"`
}

// ShipDatesRequest previews generated shipment dates for the client.
type ShipDatesRequest struct {
	NumberOfShips int                `json:"numberOfShips"`
	ShipDay       int                `json:"shipDay"`
	StartMonth    *planner.YearMonth `json:"startMonth"`
}

// HandlePreviewShipDates generates the calendar dates for a shipment
// configuration. The client shows these and may override individual slots.
func HandlePreviewShipDates(c *fiber.Ctx) error {
	var req ShipDatesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	dates := planner.GenerateShipDates(req.NumberOfShips, req.ShipDay, req.StartMonth)
	return c.JSON(fiber.Map{"status": "success", "dates": dates})
}

// HandleGenerateOrders runs the full order generation batch: validate,
// split quantities across shipments, then create one order per non-empty
// shipment in ascending shipment order. Creation is sequential and is not
// rolled back on failure; orders created before a failing call stay
// persisted and the store error is surfaced as-is.
func HandleGenerateOrders(c *fiber.Ctx) error {
	ctx := context.Background()

	var req GenerateOrdersRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Season, brand, location and at least one item are required"})
	}

	numberOfShips := req.NumberOfShips
	if numberOfShips < 1 {
		numberOfShips = 1
	}
	if numberOfShips > 12 {
		numberOfShips = 12
	}
	if numberOfShips > 1 && len(req.ShipDates) < numberOfShips {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "A ship date is required for every shipment"})
	}

	dates := make([]string, numberOfShips)
	copy(dates, req.ShipDates)
	plan := planner.ShipmentPlan{Dates: dates}

	items := make([]planner.SplitItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, planner.SplitItem{
			ProductID:   item.ProductID,
			UnitPrice:   item.UnitPrice,
			TotalQty:    item.TotalQty,
			TargetShips: item.TargetShips,
		})
	}

	splits := planner.SplitQuantities(items, numberOfShips)
	drafts := planner.BuildOrderDrafts(req.SeasonID, req.BrandID, req.LocationID, req.Notes, plan, splits)
	if len(drafts) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "No units allocated to any shipment"})
	}

	userID, _ := c.Locals("userID").(int)
	batchID := uuid.NewString()
	created := make([]fiber.Map, 0, len(drafts))

	for _, draft := range drafts {
		orderID, err := orderStore.CreateOrder(ctx, draft, batchID, userID)
		if err != nil {
			log.Printf("Order generation batch %s failed at shipment %d: %v", batchID, draft.ShipIndex, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status":        "error",
				"message":       err.Error(),
				"batchId":       batchID,
				"createdOrders": created,
			})
		}
		created = append(created, fiber.Map{
			"orderId":   orderID,
			"shipIndex": draft.ShipIndex,
			"shipDate":  draft.ShipDate,
			"items":     len(draft.Lines),
		})

		for _, line := range draft.Lines {
			if err := orderStore.AddOrderItem(ctx, orderID, line); err != nil {
				log.Printf("Order generation batch %s failed adding item to order %d: %v", batchID, orderID, err)
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"status":        "error",
					"message":       err.Error(),
					"batchId":       batchID,
					"createdOrders": created,
				})
			}
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"data": fiber.Map{
			"batchId": batchID,
			"orders":  created,
			"splits":  splits,
		},
	})
}

// HandleListOrders lists a season's orders with pagination.
func HandleListOrders(c *fiber.Ctx) error {
	ctx := context.Background()

	seasonID := c.QueryInt("seasonId")
	if seasonID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "seasonId is required"})
	}
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", 25)

	orders, total, err := orderStore.ListOrders(ctx, seasonID, page, pageSize)
	if err != nil {
		log.Printf("Error listing orders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve orders"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": fiber.Map{
		"items":      orders,
		"pagination": utils.CreatePagination(total, page, pageSize),
	}})
}
