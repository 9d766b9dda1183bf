package handlers

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/generative-ai-go/genai"
	"github.com/shopspring/decimal"
	"google.golang.org/api/option"

	"preorder/config"
	"preorder/models"
	"preorder/planner"
)

// assistantCallCost is the flat cost booked per assistant call against the
// monthly budget.
var assistantCallCost = decimal.NewFromFloat(0.05)

// HandleAssistant forwards a buying question to Gemini, gated by the
// monthly assistant budget. The gate uses the same utilization formula as
// the season budget table.
func HandleAssistant(c *fiber.Ctx) error {
	ctx := context.Background()

	var req models.AIAssistantRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if req.Prompt == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "A prompt is required"})
	}

	budget := config.AIBudget()
	spent, err := aiUsageStore.MonthToDateCost(ctx, time.Now())
	if err != nil {
		log.Printf("Error reading assistant usage: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to check assistant budget"})
	}

	usage := planner.ComputeBudgetUsage(budget, spent)
	if !budget.IsPositive() || usage.OverBudget {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"status":  "error",
			"message": "Monthly assistant budget exhausted",
			"budget":  usage,
		})
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(config.AppConfig.GeminiAPIKey))
	if err != nil {
		log.Printf("Error creating Gemini client: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to initialize assistant"})
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-1.5-pro-latest")
	resp, err := model.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		log.Printf("Error generating content: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Assistant request failed"})
	}

	userID, _ := c.Locals("userID").(int)
	if err := aiUsageStore.RecordUsage(ctx, userID, assistantCallCost); err != nil {
		// the answer already cost money; log and return it anyway
		log.Printf("Error recording assistant usage: %v", err)
	}

	return c.JSON(fiber.Map{"status": "success", "data": resp, "budget": usage})
}
