package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"preorder/config"
)

type fakeAIUsageStore struct {
	spent    decimal.Decimal
	recorded []decimal.Decimal
}

func (f *fakeAIUsageStore) MonthToDateCost(context.Context, time.Time) (decimal.Decimal, error) {
	return f.spent, nil
}

func (f *fakeAIUsageStore) RecordUsage(_ context.Context, _ int, cost decimal.Decimal) error {
	f.recorded = append(f.recorded, cost)
	return nil
}

func TestAssistantGatedByMonthlyBudget(t *testing.T) {
	config.AppConfig.AIMonthlyBudget = "25.00"
	store := &fakeAIUsageStore{spent: decimal.NewFromFloat(30.00)}
	UseStores(nil, nil, nil, store)

	app := fiber.New()
	app.Post("/assistant", HandleAssistant)

	resp, body := postJSON(t, app, "/assistant", fiber.Map{"prompt": "what should I reorder?"})

	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "Monthly assistant budget exhausted", body["message"])
	assert.Empty(t, store.recorded, "a gated call must not book cost")
}

func TestAssistantDisabledWithoutBudget(t *testing.T) {
	config.AppConfig.AIMonthlyBudget = "0"
	UseStores(nil, nil, nil, &fakeAIUsageStore{})

	app := fiber.New()
	app.Post("/assistant", HandleAssistant)

	resp, _ := postJSON(t, app, "/assistant", fiber.Map{"prompt": "hello"})
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}

func TestAssistantRequiresPrompt(t *testing.T) {
	UseStores(nil, nil, nil, &fakeAIUsageStore{})

	app := fiber.New()
	app.Post("/assistant", HandleAssistant)

	resp, _ := postJSON(t, app, "/assistant", fiber.Map{})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
