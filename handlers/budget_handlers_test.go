package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"preorder/models"
)

type fakeBudgetStore struct {
	budgets []models.BudgetAllocation

	upsertSeason int
	upsertAmount decimal.Decimal
}

func (f *fakeBudgetStore) ListBudgets(context.Context, int) ([]models.BudgetAllocation, error) {
	return f.budgets, nil
}

func (f *fakeBudgetStore) UpsertBudget(_ context.Context, seasonID, _, _ int, amount decimal.Decimal) error {
	f.upsertSeason = seasonID
	f.upsertAmount = amount
	return nil
}

func TestListBudgetsDerivesUtilization(t *testing.T) {
	store := &fakeBudgetStore{budgets: []models.BudgetAllocation{
		{ID: 1, SeasonID: 4, BrandName: "Prana", LocationCode: "SLC",
			Amount: decimal.NewFromInt(1000), TotalOrdered: decimal.NewFromInt(1200)},
		{ID: 2, SeasonID: 4, BrandName: "Petzl", LocationCode: "OGD",
			Amount: decimal.Zero, TotalOrdered: decimal.NewFromInt(50)},
	}}
	UseStores(nil, nil, store, nil)

	app := fiber.New()
	app.Get("/budgets", HandleListBudgets)

	resp, err := app.Test(httptest.NewRequest("GET", "/budgets?seasonId=4", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))

	rows := body["data"].([]interface{})
	require.Len(t, rows, 2)

	asDecimal := func(v interface{}) decimal.Decimal {
		d, err := decimal.NewFromString(v.(string))
		require.NoError(t, err)
		return d
	}

	over := rows[0].(map[string]interface{})
	assert.Equal(t, true, over["over_budget"])
	assert.True(t, asDecimal(over["percent_used"]).Equal(decimal.NewFromInt(120)))
	assert.True(t, asDecimal(over["remaining"]).Equal(decimal.NewFromInt(-200)))

	zero := rows[1].(map[string]interface{})
	assert.Equal(t, false, zero["over_budget"])
	assert.True(t, asDecimal(zero["percent_used"]).IsZero())
}

func TestUpsertBudget(t *testing.T) {
	store := &fakeBudgetStore{}
	UseStores(nil, nil, store, nil)

	app := fiber.New()
	app.Put("/budgets", HandleUpsertBudget)

	putJSON := func(body fiber.Map) int {
		payload, _ := json.Marshal(body)
		req := httptest.NewRequest("PUT", "/budgets", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		return resp.StatusCode
	}

	code := putJSON(fiber.Map{"seasonId": 4, "brandId": 1, "locationId": 2, "amount": "15000.00"})
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, 4, store.upsertSeason)
	assert.True(t, store.upsertAmount.Equal(decimal.NewFromInt(15000)))

	assert.Equal(t, fiber.StatusBadRequest, putJSON(fiber.Map{"seasonId": 4, "brandId": 1, "locationId": 2, "amount": "-5"}))
	assert.Equal(t, fiber.StatusBadRequest, putJSON(fiber.Map{"seasonId": 4, "amount": "100"}))
}
