package planner

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSuggestions(t *testing.T) {
	cost := decimal.NewFromFloat(30.00)
	variants := []SalesVariant{
		{ProductID: 1, Family: "Stretch Zion Pant", Color: "Mud", Size: "32", WholesaleCost: cost, PriorSales: 4},
		{ProductID: 2, Family: "Stretch Zion Pant", Color: "Mud", Size: "34", WholesaleCost: cost, PriorSales: 6},
		{ProductID: 3, Family: "Bamboo Tee", Color: "Heather", Size: "M", WholesaleCost: decimal.NewFromFloat(12.50), PriorSales: 3},
		{ProductID: 4, Family: "Stretch Zion Pant", Color: "Charcoal", Size: "32", WholesaleCost: cost, PriorSales: 0},
	}

	families := BuildSuggestions(variants)
	require.Len(t, families, 2)

	zion := families[0]
	assert.Equal(t, "Stretch Zion Pant", zion.Name)
	require.Len(t, zion.Variants, 3)
	assert.Equal(t, 10, zion.TotalPriorSales)
	assert.True(t, zion.TotalSuggestedCost.Equal(decimal.NewFromFloat(300.00)),
		"cost = %s", zion.TotalSuggestedCost)

	// suggested quantity is a direct carry-forward of prior sales
	for _, v := range zion.Variants {
		assert.Equal(t, v.PriorSales, v.SuggestedQty)
	}

	tee := families[1]
	assert.Equal(t, "Bamboo Tee", tee.Name)
	assert.True(t, tee.TotalSuggestedCost.Equal(decimal.NewFromFloat(37.50)))
}

func TestBuildSuggestionsEmpty(t *testing.T) {
	assert.Empty(t, BuildSuggestions(nil))
}

func TestSalesWindowResolve(t *testing.T) {
	now := time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)

	start, end := SalesWindow{Months: 6}.Resolve(now)
	assert.Equal(t, time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, now, end)

	// zero months defaults to a year back
	start, _ = SalesWindow{}.Resolve(now)
	assert.Equal(t, time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC), start)

	// explicit range wins over the preset
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	start, end = SalesWindow{Months: 3, StartDate: &from, EndDate: &to}.Resolve(now)
	assert.Equal(t, from, start)
	assert.Equal(t, to, end)
}
