package planner

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeBudgetUsage(t *testing.T) {
	tests := []struct {
		name        string
		budget      string
		ordered     string
		remaining   string
		percentUsed string
		overBudget  bool
	}{
		{"over budget", "1000", "1200", "-200", "120", true},
		{"under budget", "1000", "250", "750", "25", false},
		{"exactly at budget", "500", "500", "0", "100", false},
		{"zero budget reports zero percent", "0", "340", "-340", "0", false},
		{"nothing ordered", "800", "0", "800", "0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			budget := decimal.RequireFromString(tt.budget)
			ordered := decimal.RequireFromString(tt.ordered)

			usage := ComputeBudgetUsage(budget, ordered)
			assert.True(t, usage.Remaining.Equal(decimal.RequireFromString(tt.remaining)),
				"remaining = %s", usage.Remaining)
			assert.True(t, usage.PercentUsed.Equal(decimal.RequireFromString(tt.percentUsed)),
				"percentUsed = %s", usage.PercentUsed)
			assert.Equal(t, tt.overBudget, usage.OverBudget)
		})
	}
}

func TestComputeBudgetUsageFractional(t *testing.T) {
	usage := ComputeBudgetUsage(decimal.NewFromInt(3), decimal.NewFromInt(1))
	// a third of the budget, within decimal division precision
	assert.True(t, usage.PercentUsed.Sub(decimal.RequireFromString("33.33")).Abs().
		LessThan(decimal.RequireFromString("0.01")))
	assert.False(t, usage.OverBudget)
}
