package planner

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// BudgetUsage is the derived view of a budget allocation.
type BudgetUsage struct {
	Remaining   decimal.Decimal `json:"remaining"`
	PercentUsed decimal.Decimal `json:"percent_used"`
	OverBudget  bool            `json:"over_budget"`
}

// ComputeBudgetUsage derives utilization from a budget amount and the total
// ordered against it. A zero (or negative) budget reports 0% used. The same
// formula backs the season budget table and the assistant's monthly cost cap.
func ComputeBudgetUsage(budget, ordered decimal.Decimal) BudgetUsage {
	percent := decimal.Zero
	if budget.IsPositive() {
		percent = ordered.Div(budget).Mul(hundred)
	}
	return BudgetUsage{
		Remaining:   budget.Sub(ordered),
		PercentUsed: percent,
		OverBudget:  percent.GreaterThan(hundred),
	}
}
