package handlers

import (
	"github.com/go-playground/validator/v10"

	"preorder/stores"
)

// Store implementations the handlers call. main wires the PostgreSQL
// stores; handler tests substitute fakes.
var (
	salesStore   stores.SalesStore
	orderStore   stores.OrderStore
	budgetStore  stores.BudgetStore
	aiUsageStore stores.AIUsageStore
)

var validate = validator.New()

// UseStores wires the external store implementations.
func UseStores(sales stores.SalesStore, orders stores.OrderStore, budgets stores.BudgetStore, aiUsage stores.AIUsageStore) {
	salesStore = sales
	orderStore = orders
	budgetStore = budgets
	aiUsageStore = aiUsage
}
