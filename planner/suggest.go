package planner

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesVariant is an immutable snapshot of one product variant together
// with its units sold in the queried historical window.
type SalesVariant struct {
	ProductID     int             `json:"productId"`
	Family        string          `json:"family"`
	Color         string          `json:"color"`
	Size          string          `json:"size"`
	SKU           *string         `json:"sku,omitempty"`
	WholesaleCost decimal.Decimal `json:"wholesaleCost"`
	PriorSales    int             `json:"priorSales"`
}

// VariantSuggestion pairs a variant with its suggested order quantity.
type VariantSuggestion struct {
	SalesVariant
	SuggestedQty int `json:"suggestedQty"`
}

// SuggestionFamily groups variant suggestions by product family.
type SuggestionFamily struct {
	Name               string              `json:"name"`
	Variants           []VariantSuggestion `json:"variants"`
	TotalPriorSales    int                 `json:"totalPriorSales"`
	TotalSuggestedCost decimal.Decimal     `json:"totalSuggestedCost"`
}

// SalesWindow selects the historical window for a suggestion query: either
// a preset number of months ending now, or an explicit start/end pair.
type SalesWindow struct {
	Months    int        `json:"salesMonths,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

// Resolve returns the concrete start and end of the window. An explicit
// pair wins over the month preset; a non-positive preset defaults to 12.
func (w SalesWindow) Resolve(now time.Time) (time.Time, time.Time) {
	if w.StartDate != nil && w.EndDate != nil {
		return *w.StartDate, *w.EndDate
	}
	months := w.Months
	if months <= 0 {
		months = 12
	}
	return now.AddDate(0, -months, 0), now
}

// BuildSuggestions groups sales-history rows into families, carrying each
// variant's prior sales forward as its suggested quantity. No smoothing or
// forecasting is applied. Family order follows first appearance in the
// input; variants keep their input order within a family.
func BuildSuggestions(variants []SalesVariant) []SuggestionFamily {
	families := make([]SuggestionFamily, 0)
	index := make(map[string]int)

	for _, v := range variants {
		i, ok := index[v.Family]
		if !ok {
			i = len(families)
			index[v.Family] = i
			families = append(families, SuggestionFamily{Name: v.Family})
		}

		suggestion := VariantSuggestion{SalesVariant: v, SuggestedQty: v.PriorSales}
		families[i].Variants = append(families[i].Variants, suggestion)
		families[i].TotalPriorSales += v.PriorSales
		families[i].TotalSuggestedCost = families[i].TotalSuggestedCost.Add(
			v.WholesaleCost.Mul(decimal.NewFromInt(int64(suggestion.SuggestedQty))))
	}
	return families
}
