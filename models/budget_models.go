package models

import "github.com/shopspring/decimal"

// BudgetAllocation is a brand/location spending limit for a season,
// together with the ordered total derived from order items.
type BudgetAllocation struct {
	ID           int             `json:"id"`
	SeasonID     int             `json:"season_id"`
	BrandID      int             `json:"brand_id"`
	BrandName    string          `json:"brand_name"`
	LocationID   int             `json:"location_id"`
	LocationCode string          `json:"location_code"`
	Amount       decimal.Decimal `json:"amount"`
	TotalOrdered decimal.Decimal `json:"total_ordered"`
}
