package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// --- Core Models ---

// Season represents one buying season (e.g. "Fall 2025").
type Season struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"` // planning, ordering, closed
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Brand represents a vendor brand the shop buys from.
type Brand struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"` // short code used in order numbers, e.g. "PRA"
}

// Location represents a single retail location orders ship to.
type Location struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"` // e.g. "SLC", "SOMA", "OGD"
}

// Product represents one sellable variant (family + color + size).
type Product struct {
	ID            int             `json:"id"`
	UPC           *string         `json:"upc,omitempty"`
	Name          string          `json:"name"` // family name shared across colors/sizes
	SKU           *string         `json:"sku,omitempty"`
	Color         string          `json:"color"`
	Size          string          `json:"size"`
	WholesaleCost decimal.Decimal `json:"wholesale_cost"`
	MSRP          decimal.Decimal `json:"msrp"`
	BrandID       int             `json:"brand_id"`
	SeasonID      int             `json:"season_id"`
	Active        bool            `json:"active"`
}

// Order represents one ship-date-bound order for a brand at a location.
type Order struct {
	ID          int             `json:"id"`
	OrderNumber string          `json:"order_number"`
	SeasonID    int             `json:"season_id"`
	BrandID     int             `json:"brand_id"`
	LocationID  int             `json:"location_id"`
	ShipDate    *string         `json:"ship_date,omitempty"` // ISO YYYY-MM-DD
	OrderType   string          `json:"order_type"`          // preseason, fill-in
	Status      string          `json:"status"`              // draft, submitted, confirmed
	Notes       *string         `json:"notes,omitempty"`
	BatchID     *string         `json:"batch_id,omitempty"`
	Total       decimal.Decimal `json:"total"`
	CreatedBy   int             `json:"created_by"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Items       []OrderItem     `json:"items,omitempty"`
}

// OrderItem is one product line within an order.
type OrderItem struct {
	ID        int             `json:"id"`
	OrderID   int             `json:"order_id"`
	ProductID int             `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// --- Pagination ---

// Pagination holds the paging metadata returned alongside list responses.
type Pagination struct {
	TotalItems  int `json:"totalItems"`
	CurrentPage int `json:"currentPage"`
	PageSize    int `json:"pageSize"`
	TotalPages  int `json:"totalPages"`
}

// PaginatedOrdersResponse wraps a page of orders.
type PaginatedOrdersResponse struct {
	Items      []Order    `json:"items"`
	Pagination Pagination `json:"pagination"`
}
