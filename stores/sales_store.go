package stores

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"preorder/planner"
)

// ErrNoSalesData signals a suggestion query that matched no sales rows.
// Callers render an explicit empty state, not a failure.
var ErrNoSalesData = errors.New("no sales data for the selected filters")

// SalesFilter selects the historical rows feeding a suggestion query.
type SalesFilter struct {
	BrandID    int
	LocationID int
	Window     planner.SalesWindow
}

// SalesStore reads historical per-variant sales from the catalog store.
type SalesStore interface {
	QuerySalesHistory(ctx context.Context, filter SalesFilter) ([]planner.SalesVariant, error)
}

// PGSalesStore is the PostgreSQL-backed sales store.
type PGSalesStore struct {
	pool *pgxpool.Pool
}

// NewPGSalesStore constructs a SalesStore backed by PostgreSQL.
func NewPGSalesStore(pool *pgxpool.Pool) *PGSalesStore {
	return &PGSalesStore{pool: pool}
}

// QuerySalesHistory sums units sold per product variant inside the window,
// ordered so variants of the same family arrive together.
func (s *PGSalesStore) QuerySalesHistory(ctx context.Context, filter SalesFilter) ([]planner.SalesVariant, error) {
	start, end := filter.Window.Resolve(time.Now())

	query := `
		SELECT p.id, p.name, p.color, p.size, p.sku, p.wholesale_cost,
		       SUM(sh.quantity)::int AS units_sold
		FROM sales_history sh
		JOIN products p ON p.id = sh.product_id
		WHERE p.brand_id = $1 AND sh.location_id = $2
		  AND sh.sold_at BETWEEN $3 AND $4
		GROUP BY p.id, p.name, p.color, p.size, p.sku, p.wholesale_cost
		ORDER BY p.name, p.color, p.size
	`
	rows, err := s.pool.Query(ctx, query, filter.BrandID, filter.LocationID, start, end)
	if err != nil {
		return nil, fmt.Errorf("query sales history: %w", err)
	}
	defer rows.Close()

	var variants []planner.SalesVariant
	for rows.Next() {
		var v planner.SalesVariant
		if err := rows.Scan(&v.ProductID, &v.Family, &v.Color, &v.Size, &v.SKU, &v.WholesaleCost, &v.PriorSales); err != nil {
			return nil, fmt.Errorf("scan sales row: %w", err)
		}
		variants = append(variants, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read sales rows: %w", err)
	}

	if len(variants) == 0 {
		return nil, ErrNoSalesData
	}
	return variants, nil
}
