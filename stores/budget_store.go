package stores

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"preorder/models"
)

// BudgetStore reads and writes brand/location/season budget allocations.
// Only the raw amounts live here; derived fields are computed by the
// planner and never persisted.
type BudgetStore interface {
	ListBudgets(ctx context.Context, seasonID int) ([]models.BudgetAllocation, error)
	UpsertBudget(ctx context.Context, seasonID, brandID, locationID int, amount decimal.Decimal) error
}

// PGBudgetStore is the PostgreSQL-backed budget store.
type PGBudgetStore struct {
	pool *pgxpool.Pool
}

// NewPGBudgetStore constructs a BudgetStore backed by PostgreSQL.
func NewPGBudgetStore(pool *pgxpool.Pool) *PGBudgetStore {
	return &PGBudgetStore{pool: pool}
}

// ListBudgets returns a season's allocations with the ordered total
// recomputed from order items at read time, never cached.
func (s *PGBudgetStore) ListBudgets(ctx context.Context, seasonID int) ([]models.BudgetAllocation, error) {
	query := `
		SELECT bg.id, bg.season_id, bg.brand_id, b.name, bg.location_id, l.code, bg.amount,
		       COALESCE((
		           SELECT SUM(oi.line_total)
		           FROM orders o
		           JOIN order_items oi ON oi.order_id = o.id
		           WHERE o.season_id = bg.season_id
		             AND o.brand_id = bg.brand_id
		             AND o.location_id = bg.location_id
		       ), 0) AS total_ordered
		FROM budgets bg
		JOIN brands b ON b.id = bg.brand_id
		JOIN locations l ON l.id = bg.location_id
		WHERE bg.season_id = $1
		ORDER BY b.name, l.code
	`
	rows, err := s.pool.Query(ctx, query, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	defer rows.Close()

	var budgets []models.BudgetAllocation
	for rows.Next() {
		var b models.BudgetAllocation
		if err := rows.Scan(&b.ID, &b.SeasonID, &b.BrandID, &b.BrandName,
			&b.LocationID, &b.LocationCode, &b.Amount, &b.TotalOrdered); err != nil {
			return nil, fmt.Errorf("scan budget: %w", err)
		}
		budgets = append(budgets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read budgets: %w", err)
	}
	return budgets, nil
}

// UpsertBudget sets the allocation amount for one brand/location/season.
func (s *PGBudgetStore) UpsertBudget(ctx context.Context, seasonID, brandID, locationID int, amount decimal.Decimal) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO budgets (season_id, brand_id, location_id, amount)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (season_id, brand_id, location_id)
		DO UPDATE SET amount = EXCLUDED.amount
	`, seasonID, brandID, locationID, amount)
	if err != nil {
		return fmt.Errorf("upsert budget: %w", err)
	}
	return nil
}
