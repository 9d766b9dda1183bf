package stores

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// AIUsageStore tracks per-call assistant cost so the monthly cap can be
// enforced with the same budget math as season budgets.
type AIUsageStore interface {
	MonthToDateCost(ctx context.Context, now time.Time) (decimal.Decimal, error)
	RecordUsage(ctx context.Context, userID int, cost decimal.Decimal) error
}

// PGAIUsageStore is the PostgreSQL-backed AI usage store.
type PGAIUsageStore struct {
	pool *pgxpool.Pool
}

// NewPGAIUsageStore constructs an AIUsageStore backed by PostgreSQL.
func NewPGAIUsageStore(pool *pgxpool.Pool) *PGAIUsageStore {
	return &PGAIUsageStore{pool: pool}
}

// MonthToDateCost sums assistant spend since the start of the current month.
func (s *PGAIUsageStore) MonthToDateCost(ctx context.Context, now time.Time) (decimal.Decimal, error) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var cost decimal.Decimal
	err := s.pool.QueryRow(ctx,
		"SELECT COALESCE(SUM(cost), 0) FROM ai_usage WHERE used_at >= $1", monthStart,
	).Scan(&cost)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum ai usage: %w", err)
	}
	return cost, nil
}

// RecordUsage appends one assistant call's cost.
func (s *PGAIUsageStore) RecordUsage(ctx context.Context, userID int, cost decimal.Decimal) error {
	_, err := s.pool.Exec(ctx,
		"INSERT INTO ai_usage (user_id, cost, used_at) VALUES ($1, $2, NOW())", userID, cost)
	if err != nil {
		return fmt.Errorf("record ai usage: %w", err)
	}
	return nil
}
