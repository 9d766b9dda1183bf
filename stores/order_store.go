package stores

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"preorder/models"
	"preorder/planner"
)

// OrderStore creates and reads orders in the external order store. Order
// generation calls CreateOrder then AddOrderItem per non-zero split, in
// strict shipment order; a failure leaves earlier calls persisted.
type OrderStore interface {
	CreateOrder(ctx context.Context, draft planner.OrderDraft, batchID string, createdBy int) (int, error)
	AddOrderItem(ctx context.Context, orderID int, line planner.OrderDraftLine) error
	ListOrders(ctx context.Context, seasonID, page, pageSize int) ([]models.Order, int, error)
	GetCopyContext(ctx context.Context, orderID int) (*OrderCopyContext, error)
	CopyOrder(ctx context.Context, orderID int, input CopyOrderInput) (int, error)
}

// OrderCopyContext is everything the copy path needs to offer color choices:
// the source order, its lines, and the colors available per family.
type OrderCopyContext struct {
	Order        models.Order         `json:"order"`
	Lines        []planner.SourceLine `json:"lines"`
	FamilyColors map[string][]string  `json:"familyColors"`
}

// CopyOrderInput is the payload for the order store's copy operation.
type CopyOrderInput struct {
	TargetLocationID int                    `json:"targetLocationId"`
	ShipDate         *string                `json:"shipDate,omitempty"`
	Notes            *string                `json:"notes,omitempty"`
	Mapping          planner.VariantMapping `json:"variantMapping,omitempty"`
}

// PGOrderStore is the PostgreSQL-backed order store.
type PGOrderStore struct {
	pool *pgxpool.Pool
}

// NewPGOrderStore constructs an OrderStore backed by PostgreSQL.
func NewPGOrderStore(pool *pgxpool.Pool) *PGOrderStore {
	return &PGOrderStore{pool: pool}
}

// CreateOrder inserts one order header and returns its id. The order number
// follows the house format MON##-BRA-LOC with a counter suffix on collision.
func (s *PGOrderStore) CreateOrder(ctx context.Context, draft planner.OrderDraft, batchID string, createdBy int) (int, error) {
	var brandCode, locationCode string
	err := s.pool.QueryRow(ctx,
		"SELECT b.code, l.code FROM brands b, locations l WHERE b.id = $1 AND l.id = $2",
		draft.BrandID, draft.LocationID,
	).Scan(&brandCode, &locationCode)
	if err != nil {
		return 0, fmt.Errorf("resolve brand/location codes: %w", err)
	}

	orderNumber := buildOrderNumber(draft.ShipDate, brandCode, locationCode)
	var existing int
	if err := s.pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM orders WHERE order_number LIKE $1",
		orderNumber+"%",
	).Scan(&existing); err != nil {
		return 0, fmt.Errorf("check order number: %w", err)
	}
	if existing > 0 {
		orderNumber = fmt.Sprintf("%s-%d", orderNumber, existing+1)
	}

	var shipDate *string
	if draft.ShipDate != "" {
		shipDate = &draft.ShipDate
	}
	var notes *string
	if draft.Notes != "" {
		notes = &draft.Notes
	}

	var orderID int
	err = s.pool.QueryRow(ctx, `
		INSERT INTO orders (order_number, season_id, brand_id, location_id, ship_date,
		                    order_type, status, notes, batch_id, created_by)
		VALUES ($1, $2, $3, $4, $5, 'preseason', 'draft', $6, $7, $8)
		RETURNING id
	`, orderNumber, draft.SeasonID, draft.BrandID, draft.LocationID, shipDate, notes, batchID, createdBy).Scan(&orderID)
	if err != nil {
		return 0, fmt.Errorf("create order %s: %w", orderNumber, err)
	}
	return orderID, nil
}

// AddOrderItem inserts one line with its extended total.
func (s *PGOrderStore) AddOrderItem(ctx context.Context, orderID int, line planner.OrderDraftLine) error {
	lineTotal := line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
	_, err := s.pool.Exec(ctx, `
		INSERT INTO order_items (order_id, product_id, quantity, unit_cost, line_total)
		VALUES ($1, $2, $3, $4, $5)
	`, orderID, line.ProductID, line.Quantity, line.UnitPrice, lineTotal)
	if err != nil {
		return fmt.Errorf("add item to order %d: %w", orderID, err)
	}
	return nil
}

// ListOrders returns one page of a season's orders with totals recomputed
// from their items.
func (s *PGOrderStore) ListOrders(ctx context.Context, seasonID, page, pageSize int) ([]models.Order, int, error) {
	offset := (page - 1) * pageSize

	query := `
		SELECT o.id, o.order_number, o.season_id, o.brand_id, o.location_id,
		       to_char(o.ship_date, 'YYYY-MM-DD'), o.order_type, o.status, o.notes,
		       o.batch_id, o.created_by, o.created_at, o.updated_at,
		       COALESCE((SELECT SUM(line_total) FROM order_items WHERE order_id = o.id), 0)
		FROM orders o
		WHERE o.season_id = $1
		ORDER BY o.ship_date NULLS LAST, o.order_number
		LIMIT $2 OFFSET $3
	`
	rows, err := s.pool.Query(ctx, query, seasonID, pageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.SeasonID, &o.BrandID, &o.LocationID,
			&o.ShipDate, &o.OrderType, &o.Status, &o.Notes,
			&o.BatchID, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt, &o.Total); err != nil {
			return nil, 0, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("read orders: %w", err)
	}

	var total int
	if err := s.pool.QueryRow(ctx, "SELECT COUNT(*) FROM orders WHERE season_id = $1", seasonID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}
	return orders, total, nil
}

// GetCopyContext loads the source order, its family/color/size lines, and
// the colors available for each family in the same brand and season.
func (s *PGOrderStore) GetCopyContext(ctx context.Context, orderID int) (*OrderCopyContext, error) {
	var order models.Order
	err := s.pool.QueryRow(ctx, `
		SELECT o.id, o.order_number, o.season_id, o.brand_id, o.location_id,
		       to_char(o.ship_date, 'YYYY-MM-DD'), o.order_type, o.status, o.notes,
		       o.created_by, o.created_at, o.updated_at
		FROM orders o WHERE o.id = $1
	`, orderID).Scan(&order.ID, &order.OrderNumber, &order.SeasonID, &order.BrandID,
		&order.LocationID, &order.ShipDate, &order.OrderType, &order.Status, &order.Notes,
		&order.CreatedBy, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("order %d not found", orderID)
		}
		return nil, fmt.Errorf("load order %d: %w", orderID, err)
	}

	rows, err := s.pool.Query(ctx, `
		SELECT p.name, p.color, p.size
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = $1
		ORDER BY p.name, p.color, p.size
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order lines: %w", err)
	}
	defer rows.Close()

	var lines []planner.SourceLine
	for rows.Next() {
		var line planner.SourceLine
		if err := rows.Scan(&line.Family, &line.Color, &line.Size); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read order lines: %w", err)
	}

	colorRows, err := s.pool.Query(ctx, `
		SELECT DISTINCT p.name, p.color
		FROM products p
		WHERE p.brand_id = $1 AND p.season_id = $2 AND p.active
		  AND p.name IN (SELECT pr.name FROM order_items oi JOIN products pr ON pr.id = oi.product_id WHERE oi.order_id = $3)
		ORDER BY p.name, p.color
	`, order.BrandID, order.SeasonID, orderID)
	if err != nil {
		return nil, fmt.Errorf("load family colors: %w", err)
	}
	defer colorRows.Close()

	familyColors := make(map[string][]string)
	for colorRows.Next() {
		var family, color string
		if err := colorRows.Scan(&family, &color); err != nil {
			return nil, fmt.Errorf("scan family color: %w", err)
		}
		familyColors[family] = append(familyColors[family], color)
	}
	if err := colorRows.Err(); err != nil {
		return nil, fmt.Errorf("read family colors: %w", err)
	}

	return &OrderCopyContext{Order: order, Lines: lines, FamilyColors: familyColors}, nil
}

// CopyOrder duplicates an order at another location, substituting product
// variants per the mapping. The copy is a single transaction; resolving a
// mapped (family, size, color) that has no active product is an error.
func (s *PGOrderStore) CopyOrder(ctx context.Context, orderID int, input CopyOrderInput) (int, error) {
	src, err := s.GetCopyContext(ctx, orderID)
	if err != nil {
		return 0, err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin copy transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	shipDate := src.Order.ShipDate
	if input.ShipDate != nil {
		shipDate = input.ShipDate
	}
	notes := src.Order.Notes
	if input.Notes != nil {
		notes = input.Notes
	}

	var brandCode, locationCode string
	if err := tx.QueryRow(ctx,
		"SELECT b.code, l.code FROM brands b, locations l WHERE b.id = $1 AND l.id = $2",
		src.Order.BrandID, input.TargetLocationID,
	).Scan(&brandCode, &locationCode); err != nil {
		return 0, fmt.Errorf("resolve target location: %w", err)
	}

	date := ""
	if shipDate != nil {
		date = *shipDate
	}
	orderNumber := buildOrderNumber(date, brandCode, locationCode)
	var existing int
	if err := tx.QueryRow(ctx,
		"SELECT COUNT(*) FROM orders WHERE order_number LIKE $1", orderNumber+"%",
	).Scan(&existing); err != nil {
		return 0, fmt.Errorf("check order number: %w", err)
	}
	if existing > 0 {
		orderNumber = fmt.Sprintf("%s-%d", orderNumber, existing+1)
	}

	var newID int
	err = tx.QueryRow(ctx, `
		INSERT INTO orders (order_number, season_id, brand_id, location_id, ship_date,
		                    order_type, status, notes, created_by)
		VALUES ($1, $2, $3, $4, $5, 'preseason', 'draft', $6, $7)
		RETURNING id
	`, orderNumber, src.Order.SeasonID, src.Order.BrandID, input.TargetLocationID,
		shipDate, notes, src.Order.CreatedBy).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("create order copy: %w", err)
	}

	itemRows, err := tx.Query(ctx, `
		SELECT oi.product_id, oi.quantity, oi.unit_cost, p.name, p.color, p.size
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = $1
	`, orderID)
	if err != nil {
		return 0, fmt.Errorf("load items to copy: %w", err)
	}

	type copiedItem struct {
		productID int
		quantity  int
		unitCost  decimal.Decimal
		family    string
		color     string
		size      string
	}
	var items []copiedItem
	for itemRows.Next() {
		var it copiedItem
		if err := itemRows.Scan(&it.productID, &it.quantity, &it.unitCost, &it.family, &it.color, &it.size); err != nil {
			itemRows.Close()
			return 0, fmt.Errorf("scan item to copy: %w", err)
		}
		items = append(items, it)
	}
	itemRows.Close()
	if err := itemRows.Err(); err != nil {
		return 0, fmt.Errorf("read items to copy: %w", err)
	}

	for _, it := range items {
		productID := it.productID
		if swap, ok := input.Mapping[it.family][it.size]; ok && it.color == swap.From {
			err := tx.QueryRow(ctx, `
				SELECT id FROM products
				WHERE name = $1 AND size = $2 AND color = $3
				  AND brand_id = $4 AND season_id = $5 AND active
			`, it.family, it.size, swap.To, src.Order.BrandID, src.Order.SeasonID).Scan(&productID)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return 0, fmt.Errorf("no active product for %s / %s in %s", it.family, it.size, swap.To)
				}
				return 0, fmt.Errorf("resolve variant swap: %w", err)
			}
		}

		lineTotal := it.unitCost.Mul(decimal.NewFromInt(int64(it.quantity)))
		if _, err := tx.Exec(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, unit_cost, line_total)
			VALUES ($1, $2, $3, $4, $5)
		`, newID, productID, it.quantity, it.unitCost, lineTotal); err != nil {
			return 0, fmt.Errorf("copy item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit copy: %w", err)
	}
	return newID, nil
}

// buildOrderNumber derives the house order number, e.g. "JAN26-PRA-SLC".
// Orders without a ship date yet get an ASAP prefix.
func buildOrderNumber(shipDate, brandCode, locationCode string) string {
	prefix := "ASAP"
	if t, err := time.Parse("2006-01-02", shipDate); err == nil {
		prefix = fmt.Sprintf("%s%02d", strings.ToUpper(t.Format("Jan")), t.Year()%100)
	}
	return fmt.Sprintf("%s-%s-%s", prefix, strings.ToUpper(brandCode), strings.ToUpper(locationCode))
}
