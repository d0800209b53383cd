package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/tokonusa/inventory-backend/internal/domain/sale"
	"github.com/tokonusa/inventory-backend/internal/infrastructure/database"
)

var (
	ErrSaleNotFound     = errors.New("sale order not found")
	ErrSaleDuplicateKey = errors.New("a sale order with the same number already exists")
)

// SaleRepository implements sale.Repository over PostgreSQL, storing the
// nested structures as JSONB like the purchase repository does.
type SaleRepository struct {
	db database.Querier
}

// NewSaleRepository creates a new SaleRepository
func NewSaleRepository(db database.Querier) sale.Repository {
	return &SaleRepository{
		db: db,
	}
}

const saleColumns = `id, branch_id, customer_id, customer_name, number, order_date,
	items, status, adjustments, totals, history, created_at, updated_at`

// Create implements sale.Repository.Create
func (r *SaleRepository) Create(ctx context.Context, o *sale.Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("failed to encode order items: %w", err)
	}
	adjustments, err := json.Marshal(o.Adjustments)
	if err != nil {
		return fmt.Errorf("failed to encode order adjustments: %w", err)
	}
	totals, err := json.Marshal(o.Totals)
	if err != nil {
		return fmt.Errorf("failed to encode order totals: %w", err)
	}
	history, err := json.Marshal(o.History)
	if err != nil {
		return fmt.Errorf("failed to encode order history: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO sale_orders (
			id, branch_id, customer_id, customer_name, number, order_date,
			items, status, adjustments, totals, history, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		)`,
		o.ID, o.BranchID, o.CustomerID, o.CustomerName, o.Number, o.OrderDate,
		items, o.Status, adjustments, totals, history, o.CreatedAt, o.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrSaleDuplicateKey
		}
		return fmt.Errorf("failed to create sale order: %w", err)
	}

	return nil
}

func (r *SaleRepository) scanOrder(row pgx.Row) (*sale.Order, error) {
	var o sale.Order
	var itemsJSON, adjustmentsJSON, totalsJSON, historyJSON []byte

	err := row.Scan(
		&o.ID, &o.BranchID, &o.CustomerID, &o.CustomerName, &o.Number, &o.OrderDate,
		&itemsJSON, &o.Status, &adjustmentsJSON, &totalsJSON, &historyJSON,
		&o.CreatedAt, &o.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSaleNotFound
		}
		return nil, fmt.Errorf("failed to fetch sale order: %w", err)
	}

	if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
		return nil, fmt.Errorf("failed to decode order items: %w", err)
	}
	if err := json.Unmarshal(adjustmentsJSON, &o.Adjustments); err != nil {
		return nil, fmt.Errorf("failed to decode order adjustments: %w", err)
	}
	if err := json.Unmarshal(totalsJSON, &o.Totals); err != nil {
		return nil, fmt.Errorf("failed to decode order totals: %w", err)
	}
	if err := json.Unmarshal(historyJSON, &o.History); err != nil {
		return nil, fmt.Errorf("failed to decode order history: %w", err)
	}

	return &o, nil
}

// FindByID implements sale.Repository.FindByID
func (r *SaleRepository) FindByID(ctx context.Context, id string) (*sale.Order, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+saleColumns+` FROM sale_orders WHERE id = $1`, id)
	return r.scanOrder(row)
}

func (r *SaleRepository) list(ctx context.Context, query string, args ...any) ([]*sale.Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list sale orders: %w", err)
	}
	defer rows.Close()

	var orders []*sale.Order
	for rows.Next() {
		o, err := r.scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sale orders: %w", err)
	}

	return orders, nil
}

// FindByBranch implements sale.Repository.FindByBranch
func (r *SaleRepository) FindByBranch(ctx context.Context, branchID string, limit, offset int) ([]*sale.Order, error) {
	return r.list(ctx,
		`SELECT `+saleColumns+`
		FROM sale_orders
		WHERE branch_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		branchID, limit, offset)
}

// FindByStatus implements sale.Repository.FindByStatus
func (r *SaleRepository) FindByStatus(ctx context.Context, branchID string, status sale.Status, limit, offset int) ([]*sale.Order, error) {
	return r.list(ctx,
		`SELECT `+saleColumns+`
		FROM sale_orders
		WHERE branch_id = $1 AND status = $2
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`,
		branchID, status, limit, offset)
}

// Update implements sale.Repository.Update
func (r *SaleRepository) Update(ctx context.Context, o *sale.Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("failed to encode order items: %w", err)
	}
	adjustments, err := json.Marshal(o.Adjustments)
	if err != nil {
		return fmt.Errorf("failed to encode order adjustments: %w", err)
	}
	totals, err := json.Marshal(o.Totals)
	if err != nil {
		return fmt.Errorf("failed to encode order totals: %w", err)
	}
	history, err := json.Marshal(o.History)
	if err != nil {
		return fmt.Errorf("failed to encode order history: %w", err)
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE sale_orders SET
			items = $2, status = $3, adjustments = $4, totals = $5,
			history = $6, updated_at = $7
		WHERE id = $1`,
		o.ID, items, o.Status, adjustments, totals, history, o.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to update sale order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSaleNotFound
	}

	return nil
}

// CountByBranch implements sale.Repository.CountByBranch
func (r *SaleRepository) CountByBranch(ctx context.Context, branchID string) (int, error) {
	var count int

	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM sale_orders WHERE branch_id = $1`, branchID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count sale orders: %w", err)
	}

	return count, nil
}

// CountByStatus implements sale.Repository.CountByStatus
func (r *SaleRepository) CountByStatus(ctx context.Context, branchID string, status sale.Status) (int, error) {
	var count int

	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM sale_orders WHERE branch_id = $1 AND status = $2`,
		branchID, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count sale orders: %w", err)
	}

	return count, nil
}
