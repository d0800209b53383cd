package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/tokonusa/inventory-backend/internal/domain/purchase"
	"github.com/tokonusa/inventory-backend/internal/infrastructure/database"
)

var (
	ErrPurchaseNotFound     = errors.New("purchase order not found")
	ErrPurchaseDuplicateKey = errors.New("a purchase order with the same number already exists")
)

// PurchaseRepository implements purchase.Repository over PostgreSQL.
// Items, adjustments, totals and history live in JSONB columns; the
// order is always read and written as one document.
type PurchaseRepository struct {
	db database.Querier
}

// NewPurchaseRepository creates a new PurchaseRepository
func NewPurchaseRepository(db database.Querier) purchase.Repository {
	return &PurchaseRepository{
		db: db,
	}
}

const purchaseColumns = `id, branch_id, supplier_id, supplier_name, number, order_date,
	items, status, adjustments, totals, history, created_at, updated_at`

// Create implements purchase.Repository.Create
func (r *PurchaseRepository) Create(ctx context.Context, o *purchase.Order) error {
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
		`INSERT INTO purchase_orders (
			id, branch_id, supplier_id, supplier_name, number, order_date,
			items, status, adjustments, totals, history, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		)`,
		o.ID, o.BranchID, o.SupplierID, o.SupplierName, o.Number, o.OrderDate,
		items, o.Status, adjustments, totals, history, o.CreatedAt, o.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrPurchaseDuplicateKey
		}
		return fmt.Errorf("failed to create purchase order: %w", err)
	}

	return nil
}

func (r *PurchaseRepository) scanOrder(row pgx.Row) (*purchase.Order, error) {
	var o purchase.Order
	var itemsJSON, adjustmentsJSON, totalsJSON, historyJSON []byte

	err := row.Scan(
		&o.ID, &o.BranchID, &o.SupplierID, &o.SupplierName, &o.Number, &o.OrderDate,
		&itemsJSON, &o.Status, &adjustmentsJSON, &totalsJSON, &historyJSON,
		&o.CreatedAt, &o.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPurchaseNotFound
		}
		return nil, fmt.Errorf("failed to fetch purchase order: %w", err)
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

// FindByID implements purchase.Repository.FindByID
func (r *PurchaseRepository) FindByID(ctx context.Context, id string) (*purchase.Order, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+purchaseColumns+` FROM purchase_orders WHERE id = $1`, id)
	return r.scanOrder(row)
}

func (r *PurchaseRepository) list(ctx context.Context, query string, args ...any) ([]*purchase.Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchase orders: %w", err)
	}
	defer rows.Close()

	var orders []*purchase.Order
	for rows.Next() {
		o, err := r.scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate purchase orders: %w", err)
	}

	return orders, nil
}

// FindByBranch implements purchase.Repository.FindByBranch
func (r *PurchaseRepository) FindByBranch(ctx context.Context, branchID string, limit, offset int) ([]*purchase.Order, error) {
	return r.list(ctx,
		`SELECT `+purchaseColumns+`
		FROM purchase_orders
		WHERE branch_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		branchID, limit, offset)
}

// FindByStatus implements purchase.Repository.FindByStatus
func (r *PurchaseRepository) FindByStatus(ctx context.Context, branchID string, status purchase.Status, limit, offset int) ([]*purchase.Order, error) {
	return r.list(ctx,
		`SELECT `+purchaseColumns+`
		FROM purchase_orders
		WHERE branch_id = $1 AND status = $2
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`,
		branchID, status, limit, offset)
}

// Update implements purchase.Repository.Update
func (r *PurchaseRepository) Update(ctx context.Context, o *purchase.Order) error {
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
		`UPDATE purchase_orders SET
			items = $2, status = $3, adjustments = $4, totals = $5,
			history = $6, updated_at = $7
		WHERE id = $1`,
		o.ID, items, o.Status, adjustments, totals, history, o.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to update purchase order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPurchaseNotFound
	}

	return nil
}

// CountByBranch implements purchase.Repository.CountByBranch
func (r *PurchaseRepository) CountByBranch(ctx context.Context, branchID string) (int, error) {
	var count int

	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM purchase_orders WHERE branch_id = $1`, branchID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count purchase orders: %w", err)
	}

	return count, nil
}

// CountByStatus implements purchase.Repository.CountByStatus
func (r *PurchaseRepository) CountByStatus(ctx context.Context, branchID string, status purchase.Status) (int, error) {
	var count int

	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM purchase_orders WHERE branch_id = $1 AND status = $2`,
		branchID, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count purchase orders: %w", err)
	}

	return count, nil
}
