package repository

import (
	"context"
	"fmt"

	"github.com/tokonusa/inventory-backend/internal/domain/movement"
	"github.com/tokonusa/inventory-backend/internal/infrastructure/database"
)

// MovementRepository implements movement.Repository over PostgreSQL.
// The table is append-only; this repository exposes no update or delete.
type MovementRepository struct {
	db database.Querier
}

// NewMovementRepository creates a new MovementRepository
func NewMovementRepository(db database.Querier) movement.Repository {
	return &MovementRepository{
		db: db,
	}
}

// Record implements movement.Repository.Record
func (r *MovementRepository) Record(ctx context.Context, m *movement.Movement) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO stock_movements (
			id, branch_id, product_id, product_name, unit_name, type,
			quantity, balance, reference, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)`,
		m.ID, m.BranchID, m.ProductID, m.ProductName, m.UnitName, m.Type,
		m.Quantity, m.Balance, m.Reference, m.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to record stock movement: %w", err)
	}

	return nil
}

const movementColumns = `id, branch_id, product_id, product_name, unit_name, type,
	quantity, balance, reference, created_at`

func (r *MovementRepository) list(ctx context.Context, query string, args ...any) ([]*movement.Movement, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock movements: %w", err)
	}
	defer rows.Close()

	var movements []*movement.Movement
	for rows.Next() {
		var m movement.Movement
		err := rows.Scan(
			&m.ID, &m.BranchID, &m.ProductID, &m.ProductName, &m.UnitName, &m.Type,
			&m.Quantity, &m.Balance, &m.Reference, &m.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stock movement: %w", err)
		}
		movements = append(movements, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate stock movements: %w", err)
	}

	return movements, nil
}

// FindByBranch implements movement.Repository.FindByBranch
func (r *MovementRepository) FindByBranch(ctx context.Context, branchID string, limit, offset int) ([]*movement.Movement, error) {
	return r.list(ctx,
		`SELECT `+movementColumns+`
		FROM stock_movements
		WHERE branch_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		branchID, limit, offset)
}

// FindByProduct implements movement.Repository.FindByProduct
func (r *MovementRepository) FindByProduct(ctx context.Context, productID string, limit, offset int) ([]*movement.Movement, error) {
	return r.list(ctx,
		`SELECT `+movementColumns+`
		FROM stock_movements
		WHERE product_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		productID, limit, offset)
}

// CountByBranch implements movement.Repository.CountByBranch
func (r *MovementRepository) CountByBranch(ctx context.Context, branchID string) (int, error) {
	var count int

	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM stock_movements WHERE branch_id = $1`, branchID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count stock movements: %w", err)
	}

	return count, nil
}
