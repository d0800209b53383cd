package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/tokonusa/inventory-backend/internal/domain/product"
	"github.com/tokonusa/inventory-backend/internal/infrastructure/database"
)

var (
	ErrProductNotFound     = errors.New("product not found")
	ErrProductDuplicateKey = errors.New("a product with the same code already exists")
)

// ProductRepository implements product.Repository over PostgreSQL
type ProductRepository struct {
	db database.Querier
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(db database.Querier) product.Repository {
	return &ProductRepository{
		db: db,
	}
}

const productColumns = `id, branch_id, code, name, category_id, unit_name, stock,
	cost_price, sell_price, status, created_at, updated_at`

// Create implements product.Repository.Create
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO products (
			id, branch_id, code, name, category_id, unit_name, stock,
			cost_price, sell_price, status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		)`,
		p.ID, p.BranchID, p.Code, p.Name, p.CategoryID, p.UnitName, p.Stock,
		p.CostPrice, p.SellPrice, p.Status, p.CreatedAt, p.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrProductDuplicateKey
		}
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

func (r *ProductRepository) scanProduct(row pgx.Row) (*product.Product, error) {
	var p product.Product

	err := row.Scan(
		&p.ID, &p.BranchID, &p.Code, &p.Name, &p.CategoryID, &p.UnitName, &p.Stock,
		&p.CostPrice, &p.SellPrice, &p.Status, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}

	return &p, nil
}

// FindByID implements product.Repository.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*product.Product, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	return r.scanProduct(row)
}

// FindByCode implements product.Repository.FindByCode
func (r *ProductRepository) FindByCode(ctx context.Context, branchID, code string) (*product.Product, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE branch_id = $1 AND code = $2`,
		branchID, code)
	return r.scanProduct(row)
}

// FindByBranch implements product.Repository.FindByBranch
func (r *ProductRepository) FindByBranch(ctx context.Context, branchID string, limit, offset int) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+`
		FROM products
		WHERE branch_id = $1
		ORDER BY name ASC
		LIMIT $2 OFFSET $3`,
		branchID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []*product.Product
	for rows.Next() {
		p, err := r.scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}

// Update implements product.Repository.Update
func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE products SET
			code = $2, name = $3, category_id = $4, unit_name = $5,
			cost_price = $6, sell_price = $7, status = $8, updated_at = $9
		WHERE id = $1`,
		p.ID, p.Code, p.Name, p.CategoryID, p.UnitName,
		p.CostPrice, p.SellPrice, p.Status, p.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// Delete implements product.Repository.Delete
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// AdjustStock implements product.Repository.AdjustStock. The delta is
// applied in SQL so concurrent adjustments serialize on the row instead
// of overwriting each other's reads.
func (r *ProductRepository) AdjustStock(ctx context.Context, id string, delta int64) (int64, error) {
	var balance int64

	err := r.db.QueryRow(ctx,
		`UPDATE products SET stock = stock + $2, updated_at = now()
		WHERE id = $1
		RETURNING stock`,
		id, delta).Scan(&balance)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrProductNotFound
		}
		return 0, fmt.Errorf("failed to adjust product stock: %w", err)
	}

	return balance, nil
}

// SetStock implements product.Repository.SetStock: an absolute
// overwrite, used only by opname finalization.
func (r *ProductRepository) SetStock(ctx context.Context, id string, qty int64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE products SET stock = $2, updated_at = now() WHERE id = $1`,
		id, qty)

	if err != nil {
		return fmt.Errorf("failed to set product stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// CountByBranch implements product.Repository.CountByBranch
func (r *ProductRepository) CountByBranch(ctx context.Context, branchID string) (int, error) {
	var count int

	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE branch_id = $1`, branchID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}

	return count, nil
}
