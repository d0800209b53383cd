package product

import (
	"context"
)

// Repository defines persistence operations for products.
//
// Stock mutation deliberately comes in two distinct flavors:
// AdjustStock applies a relative delta (purchase receiving, sale shipment
// and return), while SetStock overwrites the quantity with an absolute
// value (stock opname finalization). They are kept separate on purpose
// and must not be unified.
type Repository interface {
	// Create persists a new product
	Create(ctx context.Context, p *Product) error

	// FindByID fetches a product by ID
	FindByID(ctx context.Context, id string) (*Product, error)

	// FindByCode fetches a product by its code within a branch
	FindByCode(ctx context.Context, branchID, code string) (*Product, error)

	// FindByBranch lists the products of a branch with pagination
	FindByBranch(ctx context.Context, branchID string, limit, offset int) ([]*Product, error)

	// Update persists changes to the product master data
	Update(ctx context.Context, p *Product) error

	// Delete removes a product
	Delete(ctx context.Context, id string) error

	// AdjustStock atomically applies a signed delta to the product stock
	// and returns the resulting balance.
	AdjustStock(ctx context.Context, id string, delta int64) (int64, error)

	// SetStock overwrites the product stock with an absolute quantity.
	SetStock(ctx context.Context, id string, qty int64) error

	// CountByBranch counts the products of a branch
	CountByBranch(ctx context.Context, branchID string) (int, error)
}
