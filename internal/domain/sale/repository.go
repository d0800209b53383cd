package sale

import (
	"context"
)

// Repository defines persistence operations for sale orders
type Repository interface {
	// Create persists a new sale order
	Create(ctx context.Context, o *Order) error

	// FindByID fetches a sale order by ID
	FindByID(ctx context.Context, id string) (*Order, error)

	// FindByBranch lists the sale orders of a branch, newest first
	FindByBranch(ctx context.Context, branchID string, limit, offset int) ([]*Order, error)

	// FindByStatus lists the sale orders of a branch in a given status
	FindByStatus(ctx context.Context, branchID string, status Status, limit, offset int) ([]*Order, error)

	// Update persists the order items, status, totals and history
	Update(ctx context.Context, o *Order) error

	// CountByBranch counts the sale orders of a branch
	CountByBranch(ctx context.Context, branchID string) (int, error)

	// CountByStatus counts the sale orders of a branch in a given status
	CountByStatus(ctx context.Context, branchID string, status Status) (int, error)
}
