package supplier

import (
	"context"
)

// Repository defines persistence operations for suppliers
type Repository interface {
	// Create persists a new supplier
	Create(ctx context.Context, s *Supplier) error

	// FindByID fetches a supplier by ID
	FindByID(ctx context.Context, id string) (*Supplier, error)

	// FindByBranch lists the suppliers of a branch with pagination
	FindByBranch(ctx context.Context, branchID string, limit, offset int) ([]*Supplier, error)

	// Update persists changes to a supplier
	Update(ctx context.Context, s *Supplier) error

	// Delete removes a supplier
	Delete(ctx context.Context, id string) error

	// CountByBranch counts the suppliers of a branch
	CountByBranch(ctx context.Context, branchID string) (int, error)
}
