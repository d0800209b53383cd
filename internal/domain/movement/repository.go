package movement

import (
	"context"
)

// Repository defines persistence operations for the stock ledger. The
// ledger is append-only: there are no update or delete operations.
type Repository interface {
	// Record appends one movement to the ledger
	Record(ctx context.Context, m *Movement) error

	// FindByBranch lists the movements of a branch, newest first
	FindByBranch(ctx context.Context, branchID string, limit, offset int) ([]*Movement, error)

	// FindByProduct lists the movements of one product, newest first
	FindByProduct(ctx context.Context, productID string, limit, offset int) ([]*Movement, error)

	// CountByBranch counts the movements of a branch
	CountByBranch(ctx context.Context, branchID string) (int, error)
}
