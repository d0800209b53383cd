package branch

import (
	"context"
)

// Repository defines persistence operations for branches
type Repository interface {
	// Create persists a new branch
	Create(ctx context.Context, b *Branch) error

	// FindByID fetches a branch by ID
	FindByID(ctx context.Context, id string) (*Branch, error)

	// List lists all branches with pagination
	List(ctx context.Context, limit, offset int) ([]*Branch, error)

	// Update persists changes to a branch
	Update(ctx context.Context, b *Branch) error

	// Delete removes a branch
	Delete(ctx context.Context, id string) error

	// Exists reports whether an active branch with the given ID exists
	Exists(ctx context.Context, id string) (bool, error)
}
