package customer

import (
	"context"
)

// Repository defines persistence operations for customers
type Repository interface {
	// Create persists a new customer
	Create(ctx context.Context, c *Customer) error

	// FindByID fetches a customer by ID
	FindByID(ctx context.Context, id string) (*Customer, error)

	// FindByBranch lists the customers of a branch with pagination
	FindByBranch(ctx context.Context, branchID string, limit, offset int) ([]*Customer, error)

	// Update persists changes to a customer
	Update(ctx context.Context, c *Customer) error

	// Delete removes a customer
	Delete(ctx context.Context, id string) error

	// CountByBranch counts the customers of a branch
	CountByBranch(ctx context.Context, branchID string) (int, error)
}
