package opname

import (
	"context"
)

// Repository defines persistence operations for stock opname sessions
type Repository interface {
	// Create persists a new opname session
	Create(ctx context.Context, o *Opname) error

	// FindByID fetches an opname session by ID
	FindByID(ctx context.Context, id string) (*Opname, error)

	// FindByBranch lists the opname sessions of a branch, newest first
	FindByBranch(ctx context.Context, branchID string, limit, offset int) ([]*Opname, error)

	// Update persists the session items and status
	Update(ctx context.Context, o *Opname) error

	// CountByBranch counts the opname sessions of a branch
	CountByBranch(ctx context.Context, branchID string) (int, error)
}
