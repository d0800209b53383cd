package user

import (
	"context"
)

// Repository defines persistence operations for users
type Repository interface {
	// Create persists a new user
	Create(ctx context.Context, u *User) error

	// FindByID fetches a user by ID
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByEmail fetches a user by email
	FindByEmail(ctx context.Context, email string) (*User, error)

	// List lists users with pagination
	List(ctx context.Context, limit, offset int) ([]*User, error)

	// Update persists changes to a user
	Update(ctx context.Context, u *User) error

	// UpdateLastLogin stamps the user's last successful login
	UpdateLastLogin(ctx context.Context, id string) error

	// Delete removes a user
	Delete(ctx context.Context, id string) error
}
