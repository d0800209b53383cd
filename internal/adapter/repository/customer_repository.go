package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tokonusa/inventory-backend/internal/domain/customer"
	"github.com/tokonusa/inventory-backend/internal/infrastructure/database"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
)

// CustomerRepository implements customer.Repository over PostgreSQL
type CustomerRepository struct {
	db database.Querier
}

// NewCustomerRepository creates a new CustomerRepository
func NewCustomerRepository(db database.Querier) customer.Repository {
	return &CustomerRepository{
		db: db,
	}
}

const customerColumns = `id, branch_id, name, phone, email, address, status,
	last_purchase_at, created_at, updated_at`

// Create implements customer.Repository.Create
func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO customers (
			id, branch_id, name, phone, email, address, status,
			last_purchase_at, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)`,
		c.ID, c.BranchID, c.Name, c.Phone, c.Email, c.Address, c.Status,
		c.LastPurchaseAt, c.CreatedAt, c.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	return nil
}

func (r *CustomerRepository) scanCustomer(row pgx.Row) (*customer.Customer, error) {
	var c customer.Customer

	err := row.Scan(
		&c.ID, &c.BranchID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.Status,
		&c.LastPurchaseAt, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to fetch customer: %w", err)
	}

	return &c, nil
}

// FindByID implements customer.Repository.FindByID
func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*customer.Customer, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
	return r.scanCustomer(row)
}

// FindByBranch implements customer.Repository.FindByBranch
func (r *CustomerRepository) FindByBranch(ctx context.Context, branchID string, limit, offset int) ([]*customer.Customer, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+customerColumns+`
		FROM customers
		WHERE branch_id = $1
		ORDER BY name ASC
		LIMIT $2 OFFSET $3`,
		branchID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	var customers []*customer.Customer
	for rows.Next() {
		c, err := r.scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate customers: %w", err)
	}

	return customers, nil
}

// Update implements customer.Repository.Update
func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE customers SET
			name = $2, phone = $3, email = $4, address = $5, status = $6,
			last_purchase_at = $7, updated_at = $8
		WHERE id = $1`,
		c.ID, c.Name, c.Phone, c.Email, c.Address, c.Status,
		c.LastPurchaseAt, c.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// Delete implements customer.Repository.Delete
func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// CountByBranch implements customer.Repository.CountByBranch
func (r *CustomerRepository) CountByBranch(ctx context.Context, branchID string) (int, error) {
	var count int

	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM customers WHERE branch_id = $1`, branchID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}

	return count, nil
}
