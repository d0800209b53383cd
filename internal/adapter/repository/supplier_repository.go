package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tokonusa/inventory-backend/internal/domain/supplier"
	"github.com/tokonusa/inventory-backend/internal/infrastructure/database"
)

var (
	ErrSupplierNotFound = errors.New("supplier not found")
)

// SupplierRepository implements supplier.Repository over PostgreSQL
type SupplierRepository struct {
	db database.Querier
}

// NewSupplierRepository creates a new SupplierRepository
func NewSupplierRepository(db database.Querier) supplier.Repository {
	return &SupplierRepository{
		db: db,
	}
}

const supplierColumns = `id, branch_id, name, contact_person, phone, email, address,
	status, created_at, updated_at`

// Create implements supplier.Repository.Create
func (r *SupplierRepository) Create(ctx context.Context, s *supplier.Supplier) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO suppliers (
			id, branch_id, name, contact_person, phone, email, address,
			status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)`,
		s.ID, s.BranchID, s.Name, s.ContactPerson, s.Phone, s.Email, s.Address,
		s.Status, s.CreatedAt, s.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create supplier: %w", err)
	}

	return nil
}

func (r *SupplierRepository) scanSupplier(row pgx.Row) (*supplier.Supplier, error) {
	var s supplier.Supplier

	err := row.Scan(
		&s.ID, &s.BranchID, &s.Name, &s.ContactPerson, &s.Phone, &s.Email, &s.Address,
		&s.Status, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSupplierNotFound
		}
		return nil, fmt.Errorf("failed to fetch supplier: %w", err)
	}

	return &s, nil
}

// FindByID implements supplier.Repository.FindByID
func (r *SupplierRepository) FindByID(ctx context.Context, id string) (*supplier.Supplier, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+supplierColumns+` FROM suppliers WHERE id = $1`, id)
	return r.scanSupplier(row)
}

// FindByBranch implements supplier.Repository.FindByBranch
func (r *SupplierRepository) FindByBranch(ctx context.Context, branchID string, limit, offset int) ([]*supplier.Supplier, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+supplierColumns+`
		FROM suppliers
		WHERE branch_id = $1
		ORDER BY name ASC
		LIMIT $2 OFFSET $3`,
		branchID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []*supplier.Supplier
	for rows.Next() {
		s, err := r.scanSupplier(rows)
		if err != nil {
			return nil, err
		}
		suppliers = append(suppliers, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate suppliers: %w", err)
	}

	return suppliers, nil
}

// Update implements supplier.Repository.Update
func (r *SupplierRepository) Update(ctx context.Context, s *supplier.Supplier) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE suppliers SET
			name = $2, contact_person = $3, phone = $4, email = $5,
			address = $6, status = $7, updated_at = $8
		WHERE id = $1`,
		s.ID, s.Name, s.ContactPerson, s.Phone, s.Email, s.Address, s.Status, s.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to update supplier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSupplierNotFound
	}

	return nil
}

// Delete implements supplier.Repository.Delete
func (r *SupplierRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete supplier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSupplierNotFound
	}

	return nil
}

// CountByBranch implements supplier.Repository.CountByBranch
func (r *SupplierRepository) CountByBranch(ctx context.Context, branchID string) (int, error) {
	var count int

	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM suppliers WHERE branch_id = $1`, branchID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count suppliers: %w", err)
	}

	return count, nil
}
