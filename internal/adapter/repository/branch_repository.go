package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/tokonusa/inventory-backend/internal/domain/branch"
	"github.com/tokonusa/inventory-backend/internal/infrastructure/database"
)

var (
	ErrBranchNotFound     = errors.New("branch not found")
	ErrBranchDuplicateKey = errors.New("a branch with the same code already exists")
)

// BranchRepository implements branch.Repository over PostgreSQL
type BranchRepository struct {
	db database.Querier
}

// NewBranchRepository creates a new BranchRepository
func NewBranchRepository(db database.Querier) *BranchRepository {
	return &BranchRepository{
		db: db,
	}
}

const branchColumns = `id, code, name, address, phone, is_main, status, created_at, updated_at`

// Create implements branch.Repository.Create
func (r *BranchRepository) Create(ctx context.Context, b *branch.Branch) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO branches (
			id, code, name, address, phone, is_main, status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)`,
		b.ID, b.Code, b.Name, b.Address, b.Phone, b.IsMain, b.Status, b.CreatedAt, b.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrBranchDuplicateKey
		}
		return fmt.Errorf("failed to create branch: %w", err)
	}

	return nil
}

func (r *BranchRepository) scanBranch(row pgx.Row) (*branch.Branch, error) {
	var b branch.Branch

	err := row.Scan(
		&b.ID, &b.Code, &b.Name, &b.Address, &b.Phone, &b.IsMain, &b.Status,
		&b.CreatedAt, &b.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBranchNotFound
		}
		return nil, fmt.Errorf("failed to fetch branch: %w", err)
	}

	return &b, nil
}

// FindByID implements branch.Repository.FindByID
func (r *BranchRepository) FindByID(ctx context.Context, id string) (*branch.Branch, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+branchColumns+` FROM branches WHERE id = $1`, id)
	return r.scanBranch(row)
}

// List implements branch.Repository.List
func (r *BranchRepository) List(ctx context.Context, limit, offset int) ([]*branch.Branch, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+branchColumns+`
		FROM branches
		ORDER BY name ASC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	defer rows.Close()

	var branches []*branch.Branch
	for rows.Next() {
		b, err := r.scanBranch(rows)
		if err != nil {
			return nil, err
		}
		branches = append(branches, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate branches: %w", err)
	}

	return branches, nil
}

// Update implements branch.Repository.Update
func (r *BranchRepository) Update(ctx context.Context, b *branch.Branch) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE branches SET
			code = $2, name = $3, address = $4, phone = $5, is_main = $6,
			status = $7, updated_at = $8
		WHERE id = $1`,
		b.ID, b.Code, b.Name, b.Address, b.Phone, b.IsMain, b.Status, b.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to update branch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrBranchNotFound
	}

	return nil
}

// Delete implements branch.Repository.Delete
func (r *BranchRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM branches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete branch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrBranchNotFound
	}

	return nil
}

// Exists implements branch.Repository.Exists
func (r *BranchRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool

	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM branches WHERE id = $1 AND status = $2)`,
		id, branch.StatusActive).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check branch existence: %w", err)
	}

	return exists, nil
}

// ValidateBranch implements the branchctx.BranchValidator contract used
// by the branch-scoping middleware.
func (r *BranchRepository) ValidateBranch(ctx context.Context, branchID string) (bool, error) {
	return r.Exists(ctx, branchID)
}
