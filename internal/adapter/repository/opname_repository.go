package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tokonusa/inventory-backend/internal/domain/opname"
	"github.com/tokonusa/inventory-backend/internal/infrastructure/database"
)

var (
	ErrOpnameNotFound = errors.New("stock opname not found")
)

// OpnameRepository implements opname.Repository over PostgreSQL
type OpnameRepository struct {
	db database.Querier
}

// NewOpnameRepository creates a new OpnameRepository
func NewOpnameRepository(db database.Querier) opname.Repository {
	return &OpnameRepository{
		db: db,
	}
}

const opnameColumns = `id, branch_id, number, date, note, status, items,
	finalized_at, finalized_by, created_at, updated_at`

// Create implements opname.Repository.Create
func (r *OpnameRepository) Create(ctx context.Context, o *opname.Opname) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("failed to encode opname items: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO stock_opnames (
			id, branch_id, number, date, note, status, items,
			finalized_at, finalized_by, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)`,
		o.ID, o.BranchID, o.Number, o.Date, o.Note, o.Status, items,
		o.FinalizedAt, o.FinalizedBy, o.CreatedAt, o.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create stock opname: %w", err)
	}

	return nil
}

func (r *OpnameRepository) scanOpname(row pgx.Row) (*opname.Opname, error) {
	var o opname.Opname
	var itemsJSON []byte

	err := row.Scan(
		&o.ID, &o.BranchID, &o.Number, &o.Date, &o.Note, &o.Status, &itemsJSON,
		&o.FinalizedAt, &o.FinalizedBy, &o.CreatedAt, &o.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOpnameNotFound
		}
		return nil, fmt.Errorf("failed to fetch stock opname: %w", err)
	}

	if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
		return nil, fmt.Errorf("failed to decode opname items: %w", err)
	}

	return &o, nil
}

// FindByID implements opname.Repository.FindByID
func (r *OpnameRepository) FindByID(ctx context.Context, id string) (*opname.Opname, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+opnameColumns+` FROM stock_opnames WHERE id = $1`, id)
	return r.scanOpname(row)
}

// FindByBranch implements opname.Repository.FindByBranch
func (r *OpnameRepository) FindByBranch(ctx context.Context, branchID string, limit, offset int) ([]*opname.Opname, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+opnameColumns+`
		FROM stock_opnames
		WHERE branch_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		branchID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock opnames: %w", err)
	}
	defer rows.Close()

	var opnames []*opname.Opname
	for rows.Next() {
		o, err := r.scanOpname(rows)
		if err != nil {
			return nil, err
		}
		opnames = append(opnames, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate stock opnames: %w", err)
	}

	return opnames, nil
}

// Update implements opname.Repository.Update
func (r *OpnameRepository) Update(ctx context.Context, o *opname.Opname) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("failed to encode opname items: %w", err)
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE stock_opnames SET
			note = $2, status = $3, items = $4, finalized_at = $5,
			finalized_by = $6, updated_at = $7
		WHERE id = $1`,
		o.ID, o.Note, o.Status, items, o.FinalizedAt, o.FinalizedBy, o.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to update stock opname: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrOpnameNotFound
	}

	return nil
}

// CountByBranch implements opname.Repository.CountByBranch
func (r *OpnameRepository) CountByBranch(ctx context.Context, branchID string) (int, error) {
	var count int

	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM stock_opnames WHERE branch_id = $1`, branchID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count stock opnames: %w", err)
	}

	return count, nil
}
