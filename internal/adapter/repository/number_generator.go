package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/tokonusa/inventory-backend/internal/infrastructure/database"
)

// DocumentNumberGenerator implements service.NumberGenerator with a
// per-branch, per-type, per-month counter row. The upsert increments
// the counter atomically, so concurrent creators never collide. Numbers
// allocated for transactions that later roll back leave gaps, which is
// acceptable for a human-readable sequence.
type DocumentNumberGenerator struct {
	db database.Querier
}

// NewDocumentNumberGenerator creates a new DocumentNumberGenerator
func NewDocumentNumberGenerator(db database.Querier) *DocumentNumberGenerator {
	return &DocumentNumberGenerator{
		db: db,
	}
}

// Next allocates the next document number, e.g. "PO/202608/00042"
func (g *DocumentNumberGenerator) Next(ctx context.Context, branchID, docType string) (string, error) {
	period := time.Now().Format("200601")

	var n int64
	err := g.db.QueryRow(ctx,
		`INSERT INTO document_counters (branch_id, doc_type, period, last_value)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (branch_id, doc_type, period)
		DO UPDATE SET last_value = document_counters.last_value + 1
		RETURNING last_value`,
		branchID, docType, period).Scan(&n)
	if err != nil {
		return "", fmt.Errorf("failed to increment document counter: %w", err)
	}

	return fmt.Sprintf("%s/%s/%05d", docType, period, n), nil
}
