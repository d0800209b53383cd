package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tokonusa/inventory-backend/internal/infrastructure/database"
	"github.com/tokonusa/inventory-backend/internal/service"
	"github.com/tokonusa/inventory-backend/pkg/logger"
)

// PgTxManager implements service.TxManager over a pgx connection pool.
// Each unit of work runs on one transaction; the repositories handed to
// the callback are bound to that transaction, so stock, ledger and
// order writes commit or roll back together.
type PgTxManager struct {
	pool *pgxpool.Pool
	log  logger.Logger
}

// NewPgTxManager creates a new PgTxManager
func NewPgTxManager(pool *pgxpool.Pool, log logger.Logger) *PgTxManager {
	return &PgTxManager{
		pool: pool,
		log:  log,
	}
}

// newRepositories binds the full repository set to a querier
func newRepositories(q database.Querier) service.Repositories {
	return service.Repositories{
		Products:  NewProductRepository(q),
		Movements: NewMovementRepository(q),
		Purchases: NewPurchaseRepository(q),
		Sales:     NewSaleRepository(q),
		Opnames:   NewOpnameRepository(q),
		Suppliers: NewSupplierRepository(q),
		Customers: NewCustomerRepository(q),
	}
}

// WithinTx implements service.TxManager.WithinTx
func (m *PgTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context, repos service.Repositories) error) error {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(ctx, newRepositories(tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			m.log.Error("failed to rollback transaction", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
