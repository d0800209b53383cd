package service

import (
	"context"
	"fmt"
	"time"

	"github.com/tokonusa/inventory-backend/internal/domain/movement"
	"github.com/tokonusa/inventory-backend/internal/domain/opname"
	"github.com/tokonusa/inventory-backend/pkg/logger"
)

// OpnameService drives physical stock count sessions
type OpnameService struct {
	tx      TxManager
	numbers NumberGenerator
	log     logger.Logger
}

// NewOpnameService creates a new OpnameService
func NewOpnameService(tx TxManager, numbers NumberGenerator, log logger.Logger) *OpnameService {
	return &OpnameService{
		tx:      tx,
		numbers: numbers,
		log:     log,
	}
}

// Create opens a DRAFT count session, snapshotting the current stock of
// each listed product as its system quantity.
func (s *OpnameService) Create(ctx context.Context, branchID string, date time.Time, note string, productIDs []string) (*opname.Opname, error) {
	var created *opname.Opname

	err := s.tx.WithinTx(ctx, func(ctx context.Context, repos Repositories) error {
		items := make([]opname.Item, 0, len(productIDs))
		for _, pid := range productIDs {
			p, err := repos.Products.FindByID(ctx, pid)
			if err != nil {
				return fmt.Errorf("failed to load product %s: %w", pid, err)
			}

			items = append(items, opname.Item{
				ProductID:   p.ID,
				ProductName: p.Name,
				UnitName:    p.UnitName,
				SystemQty:   p.Stock,
			})
		}

		number, err := s.numbers.Next(ctx, branchID, DocTypeOpname)
		if err != nil {
			return fmt.Errorf("failed to allocate opname number: %w", err)
		}

		o, err := opname.NewOpname(branchID, number, date, note, items)
		if err != nil {
			return err
		}

		if err := repos.Opnames.Create(ctx, o); err != nil {
			return fmt.Errorf("failed to persist opname: %w", err)
		}

		created = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("stock opname created", "opname_id", created.ID, "number", created.Number)
	return created, nil
}

// SetCount records a physical count for one product of a DRAFT session
func (s *OpnameService) SetCount(ctx context.Context, opnameID, productID string, physicalQty int64, remark string) (*opname.Opname, error) {
	var updated *opname.Opname

	err := s.tx.WithinTx(ctx, func(ctx context.Context, repos Repositories) error {
		o, err := repos.Opnames.FindByID(ctx, opnameID)
		if err != nil {
			return err
		}

		if err := o.SetPhysicalCount(productID, physicalQty, remark); err != nil {
			return err
		}

		if err := repos.Opnames.Update(ctx, o); err != nil {
			return fmt.Errorf("failed to persist opname: %w", err)
		}

		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Finalize applies the corrective entries of a DRAFT session in one
// pass: for every line with a non-zero variance the product stock is
// overwritten with the physical count (an absolute set, not a delta)
// and an adjustment ledger entry is recorded with delta = variance and
// balance = physical count. The status guard on the entity makes a
// second finalize fail, so corrections can never be applied twice.
func (s *OpnameService) Finalize(ctx context.Context, opnameID, actor string) (*opname.Opname, error) {
	var updated *opname.Opname

	err := s.tx.WithinTx(ctx, func(ctx context.Context, repos Repositories) error {
		o, err := repos.Opnames.FindByID(ctx, opnameID)
		if err != nil {
			return err
		}

		if err := o.Finalize(actor); err != nil {
			return err
		}

		for _, it := range o.VarianceItems() {
			if err := repos.Products.SetStock(ctx, it.ProductID, it.PhysicalQty); err != nil {
				return fmt.Errorf("failed to set stock for product %s: %w", it.ProductID, err)
			}

			m, err := movement.NewMovement(o.BranchID, it.ProductID, it.ProductName, it.UnitName,
				movement.TypeAdjustment, it.Variance, it.PhysicalQty, o.Number)
			if err != nil {
				return err
			}
			if err := repos.Movements.Record(ctx, m); err != nil {
				return fmt.Errorf("failed to record stock movement: %w", err)
			}
		}

		if err := repos.Opnames.Update(ctx, o); err != nil {
			return fmt.Errorf("failed to persist opname: %w", err)
		}

		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("stock opname finalized", "opname_id", updated.ID)
	return updated, nil
}
