package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tokonusa/inventory-backend/internal/domain/movement"
	"github.com/tokonusa/inventory-backend/internal/domain/purchase"
	"github.com/tokonusa/inventory-backend/pkg/logger"
)

// PurchaseItemInput is one requested order line, before product data is
// denormalized onto it.
type PurchaseItemInput struct {
	ProductID   string
	Quantity    int64
	UnitCost    decimal.Decimal
	DiscountPct decimal.Decimal
}

// PurchaseService drives the purchase order lifecycle. Every mutation
// that spans stock, ledger and order state runs in one transaction.
type PurchaseService struct {
	tx      TxManager
	numbers NumberGenerator
	log     logger.Logger
}

// NewPurchaseService creates a new PurchaseService
func NewPurchaseService(tx TxManager, numbers NumberGenerator, log logger.Logger) *PurchaseService {
	return &PurchaseService{
		tx:      tx,
		numbers: numbers,
		log:     log,
	}
}

// Create builds a DRAFT purchase order, denormalizing supplier and
// product data onto the document and allocating its number.
func (s *PurchaseService) Create(ctx context.Context, branchID, supplierID string, orderDate time.Time, items []PurchaseItemInput, adj purchase.Adjustments, actor string) (*purchase.Order, error) {
	var created *purchase.Order

	err := s.tx.WithinTx(ctx, func(ctx context.Context, repos Repositories) error {
		sup, err := repos.Suppliers.FindByID(ctx, supplierID)
		if err != nil {
			return fmt.Errorf("failed to load supplier: %w", err)
		}

		orderItems, err := s.buildItems(ctx, repos, items)
		if err != nil {
			return err
		}

		number, err := s.numbers.Next(ctx, branchID, DocTypePurchase)
		if err != nil {
			return fmt.Errorf("failed to allocate order number: %w", err)
		}

		o, err := purchase.NewOrder(branchID, sup.ID, sup.Name, number, orderDate, orderItems, adj, actor)
		if err != nil {
			return err
		}

		if err := repos.Purchases.Create(ctx, o); err != nil {
			return fmt.Errorf("failed to persist purchase order: %w", err)
		}

		created = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("purchase order created", "order_id", created.ID, "number", created.Number)
	return created, nil
}

func (s *PurchaseService) buildItems(ctx context.Context, repos Repositories, items []PurchaseItemInput) ([]purchase.Item, error) {
	orderItems := make([]purchase.Item, 0, len(items))
	for _, in := range items {
		p, err := repos.Products.FindByID(ctx, in.ProductID)
		if err != nil {
			return nil, fmt.Errorf("failed to load product %s: %w", in.ProductID, err)
		}

		unitCost := in.UnitCost
		if unitCost.IsZero() {
			unitCost = p.CostPrice
		}

		orderItems = append(orderItems, purchase.Item{
			ProductID:   p.ID,
			ProductName: p.Name,
			UnitName:    p.UnitName,
			Quantity:    in.Quantity,
			UnitCost:    unitCost,
			DiscountPct: in.DiscountPct,
		})
	}
	return orderItems, nil
}

// UpdateDraft replaces the lines and adjustments of a DRAFT order
func (s *PurchaseService) UpdateDraft(ctx context.Context, orderID string, items []PurchaseItemInput, adj purchase.Adjustments) (*purchase.Order, error) {
	var updated *purchase.Order

	err := s.tx.WithinTx(ctx, func(ctx context.Context, repos Repositories) error {
		o, err := repos.Purchases.FindByID(ctx, orderID)
		if err != nil {
			return err
		}

		orderItems, err := s.buildItems(ctx, repos, items)
		if err != nil {
			return err
		}

		if err := o.UpdateDraft(orderItems, adj); err != nil {
			return err
		}

		if err := repos.Purchases.Update(ctx, o); err != nil {
			return fmt.Errorf("failed to persist purchase order: %w", err)
		}

		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Send transitions a DRAFT order to DIPESAN
func (s *PurchaseService) Send(ctx context.Context, orderID, actor, note string) (*purchase.Order, error) {
	return s.transition(ctx, orderID, func(o *purchase.Order) error {
		return o.Send(actor, note)
	})
}

// Cancel transitions a DRAFT order to DIBATALKAN
func (s *PurchaseService) Cancel(ctx context.Context, orderID, actor, note string) (*purchase.Order, error) {
	return s.transition(ctx, orderID, func(o *purchase.Order) error {
		return o.Cancel(actor, note)
	})
}

func (s *PurchaseService) transition(ctx context.Context, orderID string, apply func(*purchase.Order) error) (*purchase.Order, error) {
	var updated *purchase.Order

	err := s.tx.WithinTx(ctx, func(ctx context.Context, repos Repositories) error {
		o, err := repos.Purchases.FindByID(ctx, orderID)
		if err != nil {
			return err
		}

		if err := apply(o); err != nil {
			return err
		}

		if err := repos.Purchases.Update(ctx, o); err != nil {
			return fmt.Errorf("failed to persist purchase order: %w", err)
		}

		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Receive books the received quantities against the order: for each
// line it increments product stock, appends a purchase-in ledger entry
// carrying the resulting balance, and accumulates the line's received
// counter. The receipt is validated up front so an over-receive rejects
// before anything is mutated, and the whole operation shares one
// transaction so a mid-receipt failure leaves no partial state behind.
func (s *PurchaseService) Receive(ctx context.Context, orderID string, lines []purchase.ReceiptLine, actor, note string) (*purchase.Order, error) {
	var updated *purchase.Order

	err := s.tx.WithinTx(ctx, func(ctx context.Context, repos Repositories) error {
		o, err := repos.Purchases.FindByID(ctx, orderID)
		if err != nil {
			return err
		}

		if err := o.ValidateReceipt(lines); err != nil {
			return err
		}

		for _, rl := range lines {
			if rl.Quantity <= 0 {
				continue
			}

			p, err := repos.Products.FindByID(ctx, rl.ProductID)
			if err != nil {
				return fmt.Errorf("failed to load product %s: %w", rl.ProductID, err)
			}

			balance, err := repos.Products.AdjustStock(ctx, p.ID, rl.Quantity)
			if err != nil {
				return fmt.Errorf("failed to adjust stock for product %s: %w", p.ID, err)
			}

			m, err := movement.NewMovement(o.BranchID, p.ID, p.Name, p.UnitName,
				movement.TypePurchaseIn, rl.Quantity, balance, o.Number)
			if err != nil {
				return err
			}
			if err := repos.Movements.Record(ctx, m); err != nil {
				return fmt.Errorf("failed to record stock movement: %w", err)
			}
		}

		if err := o.ApplyReceipt(lines, actor, note); err != nil {
			return err
		}

		if err := repos.Purchases.Update(ctx, o); err != nil {
			return fmt.Errorf("failed to persist purchase order: %w", err)
		}

		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("purchase order received", "order_id", updated.ID, "status", updated.Status)
	return updated, nil
}
