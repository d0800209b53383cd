package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tokonusa/inventory-backend/internal/domain/movement"
	"github.com/tokonusa/inventory-backend/internal/domain/sale"
	"github.com/tokonusa/inventory-backend/pkg/logger"
)

// ErrInsufficientStock is returned by Ship when a line would drive a
// product's stock below zero and oversell is not allowed.
var ErrInsufficientStock = errors.New("insufficient stock for shipment")

// SaleItemInput is one requested order line, before product data is
// denormalized onto it.
type SaleItemInput struct {
	ProductID   string
	Quantity    int64
	UnitPrice   decimal.Decimal
	DiscountPct decimal.Decimal
}

// SaleService drives the sale order lifecycle. Stock is only touched on
// shipment and return, each inside one transaction.
//
// AllowNegativeStock is the oversell policy: when false, shipping a
// quantity larger than the available stock is rejected and rolled back;
// when true the stock simply goes negative.
type SaleService struct {
	tx                 TxManager
	numbers            NumberGenerator
	allowNegativeStock bool
	log                logger.Logger
}

// NewSaleService creates a new SaleService with the given oversell policy
func NewSaleService(tx TxManager, numbers NumberGenerator, allowNegativeStock bool, log logger.Logger) *SaleService {
	return &SaleService{
		tx:                 tx,
		numbers:            numbers,
		allowNegativeStock: allowNegativeStock,
		log:                log,
	}
}

// Create builds a DRAFT sale order. Stock is not decremented here; the
// per-line stock snapshot is informational only.
func (s *SaleService) Create(ctx context.Context, branchID, customerID string, orderDate time.Time, items []SaleItemInput, adj sale.Adjustments, actor string) (*sale.Order, error) {
	var created *sale.Order

	err := s.tx.WithinTx(ctx, func(ctx context.Context, repos Repositories) error {
		cust, err := repos.Customers.FindByID(ctx, customerID)
		if err != nil {
			return fmt.Errorf("failed to load customer: %w", err)
		}

		orderItems, err := s.buildItems(ctx, repos, items)
		if err != nil {
			return err
		}

		number, err := s.numbers.Next(ctx, branchID, DocTypeSale)
		if err != nil {
			return fmt.Errorf("failed to allocate order number: %w", err)
		}

		o, err := sale.NewOrder(branchID, cust.ID, cust.Name, number, orderDate, orderItems, adj, actor)
		if err != nil {
			return err
		}

		if err := repos.Sales.Create(ctx, o); err != nil {
			return fmt.Errorf("failed to persist sale order: %w", err)
		}

		created = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("sale order created", "order_id", created.ID, "number", created.Number)
	return created, nil
}

func (s *SaleService) buildItems(ctx context.Context, repos Repositories, items []SaleItemInput) ([]sale.Item, error) {
	orderItems := make([]sale.Item, 0, len(items))
	for _, in := range items {
		p, err := repos.Products.FindByID(ctx, in.ProductID)
		if err != nil {
			return nil, fmt.Errorf("failed to load product %s: %w", in.ProductID, err)
		}

		unitPrice := in.UnitPrice
		if unitPrice.IsZero() {
			unitPrice = p.SellPrice
		}

		orderItems = append(orderItems, sale.Item{
			ProductID:     p.ID,
			ProductName:   p.Name,
			UnitName:      p.UnitName,
			Quantity:      in.Quantity,
			UnitPrice:     unitPrice,
			DiscountPct:   in.DiscountPct,
			StockSnapshot: p.Stock,
		})
	}
	return orderItems, nil
}

// UpdateDraft replaces the lines and adjustments of a DRAFT order
func (s *SaleService) UpdateDraft(ctx context.Context, orderID string, items []SaleItemInput, adj sale.Adjustments) (*sale.Order, error) {
	var updated *sale.Order

	err := s.tx.WithinTx(ctx, func(ctx context.Context, repos Repositories) error {
		o, err := repos.Sales.FindByID(ctx, orderID)
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

		if err := repos.Sales.Update(ctx, o); err != nil {
			return fmt.Errorf("failed to persist sale order: %w", err)
		}

		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Confirm transitions a DRAFT order to DIKONFIRMASI and stamps the
// customer's last purchase.
func (s *SaleService) Confirm(ctx context.Context, orderID, actor, note string) (*sale.Order, error) {
	var updated *sale.Order

	err := s.tx.WithinTx(ctx, func(ctx context.Context, repos Repositories) error {
		o, err := repos.Sales.FindByID(ctx, orderID)
		if err != nil {
			return err
		}

		if err := o.Confirm(actor, note); err != nil {
			return err
		}

		if err := repos.Sales.Update(ctx, o); err != nil {
			return fmt.Errorf("failed to persist sale order: %w", err)
		}

		// the stamp must not block confirmation when the customer is
		// gone or unreadable, but the failure has to be visible
		cust, err := repos.Customers.FindByID(ctx, o.CustomerID)
		if err != nil {
			s.log.Warn("skipping last purchase stamp",
				"order_id", o.ID, "customer_id", o.CustomerID, "error", err)
		} else {
			cust.UpdateLastPurchase()
			if err := repos.Customers.Update(ctx, cust); err != nil {
				return fmt.Errorf("failed to update customer: %w", err)
			}
		}

		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Ship transitions DIKONFIRMASI to DIKIRIM and is the point stock is
// decremented: each line subtracts its quantity from the product stock
// and appends a sale-out ledger entry with the resulting balance. The
// whole shipment shares one transaction, so an insufficient-stock
// rejection on any line undoes the lines already processed.
func (s *SaleService) Ship(ctx context.Context, orderID, actor, note string) (*sale.Order, error) {
	var updated *sale.Order

	err := s.tx.WithinTx(ctx, func(ctx context.Context, repos Repositories) error {
		o, err := repos.Sales.FindByID(ctx, orderID)
		if err != nil {
			return err
		}

		if err := o.Ship(actor, note); err != nil {
			return err
		}

		for _, it := range o.Items {
			balance, err := repos.Products.AdjustStock(ctx, it.ProductID, -it.Quantity)
			if err != nil {
				return fmt.Errorf("failed to adjust stock for product %s: %w", it.ProductID, err)
			}

			if balance < 0 && !s.allowNegativeStock {
				return fmt.Errorf("%w: product %s, short by %d", ErrInsufficientStock, it.ProductID, -balance)
			}

			m, err := movement.NewMovement(o.BranchID, it.ProductID, it.ProductName, it.UnitName,
				movement.TypeSaleOut, -it.Quantity, balance, o.Number)
			if err != nil {
				return err
			}
			if err := repos.Movements.Record(ctx, m); err != nil {
				return fmt.Errorf("failed to record stock movement: %w", err)
			}
		}

		if err := repos.Sales.Update(ctx, o); err != nil {
			return fmt.Errorf("failed to persist sale order: %w", err)
		}

		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("sale order shipped", "order_id", updated.ID)
	return updated, nil
}

// Settle transitions DIKIRIM to LUNAS. No stock effect.
func (s *SaleService) Settle(ctx context.Context, orderID, actor, note string) (*sale.Order, error) {
	return s.transition(ctx, orderID, func(o *sale.Order) error {
		return o.Settle(actor, note)
	})
}

// Return transitions LUNAS to DIRETUR: each line adds its quantity back
// to the product stock and appends an adjustment ledger entry. The
// reason is mandatory and lands in the order history.
func (s *SaleService) Return(ctx context.Context, orderID, actor, reason string) (*sale.Order, error) {
	var updated *sale.Order

	err := s.tx.WithinTx(ctx, func(ctx context.Context, repos Repositories) error {
		o, err := repos.Sales.FindByID(ctx, orderID)
		if err != nil {
			return err
		}

		if err := o.Return(actor, reason); err != nil {
			return err
		}

		for _, it := range o.Items {
			balance, err := repos.Products.AdjustStock(ctx, it.ProductID, it.Quantity)
			if err != nil {
				return fmt.Errorf("failed to adjust stock for product %s: %w", it.ProductID, err)
			}

			m, err := movement.NewMovement(o.BranchID, it.ProductID, it.ProductName, it.UnitName,
				movement.TypeAdjustment, it.Quantity, balance, o.Number)
			if err != nil {
				return err
			}
			if err := repos.Movements.Record(ctx, m); err != nil {
				return fmt.Errorf("failed to record stock movement: %w", err)
			}
		}

		if err := repos.Sales.Update(ctx, o); err != nil {
			return fmt.Errorf("failed to persist sale order: %w", err)
		}

		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("sale order returned", "order_id", updated.ID)
	return updated, nil
}

// Cancel transitions a DRAFT order to DIBATALKAN
func (s *SaleService) Cancel(ctx context.Context, orderID, actor, note string) (*sale.Order, error) {
	return s.transition(ctx, orderID, func(o *sale.Order) error {
		return o.Cancel(actor, note)
	})
}

func (s *SaleService) transition(ctx context.Context, orderID string, apply func(*sale.Order) error) (*sale.Order, error) {
	var updated *sale.Order

	err := s.tx.WithinTx(ctx, func(ctx context.Context, repos Repositories) error {
		o, err := repos.Sales.FindByID(ctx, orderID)
		if err != nil {
			return err
		}

		if err := apply(o); err != nil {
			return err
		}

		if err := repos.Sales.Update(ctx, o); err != nil {
			return fmt.Errorf("failed to persist sale order: %w", err)
		}

		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
