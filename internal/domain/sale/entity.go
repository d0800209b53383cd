package sale

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tokonusa/inventory-backend/internal/domain/pricing"
)

var (
	ErrEmptyCustomer        = errors.New("customer cannot be empty")
	ErrNoItems              = errors.New("order must have at least one item")
	ErrInvalidQuantity      = errors.New("item quantity must be greater than zero")
	ErrNotDraft             = errors.New("order is no longer a draft")
	ErrNotConfirmed         = errors.New("order has not been confirmed")
	ErrNotShipped           = errors.New("order has not been shipped")
	ErrNotSettled           = errors.New("order has not been settled")
	ErrReturnReasonRequired = errors.New("return reason is required")
)

// Status is the sale order lifecycle state.
//
// DRAFT orders are editable and have no stock effect. Confirming locks
// the items; shipping is the point stock is decremented; settling marks
// payment complete; returning restores stock and is terminal.
// DIBATALKAN is only reachable from DRAFT.
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusConfirmed Status = "DIKONFIRMASI"
	StatusShipped   Status = "DIKIRIM"
	StatusSettled   Status = "LUNAS"
	StatusReturned  Status = "DIRETUR"
	StatusCancelled Status = "DIBATALKAN"
)

// HistoryEntry is one append-only lifecycle log record
type HistoryEntry struct {
	Status    Status    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Actor     string    `json:"actor"`
	Note      string    `json:"note,omitempty"`
}

// Item is one sale order line. StockSnapshot records the stock seen when
// the line was entered; it is informational only, never authoritative.
type Item struct {
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	UnitName      string          `json:"unit_name"`
	Quantity      int64           `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	DiscountPct   decimal.Decimal `json:"discount_pct"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	StockSnapshot int64           `json:"stock_snapshot"`
}

// Adjustments are the invoice-level figures of a sale order
type Adjustments struct {
	InvoiceDiscount decimal.Decimal `json:"invoice_discount"`
	TaxPercent      decimal.Decimal `json:"tax_percent"`
	TaxMode         pricing.TaxMode `json:"tax_mode"`
	ShippingCost    decimal.Decimal `json:"shipping_cost"`
	MiscCost        decimal.Decimal `json:"misc_cost"`
}

// Order is a sale order issued to a customer
type Order struct {
	ID           string         `json:"id"`
	BranchID     string         `json:"branch_id"`
	CustomerID   string         `json:"customer_id"`
	CustomerName string         `json:"customer_name"`
	Number       string         `json:"number"`
	OrderDate    time.Time      `json:"order_date"`
	Items        []Item         `json:"items"`
	Status       Status         `json:"status"`
	Adjustments  Adjustments    `json:"adjustments"`
	Totals       pricing.Totals `json:"totals"`
	History      []HistoryEntry `json:"history"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// NewOrder creates a DRAFT sale order and seeds its history. Stock is
// not touched at creation.
func NewOrder(branchID, customerID, customerName, number string, orderDate time.Time, items []Item, adj Adjustments, actor string) (*Order, error) {
	if customerID == "" {
		return nil, ErrEmptyCustomer
	}
	if err := validateItems(items); err != nil {
		return nil, err
	}
	if adj.TaxMode == "" {
		adj.TaxMode = pricing.TaxExclusive
	}

	now := time.Now()
	o := &Order{
		ID:           uuid.New().String(),
		BranchID:     branchID,
		CustomerID:   customerID,
		CustomerName: customerName,
		Number:       number,
		OrderDate:    orderDate,
		Items:        items,
		Status:       StatusDraft,
		Adjustments:  adj,
		History: []HistoryEntry{{
			Status:    StatusDraft,
			Timestamp: now,
			Actor:     actor,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}
	o.recomputeTotals()

	return o, nil
}

func validateItems(items []Item) error {
	if len(items) == 0 {
		return ErrNoItems
	}
	for _, it := range items {
		if it.Quantity <= 0 {
			return fmt.Errorf("%w: product %s", ErrInvalidQuantity, it.ProductID)
		}
	}
	return nil
}

func (o *Order) recomputeTotals() {
	lines := make([]pricing.Line, 0, len(o.Items))
	for i := range o.Items {
		line := pricing.Line{
			Quantity:    o.Items[i].Quantity,
			UnitPrice:   o.Items[i].UnitPrice,
			DiscountPct: o.Items[i].DiscountPct,
		}
		o.Items[i].Subtotal = pricing.LineSubtotal(line)
		lines = append(lines, line)
	}

	o.Totals = pricing.Calculate(lines, pricing.Adjustments{
		InvoiceDiscount: o.Adjustments.InvoiceDiscount,
		TaxPercent:      o.Adjustments.TaxPercent,
		TaxMode:         o.Adjustments.TaxMode,
		ShippingCost:    o.Adjustments.ShippingCost,
		MiscCost:        o.Adjustments.MiscCost,
	})
}

func (o *Order) appendHistory(status Status, actor, note string, ts time.Time) {
	o.History = append(o.History, HistoryEntry{
		Status:    status,
		Timestamp: ts,
		Actor:     actor,
		Note:      note,
	})
}

// UpdateDraft replaces the items and adjustments of a DRAFT order and
// recomputes its totals. Any other status rejects the edit.
func (o *Order) UpdateDraft(items []Item, adj Adjustments) error {
	if o.Status != StatusDraft {
		return ErrNotDraft
	}
	if err := validateItems(items); err != nil {
		return err
	}
	if adj.TaxMode == "" {
		adj.TaxMode = pricing.TaxExclusive
	}

	o.Items = items
	o.Adjustments = adj
	o.recomputeTotals()
	o.UpdatedAt = time.Now()

	return nil
}

// Confirm transitions DRAFT to DIKONFIRMASI, locking the items
func (o *Order) Confirm(actor, note string) error {
	if o.Status != StatusDraft {
		return ErrNotDraft
	}

	now := time.Now()
	o.Status = StatusConfirmed
	o.appendHistory(StatusConfirmed, actor, note, now)
	o.UpdatedAt = now

	return nil
}

// Ship transitions DIKONFIRMASI to DIKIRIM. The caller is responsible
// for decrementing stock and recording the ledger entries in the same
// unit of work.
func (o *Order) Ship(actor, note string) error {
	if o.Status != StatusConfirmed {
		return ErrNotConfirmed
	}

	now := time.Now()
	o.Status = StatusShipped
	o.appendHistory(StatusShipped, actor, note, now)
	o.UpdatedAt = now

	return nil
}

// Settle transitions DIKIRIM to LUNAS. No stock effect.
func (o *Order) Settle(actor, note string) error {
	if o.Status != StatusShipped {
		return ErrNotShipped
	}

	now := time.Now()
	o.Status = StatusSettled
	o.appendHistory(StatusSettled, actor, note, now)
	o.UpdatedAt = now

	return nil
}

// Return transitions LUNAS to DIRETUR. The reason is mandatory and is
// stored in the history. The caller restores stock in the same unit of
// work.
func (o *Order) Return(actor, reason string) error {
	if o.Status != StatusSettled {
		return ErrNotSettled
	}
	if reason == "" {
		return ErrReturnReasonRequired
	}

	now := time.Now()
	o.Status = StatusReturned
	o.appendHistory(StatusReturned, actor, reason, now)
	o.UpdatedAt = now

	return nil
}

// Cancel transitions DRAFT to DIBATALKAN. No stock effect since none
// was ever decremented.
func (o *Order) Cancel(actor, note string) error {
	if o.Status != StatusDraft {
		return ErrNotDraft
	}

	now := time.Now()
	o.Status = StatusCancelled
	o.appendHistory(StatusCancelled, actor, note, now)
	o.UpdatedAt = now

	return nil
}
