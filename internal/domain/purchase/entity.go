package purchase

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tokonusa/inventory-backend/internal/domain/pricing"
)

var (
	ErrEmptySupplier         = errors.New("supplier cannot be empty")
	ErrNoItems               = errors.New("order must have at least one item")
	ErrInvalidQuantity       = errors.New("item quantity must be greater than zero")
	ErrNotDraft              = errors.New("order is no longer a draft")
	ErrNotReceivable         = errors.New("order is not awaiting receipt")
	ErrNothingToReceive      = errors.New("no quantity informed to receive")
	ErrUnknownItem           = errors.New("receipt references an item not on the order")
	ErrReceiveExceedsOrdered = errors.New("received quantity exceeds the remaining ordered quantity")
)

// Status is the purchase order lifecycle state.
//
// DRAFT orders are editable. Sending locks the items and puts the order
// in DIPESAN; receipts then move it to DITERIMA_SEBAGIAN until every
// line is fully received, when it becomes DITERIMA_PENUH. DIBATALKAN is
// only reachable from DRAFT.
type Status string

const (
	StatusDraft             Status = "DRAFT"
	StatusOrdered           Status = "DIPESAN"
	StatusPartiallyReceived Status = "DITERIMA_SEBAGIAN"
	StatusFullyReceived     Status = "DITERIMA_PENUH"
	StatusCancelled         Status = "DIBATALKAN"
)

// HistoryEntry is one append-only lifecycle log record
type HistoryEntry struct {
	Status    Status    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Actor     string    `json:"actor"`
	Note      string    `json:"note,omitempty"`
}

// Item is one purchase order line. ReceivedQty accumulates across
// receipts and never exceeds Quantity.
type Item struct {
	ProductID      string          `json:"product_id"`
	ProductName    string          `json:"product_name"`
	UnitName       string          `json:"unit_name"`
	Quantity       int64           `json:"quantity"`
	UnitCost       decimal.Decimal `json:"unit_cost"`
	DiscountPct    decimal.Decimal `json:"discount_pct"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	ReceivedQty    int64           `json:"received_qty"`
	LastReceivedAt *time.Time      `json:"last_received_at,omitempty"`
}

// Remaining returns the quantity still expected for this line
func (i *Item) Remaining() int64 {
	return i.Quantity - i.ReceivedQty
}

// Adjustments are the invoice-level figures of a purchase order.
// Purchase taxes are always applied on top of the discounted base.
type Adjustments struct {
	InvoiceDiscount decimal.Decimal `json:"invoice_discount"`
	TaxPercent      decimal.Decimal `json:"tax_percent"`
	ShippingCost    decimal.Decimal `json:"shipping_cost"`
}

// ReceiptLine is the quantity received now for one order line
type ReceiptLine struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// Order is a purchase order issued to a supplier
type Order struct {
	ID           string         `json:"id"`
	BranchID     string         `json:"branch_id"`
	SupplierID   string         `json:"supplier_id"`
	SupplierName string         `json:"supplier_name"`
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

// NewOrder creates a DRAFT purchase order and seeds its history
func NewOrder(branchID, supplierID, supplierName, number string, orderDate time.Time, items []Item, adj Adjustments, actor string) (*Order, error) {
	if supplierID == "" {
		return nil, ErrEmptySupplier
	}
	if err := validateItems(items); err != nil {
		return nil, err
	}

	now := time.Now()
	o := &Order{
		ID:           uuid.New().String(),
		BranchID:     branchID,
		SupplierID:   supplierID,
		SupplierName: supplierName,
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
			UnitPrice:   o.Items[i].UnitCost,
			DiscountPct: o.Items[i].DiscountPct,
		}
		o.Items[i].Subtotal = pricing.LineSubtotal(line)
		lines = append(lines, line)
	}

	o.Totals = pricing.Calculate(lines, pricing.Adjustments{
		InvoiceDiscount: o.Adjustments.InvoiceDiscount,
		TaxPercent:      o.Adjustments.TaxPercent,
		TaxMode:         pricing.TaxExclusive,
		ShippingCost:    o.Adjustments.ShippingCost,
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

	o.Items = items
	o.Adjustments = adj
	o.recomputeTotals()
	o.UpdatedAt = time.Now()

	return nil
}

// Send transitions DRAFT to DIPESAN, locking the items
func (o *Order) Send(actor, note string) error {
	if o.Status != StatusDraft {
		return ErrNotDraft
	}

	now := time.Now()
	o.Status = StatusOrdered
	o.appendHistory(StatusOrdered, actor, note, now)
	o.UpdatedAt = now

	return nil
}

// Cancel transitions DRAFT to DIBATALKAN. Orders already sent to the
// supplier cannot be cancelled.
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

// ValidateReceipt checks a receipt against the order without mutating
// it: the order must be awaiting receipt, every line must exist on the
// order, at least one quantity must be positive, and the summed
// quantity per product may not exceed the line's remaining amount.
// Lines repeating a product count against that sum, so a receipt can
// never sneak past the cap in pieces.
func (o *Order) ValidateReceipt(lines []ReceiptLine) error {
	if o.Status != StatusOrdered && o.Status != StatusPartiallyReceived {
		return ErrNotReceivable
	}

	requested := make(map[string]int64, len(lines))
	for _, rl := range lines {
		if rl.Quantity <= 0 {
			continue
		}

		item := o.findItem(rl.ProductID)
		if item == nil {
			return fmt.Errorf("%w: product %s", ErrUnknownItem, rl.ProductID)
		}

		requested[rl.ProductID] += rl.Quantity
		if requested[rl.ProductID] > item.Remaining() {
			return fmt.Errorf("%w: product %s, remaining %d, requested %d",
				ErrReceiveExceedsOrdered, rl.ProductID, item.Remaining(), requested[rl.ProductID])
		}
	}

	if len(requested) == 0 {
		return ErrNothingToReceive
	}

	return nil
}

// ApplyReceipt accumulates the received quantities and advances the
// status: DITERIMA_PENUH when every line is fully received, otherwise
// DITERIMA_SEBAGIAN. Callers must have validated the receipt first; the
// validation is repeated here so the entity can never over-receive.
func (o *Order) ApplyReceipt(lines []ReceiptLine, actor, note string) error {
	if err := o.ValidateReceipt(lines); err != nil {
		return err
	}

	now := time.Now()
	for _, rl := range lines {
		if rl.Quantity <= 0 {
			continue
		}
		item := o.findItem(rl.ProductID)
		item.ReceivedQty += rl.Quantity
		ts := now
		item.LastReceivedAt = &ts
	}

	status := StatusFullyReceived
	for i := range o.Items {
		if o.Items[i].Remaining() > 0 {
			status = StatusPartiallyReceived
			break
		}
	}

	o.Status = status
	o.appendHistory(status, actor, note, now)
	o.UpdatedAt = now

	return nil
}

func (o *Order) findItem(productID string) *Item {
	for i := range o.Items {
		if o.Items[i].ProductID == productID {
			return &o.Items[i]
		}
	}
	return nil
}
