package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tokonusa/inventory-backend/internal/domain/pricing"
	"github.com/tokonusa/inventory-backend/internal/domain/purchase"
	"github.com/tokonusa/inventory-backend/internal/service"
)

// PurchaseItemRequest is one requested purchase order line. UnitCost is
// optional; when zero the product's cost price is used.
type PurchaseItemRequest struct {
	ProductID   string          `json:"product_id" binding:"required"`
	Quantity    int64           `json:"quantity" binding:"required,gt=0"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	DiscountPct decimal.Decimal `json:"discount_pct"`
}

// PurchaseRequest is the create/update payload for a purchase order
type PurchaseRequest struct {
	SupplierID      string                `json:"supplier_id" binding:"required"`
	OrderDate       time.Time             `json:"order_date"`
	Items           []PurchaseItemRequest `json:"items" binding:"required,min=1"`
	InvoiceDiscount decimal.Decimal       `json:"invoice_discount"`
	TaxPercent      decimal.Decimal       `json:"tax_percent"`
	ShippingCost    decimal.Decimal       `json:"shipping_cost"`
}

// PurchaseUpdateRequest replaces the lines and adjustments of a draft
type PurchaseUpdateRequest struct {
	Items           []PurchaseItemRequest `json:"items" binding:"required,min=1"`
	InvoiceDiscount decimal.Decimal       `json:"invoice_discount"`
	TaxPercent      decimal.Decimal       `json:"tax_percent"`
	ShippingCost    decimal.Decimal       `json:"shipping_cost"`
}

// TransitionRequest carries the optional note of a status transition
type TransitionRequest struct {
	Note string `json:"note"`
}

// ReceiptLineRequest is the quantity received now for one order line
type ReceiptLineRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int64  `json:"quantity"`
}

// ReceiptRequest books received goods against a sent order
type ReceiptRequest struct {
	Lines []ReceiptLineRequest `json:"lines" binding:"required,min=1"`
	Note  string               `json:"note"`
}

// PurchaseResponse is the purchase order payload returned to clients
type PurchaseResponse struct {
	ID           string                  `json:"id"`
	BranchID     string                  `json:"branch_id"`
	SupplierID   string                  `json:"supplier_id"`
	SupplierName string                  `json:"supplier_name"`
	Number       string                  `json:"number"`
	OrderDate    time.Time               `json:"order_date"`
	Status       purchase.Status         `json:"status"`
	Items        []purchase.Item         `json:"items"`
	Adjustments  purchase.Adjustments    `json:"adjustments"`
	Totals       pricing.Totals          `json:"totals"`
	History      []purchase.HistoryEntry `json:"history"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}

// PurchaseListResponse is a paginated purchase order list
type PurchaseListResponse struct {
	Items      []PurchaseResponse `json:"items"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	Size       int                `json:"size"`
	TotalPages int                `json:"total_pages"`
}

// ToPurchaseResponse converts a domain purchase order to its DTO
func ToPurchaseResponse(o *purchase.Order) *PurchaseResponse {
	return &PurchaseResponse{
		ID:           o.ID,
		BranchID:     o.BranchID,
		SupplierID:   o.SupplierID,
		SupplierName: o.SupplierName,
		Number:       o.Number,
		OrderDate:    o.OrderDate,
		Status:       o.Status,
		Items:        o.Items,
		Adjustments:  o.Adjustments,
		Totals:       o.Totals,
		History:      o.History,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

// ToPurchaseListResponse converts a domain purchase order list to its DTO
func ToPurchaseListResponse(orders []*purchase.Order, total, page, size int) *PurchaseListResponse {
	items := make([]PurchaseResponse, len(orders))
	for i, o := range orders {
		items[i] = *ToPurchaseResponse(o)
	}

	return &PurchaseListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: TotalPages(total, size),
	}
}

// ToPurchaseItemInputs converts request lines to service inputs
func ToPurchaseItemInputs(items []PurchaseItemRequest) []service.PurchaseItemInput {
	inputs := make([]service.PurchaseItemInput, len(items))
	for i, it := range items {
		inputs[i] = service.PurchaseItemInput{
			ProductID:   it.ProductID,
			Quantity:    it.Quantity,
			UnitCost:    it.UnitCost,
			DiscountPct: it.DiscountPct,
		}
	}
	return inputs
}

// ToReceiptLines converts request lines to domain receipt lines
func ToReceiptLines(lines []ReceiptLineRequest) []purchase.ReceiptLine {
	out := make([]purchase.ReceiptLine, len(lines))
	for i, l := range lines {
		out[i] = purchase.ReceiptLine{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
		}
	}
	return out
}
