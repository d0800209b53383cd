package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tokonusa/inventory-backend/internal/domain/pricing"
	"github.com/tokonusa/inventory-backend/internal/domain/sale"
	"github.com/tokonusa/inventory-backend/internal/service"
)

// SaleItemRequest is one requested sale order line. UnitPrice is
// optional; when zero the product's sell price is used.
type SaleItemRequest struct {
	ProductID   string          `json:"product_id" binding:"required"`
	Quantity    int64           `json:"quantity" binding:"required,gt=0"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	DiscountPct decimal.Decimal `json:"discount_pct"`
}

// SaleRequest is the create payload for a sale order. TaxMode accepts
// "eksklusif" or "inklusif" and defaults to exclusive.
type SaleRequest struct {
	CustomerID      string            `json:"customer_id" binding:"required"`
	OrderDate       time.Time         `json:"order_date"`
	Items           []SaleItemRequest `json:"items" binding:"required,min=1"`
	InvoiceDiscount decimal.Decimal   `json:"invoice_discount"`
	TaxPercent      decimal.Decimal   `json:"tax_percent"`
	TaxMode         pricing.TaxMode   `json:"tax_mode"`
	ShippingCost    decimal.Decimal   `json:"shipping_cost"`
	MiscCost        decimal.Decimal   `json:"misc_cost"`
}

// SaleUpdateRequest replaces the lines and adjustments of a draft
type SaleUpdateRequest struct {
	Items           []SaleItemRequest `json:"items" binding:"required,min=1"`
	InvoiceDiscount decimal.Decimal   `json:"invoice_discount"`
	TaxPercent      decimal.Decimal   `json:"tax_percent"`
	TaxMode         pricing.TaxMode   `json:"tax_mode"`
	ShippingCost    decimal.Decimal   `json:"shipping_cost"`
	MiscCost        decimal.Decimal   `json:"misc_cost"`
}

// ReturnRequest carries the mandatory reason of a sale return
type ReturnRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// SaleResponse is the sale order payload returned to clients
type SaleResponse struct {
	ID           string              `json:"id"`
	BranchID     string              `json:"branch_id"`
	CustomerID   string              `json:"customer_id"`
	CustomerName string              `json:"customer_name"`
	Number       string              `json:"number"`
	OrderDate    time.Time           `json:"order_date"`
	Status       sale.Status         `json:"status"`
	Items        []sale.Item         `json:"items"`
	Adjustments  sale.Adjustments    `json:"adjustments"`
	Totals       pricing.Totals      `json:"totals"`
	History      []sale.HistoryEntry `json:"history"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// SaleListResponse is a paginated sale order list
type SaleListResponse struct {
	Items      []SaleResponse `json:"items"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	Size       int            `json:"size"`
	TotalPages int            `json:"total_pages"`
}

// ToSaleResponse converts a domain sale order to its DTO
func ToSaleResponse(o *sale.Order) *SaleResponse {
	return &SaleResponse{
		ID:           o.ID,
		BranchID:     o.BranchID,
		CustomerID:   o.CustomerID,
		CustomerName: o.CustomerName,
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

// ToSaleListResponse converts a domain sale order list to its DTO
func ToSaleListResponse(orders []*sale.Order, total, page, size int) *SaleListResponse {
	items := make([]SaleResponse, len(orders))
	for i, o := range orders {
		items[i] = *ToSaleResponse(o)
	}

	return &SaleListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: TotalPages(total, size),
	}
}

// ToSaleItemInputs converts request lines to service inputs
func ToSaleItemInputs(items []SaleItemRequest) []service.SaleItemInput {
	inputs := make([]service.SaleItemInput, len(items))
	for i, it := range items {
		inputs[i] = service.SaleItemInput{
			ProductID:   it.ProductID,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			DiscountPct: it.DiscountPct,
		}
	}
	return inputs
}
