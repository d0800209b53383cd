package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tokonusa/inventory-backend/internal/domain/product"
)

// ProductRequest is the create/update payload for a product
type ProductRequest struct {
	Code       string          `json:"code" binding:"required"`
	Name       string          `json:"name" binding:"required"`
	CategoryID string          `json:"category_id"`
	UnitName   string          `json:"unit_name"`
	CostPrice  decimal.Decimal `json:"cost_price"`
	SellPrice  decimal.Decimal `json:"sell_price"`
}

// ProductResponse is the product payload returned to clients
type ProductResponse struct {
	ID         string          `json:"id"`
	BranchID   string          `json:"branch_id"`
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	CategoryID string          `json:"category_id"`
	UnitName   string          `json:"unit_name"`
	Stock      int64           `json:"stock"`
	CostPrice  decimal.Decimal `json:"cost_price"`
	SellPrice  decimal.Decimal `json:"sell_price"`
	Status     product.Status  `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ProductListResponse is a paginated product list
type ProductListResponse struct {
	Items      []ProductResponse `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	Size       int               `json:"size"`
	TotalPages int               `json:"total_pages"`
}

// ToProductResponse converts a domain product to its DTO
func ToProductResponse(p *product.Product) *ProductResponse {
	return &ProductResponse{
		ID:         p.ID,
		BranchID:   p.BranchID,
		Code:       p.Code,
		Name:       p.Name,
		CategoryID: p.CategoryID,
		UnitName:   p.UnitName,
		Stock:      p.Stock,
		CostPrice:  p.CostPrice,
		SellPrice:  p.SellPrice,
		Status:     p.Status,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

// ToProductListResponse converts a domain product list to its DTO
func ToProductListResponse(products []*product.Product, total, page, size int) *ProductListResponse {
	items := make([]ProductResponse, len(products))
	for i, p := range products {
		items[i] = *ToProductResponse(p)
	}

	return &ProductListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: TotalPages(total, size),
	}
}
