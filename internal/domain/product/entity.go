package product

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCode        = errors.New("product code cannot be empty")
	ErrEmptyName        = errors.New("product name cannot be empty")
	ErrNegativeQuantity = errors.New("quantity cannot be negative")
)

// Status represents the product lifecycle state
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Product is a sellable/purchasable item owned by a branch. Stock holds
// the current quantity on hand; it is only mutated through purchase
// receiving, sale shipment/return, and stock opname finalization.
type Product struct {
	ID         string          `json:"id"`
	BranchID   string          `json:"branch_id"`
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	CategoryID string          `json:"category_id"`
	UnitName   string          `json:"unit_name"`
	Stock      int64           `json:"stock"`
	CostPrice  decimal.Decimal `json:"cost_price"`
	SellPrice  decimal.Decimal `json:"sell_price"`
	Status     Status          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// NewProduct creates a new product with zero stock
func NewProduct(branchID, code, name, categoryID, unitName string, costPrice, sellPrice decimal.Decimal) (*Product, error) {
	if code == "" {
		return nil, ErrEmptyCode
	}
	if name == "" {
		return nil, ErrEmptyName
	}

	now := time.Now()
	return &Product{
		ID:         uuid.New().String(),
		BranchID:   branchID,
		Code:       code,
		Name:       name,
		CategoryID: categoryID,
		UnitName:   unitName,
		Stock:      0,
		CostPrice:  costPrice,
		SellPrice:  sellPrice,
		Status:     StatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Update changes the product master data
func (p *Product) Update(code, name, categoryID, unitName string, costPrice, sellPrice decimal.Decimal) error {
	if code == "" {
		return ErrEmptyCode
	}
	if name == "" {
		return ErrEmptyName
	}

	p.Code = code
	p.Name = name
	p.CategoryID = categoryID
	p.UnitName = unitName
	p.CostPrice = costPrice
	p.SellPrice = sellPrice
	p.UpdatedAt = time.Now()

	return nil
}

// IsActive reports whether the product is active
func (p *Product) IsActive() bool {
	return p.Status == StatusActive
}

// Deactivate marks the product inactive
func (p *Product) Deactivate() {
	p.Status = StatusInactive
	p.UpdatedAt = time.Now()
}

// Activate marks the product active
func (p *Product) Activate() {
	p.Status = StatusActive
	p.UpdatedAt = time.Now()
}
