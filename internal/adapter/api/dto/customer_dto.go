package dto

import (
	"time"

	"github.com/tokonusa/inventory-backend/internal/domain/customer"
)

// CustomerRequest is the create/update payload for a customer
type CustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// CustomerResponse is the customer payload returned to clients
type CustomerResponse struct {
	ID             string          `json:"id"`
	BranchID       string          `json:"branch_id"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone"`
	Email          string          `json:"email"`
	Address        string          `json:"address"`
	Status         customer.Status `json:"status"`
	LastPurchaseAt *time.Time      `json:"last_purchase_at,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// CustomerListResponse is a paginated customer list
type CustomerListResponse struct {
	Items      []CustomerResponse `json:"items"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	Size       int                `json:"size"`
	TotalPages int                `json:"total_pages"`
}

// ToCustomerResponse converts a domain customer to its DTO
func ToCustomerResponse(c *customer.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:             c.ID,
		BranchID:       c.BranchID,
		Name:           c.Name,
		Phone:          c.Phone,
		Email:          c.Email,
		Address:        c.Address,
		Status:         c.Status,
		LastPurchaseAt: c.LastPurchaseAt,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// ToCustomerListResponse converts a domain customer list to its DTO
func ToCustomerListResponse(customers []*customer.Customer, total, page, size int) *CustomerListResponse {
	items := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		items[i] = *ToCustomerResponse(c)
	}

	return &CustomerListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: TotalPages(total, size),
	}
}
