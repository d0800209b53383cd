package dto

import (
	"time"

	"github.com/tokonusa/inventory-backend/internal/domain/supplier"
)

// SupplierRequest is the create/update payload for a supplier
type SupplierRequest struct {
	Name          string `json:"name" binding:"required"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
}

// SupplierResponse is the supplier payload returned to clients
type SupplierResponse struct {
	ID            string          `json:"id"`
	BranchID      string          `json:"branch_id"`
	Name          string          `json:"name"`
	ContactPerson string          `json:"contact_person"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	Address       string          `json:"address"`
	Status        supplier.Status `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// SupplierListResponse is a paginated supplier list
type SupplierListResponse struct {
	Items      []SupplierResponse `json:"items"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	Size       int                `json:"size"`
	TotalPages int                `json:"total_pages"`
}

// ToSupplierResponse converts a domain supplier to its DTO
func ToSupplierResponse(s *supplier.Supplier) *SupplierResponse {
	return &SupplierResponse{
		ID:            s.ID,
		BranchID:      s.BranchID,
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Phone:         s.Phone,
		Email:         s.Email,
		Address:       s.Address,
		Status:        s.Status,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

// ToSupplierListResponse converts a domain supplier list to its DTO
func ToSupplierListResponse(suppliers []*supplier.Supplier, total, page, size int) *SupplierListResponse {
	items := make([]SupplierResponse, len(suppliers))
	for i, s := range suppliers {
		items[i] = *ToSupplierResponse(s)
	}

	return &SupplierListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: TotalPages(total, size),
	}
}
